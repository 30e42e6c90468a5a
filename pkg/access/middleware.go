// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"

	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/rest"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

type Middleware struct {
	service ServiceInterface
	tracer  tracing.TracingInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

// Gate blocks requests from tenants whose trial has run out and whose
// subscription is not being paid for. Blocked requests get a 402 with the
// decision body so clients can route users to checkout.
func (m *Middleware) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "access.Middleware.Gate")
		defer span.End()

		ownerID := identity.UserID(ctx)
		if ownerID == "" {
			rest.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		decision, err := m.service.CheckAccess(ctx, ownerID)
		if err != nil {
			m.logger.Errorf("failed to evaluate access for %s: %v", ownerID, err)
			rest.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if !decision.Allowed {
			m.logger.Security().PaywallBlock(ownerID, decision.Reason)
			rest.WriteJSON(w, http.StatusPaymentRequired, decision)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
