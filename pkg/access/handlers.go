// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/rest"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

type API struct {
	service ServiceInterface
	tracer  tracing.TracingInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/access", a.check)
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.check")
	defer span.End()

	ownerID := identity.UserID(ctx)
	if ownerID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	decision, err := a.service.CheckAccess(ctx, ownerID)
	if err != nil {
		a.logger.Errorf("failed to evaluate access: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, decision)
}
