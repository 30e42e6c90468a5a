// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
	// ContextKey is the key used to store the user ID in the context
	ContextKey = "user_id"
)

// TokenVerifierInterface verifies a raw JWT and returns its subject. Used for
// machine clients that authenticate with a bearer token instead of going
// through the identity proxy.
type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewMiddleware builds the identity middleware. The verifier may be nil, in
// which case only the proxy header is accepted.
func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			userID = m.bearerSubject(ctx, r)
		}
		if userID == "" {
			m.logger.Security().AuthnFailure("unknown", "missing identity header")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, ContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) bearerSubject(ctx context.Context, r *http.Request) string {
	if m.verifier == nil {
		return ""
	}

	// Only "Bearer <token>" is supported (RFC 6750).
	bearer := r.Header.Get("Authorization")
	if !strings.HasPrefix(bearer, "Bearer ") {
		return ""
	}

	subject, err := m.verifier.VerifyToken(ctx, strings.TrimPrefix(bearer, "Bearer "))
	if err != nil {
		m.logger.Debugf("JWT verification failed: %v", err)
		return ""
	}

	return subject
}

// UserID returns the authenticated identity id stored by HTTPMiddleware, or
// the empty string when the request went through an unprotected route.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKey).(string)
	return id
}
