// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package dashboard

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
	mux.Get("/api/v0/dashboard", a.summary)
}

func (a *API) summary(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dashboard.API.summary")
	defer span.End()

	summary, err := a.service.GetSummary(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to build dashboard summary: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, summary)
}
