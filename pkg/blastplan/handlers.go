// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package blastplan

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/rest"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

var validate = validator.New()

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
	mux.Post("/api/v0/blast-plans", a.create)
	mux.Get("/api/v0/blast-plans", a.list)
	mux.Get("/api/v0/blast-plans/{id}", a.get)
	mux.Get("/api/v0/blast-plans/{id}/reports", a.listReports)
	mux.Put("/api/v0/blast-plans/{id}", a.update)
	mux.Delete("/api/v0/blast-plans/{id}", a.delete)
}

type blastPlanRequest struct {
	ProjectID     string    `json:"project_id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Status        string    `json:"status" validate:"omitempty,oneof=Aberto Concluída"`
	Date          time.Time `json:"date" validate:"required"`
	HoleCount     int       `json:"hole_count" validate:"gte=0"`
	PlannedMeters float64   `json:"planned_meters" validate:"gte=0"`
	Notes         string    `json:"notes"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "blastplan.API.create")
	defer span.End()

	var req blastPlanRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b := &types.BlastPlan{
		OwnerID:       identity.UserID(ctx),
		ProjectID:     req.ProjectID,
		Name:          req.Name,
		Status:        req.Status,
		Date:          req.Date,
		HoleCount:     req.HoleCount,
		PlannedMeters: req.PlannedMeters,
		Notes:         req.Notes,
	}

	created, err := a.service.CreateBlastPlan(ctx, b)
	if err != nil {
		a.logger.Errorf("failed to create blast plan: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "blastplan.API.list")
	defer span.End()

	plans, err := a.service.ListBlastPlans(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to list blast plans: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if plans == nil {
		plans = []*types.BlastPlan{}
	}

	rest.WriteJSON(w, http.StatusOK, plans)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "blastplan.API.get")
	defer span.End()

	b, err := a.service.GetBlastPlan(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, b)
}

func (a *API) listReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "blastplan.API.listReports")
	defer span.End()

	reports, err := a.service.ListLinkedReports(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to list blast plan reports: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if reports == nil {
		reports = []*types.DrillingReport{}
	}

	rest.WriteJSON(w, http.StatusOK, reports)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "blastplan.API.update")
	defer span.End()

	var req blastPlanRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b := &types.BlastPlan{
		ID:            chi.URLParam(r, "id"),
		OwnerID:       identity.UserID(ctx),
		ProjectID:     req.ProjectID,
		Name:          req.Name,
		Status:        req.Status,
		Date:          req.Date,
		HoleCount:     req.HoleCount,
		PlannedMeters: req.PlannedMeters,
		Notes:         req.Notes,
	}

	updated, err := a.service.UpdateBlastPlan(ctx, b)
	if err != nil {
		a.logger.Errorf("failed to update blast plan: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "blastplan.API.delete")
	defer span.End()

	if err := a.service.DeleteBlastPlan(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrReportsLinked) {
			rest.WriteError(w, http.StatusConflict, "blast plan has linked reports")
			return
		}
		a.logger.Errorf("failed to delete blast plan: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
