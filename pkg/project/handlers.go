// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package project

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
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
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
	mux.Post("/api/v0/projects", a.create)
	mux.Get("/api/v0/projects", a.list)
	mux.Get("/api/v0/projects/{id}", a.get)
	mux.Put("/api/v0/projects/{id}", a.update)
	mux.Delete("/api/v0/projects/{id}", a.delete)
}

type projectRequest struct {
	Name         string     `json:"name" validate:"required"`
	Status       string     `json:"status" validate:"omitempty,oneof=Planejamento Produção Parada Concluída"`
	Address      string     `json:"address"`
	VolumeTarget *float64   `json:"volume_target"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.create")
	defer span.End()

	var req projectRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p := &types.Project{
		OwnerID:      identity.UserID(ctx),
		Name:         req.Name,
		Status:       req.Status,
		Address:      req.Address,
		VolumeTarget: req.VolumeTarget,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	created, err := a.service.CreateProject(ctx, p)
	if err != nil {
		if errors.Is(err, access.ErrLimitReached) {
			msg := "plan limit reached"
			var limitErr *access.LimitError
			if errors.As(err, &limitErr) {
				msg = limitErr.Error()
			}
			rest.WriteError(w, http.StatusForbidden, msg)
			return
		}
		if errors.Is(err, access.ErrTrialExpired) {
			rest.WriteError(w, http.StatusPaymentRequired, "trial expired")
			return
		}
		a.logger.Errorf("failed to create project: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.list")
	defer span.End()

	projects, err := a.service.ListProjects(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to list projects: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if projects == nil {
		projects = []*types.Project{}
	}

	rest.WriteJSON(w, http.StatusOK, projects)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.get")
	defer span.End()

	p, err := a.service.GetProject(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, p)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.update")
	defer span.End()

	var req projectRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p := &types.Project{
		ID:           chi.URLParam(r, "id"),
		OwnerID:      identity.UserID(ctx),
		Name:         req.Name,
		Status:       req.Status,
		Address:      req.Address,
		VolumeTarget: req.VolumeTarget,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	updated, err := a.service.UpdateProject(ctx, p)
	if err != nil {
		a.logger.Errorf("failed to update project: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.delete")
	defer span.End()

	if err := a.service.DeleteProject(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete project: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
