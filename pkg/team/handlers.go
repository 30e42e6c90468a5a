// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package team

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
	mux.Post("/api/v0/team", a.create)
	mux.Get("/api/v0/team", a.list)
	mux.Get("/api/v0/team/{id}", a.get)
	mux.Put("/api/v0/team/{id}", a.update)
	mux.Delete("/api/v0/team/{id}", a.delete)
	mux.Post("/api/v0/team/{id}/invite", a.invite)
}

type memberRequest struct {
	Name          string     `json:"name" validate:"required"`
	Role          string     `json:"role" validate:"required"`
	Status        string     `json:"status" validate:"omitempty,oneof=Ativo Férias Atestado Inativo"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email" validate:"omitempty,email"`
	DailyRate     float64    `json:"daily_rate" validate:"gte=0"`
	AdmissionDate *time.Time `json:"admission_date"`
}

type inviteResponse struct {
	Status string `json:"status"`
	Link   string `json:"link"`
	Code   string `json:"code"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.create")
	defer span.End()

	var req memberRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	m := &types.TeamMember{
		OwnerID:       identity.UserID(ctx),
		Name:          req.Name,
		Role:          req.Role,
		Status:        req.Status,
		Phone:         req.Phone,
		Email:         req.Email,
		DailyRate:     req.DailyRate,
		AdmissionDate: req.AdmissionDate,
	}

	created, err := a.service.CreateMember(ctx, m)
	if err != nil {
		a.logger.Errorf("failed to create team member: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.list")
	defer span.End()

	members, err := a.service.ListMembers(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to list team members: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if members == nil {
		members = []*types.TeamMember{}
	}

	rest.WriteJSON(w, http.StatusOK, members)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.get")
	defer span.End()

	m, err := a.service.GetMember(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, m)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.update")
	defer span.End()

	var req memberRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	m := &types.TeamMember{
		ID:            chi.URLParam(r, "id"),
		OwnerID:       identity.UserID(ctx),
		Name:          req.Name,
		Role:          req.Role,
		Status:        req.Status,
		Phone:         req.Phone,
		Email:         req.Email,
		DailyRate:     req.DailyRate,
		AdmissionDate: req.AdmissionDate,
	}

	updated, err := a.service.UpdateMember(ctx, m)
	if err != nil {
		a.logger.Errorf("failed to update team member: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.delete")
	defer span.End()

	if err := a.service.DeleteMember(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete team member: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.invite")
	defer span.End()

	link, code, err := a.service.InviteMember(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNoEmail) {
			rest.WriteError(w, http.StatusUnprocessableEntity, "member has no email")
			return
		}
		a.logger.Errorf("failed to invite team member: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, inviteResponse{Status: "invited", Link: link, Code: code})
}
