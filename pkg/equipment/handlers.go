// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package equipment

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
	mux.Post("/api/v0/equipment", a.create)
	mux.Get("/api/v0/equipment", a.list)
	mux.Get("/api/v0/equipment/{id}", a.get)
	mux.Put("/api/v0/equipment/{id}", a.update)
	mux.Delete("/api/v0/equipment/{id}", a.delete)

	mux.Post("/api/v0/equipment/{id}/maintenance", a.createMaintenance)
	mux.Get("/api/v0/equipment/{id}/maintenance", a.listMaintenance)
	mux.Put("/api/v0/maintenance/{id}", a.updateMaintenance)
	mux.Delete("/api/v0/maintenance/{id}", a.deleteMaintenance)
}

type equipmentRequest struct {
	Name                string   `json:"name" validate:"required"`
	Type                string   `json:"type" validate:"required"`
	Status              string   `json:"status" validate:"omitempty,oneof=Operacional Manutenção Indisponível"`
	Hourmeter           float64  `json:"hourmeter" validate:"gte=0"`
	MaintenanceInterval float64  `json:"maintenance_interval" validate:"gte=0"`
	Ownership           string   `json:"ownership" validate:"required,oneof=OWNED RENTED"`
	AcquisitionValue    *float64 `json:"acquisition_value"`
	MonthlyRentalCost   *float64 `json:"monthly_rental_cost"`
	ProjectID           *string  `json:"project_id"`
}

type maintenanceRequest struct {
	Type        string    `json:"type" validate:"required,oneof=REVISION PREVENTIVE CORRECTIVE"`
	Status      string    `json:"status" validate:"required,oneof=SCHEDULED IN_PROGRESS COMPLETED"`
	HourMeter   float64   `json:"hour_meter" validate:"gte=0"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.create")
	defer span.End()

	var req equipmentRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	e := &types.Equipment{
		OwnerID:             identity.UserID(ctx),
		Name:                req.Name,
		Type:                req.Type,
		Status:              req.Status,
		Hourmeter:           req.Hourmeter,
		MaintenanceInterval: req.MaintenanceInterval,
		Ownership:           req.Ownership,
		AcquisitionValue:    req.AcquisitionValue,
		MonthlyRentalCost:   req.MonthlyRentalCost,
		ProjectID:           req.ProjectID,
	}

	created, err := a.service.CreateEquipment(ctx, e)
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
		a.logger.Errorf("failed to create equipment: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.list")
	defer span.End()

	equipment, err := a.service.ListEquipment(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to list equipment: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if equipment == nil {
		equipment = []*types.Equipment{}
	}

	rest.WriteJSON(w, http.StatusOK, equipment)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.get")
	defer span.End()

	e, err := a.service.GetEquipment(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, e)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.update")
	defer span.End()

	var req equipmentRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	e := &types.Equipment{
		ID:                  chi.URLParam(r, "id"),
		OwnerID:             identity.UserID(ctx),
		Name:                req.Name,
		Type:                req.Type,
		Status:              req.Status,
		Hourmeter:           req.Hourmeter,
		MaintenanceInterval: req.MaintenanceInterval,
		Ownership:           req.Ownership,
		AcquisitionValue:    req.AcquisitionValue,
		MonthlyRentalCost:   req.MonthlyRentalCost,
		ProjectID:           req.ProjectID,
	}

	updated, err := a.service.UpdateEquipment(ctx, e)
	if err != nil {
		a.logger.Errorf("failed to update equipment: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.delete")
	defer span.End()

	if err := a.service.DeleteEquipment(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete equipment: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) createMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.createMaintenance")
	defer span.End()

	var req maintenanceRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	m := &types.MaintenanceEvent{
		OwnerID:     identity.UserID(ctx),
		EquipmentID: chi.URLParam(r, "id"),
		Type:        req.Type,
		Status:      req.Status,
		HourMeter:   req.HourMeter,
		Cost:        req.Cost,
		Date:        req.Date,
		Description: req.Description,
	}

	created, err := a.service.CreateMaintenanceEvent(ctx, m)
	if err != nil {
		a.logger.Errorf("failed to create maintenance event: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) listMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.listMaintenance")
	defer span.End()

	events, err := a.service.ListMaintenanceEvents(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to list maintenance events: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if events == nil {
		events = []*types.MaintenanceEvent{}
	}

	rest.WriteJSON(w, http.StatusOK, events)
}

func (a *API) updateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.updateMaintenance")
	defer span.End()

	var req maintenanceRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	m := &types.MaintenanceEvent{
		ID:          chi.URLParam(r, "id"),
		OwnerID:     identity.UserID(ctx),
		Type:        req.Type,
		Status:      req.Status,
		HourMeter:   req.HourMeter,
		Cost:        req.Cost,
		Date:        req.Date,
		Description: req.Description,
	}

	updated, err := a.service.UpdateMaintenanceEvent(ctx, m)
	if err != nil {
		a.logger.Errorf("failed to update maintenance event: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "equipment.API.deleteMaintenance")
	defer span.End()

	if err := a.service.DeleteMaintenanceEvent(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete maintenance event: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
