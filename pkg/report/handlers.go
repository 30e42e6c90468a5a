// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package report

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
	"github.com/matheuspuca/NoteDrill-sub001/pkg/inventory"
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
	mux.Post("/api/v0/reports", a.create)
	mux.Get("/api/v0/reports", a.list)
	mux.Get("/api/v0/reports/{id}", a.get)
	mux.Put("/api/v0/reports/{id}", a.update)
	mux.Patch("/api/v0/reports/{id}/status", a.setStatus)
	mux.Delete("/api/v0/reports/{id}", a.delete)
}

type reportRequest struct {
	ProjectID        string                   `json:"project_id" validate:"required"`
	BlastPlanID      *string                  `json:"blast_plan_id"`
	Date             time.Time                `json:"date" validate:"required"`
	DrillEquipmentID string                   `json:"drill_equipment_id" validate:"required"`
	CompressorID     *string                  `json:"compressor_equipment_id"`
	OperatorID       string                   `json:"operator_id" validate:"required"`
	HelperID         *string                  `json:"helper_id"`
	HourmeterStart   float64                  `json:"hourmeter_start" validate:"gte=0"`
	HourmeterEnd     float64                  `json:"hourmeter_end" validate:"gte=0"`
	Services         []types.ReportService    `json:"services"`
	Occurrences      []types.ReportOccurrence `json:"occurrences"`
	Supplies         []types.ReportSupply     `json:"supplies"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createResponse struct {
	Report   *types.DrillingReport `json:"report"`
	Warnings []inventory.Warning   `json:"warnings,omitempty"`
}

func (r *reportRequest) toReport(ownerID string) *types.DrillingReport {
	return &types.DrillingReport{
		OwnerID:          ownerID,
		ProjectID:        r.ProjectID,
		BlastPlanID:      r.BlastPlanID,
		Date:             r.Date,
		DrillEquipmentID: r.DrillEquipmentID,
		CompressorID:     r.CompressorID,
		OperatorID:       r.OperatorID,
		HelperID:         r.HelperID,
		HourmeterStart:   r.HourmeterStart,
		HourmeterEnd:     r.HourmeterEnd,
		Services:         r.Services,
		Occurrences:      r.Occurrences,
		Supplies:         r.Supplies,
	}
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "report.API.create")
	defer span.End()

	var req reportRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, warnings, err := a.service.CreateReport(ctx, req.toReport(identity.UserID(ctx)))
	if err != nil {
		if errors.Is(err, ErrNumberConflict) {
			rest.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		a.logger.Errorf("failed to create report: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, createResponse{Report: created, Warnings: warnings})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "report.API.list")
	defer span.End()

	reports, err := a.service.ListReports(ctx, identity.UserID(ctx), r.URL.Query().Get("project_id"))
	if err != nil {
		a.logger.Errorf("failed to list reports: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if reports == nil {
		reports = []*types.DrillingReport{}
	}

	rest.WriteJSON(w, http.StatusOK, reports)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "report.API.get")
	defer span.End()

	report, err := a.service.GetReport(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, report)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "report.API.update")
	defer span.End()

	var req reportRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	report := req.toReport(identity.UserID(ctx))
	report.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateReport(ctx, report)
	if err != nil {
		a.logger.Errorf("failed to update report: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "report.API.setStatus")
	defer span.End()

	var req statusRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := a.service.SetStatus(ctx, identity.UserID(ctx), chi.URLParam(r, "id"), req.Status); err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			rest.WriteError(w, http.StatusUnprocessableEntity, "invalid status")
			return
		}
		a.logger.Errorf("failed to set report status: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "report.API.delete")
	defer span.End()

	if err := a.service.DeleteReport(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete report: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
