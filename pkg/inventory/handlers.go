// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"errors"
	"net/http"

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
	mux.Post("/api/v0/inventory", a.create)
	mux.Get("/api/v0/inventory", a.list)
	mux.Get("/api/v0/inventory/low-stock", a.lowStock)
	mux.Get("/api/v0/inventory/{id}", a.get)
	mux.Put("/api/v0/inventory/{id}", a.update)
	mux.Delete("/api/v0/inventory/{id}", a.delete)
	mux.Post("/api/v0/inventory/{id}/transfer", a.transfer)

	mux.Post("/api/v0/epi-issues", a.issueEPI)
	mux.Get("/api/v0/epi-issues", a.listEpiIssues)
}

type itemRequest struct {
	ProjectID string  `json:"project_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Type      string  `json:"type" validate:"required,oneof=Material Ferramenta EPI Combustível"`
	Quantity  float64 `json:"quantity"`
	MinStock  float64 `json:"min_stock" validate:"gte=0"`
	Unit      string  `json:"unit"`
	Value     float64 `json:"value" validate:"gte=0"`
	CACode    *string `json:"ca_code"`
}

type transferRequest struct {
	TargetProjectID string  `json:"target_project_id" validate:"required"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
}

type epiIssueRequest struct {
	InventoryItemID string  `json:"inventory_item_id" validate:"required"`
	TeamMemberID    string  `json:"team_member_id" validate:"required"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.create")
	defer span.End()

	var req itemRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	i := &types.InventoryItem{
		OwnerID:   identity.UserID(ctx),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Type:      req.Type,
		Quantity:  req.Quantity,
		MinStock:  req.MinStock,
		Unit:      req.Unit,
		Value:     req.Value,
		CACode:    req.CACode,
	}

	created, err := a.service.CreateItem(ctx, i)
	if err != nil {
		a.logger.Errorf("failed to create inventory item: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.list")
	defer span.End()

	items, err := a.service.ListItems(ctx, identity.UserID(ctx), r.URL.Query().Get("project_id"))
	if err != nil {
		a.logger.Errorf("failed to list inventory items: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if items == nil {
		items = []*types.InventoryItem{}
	}

	rest.WriteJSON(w, http.StatusOK, items)
}

func (a *API) lowStock(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.lowStock")
	defer span.End()

	items, err := a.service.ListLowStock(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to list low stock items: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if items == nil {
		items = []*types.InventoryItem{}
	}

	rest.WriteJSON(w, http.StatusOK, items)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.get")
	defer span.End()

	item, err := a.service.GetItem(ctx, identity.UserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, item)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.update")
	defer span.End()

	var req itemRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	i := &types.InventoryItem{
		ID:        chi.URLParam(r, "id"),
		OwnerID:   identity.UserID(ctx),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Type:      req.Type,
		Quantity:  req.Quantity,
		MinStock:  req.MinStock,
		Unit:      req.Unit,
		Value:     req.Value,
		CACode:    req.CACode,
	}

	updated, err := a.service.UpdateItem(ctx, i)
	if err != nil {
		a.logger.Errorf("failed to update inventory item: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.delete")
	defer span.End()

	if err := a.service.DeleteItem(ctx, identity.UserID(ctx), chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to delete inventory item: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) transfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.transfer")
	defer span.End()

	var req transferRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err := a.service.Transfer(ctx, identity.UserID(ctx), chi.URLParam(r, "id"), req.TargetProjectID, req.Quantity)
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			rest.WriteError(w, http.StatusConflict, "insufficient stock")
			return
		}
		a.logger.Errorf("failed to transfer inventory item: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) issueEPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.issueEPI")
	defer span.End()

	var req epiIssueRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	issue := &types.EpiIssue{
		OwnerID:         identity.UserID(ctx),
		InventoryItemID: req.InventoryItemID,
		TeamMemberID:    req.TeamMemberID,
		Quantity:        req.Quantity,
	}

	created, err := a.service.IssueEPI(ctx, issue)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientStock):
			rest.WriteError(w, http.StatusConflict, "insufficient stock")
		case errors.Is(err, ErrNotEPI):
			rest.WriteError(w, http.StatusUnprocessableEntity, "item is not an EPI")
		default:
			a.logger.Errorf("failed to issue EPI: %v", err)
			rest.WriteStorageError(w, err)
		}
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) listEpiIssues(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inventory.API.listEpiIssues")
	defer span.End()

	issues, err := a.service.ListEpiIssues(ctx, identity.UserID(ctx))
	if err != nil {
		a.logger.Errorf("failed to list EPI issues: %v", err)
		rest.WriteStorageError(w, err)
		return
	}
	if issues == nil {
		issues = []*types.EpiIssue{}
	}

	rest.WriteJSON(w, http.StatusOK, issues)
}
