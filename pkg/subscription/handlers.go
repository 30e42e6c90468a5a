// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/matheuspuca/NoteDrill-sub001/internal/billing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/rest"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

var validate = validator.New()

// maxWebhookBody caps what the webhook endpoint will read.
const maxWebhookBody = 1 << 20

type API struct {
	service ServiceInterface
	billing billing.ClientInterface
	tracer  tracing.TracingInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, billingClient billing.ClientInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		billing: billingClient,
		tracer:  tracer,
		logger:  logger,
	}
}

// RegisterEndpoints wires the tenant-facing routes. The webhook route is
// registered separately since it must bypass the identity middleware.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/subscription", a.get)
	mux.Post("/api/v0/subscription/checkout", a.checkout)
	mux.Post("/api/v0/subscription/portal", a.portal)
}

// RegisterWebhook wires the provider-facing webhook route.
func (a *API) RegisterWebhook(mux chi.Router) {
	mux.Post("/webhooks/billing", a.webhook)
}

type checkoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic pro enterprise"`
}

type redirectResponse struct {
	URL string `json:"url"`
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subscription.API.get")
	defer span.End()

	sub, err := a.service.GetSubscription(ctx, identity.UserID(ctx))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rest.WriteError(w, http.StatusNotFound, "no subscription")
			return
		}
		a.logger.Errorf("failed to get subscription: %v", err)
		rest.WriteStorageError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, sub)
}

func (a *API) checkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subscription.API.checkout")
	defer span.End()

	var req checkoutRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	url, err := a.service.CreateCheckout(ctx, identity.UserID(ctx), req.Plan)
	if err != nil {
		if errors.Is(err, ErrUnknownPlan) {
			rest.WriteError(w, http.StatusUnprocessableEntity, "unknown plan")
			return
		}
		a.logger.Errorf("failed to create checkout session: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, redirectResponse{URL: url})
}

func (a *API) portal(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subscription.API.portal")
	defer span.End()

	url, err := a.service.CreatePortal(ctx, identity.UserID(ctx))
	if err != nil {
		if errors.Is(err, ErrNoSubscription) {
			rest.WriteError(w, http.StatusNotFound, "no subscription")
			return
		}
		a.logger.Errorf("failed to create portal session: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	rest.WriteJSON(w, http.StatusOK, redirectResponse{URL: url})
}

func (a *API) webhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "subscription.API.webhook")
	defer span.End()

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if err := a.billing.VerifySignature(payload, r.Header.Get("Stripe-Signature")); err != nil {
		a.logger.Security().AuthnFailure("billing-webhook", err.Error())
		rest.WriteError(w, http.StatusBadRequest, "signature verification failed")
		return
	}

	event, err := a.billing.ParseEvent(payload)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "malformed event")
		return
	}

	if err := a.service.HandleEvent(ctx, event); err != nil {
		a.logger.Errorf("failed to handle webhook event %s: %v", event.ID, err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to handle event")
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}
