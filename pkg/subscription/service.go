// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package subscription drives the billing lifecycle: hosted checkout, the
// customer portal and the webhook events that keep the local subscription
// state in sync with the provider.
package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/billing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

var (
	// ErrUnknownPlan rejects checkout requests for plans without a price.
	ErrUnknownPlan = errors.New("unknown plan")
	// ErrNoSubscription means the tenant never checked out, so there is no
	// portal to open.
	ErrNoSubscription = errors.New("no subscription on file")
)

// Config maps plans to provider price ids and carries the redirect URLs for
// the hosted pages.
type Config struct {
	PriceIDs   map[string]string
	SuccessURL string
	CancelURL  string
	ReturnURL  string
}

type Service struct {
	storage StorageInterface
	billing billing.ClientInterface
	kratos  KratosClientInterface
	config  Config

	// priceToPlan is the inverse of config.PriceIDs, used when webhook
	// events carry only the price.
	priceToPlan map[string]string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	billingClient billing.ClientInterface,
	kratos KratosClientInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	priceToPlan := make(map[string]string, len(config.PriceIDs))
	for plan, price := range config.PriceIDs {
		priceToPlan[price] = plan
	}

	return &Service{
		storage:     storage,
		billing:     billingClient,
		kratos:      kratos,
		config:      config,
		priceToPlan: priceToPlan,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (s *Service) GetSubscription(ctx context.Context, ownerID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.GetSubscription")
	defer span.End()

	return s.storage.GetSubscriptionByOwnerID(ctx, ownerID)
}

// CreateCheckout opens a hosted checkout session for the requested plan and
// returns the URL the client redirects to.
func (s *Service) CreateCheckout(ctx context.Context, ownerID, plan string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.CreateCheckout")
	defer span.End()

	priceID, ok := s.config.PriceIDs[plan]
	if !ok {
		return "", ErrUnknownPlan
	}

	identity, err := s.kratos.GetIdentity(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve identity: %w", err)
	}

	session, err := s.billing.CreateCheckoutSession(ctx, billing.CheckoutParams{
		ClientReferenceID: ownerID,
		CustomerEmail:     identity.Email,
		PriceID:           priceID,
		SuccessURL:        s.config.SuccessURL,
		CancelURL:         s.config.CancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.URL, nil
}

// CreatePortal opens the provider's customer portal for the tenant.
func (s *Service) CreatePortal(ctx context.Context, ownerID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.CreatePortal")
	defer span.End()

	sub, err := s.storage.GetSubscriptionByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNoSubscription
		}
		return "", err
	}

	session, err := s.billing.CreatePortalSession(ctx, sub.ProviderCustomerID, s.config.ReturnURL)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}

	return session.URL, nil
}

// HandleEvent consumes one verified webhook event. Subscription lifecycle
// events are upserted keyed on the provider's subscription id, which makes
// delivery idempotent; replays and out-of-order updates converge on the
// provider's latest state. Unknown event types are acknowledged and dropped.
func (s *Service) HandleEvent(ctx context.Context, event *billing.Event) error {
	ctx, span := s.tracer.Start(ctx, "subscription.Service.HandleEvent")
	defer span.End()

	switch event.Type {
	case billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated:
		return s.handleSubscriptionUpsert(ctx, event)
	case billing.EventSubscriptionDeleted:
		return s.handleSubscriptionDeleted(ctx, event)
	case billing.EventCheckoutCompleted:
		return s.handleCheckoutCompleted(ctx, event)
	default:
		s.logger.Debugf("ignored webhook event type %s", event.Type)
		return nil
	}
}

// handleCheckoutCompleted records the subscription the moment checkout
// finishes. The session only carries the external ids, so the row starts as a
// skeleton; the customer.subscription.* events that follow fill in plan,
// status and period end, keyed on the same provider subscription id.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event *billing.Event) error {
	var obj billing.SessionObject
	if err := json.Unmarshal(event.Data.Object, &obj); err != nil {
		return fmt.Errorf("failed to decode session object: %w", err)
	}

	if obj.Subscription == "" {
		// Payment-mode sessions carry no subscription to track.
		s.logger.Debugf("checkout session %s completed without a subscription", obj.ID)
		return nil
	}
	if obj.ClientReferenceID == "" {
		return fmt.Errorf("checkout session %s carries no client reference", obj.ID)
	}

	_, err := s.storage.GetSubscriptionByProviderID(ctx, obj.Subscription)
	if err == nil {
		// The subscription event got here first and knows more than the
		// session does.
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to look up subscription: %w", err)
	}

	_, err = s.storage.UpsertSubscription(ctx, &types.Subscription{
		OwnerID:                obj.ClientReferenceID,
		Status:                 types.SubscriptionActive,
		ProviderCustomerID:     obj.Customer,
		ProviderSubscriptionID: obj.Subscription,
	})
	if err != nil {
		return fmt.Errorf("failed to record checkout subscription: %w", err)
	}

	return nil
}

func (s *Service) handleSubscriptionUpsert(ctx context.Context, event *billing.Event) error {
	var obj billing.SubscriptionObject
	if err := json.Unmarshal(event.Data.Object, &obj); err != nil {
		return fmt.Errorf("failed to decode subscription object: %w", err)
	}

	ownerID := obj.Metadata["owner_id"]
	if ownerID == "" {
		return fmt.Errorf("subscription %s carries no owner metadata", obj.ID)
	}

	plan, ok := s.priceToPlan[obj.PriceID()]
	if !ok {
		s.logger.Warnf("subscription %s has unmapped price %q", obj.ID, obj.PriceID())
		plan = types.PlanBasic
	}

	_, err := s.storage.UpsertSubscription(ctx, &types.Subscription{
		OwnerID:                ownerID,
		Plan:                   plan,
		Status:                 obj.Status,
		ProviderCustomerID:     obj.Customer,
		ProviderSubscriptionID: obj.ID,
		PriceID:                obj.PriceID(),
		CurrentPeriodEnd:       time.Unix(obj.CurrentPeriodEnd, 0).UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, event *billing.Event) error {
	var obj billing.SubscriptionObject
	if err := json.Unmarshal(event.Data.Object, &obj); err != nil {
		return fmt.Errorf("failed to decode subscription object: %w", err)
	}

	err := s.storage.UpdateSubscriptionStatusByProviderID(ctx, obj.ID, types.SubscriptionCanceled)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// A cancel for a subscription we never recorded is not worth
			// failing the delivery over.
			s.logger.Warnf("cancel for unknown subscription %s", obj.ID)
			return nil
		}
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	return nil
}
