// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/billing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package subscription -destination ./mock_subscription.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package subscription -destination ./mock_billing.go -source=../../internal/billing/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockClientInterface, *MockKratosClientInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockBilling := NewMockClientInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)

	config := Config{
		PriceIDs: map[string]string{
			types.PlanBasic: "price_basic",
			types.PlanPro:   "price_pro",
		},
		SuccessURL: "https://app.example.com/billing/success",
		CancelURL:  "https://app.example.com/billing/cancel",
		ReturnURL:  "https://app.example.com/billing",
	}

	s := NewService(mockStorage, mockBilling, mockKratos, config, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockBilling, mockKratos
}

func subscriptionEvent(t *testing.T, eventType string, obj map[string]any) *billing.Event {
	t.Helper()

	raw, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("failed to marshal object: %v", err)
	}

	event := &billing.Event{ID: "evt_1", Type: eventType}
	event.Data.Object = raw
	return event
}

func TestService_CreateCheckout(t *testing.T) {
	ownerID := "owner-123"

	t.Run("opens a session for a known plan", func(t *testing.T) {
		s, _, mockBilling, mockKratos := newTestService(t)

		mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
			Return(&types.Identity{ID: ownerID, Email: "owner@example.com"}, nil)
		mockBilling.EXPECT().CreateCheckoutSession(gomock.Any(), billing.CheckoutParams{
			ClientReferenceID: ownerID,
			CustomerEmail:     "owner@example.com",
			PriceID:           "price_pro",
			SuccessURL:        "https://app.example.com/billing/success",
			CancelURL:         "https://app.example.com/billing/cancel",
		}).Return(&billing.CheckoutSession{URL: "https://pay.example.com/cs_1"}, nil)

		url, err := s.CreateCheckout(context.Background(), ownerID, types.PlanPro)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://pay.example.com/cs_1" {
			t.Errorf("unexpected checkout url %q", url)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		s, _, _, _ := newTestService(t)

		_, err := s.CreateCheckout(context.Background(), ownerID, "gold")
		if !errors.Is(err, ErrUnknownPlan) {
			t.Errorf("expected %v, got %v", ErrUnknownPlan, err)
		}
	})
}

func TestService_CreatePortal(t *testing.T) {
	ownerID := "owner-123"

	t.Run("opens the portal for the stored customer", func(t *testing.T) {
		s, mockStorage, mockBilling, _ := newTestService(t)

		mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
			Return(&types.Subscription{OwnerID: ownerID, ProviderCustomerID: "cus_1"}, nil)
		mockBilling.EXPECT().CreatePortalSession(gomock.Any(), "cus_1", "https://app.example.com/billing").
			Return(&billing.PortalSession{URL: "https://pay.example.com/portal_1"}, nil)

		url, err := s.CreatePortal(context.Background(), ownerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://pay.example.com/portal_1" {
			t.Errorf("unexpected portal url %q", url)
		}
	})

	t.Run("tenant never checked out", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
			Return(nil, storage.ErrNotFound)

		_, err := s.CreatePortal(context.Background(), ownerID)
		if !errors.Is(err, ErrNoSubscription) {
			t.Errorf("expected %v, got %v", ErrNoSubscription, err)
		}
	})
}

func TestService_HandleEvent(t *testing.T) {
	t.Run("subscription created upserts with the mapped plan", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventSubscriptionCreated, map[string]any{
			"id":                 "sub_1",
			"customer":           "cus_1",
			"status":             types.SubscriptionActive,
			"current_period_end": 1767225600,
			"items":              map[string]any{"data": []map[string]any{{"price": map[string]any{"id": "price_pro"}}}},
			"metadata":           map[string]string{"owner_id": "owner-123"},
		})

		mockStorage.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *types.Subscription) (*types.Subscription, error) {
				if sub.OwnerID != "owner-123" || sub.Plan != types.PlanPro {
					t.Errorf("unexpected subscription: %+v", sub)
				}
				if sub.ProviderSubscriptionID != "sub_1" || sub.ProviderCustomerID != "cus_1" {
					t.Errorf("unexpected provider ids: %+v", sub)
				}
				if !sub.CurrentPeriodEnd.Equal(time.Unix(1767225600, 0).UTC()) {
					t.Errorf("unexpected period end: %v", sub.CurrentPeriodEnd)
				}
				return sub, nil
			})

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unmapped price falls back to basic", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventSubscriptionUpdated, map[string]any{
			"id":       "sub_1",
			"status":   types.SubscriptionActive,
			"items":    map[string]any{"data": []map[string]any{{"price": map[string]any{"id": "price_legacy"}}}},
			"metadata": map[string]string{"owner_id": "owner-123"},
		})

		mockStorage.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *types.Subscription) (*types.Subscription, error) {
				if sub.Plan != types.PlanBasic {
					t.Errorf("expected plan %q, got %q", types.PlanBasic, sub.Plan)
				}
				return sub, nil
			})

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing owner metadata fails the delivery", func(t *testing.T) {
		s, _, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventSubscriptionCreated, map[string]any{
			"id":     "sub_1",
			"status": types.SubscriptionActive,
		})

		if err := s.HandleEvent(context.Background(), event); err == nil {
			t.Error("expected error but got none")
		}
	})

	t.Run("subscription deleted marks it canceled", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventSubscriptionDeleted, map[string]any{"id": "sub_1"})

		mockStorage.EXPECT().UpdateSubscriptionStatusByProviderID(gomock.Any(), "sub_1", types.SubscriptionCanceled).
			Return(nil)

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancel for an unknown subscription is tolerated", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventSubscriptionDeleted, map[string]any{"id": "sub_gone"})

		mockStorage.EXPECT().UpdateSubscriptionStatusByProviderID(gomock.Any(), "sub_gone", types.SubscriptionCanceled).
			Return(storage.ErrNotFound)

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checkout completed records a skeleton subscription", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventCheckoutCompleted, map[string]any{
			"id":                  "cs_1",
			"customer":            "cus_1",
			"subscription":        "sub_1",
			"client_reference_id": "owner-123",
		})

		mockStorage.EXPECT().GetSubscriptionByProviderID(gomock.Any(), "sub_1").
			Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().UpsertSubscription(gomock.Any(), &types.Subscription{
			OwnerID:                "owner-123",
			Status:                 types.SubscriptionActive,
			ProviderCustomerID:     "cus_1",
			ProviderSubscriptionID: "sub_1",
		}).Return(&types.Subscription{}, nil)

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checkout completed after the subscription sync is a no-op", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventCheckoutCompleted, map[string]any{
			"id":                  "cs_1",
			"customer":            "cus_1",
			"subscription":        "sub_1",
			"client_reference_id": "owner-123",
		})

		mockStorage.EXPECT().GetSubscriptionByProviderID(gomock.Any(), "sub_1").
			Return(&types.Subscription{ProviderSubscriptionID: "sub_1", Plan: types.PlanPro}, nil)

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checkout completed without a subscription is acknowledged", func(t *testing.T) {
		s, _, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventCheckoutCompleted, map[string]any{"id": "cs_1"})

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("checkout completed without a client reference fails", func(t *testing.T) {
		s, _, _, _ := newTestService(t)

		event := subscriptionEvent(t, billing.EventCheckoutCompleted, map[string]any{
			"id":           "cs_1",
			"subscription": "sub_1",
		})

		if err := s.HandleEvent(context.Background(), event); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unknown event types are dropped", func(t *testing.T) {
		s, _, _, _ := newTestService(t)

		event := subscriptionEvent(t, "invoice.paid", map[string]any{"id": "in_1"})

		if err := s.HandleEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
