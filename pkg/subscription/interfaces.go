// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/billing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	GetSubscriptionByOwnerID(ctx context.Context, ownerID string) (*types.Subscription, error)
	GetSubscriptionByProviderID(ctx context.Context, providerSubscriptionID string) (*types.Subscription, error)
	UpsertSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error)
	UpdateSubscriptionStatusByProviderID(ctx context.Context, providerSubscriptionID, status string) error
}

// KratosClientInterface resolves the email checkout sessions are created for.
type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
}

type ServiceInterface interface {
	GetSubscription(ctx context.Context, ownerID string) (*types.Subscription, error)
	CreateCheckout(ctx context.Context, ownerID, plan string) (string, error)
	CreatePortal(ctx context.Context, ownerID string) (string, error)
	HandleEvent(ctx context.Context, event *billing.Event) error
}
