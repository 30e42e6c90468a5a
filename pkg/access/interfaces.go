// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer the paywall needs.
type StorageInterface interface {
	GetSubscriptionByOwnerID(ctx context.Context, ownerID string) (*types.Subscription, error)
	CountProjects(ctx context.Context, ownerID string) (int, error)
	CountEquipment(ctx context.Context, ownerID string) (int, error)
}

// KratosClientInterface resolves the identity whose creation time anchors the
// trial window.
type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
}

type ServiceInterface interface {
	CheckAccess(ctx context.Context, ownerID string) (*Decision, error)
	CanCreate(ctx context.Context, ownerID, resource string) error
}
