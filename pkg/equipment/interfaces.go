// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package equipment

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error)
	GetEquipmentByID(ctx context.Context, ownerID, id string) (*types.Equipment, error)
	ListEquipment(ctx context.Context, ownerID string) ([]*types.Equipment, error)
	UpdateEquipment(ctx context.Context, e *types.Equipment) error
	SetEquipmentStatus(ctx context.Context, ownerID, id, status string) error
	DeleteEquipment(ctx context.Context, ownerID, id string) error

	CreateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error)
	GetMaintenanceEventByID(ctx context.Context, ownerID, id string) (*types.MaintenanceEvent, error)
	ListMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) ([]*types.MaintenanceEvent, error)
	UpdateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) error
	DeleteMaintenanceEvent(ctx context.Context, ownerID, id string) error
	CountOpenMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) (int, error)
}

// LimitCheckerInterface enforces the plan allowance before a create.
type LimitCheckerInterface interface {
	CanCreate(ctx context.Context, ownerID, resource string) error
}

type ServiceInterface interface {
	CreateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error)
	GetEquipment(ctx context.Context, ownerID, id string) (*types.Equipment, error)
	ListEquipment(ctx context.Context, ownerID string) ([]*types.Equipment, error)
	UpdateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error)
	DeleteEquipment(ctx context.Context, ownerID, id string) error

	CreateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error)
	ListMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) ([]*types.MaintenanceEvent, error)
	UpdateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error)
	DeleteMaintenanceEvent(ctx context.Context, ownerID, id string) error
}
