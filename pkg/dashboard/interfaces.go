// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import "context"

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CountProjects(ctx context.Context, ownerID string) (int, error)
	CountEquipmentByStatus(ctx context.Context, ownerID, status string) (int, error)
	CountReportsByStatus(ctx context.Context, ownerID, status string) (int, error)
	CountLowStockItems(ctx context.Context, ownerID string) (int, error)
}

type ServiceInterface interface {
	GetSummary(ctx context.Context, ownerID string) (*Summary, error)
}
