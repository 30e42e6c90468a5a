// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package blastplan

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error)
	GetBlastPlanByID(ctx context.Context, ownerID, id string) (*types.BlastPlan, error)
	ListBlastPlans(ctx context.Context, ownerID string) ([]*types.BlastPlan, error)
	UpdateBlastPlan(ctx context.Context, b *types.BlastPlan) error
	DeleteBlastPlan(ctx context.Context, ownerID, id string) error
	CountReportsByBlastPlan(ctx context.Context, ownerID, blastPlanID string) (int, error)
	ListReportsByBlastPlan(ctx context.Context, ownerID, blastPlanID string) ([]*types.DrillingReport, error)
}

type ServiceInterface interface {
	CreateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error)
	GetBlastPlan(ctx context.Context, ownerID, id string) (*types.BlastPlan, error)
	ListBlastPlans(ctx context.Context, ownerID string) ([]*types.BlastPlan, error)
	ListLinkedReports(ctx context.Context, ownerID, id string) ([]*types.DrillingReport, error)
	UpdateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error)
	DeleteBlastPlan(ctx context.Context, ownerID, id string) error
}
