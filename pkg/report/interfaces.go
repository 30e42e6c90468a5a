// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package report

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/inventory"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, error)
	GetReportByID(ctx context.Context, ownerID, id string) (*types.DrillingReport, error)
	ListReports(ctx context.Context, ownerID string) ([]*types.DrillingReport, error)
	ListReportsByProject(ctx context.Context, ownerID, projectID string) ([]*types.DrillingReport, error)
	UpdateReport(ctx context.Context, r *types.DrillingReport) error
	SetReportStatus(ctx context.Context, ownerID, id, status string) error
	DeleteReport(ctx context.Context, ownerID, id string) error
	NextReportNumber(ctx context.Context, ownerID string) (int64, error)
}

// DeducterInterface is how report submission reaches the stock.
type DeducterInterface interface {
	DeductSupplies(ctx context.Context, ownerID string, supplies []types.ReportSupply) []inventory.Warning
}

type ServiceInterface interface {
	CreateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, []inventory.Warning, error)
	GetReport(ctx context.Context, ownerID, id string) (*types.DrillingReport, error)
	ListReports(ctx context.Context, ownerID, projectID string) ([]*types.DrillingReport, error)
	UpdateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, error)
	SetStatus(ctx context.Context, ownerID, id, status string) error
	DeleteReport(ctx context.Context, ownerID, id string) error
}
