// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package dashboard aggregates the per-tenant counters the landing page
// renders: what needs attention today, not historical analytics.
package dashboard

import (
	"context"
	"fmt"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// Summary is the headline counters for one tenant.
type Summary struct {
	Projects               int `json:"projects"`
	EquipmentInMaintenance int `json:"equipment_in_maintenance"`
	PendingReports         int `json:"pending_reports"`
	LowStockItems          int `json:"low_stock_items"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GetSummary(ctx context.Context, ownerID string) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.GetSummary")
	defer span.End()

	projects, err := s.storage.CountProjects(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	inMaintenance, err := s.storage.CountEquipmentByStatus(ctx, ownerID, types.EquipmentMaintenance)
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment in maintenance: %w", err)
	}

	pending, err := s.storage.CountReportsByStatus(ctx, ownerID, types.ReportPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending reports: %w", err)
	}

	lowStock, err := s.storage.CountLowStockItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock items: %w", err)
	}

	return &Summary{
		Projects:               projects,
		EquipmentInMaintenance: inMaintenance,
		PendingReports:         pending,
		LowStockItems:          lowStock,
	}, nil
}
