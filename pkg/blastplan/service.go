// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package blastplan manages the blast plans drilling reports execute against.
package blastplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// ErrReportsLinked guards deletion: a plan with reports filed against it is
// operational history and cannot be removed.
var ErrReportsLinked = errors.New("blast plan has linked reports")

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

func (s *Service) CreateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "blastplan.Service.CreateBlastPlan")
	defer span.End()

	if b.Status == "" {
		b.Status = types.BlastPlanOpen
	}

	created, err := s.storage.CreateBlastPlan(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create blast plan: %w", err)
	}

	return created, nil
}

func (s *Service) GetBlastPlan(ctx context.Context, ownerID, id string) (*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "blastplan.Service.GetBlastPlan")
	defer span.End()

	return s.storage.GetBlastPlanByID(ctx, ownerID, id)
}

func (s *Service) ListBlastPlans(ctx context.Context, ownerID string) ([]*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "blastplan.Service.ListBlastPlans")
	defer span.End()

	return s.storage.ListBlastPlans(ctx, ownerID)
}

func (s *Service) ListLinkedReports(ctx context.Context, ownerID, id string) ([]*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "blastplan.Service.ListLinkedReports")
	defer span.End()

	return s.storage.ListReportsByBlastPlan(ctx, ownerID, id)
}

func (s *Service) UpdateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "blastplan.Service.UpdateBlastPlan")
	defer span.End()

	if err := s.storage.UpdateBlastPlan(ctx, b); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetBlastPlanByID(ctx, b.OwnerID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated blast plan: %w", err)
	}

	return updated, nil
}

// DeleteBlastPlan refuses to delete a plan that reports reference. The count
// and the delete share the request transaction, so a report filed in between
// cannot slip through.
func (s *Service) DeleteBlastPlan(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "blastplan.Service.DeleteBlastPlan")
	defer span.End()

	if _, err := s.storage.GetBlastPlanByID(ctx, ownerID, id); err != nil {
		return err
	}

	linked, err := s.storage.CountReportsByBlastPlan(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to count linked reports: %w", err)
	}
	if linked > 0 {
		return ErrReportsLinked
	}

	return s.storage.DeleteBlastPlan(ctx, ownerID, id)
}
