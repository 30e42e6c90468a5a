// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package report manages the daily drilling reports (BDP) filed by field
// crews and their approval lifecycle.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/inventory"
)

// ErrInvalidStatus rejects lifecycle transitions to states the BDP flow does
// not know.
var ErrInvalidStatus = errors.New("invalid report status")

// ErrNumberConflict means a concurrent submission took the allocated report
// number. The unique violation aborted the request transaction, so the retry
// has to come from the client.
var ErrNumberConflict = errors.New("report number taken by a concurrent submission, resubmit")

type Service struct {
	storage  StorageInterface
	deducter DeducterInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	deducter DeducterInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		deducter: deducter,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateReport files a new BDP. The report number is allocated sequentially
// per tenant, the drilled-meters and worked-hours totals are derived from the
// payload, and the listed supplies are deducted from stock best-effort:
// deduction problems come back as warnings, never as a failed report.
func (s *Service) CreateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, []inventory.Warning, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.CreateReport")
	defer span.End()

	r.Status = types.ReportPending
	r.TotalMeters = types.TotalMeters(r.Services)
	r.TotalHours = r.HourmeterEnd - r.HourmeterStart
	if r.TotalHours < 0 {
		r.TotalHours = 0
	}

	number, err := s.storage.NextReportNumber(ctx, r.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	r.ReportNumber = number

	created, err := s.storage.CreateReport(ctx, r)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, nil, ErrNumberConflict
		}
		return nil, nil, fmt.Errorf("failed to create report: %w", err)
	}

	warnings := s.deducter.DeductSupplies(ctx, r.OwnerID, r.Supplies)

	return created, warnings, nil
}

func (s *Service) GetReport(ctx context.Context, ownerID, id string) (*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.GetReport")
	defer span.End()

	return s.storage.GetReportByID(ctx, ownerID, id)
}

func (s *Service) ListReports(ctx context.Context, ownerID, projectID string) ([]*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.ListReports")
	defer span.End()

	if projectID != "" {
		return s.storage.ListReportsByProject(ctx, ownerID, projectID)
	}
	return s.storage.ListReports(ctx, ownerID)
}

// UpdateReport revises a report's content. The approval status is preserved
// as stored: editing an approved report does not silently un-approve it, the
// reviewer re-evaluates through SetStatus.
func (s *Service) UpdateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "report.Service.UpdateReport")
	defer span.End()

	current, err := s.storage.GetReportByID(ctx, r.OwnerID, r.ID)
	if err != nil {
		return nil, err
	}

	r.ReportNumber = current.ReportNumber
	r.Status = current.Status
	r.TotalMeters = types.TotalMeters(r.Services)
	r.TotalHours = r.HourmeterEnd - r.HourmeterStart
	if r.TotalHours < 0 {
		r.TotalHours = 0
	}

	if err := s.storage.UpdateReport(ctx, r); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetReportByID(ctx, r.OwnerID, r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated report: %w", err)
	}

	return updated, nil
}

// SetStatus moves the report through the approval flow. Any of the three
// states can be set at any time, so a rejected report can be revised and
// re-approved.
func (s *Service) SetStatus(ctx context.Context, ownerID, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "report.Service.SetStatus")
	defer span.End()

	switch status {
	case types.ReportPending, types.ReportApproved, types.ReportRejected:
	default:
		return ErrInvalidStatus
	}

	return s.storage.SetReportStatus(ctx, ownerID, id, status)
}

func (s *Service) DeleteReport(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "report.Service.DeleteReport")
	defer span.End()

	return s.storage.DeleteReport(ctx, ownerID, id)
}
