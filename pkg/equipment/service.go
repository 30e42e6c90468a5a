// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package equipment manages the drill fleet and its maintenance history.
package equipment

import (
	"context"
	"fmt"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
)

type Service struct {
	storage StorageInterface
	limits  LimitCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	limits LimitCheckerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		limits:  limits,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.CreateEquipment")
	defer span.End()

	if err := s.limits.CanCreate(ctx, e.OwnerID, access.ResourceEquipment); err != nil {
		return nil, err
	}

	if e.Status == "" {
		e.Status = types.EquipmentOperational
	}

	created, err := s.storage.CreateEquipment(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return created, nil
}

func (s *Service) GetEquipment(ctx context.Context, ownerID, id string) (*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.GetEquipment")
	defer span.End()

	return s.storage.GetEquipmentByID(ctx, ownerID, id)
}

func (s *Service) ListEquipment(ctx context.Context, ownerID string) ([]*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.ListEquipment")
	defer span.End()

	return s.storage.ListEquipment(ctx, ownerID)
}

// UpdateEquipment writes the full row but never lets a manual edit pull an
// equipment out of Manutenção while corrective work is still open.
func (s *Service) UpdateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.UpdateEquipment")
	defer span.End()

	open, err := s.storage.CountOpenMaintenanceEvents(ctx, e.OwnerID, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count open maintenance events: %w", err)
	}
	if open > 0 {
		e.Status = types.EquipmentMaintenance
	}

	if err := s.storage.UpdateEquipment(ctx, e); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetEquipmentByID(ctx, e.OwnerID, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated equipment: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.DeleteEquipment")
	defer span.End()

	return s.storage.DeleteEquipment(ctx, ownerID, id)
}

func (s *Service) CreateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.CreateMaintenanceEvent")
	defer span.End()

	created, err := s.storage.CreateMaintenanceEvent(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance event: %w", err)
	}

	if err := s.syncEquipmentStatus(ctx, m.OwnerID, m.EquipmentID); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) ([]*types.MaintenanceEvent, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.ListMaintenanceEvents")
	defer span.End()

	return s.storage.ListMaintenanceEvents(ctx, ownerID, equipmentID)
}

func (s *Service) UpdateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error) {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.UpdateMaintenanceEvent")
	defer span.End()

	if err := s.storage.UpdateMaintenanceEvent(ctx, m); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetMaintenanceEventByID(ctx, m.OwnerID, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated maintenance event: %w", err)
	}

	if err := s.syncEquipmentStatus(ctx, updated.OwnerID, updated.EquipmentID); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteMaintenanceEvent(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "equipment.Service.DeleteMaintenanceEvent")
	defer span.End()

	event, err := s.storage.GetMaintenanceEventByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteMaintenanceEvent(ctx, ownerID, id); err != nil {
		return err
	}

	return s.syncEquipmentStatus(ctx, ownerID, event.EquipmentID)
}

// syncEquipmentStatus re-derives the equipment status from the open
// maintenance events. It runs inside the request transaction, so the event
// write and the status write land together.
func (s *Service) syncEquipmentStatus(ctx context.Context, ownerID, equipmentID string) error {
	open, err := s.storage.CountOpenMaintenanceEvents(ctx, ownerID, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to count open maintenance events: %w", err)
	}

	equipment, err := s.storage.GetEquipmentByID(ctx, ownerID, equipmentID)
	if err != nil {
		return err
	}

	next := DeriveStatus(equipment.Status, open)
	if next == equipment.Status {
		return nil
	}

	return s.storage.SetEquipmentStatus(ctx, ownerID, equipmentID, next)
}
