// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

const maintenanceColumns = "id, owner_id, equipment_id, type, status, hour_meter, cost, date, description, created_at"

func scanMaintenanceEvent(row sq.RowScanner) (*types.MaintenanceEvent, error) {
	var m types.MaintenanceEvent
	err := row.Scan(&m.ID, &m.OwnerID, &m.EquipmentID, &m.Type, &m.Status, &m.HourMeter, &m.Cost, &m.Date, &m.Description, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMaintenanceEvent")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("maintenance_events").
		Columns("id", "owner_id", "equipment_id", "type", "status", "hour_meter", "cost", "date", "description").
		Values(id, m.OwnerID, m.EquipmentID, m.Type, m.Status, m.HourMeter, m.Cost, m.Date, m.Description).
		Suffix("RETURNING " + maintenanceColumns).
		QueryRowContext(ctx)

	created, err := scanMaintenanceEvent(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert maintenance event: %w", err)
	}

	return created, nil
}

func (s *Storage) GetMaintenanceEventByID(ctx context.Context, ownerID, id string) (*types.MaintenanceEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMaintenanceEventByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(maintenanceColumns).
		From("maintenance_events").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	m, err := scanMaintenanceEvent(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get maintenance event: %w", err)
	}

	return m, nil
}

func (s *Storage) ListMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) ([]*types.MaintenanceEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMaintenanceEvents")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(maintenanceColumns).
		From("maintenance_events").
		Where(sq.Eq{"owner_id": ownerID, "equipment_id": equipmentID}).
		OrderBy("date DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance events: %w", err)
	}
	defer rows.Close()

	var events []*types.MaintenanceEvent
	for rows.Next() {
		m, err := scanMaintenanceEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance event: %w", err)
		}
		events = append(events, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMaintenanceEvent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("maintenance_events").
		SetMap(map[string]interface{}{
			"type":        m.Type,
			"status":      m.Status,
			"hour_meter":  m.HourMeter,
			"cost":        m.Cost,
			"date":        m.Date,
			"description": m.Description,
		}).
		Where(sq.Eq{"id": m.ID, "owner_id": m.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update maintenance event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteMaintenanceEvent(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMaintenanceEvent")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("maintenance_events").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete maintenance event: %w", err)
	}
	return nil
}

// CountOpenMaintenanceEvents counts IN_PROGRESS corrective/revision events for
// one equipment. The equipment status derivation depends on this being exact.
func (s *Storage) CountOpenMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountOpenMaintenanceEvents")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("maintenance_events").
		Where(sq.Eq{
			"owner_id":     ownerID,
			"equipment_id": equipmentID,
			"status":       types.MaintenanceInProgress,
			"type":         []string{types.MaintenanceCorrective, types.MaintenanceRevision},
		}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open maintenance events: %w", err)
	}

	return count, nil
}
