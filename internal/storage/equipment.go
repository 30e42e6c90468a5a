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

const equipmentColumns = "id, owner_id, name, type, status, hourmeter, maintenance_interval, ownership, acquisition_value, monthly_rental_cost, project_id, created_at"

func scanEquipment(row sq.RowScanner) (*types.Equipment, error) {
	var e types.Equipment
	err := row.Scan(&e.ID, &e.OwnerID, &e.Name, &e.Type, &e.Status, &e.Hourmeter, &e.MaintenanceInterval, &e.Ownership, &e.AcquisitionValue, &e.MonthlyRentalCost, &e.ProjectID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Storage) CreateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEquipment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("equipment").
		Columns("id", "owner_id", "name", "type", "status", "hourmeter", "maintenance_interval", "ownership", "acquisition_value", "monthly_rental_cost", "project_id").
		Values(id, e.OwnerID, e.Name, e.Type, e.Status, e.Hourmeter, e.MaintenanceInterval, e.Ownership, e.AcquisitionValue, e.MonthlyRentalCost, e.ProjectID).
		Suffix("RETURNING " + equipmentColumns).
		QueryRowContext(ctx)

	created, err := scanEquipment(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert equipment: %w", err)
	}

	return created, nil
}

func (s *Storage) GetEquipmentByID(ctx context.Context, ownerID, id string) (*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEquipmentByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(equipmentColumns).
		From("equipment").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	e, err := scanEquipment(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	return e, nil
}

func (s *Storage) ListEquipment(ctx context.Context, ownerID string) ([]*types.Equipment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEquipment")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(equipmentColumns).
		From("equipment").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var equipment []*types.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		equipment = append(equipment, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return equipment, nil
}

func (s *Storage) UpdateEquipment(ctx context.Context, e *types.Equipment) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateEquipment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("equipment").
		SetMap(map[string]interface{}{
			"name":                 e.Name,
			"type":                 e.Type,
			"status":               e.Status,
			"hourmeter":            e.Hourmeter,
			"maintenance_interval": e.MaintenanceInterval,
			"ownership":            e.Ownership,
			"acquisition_value":    e.AcquisitionValue,
			"monthly_rental_cost":  e.MonthlyRentalCost,
			"project_id":           e.ProjectID,
		}).
		Where(sq.Eq{"id": e.ID, "owner_id": e.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
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

// SetEquipmentStatus writes only the status column. It is the single write
// path the maintenance state machine uses.
func (s *Storage) SetEquipmentStatus(ctx context.Context, ownerID, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetEquipmentStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("equipment").
		Set("status", status).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set equipment status: %w", err)
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

func (s *Storage) DeleteEquipment(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEquipment")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("equipment").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}

// CountEquipment is an exact count of live equipment for plan-limit checks.
func (s *Storage) CountEquipment(ctx context.Context, ownerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountEquipment")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("equipment").
		Where(sq.Eq{"owner_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count equipment: %w", err)
	}

	return count, nil
}

func (s *Storage) CountEquipmentByStatus(ctx context.Context, ownerID, status string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountEquipmentByStatus")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("equipment").
		Where(sq.Eq{"owner_id": ownerID, "status": status}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count equipment by status: %w", err)
	}

	return count, nil
}
