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

const blastPlanColumns = "id, owner_id, project_id, name, date, status, hole_count, planned_meters, notes, created_at"

func scanBlastPlan(row sq.RowScanner) (*types.BlastPlan, error) {
	var b types.BlastPlan
	err := row.Scan(&b.ID, &b.OwnerID, &b.ProjectID, &b.Name, &b.Date, &b.Status, &b.HoleCount, &b.PlannedMeters, &b.Notes, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *Storage) CreateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBlastPlan")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("blast_plans").
		Columns("id", "owner_id", "project_id", "name", "date", "status", "hole_count", "planned_meters", "notes").
		Values(id, b.OwnerID, b.ProjectID, b.Name, b.Date, b.Status, b.HoleCount, b.PlannedMeters, b.Notes).
		Suffix("RETURNING " + blastPlanColumns).
		QueryRowContext(ctx)

	created, err := scanBlastPlan(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert blast plan: %w", err)
	}

	return created, nil
}

func (s *Storage) GetBlastPlanByID(ctx context.Context, ownerID, id string) (*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBlastPlanByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(blastPlanColumns).
		From("blast_plans").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	b, err := scanBlastPlan(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blast plan: %w", err)
	}

	return b, nil
}

func (s *Storage) ListBlastPlans(ctx context.Context, ownerID string) ([]*types.BlastPlan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBlastPlans")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(blastPlanColumns).
		From("blast_plans").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("date DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blast plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.BlastPlan
	for rows.Next() {
		b, err := scanBlastPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blast plan: %w", err)
		}
		plans = append(plans, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return plans, nil
}

func (s *Storage) UpdateBlastPlan(ctx context.Context, b *types.BlastPlan) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBlastPlan")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("blast_plans").
		SetMap(map[string]interface{}{
			"project_id":     b.ProjectID,
			"name":           b.Name,
			"date":           b.Date,
			"status":         b.Status,
			"hole_count":     b.HoleCount,
			"planned_meters": b.PlannedMeters,
			"notes":          b.Notes,
		}).
		Where(sq.Eq{"id": b.ID, "owner_id": b.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update blast plan: %w", err)
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

func (s *Storage) DeleteBlastPlan(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBlastPlan")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("blast_plans").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete blast plan: %w", err)
	}
	return nil
}
