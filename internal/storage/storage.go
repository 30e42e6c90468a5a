// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/matheuspuca/NoteDrill-sub001/internal/db"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

const projectColumns = "id, owner_id, name, status, address, volume_target, start_date, end_date, created_at"

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Status, &p.Address, &p.VolumeTarget, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("projects").
		Columns("id", "owner_id", "name", "status", "address", "volume_target", "start_date", "end_date").
		Values(id, p.OwnerID, p.Name, p.Status, p.Address, p.VolumeTarget, p.StartDate, p.EndDate).
		Suffix("RETURNING " + projectColumns).
		QueryRowContext(ctx)

	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return created, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, ownerID, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(projectColumns).
		From("projects").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (s *Storage) ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjects")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(projectColumns).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

func (s *Storage) UpdateProject(ctx context.Context, p *types.Project) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProject")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("projects").
		SetMap(map[string]interface{}{
			"name":          p.Name,
			"status":        p.Status,
			"address":       p.Address,
			"volume_target": p.VolumeTarget,
			"start_date":    p.StartDate,
			"end_date":      p.EndDate,
		}).
		Where(sq.Eq{"id": p.ID, "owner_id": p.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

func (s *Storage) DeleteProject(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("projects").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// CountProjects is an exact count of live projects for plan-limit checks.
func (s *Storage) CountProjects(ctx context.Context, ownerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountProjects")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}
