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

const memberColumns = "id, owner_id, identity_id, name, role, status, email, phone, daily_rate, admission_date, created_at"

func scanTeamMember(row sq.RowScanner) (*types.TeamMember, error) {
	var m types.TeamMember
	err := row.Scan(&m.ID, &m.OwnerID, &m.IdentityID, &m.Name, &m.Role, &m.Status, &m.Email, &m.Phone, &m.DailyRate, &m.AdmissionDate, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateTeamMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeamMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("team_members").
		Columns("id", "owner_id", "identity_id", "name", "role", "status", "email", "phone", "daily_rate", "admission_date").
		Values(id, m.OwnerID, m.IdentityID, m.Name, m.Role, m.Status, m.Email, m.Phone, m.DailyRate, m.AdmissionDate).
		Suffix("RETURNING " + memberColumns).
		QueryRowContext(ctx)

	created, err := scanTeamMember(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert team member: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTeamMemberByID(ctx context.Context, ownerID, id string) (*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamMemberByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(memberColumns).
		From("team_members").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	m, err := scanTeamMember(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return m, nil
}

func (s *Storage) ListTeamMembers(ctx context.Context, ownerID string) ([]*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(memberColumns).
		From("team_members").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []*types.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) UpdateTeamMember(ctx context.Context, m *types.TeamMember) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("team_members").
		SetMap(map[string]interface{}{
			"name":           m.Name,
			"role":           m.Role,
			"status":         m.Status,
			"email":          m.Email,
			"phone":          m.Phone,
			"daily_rate":     m.DailyRate,
			"admission_date": m.AdmissionDate,
		}).
		Where(sq.Eq{"id": m.ID, "owner_id": m.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
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

// SetTeamMemberIdentity links the member row to a Kratos identity once the
// invitation has been accepted.
func (s *Storage) SetTeamMemberIdentity(ctx context.Context, ownerID, id, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTeamMemberIdentity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("team_members").
		Set("identity_id", identityID).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set team member identity: %w", err)
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

func (s *Storage) DeleteTeamMember(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTeamMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("team_members").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
