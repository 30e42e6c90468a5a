// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

const reportColumns = "id, owner_id, project_id, blast_plan_id, report_number, date, drill_equipment_id, compressor_equipment_id, operator_id, helper_id, status, hourmeter_start, hourmeter_end, total_hours, total_meters, services, occurrences, supplies, created_at"

func scanReport(row sq.RowScanner) (*types.DrillingReport, error) {
	var r types.DrillingReport
	var services, occurrences, supplies []byte
	err := row.Scan(
		&r.ID, &r.OwnerID, &r.ProjectID, &r.BlastPlanID, &r.ReportNumber, &r.Date,
		&r.DrillEquipmentID, &r.CompressorID, &r.OperatorID, &r.HelperID, &r.Status,
		&r.HourmeterStart, &r.HourmeterEnd, &r.TotalHours, &r.TotalMeters,
		&services, &occurrences, &supplies, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(services, &r.Services); err != nil {
		return nil, fmt.Errorf("failed to decode services payload: %w", err)
	}
	if err := json.Unmarshal(occurrences, &r.Occurrences); err != nil {
		return nil, fmt.Errorf("failed to decode occurrences payload: %w", err)
	}
	if err := json.Unmarshal(supplies, &r.Supplies); err != nil {
		return nil, fmt.Errorf("failed to decode supplies payload: %w", err)
	}

	return &r, nil
}

func marshalReportPayloads(r *types.DrillingReport) (services, occurrences, supplies []byte, err error) {
	if r.Services == nil {
		r.Services = []types.ReportService{}
	}
	if r.Occurrences == nil {
		r.Occurrences = []types.ReportOccurrence{}
	}
	if r.Supplies == nil {
		r.Supplies = []types.ReportSupply{}
	}

	if services, err = json.Marshal(r.Services); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode services payload: %w", err)
	}
	if occurrences, err = json.Marshal(r.Occurrences); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode occurrences payload: %w", err)
	}
	if supplies, err = json.Marshal(r.Supplies); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode supplies payload: %w", err)
	}
	return services, occurrences, supplies, nil
}

func (s *Storage) CreateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateReport")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	services, occurrences, supplies, err := marshalReportPayloads(r)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("drilling_reports").
		Columns("id", "owner_id", "project_id", "blast_plan_id", "report_number", "date",
			"drill_equipment_id", "compressor_equipment_id", "operator_id", "helper_id", "status",
			"hourmeter_start", "hourmeter_end", "total_hours", "total_meters",
			"services", "occurrences", "supplies").
		Values(id, r.OwnerID, r.ProjectID, r.BlastPlanID, r.ReportNumber, r.Date,
			r.DrillEquipmentID, r.CompressorID, r.OperatorID, r.HelperID, r.Status,
			r.HourmeterStart, r.HourmeterEnd, r.TotalHours, r.TotalMeters,
			services, occurrences, supplies).
		Suffix("RETURNING " + reportColumns).
		QueryRowContext(ctx)

	created, err := scanReport(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	return created, nil
}

func (s *Storage) GetReportByID(ctx context.Context, ownerID, id string) (*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetReportByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(reportColumns).
		From("drilling_reports").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	r, err := scanReport(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return r, nil
}

func (s *Storage) listReports(ctx context.Context, pred sq.Sqlizer) ([]*types.DrillingReport, error) {
	rows, err := s.db.Statement(ctx).
		Select(reportColumns).
		From("drilling_reports").
		Where(pred).
		OrderBy("report_number DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*types.DrillingReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reports, nil
}

func (s *Storage) ListReports(ctx context.Context, ownerID string) ([]*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListReports")
	defer span.End()

	return s.listReports(ctx, sq.Eq{"owner_id": ownerID})
}

func (s *Storage) ListReportsByProject(ctx context.Context, ownerID, projectID string) ([]*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListReportsByProject")
	defer span.End()

	return s.listReports(ctx, sq.Eq{"owner_id": ownerID, "project_id": projectID})
}

func (s *Storage) ListReportsByBlastPlan(ctx context.Context, ownerID, blastPlanID string) ([]*types.DrillingReport, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListReportsByBlastPlan")
	defer span.End()

	return s.listReports(ctx, sq.Eq{"owner_id": ownerID, "blast_plan_id": blastPlanID})
}

func (s *Storage) UpdateReport(ctx context.Context, r *types.DrillingReport) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateReport")
	defer span.End()

	services, occurrences, supplies, err := marshalReportPayloads(r)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("drilling_reports").
		SetMap(map[string]interface{}{
			"project_id":              r.ProjectID,
			"blast_plan_id":           r.BlastPlanID,
			"date":                    r.Date,
			"drill_equipment_id":      r.DrillEquipmentID,
			"compressor_equipment_id": r.CompressorID,
			"operator_id":             r.OperatorID,
			"helper_id":               r.HelperID,
			"status":                  r.Status,
			"hourmeter_start":         r.HourmeterStart,
			"hourmeter_end":           r.HourmeterEnd,
			"total_hours":             r.TotalHours,
			"total_meters":            r.TotalMeters,
			"services":                services,
			"occurrences":             occurrences,
			"supplies":                supplies,
		}).
		Where(sq.Eq{"id": r.ID, "owner_id": r.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
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

func (s *Storage) SetReportStatus(ctx context.Context, ownerID, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetReportStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("drilling_reports").
		Set("status", status).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set report status: %w", err)
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

func (s *Storage) DeleteReport(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteReport")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("drilling_reports").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// NextReportNumber allocates the next chronological report number for the
// tenant. Under READ COMMITTED two concurrent submissions can both read the
// same maximum; the UNIQUE (owner_id, report_number) index rejects the loser,
// which surfaces as a conflict the client resubmits.
func (s *Storage) NextReportNumber(ctx context.Context, ownerID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.NextReportNumber")
	defer span.End()

	var next int64
	err := s.db.Statement(ctx).
		Select("COALESCE(MAX(report_number), 0) + 1").
		From("drilling_reports").
		Where(sq.Eq{"owner_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate report number: %w", err)
	}

	return next, nil
}

func (s *Storage) CountReportsByStatus(ctx context.Context, ownerID, status string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountReportsByStatus")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("drilling_reports").
		Where(sq.Eq{"owner_id": ownerID, "status": status}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}

	return count, nil
}

func (s *Storage) CountReportsByBlastPlan(ctx context.Context, ownerID, blastPlanID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountReportsByBlastPlan")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("drilling_reports").
		Where(sq.Eq{"owner_id": ownerID, "blast_plan_id": blastPlanID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports by blast plan: %w", err)
	}

	return count, nil
}
