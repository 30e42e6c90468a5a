// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

const inventoryColumns = "id, owner_id, project_id, name, type, quantity, min_stock, unit, value, ca_code, created_at"

func scanInventoryItem(row sq.RowScanner) (*types.InventoryItem, error) {
	var i types.InventoryItem
	err := row.Scan(&i.ID, &i.OwnerID, &i.ProjectID, &i.Name, &i.Type, &i.Quantity, &i.MinStock, &i.Unit, &i.Value, &i.CACode, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInventoryItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInventoryItem")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("inventory_items").
		Columns("id", "owner_id", "project_id", "name", "type", "quantity", "min_stock", "unit", "value", "ca_code").
		Values(id, i.OwnerID, i.ProjectID, i.Name, i.Type, i.Quantity, i.MinStock, i.Unit, i.Value, i.CACode).
		Suffix("RETURNING " + inventoryColumns).
		QueryRowContext(ctx)

	created, err := scanInventoryItem(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert inventory item: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInventoryItemByID(ctx context.Context, ownerID, id string) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInventoryItemByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(inventoryColumns).
		From("inventory_items").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	i, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return i, nil
}

func (s *Storage) listInventoryItems(ctx context.Context, pred sq.Sqlizer) ([]*types.InventoryItem, error) {
	rows, err := s.db.Statement(ctx).
		Select(inventoryColumns).
		From("inventory_items").
		Where(pred).
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []*types.InventoryItem
	for rows.Next() {
		i, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (s *Storage) ListInventoryItems(ctx context.Context, ownerID string) ([]*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInventoryItems")
	defer span.End()

	return s.listInventoryItems(ctx, sq.Eq{"owner_id": ownerID})
}

func (s *Storage) ListInventoryItemsByProject(ctx context.Context, ownerID, projectID string) ([]*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInventoryItemsByProject")
	defer span.End()

	return s.listInventoryItems(ctx, sq.Eq{"owner_id": ownerID, "project_id": projectID})
}

// ListLowStockItems returns items at or below their minimum threshold.
func (s *Storage) ListLowStockItems(ctx context.Context, ownerID string) ([]*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLowStockItems")
	defer span.End()

	return s.listInventoryItems(ctx, sq.And{
		sq.Eq{"owner_id": ownerID},
		sq.Expr("quantity <= min_stock"),
	})
}

func (s *Storage) CountLowStockItems(ctx context.Context, ownerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLowStockItems")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("inventory_items").
		Where(sq.And{
			sq.Eq{"owner_id": ownerID},
			sq.Expr("quantity <= min_stock"),
		}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count low stock items: %w", err)
	}

	return count, nil
}

// FindInventoryItemByName does a case-insensitive exact match on item name
// within the tenant scope.
func (s *Storage) FindInventoryItemByName(ctx context.Context, ownerID, name string) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindInventoryItemByName")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(inventoryColumns).
		From("inventory_items").
		Where(sq.And{
			sq.Eq{"owner_id": ownerID},
			sq.Expr("LOWER(name) = LOWER(?)", name),
		}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	i, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find inventory item by name: %w", err)
	}

	return i, nil
}

// FindInventoryItemByPrefix does a case-insensitive prefix match, used as the
// fallback after stripping parenthetical unit suffixes from supply names.
func (s *Storage) FindInventoryItemByPrefix(ctx context.Context, ownerID, prefix string) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindInventoryItemByPrefix")
	defer span.End()

	pattern := escapeLike(prefix) + "%"
	row := s.db.Statement(ctx).
		Select(inventoryColumns).
		From("inventory_items").
		Where(sq.And{
			sq.Eq{"owner_id": ownerID},
			sq.Expr("name ILIKE ?", pattern),
		}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	i, err := scanInventoryItem(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find inventory item by prefix: %w", err)
	}

	return i, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (s *Storage) UpdateInventoryItem(ctx context.Context, i *types.InventoryItem) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInventoryItem")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("inventory_items").
		SetMap(map[string]interface{}{
			"name":      i.Name,
			"type":      i.Type,
			"quantity":  i.Quantity,
			"min_stock": i.MinStock,
			"unit":      i.Unit,
			"value":     i.Value,
			"ca_code":   i.CACode,
		}).
		Where(sq.Eq{"id": i.ID, "owner_id": i.OwnerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
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

// SetInventoryQuantity writes only the quantity column.
func (s *Storage) SetInventoryQuantity(ctx context.Context, ownerID, id string, quantity float64) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetInventoryQuantity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("inventory_items").
		Set("quantity", quantity).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set inventory quantity: %w", err)
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

func (s *Storage) DeleteInventoryItem(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInventoryItem")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("inventory_items").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (s *Storage) CreateEpiIssue(ctx context.Context, e *types.EpiIssue) (*types.EpiIssue, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEpiIssue")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.EpiIssue
	err = s.db.Statement(ctx).
		Insert("epi_issues").
		Columns("id", "owner_id", "inventory_item_id", "team_member_id", "quantity", "issued_at").
		Values(id, e.OwnerID, e.InventoryItemID, e.TeamMemberID, e.Quantity, e.IssuedAt).
		Suffix("RETURNING id, owner_id, inventory_item_id, team_member_id, quantity, issued_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OwnerID, &created.InventoryItemID, &created.TeamMemberID, &created.Quantity, &created.IssuedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert epi issue: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListEpiIssues(ctx context.Context, ownerID string) ([]*types.EpiIssue, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEpiIssues")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "owner_id", "inventory_item_id", "team_member_id", "quantity", "issued_at").
		From("epi_issues").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("issued_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list epi issues: %w", err)
	}
	defer rows.Close()

	var issues []*types.EpiIssue
	for rows.Next() {
		var e types.EpiIssue
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.InventoryItemID, &e.TeamMemberID, &e.Quantity, &e.IssuedAt); err != nil {
			return nil, fmt.Errorf("failed to scan epi issue: %w", err)
		}
		issues = append(issues, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return issues, nil
}
