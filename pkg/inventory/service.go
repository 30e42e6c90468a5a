// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package inventory manages the per-project stock: drilling consumables,
// tools, fuel and PPE. Consumable deductions driven by field reports are
// best-effort; PPE issuing and transfers are strict.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

var (
	// ErrInsufficientStock blocks strict mutations that would drive the
	// quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrNotEPI rejects PPE issues against non-PPE items.
	ErrNotEPI = errors.New("item is not an EPI")
)

// Warning describes a supply line the deduction pass could not fully apply.
type Warning struct {
	Supply string `json:"supply"`
	Reason string `json:"reason"`
}

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

func (s *Service) CreateItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.CreateItem")
	defer span.End()

	created, err := s.storage.CreateInventoryItem(ctx, i)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return created, nil
}

func (s *Service) GetItem(ctx context.Context, ownerID, id string) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.GetItem")
	defer span.End()

	return s.storage.GetInventoryItemByID(ctx, ownerID, id)
}

func (s *Service) ListItems(ctx context.Context, ownerID, projectID string) ([]*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListItems")
	defer span.End()

	if projectID != "" {
		return s.storage.ListInventoryItemsByProject(ctx, ownerID, projectID)
	}
	return s.storage.ListInventoryItems(ctx, ownerID)
}

func (s *Service) ListLowStock(ctx context.Context, ownerID string) ([]*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListLowStock")
	defer span.End()

	return s.storage.ListLowStockItems(ctx, ownerID)
}

func (s *Service) UpdateItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.UpdateItem")
	defer span.End()

	if err := s.storage.UpdateInventoryItem(ctx, i); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetInventoryItemByID(ctx, i.OwnerID, i.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated inventory item: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.DeleteItem")
	defer span.End()

	return s.storage.DeleteInventoryItem(ctx, ownerID, id)
}

// stripParenthetical drops a trailing parenthesized unit from a supply name,
// e.g. "Haste 1,5m (unidade)" becomes "Haste 1,5m". Field reports often carry
// the unit while the stock item does not.
func stripParenthetical(name string) string {
	open := strings.LastIndex(name, "(")
	if open <= 0 {
		return name
	}
	return strings.TrimSpace(name[:open])
}

// matchItem resolves a supply name against the stock: case-insensitive exact
// match first, then a prefix match on the name with any trailing
// parenthetical stripped.
func (s *Service) matchItem(ctx context.Context, ownerID, name string) (*types.InventoryItem, error) {
	item, err := s.storage.FindInventoryItemByName(ctx, ownerID, name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return s.storage.FindInventoryItemByPrefix(ctx, ownerID, stripParenthetical(name))
}

// DeductSupplies applies a report's consumables against the stock. Supplies
// that cannot be matched produce warnings instead of failing the report, and
// quantities may go negative: the field crew's usage is the source of truth,
// stock bookkeeping catches up later.
func (s *Service) DeductSupplies(ctx context.Context, ownerID string, supplies []types.ReportSupply) []Warning {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.DeductSupplies")
	defer span.End()

	var warnings []Warning
	for _, supply := range supplies {
		if supply.Quantity <= 0 {
			continue
		}

		item, err := s.matchItem(ctx, ownerID, supply.Type)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				warnings = append(warnings, Warning{Supply: supply.Type, Reason: "no matching stock item"})
				continue
			}
			s.logger.Errorf("failed to match supply %q: %v", supply.Type, err)
			warnings = append(warnings, Warning{Supply: supply.Type, Reason: "stock lookup failed"})
			continue
		}

		next := item.Quantity - supply.Quantity
		if err := s.storage.SetInventoryQuantity(ctx, ownerID, item.ID, next); err != nil {
			s.logger.Errorf("failed to deduct supply %q from item %s: %v", supply.Type, item.ID, err)
			warnings = append(warnings, Warning{Supply: supply.Type, Reason: "stock update failed"})
			continue
		}

		if next < 0 {
			s.logger.Warnf("stock for item %q went negative (%f) after report deduction", item.Name, next)
		}
	}

	return warnings
}

// IssueEPI hands PPE to a team member and decrements the stock. Unlike report
// deductions this is strict: the item must be PPE and must have enough stock.
// The surrounding request transaction keeps the issue record and the
// decrement atomic.
func (s *Service) IssueEPI(ctx context.Context, issue *types.EpiIssue) (*types.EpiIssue, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.IssueEPI")
	defer span.End()

	item, err := s.storage.GetInventoryItemByID(ctx, issue.OwnerID, issue.InventoryItemID)
	if err != nil {
		return nil, err
	}

	if item.Type != types.ItemEPI {
		return nil, ErrNotEPI
	}
	if item.Quantity < issue.Quantity {
		return nil, ErrInsufficientStock
	}

	if issue.IssuedAt.IsZero() {
		issue.IssuedAt = time.Now().UTC()
	}

	created, err := s.storage.CreateEpiIssue(ctx, issue)
	if err != nil {
		return nil, fmt.Errorf("failed to record EPI issue: %w", err)
	}

	if err := s.storage.SetInventoryQuantity(ctx, issue.OwnerID, item.ID, item.Quantity-issue.Quantity); err != nil {
		return nil, fmt.Errorf("failed to decrement EPI stock: %w", err)
	}

	return created, nil
}

func (s *Service) ListEpiIssues(ctx context.Context, ownerID string) ([]*types.EpiIssue, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.ListEpiIssues")
	defer span.End()

	return s.storage.ListEpiIssues(ctx, ownerID)
}

// Transfer moves quantity from one project's stock to another, creating the
// destination item if it does not exist yet. Strict: the source must cover
// the transferred amount.
func (s *Service) Transfer(ctx context.Context, ownerID, itemID, targetProjectID string, quantity float64) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Service.Transfer")
	defer span.End()

	if quantity <= 0 {
		return fmt.Errorf("transfer quantity must be positive")
	}

	source, err := s.storage.GetInventoryItemByID(ctx, ownerID, itemID)
	if err != nil {
		return err
	}
	if source.Quantity < quantity {
		return ErrInsufficientStock
	}

	items, err := s.storage.ListInventoryItemsByProject(ctx, ownerID, targetProjectID)
	if err != nil {
		return fmt.Errorf("failed to list destination stock: %w", err)
	}

	var dest *types.InventoryItem
	for _, item := range items {
		if strings.EqualFold(item.Name, source.Name) {
			dest = item
			break
		}
	}

	if dest == nil {
		_, err = s.storage.CreateInventoryItem(ctx, &types.InventoryItem{
			OwnerID:   ownerID,
			ProjectID: targetProjectID,
			Name:      source.Name,
			Type:      source.Type,
			Quantity:  quantity,
			MinStock:  source.MinStock,
			Unit:      source.Unit,
			Value:     source.Value,
			CACode:    source.CACode,
		})
		if err != nil {
			return fmt.Errorf("failed to create destination item: %w", err)
		}
	} else {
		if err := s.storage.SetInventoryQuantity(ctx, ownerID, dest.ID, dest.Quantity+quantity); err != nil {
			return fmt.Errorf("failed to increment destination stock: %w", err)
		}
	}

	if err := s.storage.SetInventoryQuantity(ctx, ownerID, source.ID, source.Quantity-quantity); err != nil {
		return fmt.Errorf("failed to decrement source stock: %w", err)
	}

	return nil
}
