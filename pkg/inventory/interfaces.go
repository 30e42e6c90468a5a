// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package inventory

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateInventoryItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error)
	GetInventoryItemByID(ctx context.Context, ownerID, id string) (*types.InventoryItem, error)
	ListInventoryItems(ctx context.Context, ownerID string) ([]*types.InventoryItem, error)
	ListInventoryItemsByProject(ctx context.Context, ownerID, projectID string) ([]*types.InventoryItem, error)
	ListLowStockItems(ctx context.Context, ownerID string) ([]*types.InventoryItem, error)
	FindInventoryItemByName(ctx context.Context, ownerID, name string) (*types.InventoryItem, error)
	FindInventoryItemByPrefix(ctx context.Context, ownerID, prefix string) (*types.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, i *types.InventoryItem) error
	SetInventoryQuantity(ctx context.Context, ownerID, id string, quantity float64) error
	DeleteInventoryItem(ctx context.Context, ownerID, id string) error
	CreateEpiIssue(ctx context.Context, e *types.EpiIssue) (*types.EpiIssue, error)
	ListEpiIssues(ctx context.Context, ownerID string) ([]*types.EpiIssue, error)
}

type ServiceInterface interface {
	CreateItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error)
	GetItem(ctx context.Context, ownerID, id string) (*types.InventoryItem, error)
	ListItems(ctx context.Context, ownerID, projectID string) ([]*types.InventoryItem, error)
	ListLowStock(ctx context.Context, ownerID string) ([]*types.InventoryItem, error)
	UpdateItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error)
	DeleteItem(ctx context.Context, ownerID, id string) error

	DeductSupplies(ctx context.Context, ownerID string, supplies []types.ReportSupply) []Warning
	IssueEPI(ctx context.Context, issue *types.EpiIssue) (*types.EpiIssue, error)
	ListEpiIssues(ctx context.Context, ownerID string) ([]*types.EpiIssue, error)
	Transfer(ctx context.Context, ownerID, itemID, targetProjectID string, quantity float64) error
}
