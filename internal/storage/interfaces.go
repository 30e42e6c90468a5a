// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, ownerID, id string) (*types.Project, error)
	ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project) error
	DeleteProject(ctx context.Context, ownerID, id string) error
	CountProjects(ctx context.Context, ownerID string) (int, error)

	CreateEquipment(ctx context.Context, e *types.Equipment) (*types.Equipment, error)
	GetEquipmentByID(ctx context.Context, ownerID, id string) (*types.Equipment, error)
	ListEquipment(ctx context.Context, ownerID string) ([]*types.Equipment, error)
	UpdateEquipment(ctx context.Context, e *types.Equipment) error
	SetEquipmentStatus(ctx context.Context, ownerID, id, status string) error
	DeleteEquipment(ctx context.Context, ownerID, id string) error
	CountEquipment(ctx context.Context, ownerID string) (int, error)
	CountEquipmentByStatus(ctx context.Context, ownerID, status string) (int, error)

	CreateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) (*types.MaintenanceEvent, error)
	GetMaintenanceEventByID(ctx context.Context, ownerID, id string) (*types.MaintenanceEvent, error)
	ListMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) ([]*types.MaintenanceEvent, error)
	UpdateMaintenanceEvent(ctx context.Context, m *types.MaintenanceEvent) error
	DeleteMaintenanceEvent(ctx context.Context, ownerID, id string) error
	CountOpenMaintenanceEvents(ctx context.Context, ownerID, equipmentID string) (int, error)

	CreateTeamMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, ownerID, id string) (*types.TeamMember, error)
	ListTeamMembers(ctx context.Context, ownerID string) ([]*types.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *types.TeamMember) error
	SetTeamMemberIdentity(ctx context.Context, ownerID, id, identityID string) error
	DeleteTeamMember(ctx context.Context, ownerID, id string) error

	CreateInventoryItem(ctx context.Context, i *types.InventoryItem) (*types.InventoryItem, error)
	GetInventoryItemByID(ctx context.Context, ownerID, id string) (*types.InventoryItem, error)
	ListInventoryItems(ctx context.Context, ownerID string) ([]*types.InventoryItem, error)
	ListInventoryItemsByProject(ctx context.Context, ownerID, projectID string) ([]*types.InventoryItem, error)
	ListLowStockItems(ctx context.Context, ownerID string) ([]*types.InventoryItem, error)
	CountLowStockItems(ctx context.Context, ownerID string) (int, error)
	FindInventoryItemByName(ctx context.Context, ownerID, name string) (*types.InventoryItem, error)
	FindInventoryItemByPrefix(ctx context.Context, ownerID, prefix string) (*types.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, i *types.InventoryItem) error
	SetInventoryQuantity(ctx context.Context, ownerID, id string, quantity float64) error
	DeleteInventoryItem(ctx context.Context, ownerID, id string) error
	CreateEpiIssue(ctx context.Context, e *types.EpiIssue) (*types.EpiIssue, error)
	ListEpiIssues(ctx context.Context, ownerID string) ([]*types.EpiIssue, error)

	CreateReport(ctx context.Context, r *types.DrillingReport) (*types.DrillingReport, error)
	GetReportByID(ctx context.Context, ownerID, id string) (*types.DrillingReport, error)
	ListReports(ctx context.Context, ownerID string) ([]*types.DrillingReport, error)
	ListReportsByProject(ctx context.Context, ownerID, projectID string) ([]*types.DrillingReport, error)
	ListReportsByBlastPlan(ctx context.Context, ownerID, blastPlanID string) ([]*types.DrillingReport, error)
	UpdateReport(ctx context.Context, r *types.DrillingReport) error
	SetReportStatus(ctx context.Context, ownerID, id, status string) error
	DeleteReport(ctx context.Context, ownerID, id string) error
	NextReportNumber(ctx context.Context, ownerID string) (int64, error)
	CountReportsByStatus(ctx context.Context, ownerID, status string) (int, error)
	CountReportsByBlastPlan(ctx context.Context, ownerID, blastPlanID string) (int, error)

	CreateBlastPlan(ctx context.Context, b *types.BlastPlan) (*types.BlastPlan, error)
	GetBlastPlanByID(ctx context.Context, ownerID, id string) (*types.BlastPlan, error)
	ListBlastPlans(ctx context.Context, ownerID string) ([]*types.BlastPlan, error)
	UpdateBlastPlan(ctx context.Context, b *types.BlastPlan) error
	DeleteBlastPlan(ctx context.Context, ownerID, id string) error

	GetSubscriptionByOwnerID(ctx context.Context, ownerID string) (*types.Subscription, error)
	GetSubscriptionByProviderID(ctx context.Context, providerSubscriptionID string) (*types.Subscription, error)
	UpsertSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error)
	UpdateSubscriptionStatusByProviderID(ctx context.Context, providerSubscriptionID, status string) error
}
