// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, ownerID, id string) (*types.Project, error)
	ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project) error
	DeleteProject(ctx context.Context, ownerID, id string) error
}

// LimitCheckerInterface enforces the plan allowance before a create.
type LimitCheckerInterface interface {
	CanCreate(ctx context.Context, ownerID, resource string) error
}

type ServiceInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProject(ctx context.Context, ownerID, id string) (*types.Project, error)
	ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	DeleteProject(ctx context.Context, ownerID, id string) error
}
