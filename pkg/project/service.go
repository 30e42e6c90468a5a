// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package project manages the drilling projects (obras) a tenant operates.
package project

import (
	"context"
	"fmt"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
)

type Service struct {
	storage StorageInterface
	limits  LimitCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	limits LimitCheckerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		limits:  limits,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.CreateProject")
	defer span.End()

	if err := s.limits.CanCreate(ctx, p.OwnerID, access.ResourceProject); err != nil {
		return nil, err
	}

	if p.Status == "" {
		p.Status = types.ProjectPlanning
	}

	created, err := s.storage.CreateProject(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (s *Service) GetProject(ctx context.Context, ownerID, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.GetProject")
	defer span.End()

	return s.storage.GetProjectByID(ctx, ownerID, id)
}

func (s *Service) ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.ListProjects")
	defer span.End()

	return s.storage.ListProjects(ctx, ownerID)
}

func (s *Service) UpdateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.UpdateProject")
	defer span.End()

	if err := s.storage.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetProjectByID(ctx, p.OwnerID, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated project: %w", err)
	}

	return updated, nil
}

// DeleteProject removes the project. Equipment assignments, inventory,
// reports and blast plans scoped to it go with it via the schema's cascades.
func (s *Service) DeleteProject(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "project.Service.DeleteProject")
	defer span.End()

	return s.storage.DeleteProject(ctx, ownerID, id)
}
