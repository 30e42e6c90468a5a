// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
)

//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_project.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockLimitCheckerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockLimits := NewMockLimitCheckerInterface(ctrl)

	s := NewService(mockStorage, mockLimits, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockLimits
}

func TestService_CreateProject(t *testing.T) {
	ownerID := "owner-123"

	t.Run("defaults the status to planning", func(t *testing.T) {
		s, mockStorage, mockLimits := newTestService(t)

		mockLimits.EXPECT().CanCreate(gomock.Any(), ownerID, access.ResourceProject).Return(nil)
		mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *types.Project) (*types.Project, error) {
				if p.Status != types.ProjectPlanning {
					t.Errorf("expected status %q, got %q", types.ProjectPlanning, p.Status)
				}
				return p, nil
			})

		_, err := s.CreateProject(context.Background(), &types.Project{OwnerID: ownerID, Name: "Pedreira Norte"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		s, mockStorage, mockLimits := newTestService(t)

		mockLimits.EXPECT().CanCreate(gomock.Any(), ownerID, access.ResourceProject).Return(nil)
		mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *types.Project) (*types.Project, error) {
				if p.Status != types.ProjectProduction {
					t.Errorf("expected status %q, got %q", types.ProjectProduction, p.Status)
				}
				return p, nil
			})

		_, err := s.CreateProject(context.Background(), &types.Project{OwnerID: ownerID, Name: "Pedreira Norte", Status: types.ProjectProduction})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("plan limit reached", func(t *testing.T) {
		s, _, mockLimits := newTestService(t)

		mockLimits.EXPECT().CanCreate(gomock.Any(), ownerID, access.ResourceProject).Return(access.ErrLimitReached)

		_, err := s.CreateProject(context.Background(), &types.Project{OwnerID: ownerID, Name: "Pedreira Norte"})
		if !errors.Is(err, access.ErrLimitReached) {
			t.Errorf("expected %v, got %v", access.ErrLimitReached, err)
		}
	})
}
