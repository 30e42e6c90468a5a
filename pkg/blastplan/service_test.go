// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package blastplan

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package blastplan -destination ./mock_blastplan.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage
}

func TestService_CreateBlastPlan(t *testing.T) {
	ownerID := "owner-123"

	t.Run("defaults the status to open", func(t *testing.T) {
		s, mockStorage := newTestService(t)

		mockStorage.EXPECT().CreateBlastPlan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *types.BlastPlan) (*types.BlastPlan, error) {
				if b.Status != types.BlastPlanOpen {
					t.Errorf("expected status %q, got %q", types.BlastPlanOpen, b.Status)
				}
				return b, nil
			})

		_, err := s.CreateBlastPlan(context.Background(), &types.BlastPlan{OwnerID: ownerID, Name: "Bancada 3 - Fogo 12"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		s, mockStorage := newTestService(t)

		mockStorage.EXPECT().CreateBlastPlan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *types.BlastPlan) (*types.BlastPlan, error) {
				if b.Status != types.BlastPlanDone {
					t.Errorf("expected status %q, got %q", types.BlastPlanDone, b.Status)
				}
				return b, nil
			})

		_, err := s.CreateBlastPlan(context.Background(), &types.BlastPlan{OwnerID: ownerID, Status: types.BlastPlanDone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_DeleteBlastPlan(t *testing.T) {
	ownerID := "owner-123"
	planID := "plan-1"

	t.Run("missing plan", func(t *testing.T) {
		s, mockStorage := newTestService(t)

		mockStorage.EXPECT().GetBlastPlanByID(gomock.Any(), ownerID, planID).
			Return(nil, storage.ErrNotFound)

		err := s.DeleteBlastPlan(context.Background(), ownerID, planID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
		}
	})

	t.Run("linked reports block deletion", func(t *testing.T) {
		s, mockStorage := newTestService(t)

		mockStorage.EXPECT().GetBlastPlanByID(gomock.Any(), ownerID, planID).
			Return(&types.BlastPlan{ID: planID, OwnerID: ownerID}, nil)
		mockStorage.EXPECT().CountReportsByBlastPlan(gomock.Any(), ownerID, planID).Return(2, nil)

		err := s.DeleteBlastPlan(context.Background(), ownerID, planID)
		if !errors.Is(err, ErrReportsLinked) {
			t.Errorf("expected %v, got %v", ErrReportsLinked, err)
		}
	})

	t.Run("unreferenced plan is deleted", func(t *testing.T) {
		s, mockStorage := newTestService(t)

		mockStorage.EXPECT().GetBlastPlanByID(gomock.Any(), ownerID, planID).
			Return(&types.BlastPlan{ID: planID, OwnerID: ownerID}, nil)
		mockStorage.EXPECT().CountReportsByBlastPlan(gomock.Any(), ownerID, planID).Return(0, nil)
		mockStorage.EXPECT().DeleteBlastPlan(gomock.Any(), ownerID, planID).Return(nil)

		if err := s.DeleteBlastPlan(context.Background(), ownerID, planID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
