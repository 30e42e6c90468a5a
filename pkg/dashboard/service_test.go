// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

//go:generate mockgen -build_flags=--mod=mod -package dashboard -destination ./mock_dashboard.go -source=./interfaces.go

package dashboard

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	storage := NewMockStorageInterface(ctrl)
	s := NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, storage
}

func TestService_GetSummary(t *testing.T) {
	t.Run("aggregates all counters", func(t *testing.T) {
		s, storage := newTestService(t)
		ctx := context.Background()

		storage.EXPECT().CountProjects(gomock.Any(), "owner-1").Return(4, nil)
		storage.EXPECT().CountEquipmentByStatus(gomock.Any(), "owner-1", types.EquipmentMaintenance).Return(2, nil)
		storage.EXPECT().CountReportsByStatus(gomock.Any(), "owner-1", types.ReportPending).Return(7, nil)
		storage.EXPECT().CountLowStockItems(gomock.Any(), "owner-1").Return(3, nil)

		got, err := s.GetSummary(ctx, "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := Summary{
			Projects:               4,
			EquipmentInMaintenance: 2,
			PendingReports:         7,
			LowStockItems:          3,
		}
		if *got != expected {
			t.Errorf("expected summary %+v, got %+v", expected, *got)
		}
	})

	t.Run("project count failure aborts", func(t *testing.T) {
		s, storage := newTestService(t)
		ctx := context.Background()

		storage.EXPECT().CountProjects(gomock.Any(), "owner-1").Return(0, errors.New("boom"))

		if _, err := s.GetSummary(ctx, "owner-1"); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("low stock count failure aborts", func(t *testing.T) {
		s, storage := newTestService(t)
		ctx := context.Background()

		storage.EXPECT().CountProjects(gomock.Any(), "owner-1").Return(4, nil)
		storage.EXPECT().CountEquipmentByStatus(gomock.Any(), "owner-1", types.EquipmentMaintenance).Return(2, nil)
		storage.EXPECT().CountReportsByStatus(gomock.Any(), "owner-1", types.ReportPending).Return(7, nil)
		storage.EXPECT().CountLowStockItems(gomock.Any(), "owner-1").Return(0, errors.New("boom"))

		if _, err := s.GetSummary(ctx, "owner-1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
