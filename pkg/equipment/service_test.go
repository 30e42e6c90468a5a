// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package equipment

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

//go:generate mockgen -build_flags=--mod=mod -package equipment -destination ./mock_equipment.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockLimitCheckerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockLimits := NewMockLimitCheckerInterface(ctrl)

	s := NewService(mockStorage, mockLimits, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockLimits
}

func TestService_CreateEquipment(t *testing.T) {
	ownerID := "owner-123"

	t.Run("defaults the status to operational", func(t *testing.T) {
		s, mockStorage, mockLimits := newTestService(t)

		mockLimits.EXPECT().CanCreate(gomock.Any(), ownerID, access.ResourceEquipment).Return(nil)
		mockStorage.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *types.Equipment) (*types.Equipment, error) {
				if e.Status != types.EquipmentOperational {
					t.Errorf("expected status %q, got %q", types.EquipmentOperational, e.Status)
				}
				return e, nil
			})

		_, err := s.CreateEquipment(context.Background(), &types.Equipment{OwnerID: ownerID, Name: "Perfuratriz ROC L8"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		s, mockStorage, mockLimits := newTestService(t)

		mockLimits.EXPECT().CanCreate(gomock.Any(), ownerID, access.ResourceEquipment).Return(nil)
		mockStorage.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *types.Equipment) (*types.Equipment, error) {
				if e.Status != types.EquipmentUnavailable {
					t.Errorf("expected status %q, got %q", types.EquipmentUnavailable, e.Status)
				}
				return e, nil
			})

		_, err := s.CreateEquipment(context.Background(), &types.Equipment{OwnerID: ownerID, Name: "Compressor XAS 186", Status: types.EquipmentUnavailable})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("plan limit reached", func(t *testing.T) {
		s, _, mockLimits := newTestService(t)

		mockLimits.EXPECT().CanCreate(gomock.Any(), ownerID, access.ResourceEquipment).Return(access.ErrLimitReached)

		_, err := s.CreateEquipment(context.Background(), &types.Equipment{OwnerID: ownerID, Name: "Perfuratriz ROC L8"})
		if !errors.Is(err, access.ErrLimitReached) {
			t.Errorf("expected %v, got %v", access.ErrLimitReached, err)
		}
	})
}

func TestService_UpdateEquipment(t *testing.T) {
	ownerID := "owner-123"
	equipmentID := "equipment-1"

	testCases := []struct {
		name           string
		openEvents     int
		requested      string
		expectedStored string
	}{
		{
			name:           "manual edit cannot leave maintenance while events are open",
			openEvents:     1,
			requested:      types.EquipmentOperational,
			expectedStored: types.EquipmentMaintenance,
		},
		{
			name:           "manual edit passes through with no open events",
			openEvents:     0,
			requested:      types.EquipmentUnavailable,
			expectedStored: types.EquipmentUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)

			mockStorage.EXPECT().CountOpenMaintenanceEvents(gomock.Any(), ownerID, equipmentID).Return(tc.openEvents, nil)
			mockStorage.EXPECT().UpdateEquipment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *types.Equipment) error {
					if e.Status != tc.expectedStored {
						t.Errorf("expected stored status %q, got %q", tc.expectedStored, e.Status)
					}
					return nil
				})
			mockStorage.EXPECT().GetEquipmentByID(gomock.Any(), ownerID, equipmentID).
				Return(&types.Equipment{ID: equipmentID, OwnerID: ownerID, Status: tc.expectedStored}, nil)

			updated, err := s.UpdateEquipment(context.Background(), &types.Equipment{ID: equipmentID, OwnerID: ownerID, Status: tc.requested})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Status != tc.expectedStored {
				t.Errorf("expected status %q, got %q", tc.expectedStored, updated.Status)
			}
		})
	}
}

func TestService_CreateMaintenanceEvent(t *testing.T) {
	ownerID := "owner-123"
	equipmentID := "equipment-1"

	t.Run("open event flips the equipment to maintenance", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		event := &types.MaintenanceEvent{OwnerID: ownerID, EquipmentID: equipmentID, Status: types.MaintenanceInProgress}

		mockStorage.EXPECT().CreateMaintenanceEvent(gomock.Any(), event).Return(event, nil)
		mockStorage.EXPECT().CountOpenMaintenanceEvents(gomock.Any(), ownerID, equipmentID).Return(1, nil)
		mockStorage.EXPECT().GetEquipmentByID(gomock.Any(), ownerID, equipmentID).
			Return(&types.Equipment{ID: equipmentID, OwnerID: ownerID, Status: types.EquipmentOperational}, nil)
		mockStorage.EXPECT().SetEquipmentStatus(gomock.Any(), ownerID, equipmentID, types.EquipmentMaintenance).Return(nil)

		if _, err := s.CreateMaintenanceEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status already in sync skips the write", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		event := &types.MaintenanceEvent{OwnerID: ownerID, EquipmentID: equipmentID, Status: types.MaintenanceInProgress}

		mockStorage.EXPECT().CreateMaintenanceEvent(gomock.Any(), event).Return(event, nil)
		mockStorage.EXPECT().CountOpenMaintenanceEvents(gomock.Any(), ownerID, equipmentID).Return(1, nil)
		mockStorage.EXPECT().GetEquipmentByID(gomock.Any(), ownerID, equipmentID).
			Return(&types.Equipment{ID: equipmentID, OwnerID: ownerID, Status: types.EquipmentMaintenance}, nil)

		if _, err := s.CreateMaintenanceEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_UpdateMaintenanceEvent(t *testing.T) {
	ownerID := "owner-123"
	equipmentID := "equipment-1"
	eventID := "event-1"

	t.Run("closing the last event releases the equipment", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		event := &types.MaintenanceEvent{ID: eventID, OwnerID: ownerID, EquipmentID: equipmentID, Status: types.MaintenanceCompleted}

		mockStorage.EXPECT().UpdateMaintenanceEvent(gomock.Any(), event).Return(nil)
		mockStorage.EXPECT().GetMaintenanceEventByID(gomock.Any(), ownerID, eventID).Return(event, nil)
		mockStorage.EXPECT().CountOpenMaintenanceEvents(gomock.Any(), ownerID, equipmentID).Return(0, nil)
		mockStorage.EXPECT().GetEquipmentByID(gomock.Any(), ownerID, equipmentID).
			Return(&types.Equipment{ID: equipmentID, OwnerID: ownerID, Status: types.EquipmentMaintenance}, nil)
		mockStorage.EXPECT().SetEquipmentStatus(gomock.Any(), ownerID, equipmentID, types.EquipmentOperational).Return(nil)

		updated, err := s.UpdateMaintenanceEvent(context.Background(), event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != eventID {
			t.Errorf("expected event %q, got %q", eventID, updated.ID)
		}
	})
}

func TestService_DeleteMaintenanceEvent(t *testing.T) {
	ownerID := "owner-123"
	equipmentID := "equipment-1"
	eventID := "event-1"

	t.Run("deleting the last open event releases the equipment", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetMaintenanceEventByID(gomock.Any(), ownerID, eventID).
			Return(&types.MaintenanceEvent{ID: eventID, OwnerID: ownerID, EquipmentID: equipmentID}, nil)
		mockStorage.EXPECT().DeleteMaintenanceEvent(gomock.Any(), ownerID, eventID).Return(nil)
		mockStorage.EXPECT().CountOpenMaintenanceEvents(gomock.Any(), ownerID, equipmentID).Return(0, nil)
		mockStorage.EXPECT().GetEquipmentByID(gomock.Any(), ownerID, equipmentID).
			Return(&types.Equipment{ID: equipmentID, OwnerID: ownerID, Status: types.EquipmentMaintenance}, nil)
		mockStorage.EXPECT().SetEquipmentStatus(gomock.Any(), ownerID, equipmentID, types.EquipmentOperational).Return(nil)

		if err := s.DeleteMaintenanceEvent(context.Background(), ownerID, eventID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing event short-circuits", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetMaintenanceEventByID(gomock.Any(), ownerID, eventID).
			Return(nil, errors.New("not found"))

		if err := s.DeleteMaintenanceEvent(context.Background(), ownerID, eventID); err == nil {
			t.Error("expected error but got none")
		}
	})
}
