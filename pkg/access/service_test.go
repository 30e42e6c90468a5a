// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockKratosClientInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)

	config := Config{
		TrialDays: 14,
		Plans: map[string]Limits{
			types.PlanBasic: {Equipment: 1, Projects: 1},
			types.PlanPro:   {Equipment: 3, Projects: 3},
		},
	}

	s := NewService(mockStorage, mockKratos, config, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockKratos
}

func TestService_CheckAccess(t *testing.T) {
	ownerID := "owner-123"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockKratosClientInterface)
		expected    *Decision
		expectedErr bool
	}{
		{
			name: "active subscription skips the identity lookup",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(&types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionActive}, nil)
			},
			expected: &Decision{Allowed: true, Reason: ReasonActiveSubscription, Plan: types.PlanPro},
		},
		{
			name: "no subscription runs on the trial clock",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
					Return(&types.Identity{ID: ownerID, CreatedAt: now.AddDate(0, 0, -3)}, nil)
			},
			expected: &Decision{Allowed: true, Reason: ReasonTrialActive, TrialDaysRemaining: 11},
		},
		{
			name: "expired trial is blocked",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
					Return(&types.Identity{ID: ownerID, CreatedAt: now.AddDate(0, 0, -20)}, nil)
			},
			expected: &Decision{Allowed: false, Reason: ReasonTrialExpired},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
		{
			name: "identity lookup error",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
					Return(nil, errors.New("kratos unavailable"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockKratos := newTestService(t)
			s.now = func() time.Time { return now }
			tc.setupMocks(mockStorage, mockKratos)

			got, err := s.CheckAccess(context.Background(), ownerID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != *tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestService_CanCreate(t *testing.T) {
	ownerID := "owner-123"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		resource    string
		setupMocks  func(*MockStorageInterface, *MockKratosClientInterface)
		expectedErr error
	}{
		{
			name:     "trial account gets the pro allowance",
			resource: ResourceProject,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
					Return(&types.Identity{ID: ownerID, CreatedAt: now.AddDate(0, 0, -3)}, nil)
				mockStorage.EXPECT().CountProjects(gomock.Any(), ownerID).Return(2, nil)
			},
		},
		{
			name:     "trial account at the pro limit",
			resource: ResourceProject,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
					Return(&types.Identity{ID: ownerID, CreatedAt: now.AddDate(0, 0, -3)}, nil)
				mockStorage.EXPECT().CountProjects(gomock.Any(), ownerID).Return(3, nil)
			},
			expectedErr: ErrLimitReached,
		},
		{
			name:     "basic subscription at its limit",
			resource: ResourceEquipment,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(&types.Subscription{Plan: types.PlanBasic, Status: types.SubscriptionActive}, nil)
				mockStorage.EXPECT().CountEquipment(gomock.Any(), ownerID).Return(1, nil)
			},
			expectedErr: ErrLimitReached,
		},
		{
			name:     "pro subscription under its limit",
			resource: ResourceEquipment,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(&types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionActive}, nil)
				mockStorage.EXPECT().CountEquipment(gomock.Any(), ownerID).Return(2, nil)
			},
		},
		{
			name:     "expired trial is hard-blocked before counting",
			resource: ResourceEquipment,
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface) {
				mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
					Return(&types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionCanceled}, nil)
				mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
					Return(&types.Identity{ID: ownerID, CreatedAt: now.AddDate(0, 0, -30)}, nil)
			},
			expectedErr: ErrTrialExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockKratos := newTestService(t)
			s.now = func() time.Time { return now }
			tc.setupMocks(mockStorage, mockKratos)

			err := s.CanCreate(context.Background(), ownerID, tc.resource)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("limit rejection carries usage and cap", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)
		s.now = func() time.Time { return now }
		mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
			Return(&types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionActive}, nil)
		mockStorage.EXPECT().CountProjects(gomock.Any(), ownerID).Return(3, nil)

		err := s.CanCreate(context.Background(), ownerID, ResourceProject)

		var limitErr *LimitError
		if !errors.As(err, &limitErr) {
			t.Fatalf("expected a LimitError, got %v", err)
		}
		if limitErr.Resource != ResourceProject || limitErr.Current != 3 || limitErr.Limit != 3 {
			t.Errorf("expected project 3/3, got %+v", limitErr)
		}
		if limitErr.Error() != "project limit reached (3/3)" {
			t.Errorf("unexpected message %q", limitErr.Error())
		}
	})

	t.Run("unknown resource", func(t *testing.T) {
		s, mockStorage, mockKratos := newTestService(t)
		s.now = func() time.Time { return now }
		mockStorage.EXPECT().GetSubscriptionByOwnerID(gomock.Any(), ownerID).
			Return(nil, storage.ErrNotFound)
		mockKratos.EXPECT().GetIdentity(gomock.Any(), ownerID).
			Return(&types.Identity{ID: ownerID, CreatedAt: now.AddDate(0, 0, -1)}, nil)

		if err := s.CanCreate(context.Background(), ownerID, "widgets"); err == nil {
			t.Error("expected error but got none")
		}
	})
}
