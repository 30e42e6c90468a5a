// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package team

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

//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_team.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockKratosClientInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)

	s := NewService(mockStorage, mockKratos, "72h", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockKratos
}

func TestService_CreateMember(t *testing.T) {
	ownerID := "owner-123"

	t.Run("defaults the status to active", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().CreateTeamMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *types.TeamMember) (*types.TeamMember, error) {
				if m.Status != types.MemberActive {
					t.Errorf("expected status %q, got %q", types.MemberActive, m.Status)
				}
				return m, nil
			})

		_, err := s.CreateMember(context.Background(), &types.TeamMember{OwnerID: ownerID, Name: "José Silva", Role: "Operador"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().CreateTeamMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *types.TeamMember) (*types.TeamMember, error) {
				if m.Status != types.MemberVacation {
					t.Errorf("expected status %q, got %q", types.MemberVacation, m.Status)
				}
				return m, nil
			})

		_, err := s.CreateMember(context.Background(), &types.TeamMember{OwnerID: ownerID, Name: "José Silva", Status: types.MemberVacation})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_InviteMember(t *testing.T) {
	ownerID := "owner-123"
	memberID := "member-1"
	email := "jose@example.com"
	identityID := "identity-9"

	t.Run("reuses an existing identity", func(t *testing.T) {
		s, mockStorage, mockKratos := newTestService(t)

		mockStorage.EXPECT().GetTeamMemberByID(gomock.Any(), ownerID, memberID).
			Return(&types.TeamMember{ID: memberID, OwnerID: ownerID, Email: email}, nil)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(identityID, nil)
		mockStorage.EXPECT().SetTeamMemberIdentity(gomock.Any(), ownerID, memberID, identityID).Return(nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), identityID, "72h").
			Return("https://auth.example.com/recovery?flow=abc", "123456", nil)

		link, code, err := s.InviteMember(context.Background(), ownerID, memberID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link != "https://auth.example.com/recovery?flow=abc" || code != "123456" {
			t.Errorf("unexpected invitation: link=%q code=%q", link, code)
		}
	})

	t.Run("creates an identity when none exists", func(t *testing.T) {
		s, mockStorage, mockKratos := newTestService(t)

		mockStorage.EXPECT().GetTeamMemberByID(gomock.Any(), ownerID, memberID).
			Return(&types.TeamMember{ID: memberID, OwnerID: ownerID, Email: email}, nil)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
		mockKratos.EXPECT().CreateIdentity(gomock.Any(), email).Return(identityID, nil)
		mockStorage.EXPECT().SetTeamMemberIdentity(gomock.Any(), ownerID, memberID, identityID).Return(nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), identityID, "72h").
			Return("https://auth.example.com/recovery?flow=def", "654321", nil)

		_, _, err := s.InviteMember(context.Background(), ownerID, memberID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("member without an email", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetTeamMemberByID(gomock.Any(), ownerID, memberID).
			Return(&types.TeamMember{ID: memberID, OwnerID: ownerID}, nil)

		_, _, err := s.InviteMember(context.Background(), ownerID, memberID)
		if !errors.Is(err, ErrNoEmail) {
			t.Errorf("expected %v, got %v", ErrNoEmail, err)
		}
	})

	t.Run("identity lookup failure is not leaked", func(t *testing.T) {
		s, mockStorage, mockKratos := newTestService(t)

		mockStorage.EXPECT().GetTeamMemberByID(gomock.Any(), ownerID, memberID).
			Return(&types.TeamMember{ID: memberID, OwnerID: ownerID, Email: email}, nil)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).
			Return("", errors.New("kratos unavailable"))

		_, _, err := s.InviteMember(context.Background(), ownerID, memberID)
		if err == nil {
			t.Fatal("expected error but got none")
		}
		if err.Error() != "failed to check identity" {
			t.Errorf("expected a generic error, got %q", err.Error())
		}
	})

	t.Run("recovery link failure", func(t *testing.T) {
		s, mockStorage, mockKratos := newTestService(t)

		mockStorage.EXPECT().GetTeamMemberByID(gomock.Any(), ownerID, memberID).
			Return(&types.TeamMember{ID: memberID, OwnerID: ownerID, Email: email}, nil)
		mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(identityID, nil)
		mockStorage.EXPECT().SetTeamMemberIdentity(gomock.Any(), ownerID, memberID, identityID).Return(nil)
		mockKratos.EXPECT().CreateRecoveryLink(gomock.Any(), identityID, "72h").
			Return("", "", errors.New("kratos unavailable"))

		if _, _, err := s.InviteMember(context.Background(), ownerID, memberID); err == nil {
			t.Error("expected error but got none")
		}
	})
}
