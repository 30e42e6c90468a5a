// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateTeamMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, ownerID, id string) (*types.TeamMember, error)
	ListTeamMembers(ctx context.Context, ownerID string) ([]*types.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *types.TeamMember) error
	SetTeamMemberIdentity(ctx context.Context, ownerID, id, identityID string) error
	DeleteTeamMember(ctx context.Context, ownerID, id string) error
}

// KratosClientInterface provisions login identities for invited members.
type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type ServiceInterface interface {
	CreateMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error)
	GetMember(ctx context.Context, ownerID, id string) (*types.TeamMember, error)
	ListMembers(ctx context.Context, ownerID string) ([]*types.TeamMember, error)
	UpdateMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error)
	DeleteMember(ctx context.Context, ownerID, id string) error
	InviteMember(ctx context.Context, ownerID, id string) (string, string, error)
}
