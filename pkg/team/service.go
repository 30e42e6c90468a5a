// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package team manages the field crew roster and member invitations.
package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

// ErrNoEmail rejects invitations for members without an email on file.
var ErrNoEmail = errors.New("member has no email")

type Service struct {
	storage            StorageInterface
	kratos             KratosClientInterface
	invitationLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	invitationLifetime string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		kratos:             kratos,
		invitationLifetime: invitationLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

func (s *Service) CreateMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.CreateMember")
	defer span.End()

	if m.Status == "" {
		m.Status = types.MemberActive
	}

	created, err := s.storage.CreateTeamMember(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return created, nil
}

func (s *Service) GetMember(ctx context.Context, ownerID, id string) (*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.GetMember")
	defer span.End()

	return s.storage.GetTeamMemberByID(ctx, ownerID, id)
}

func (s *Service) ListMembers(ctx context.Context, ownerID string) ([]*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListMembers")
	defer span.End()

	return s.storage.ListTeamMembers(ctx, ownerID)
}

func (s *Service) UpdateMember(ctx context.Context, m *types.TeamMember) (*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateMember")
	defer span.End()

	if err := s.storage.UpdateTeamMember(ctx, m); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetTeamMemberByID(ctx, m.OwnerID, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated team member: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteMember(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.DeleteMember")
	defer span.End()

	return s.storage.DeleteTeamMember(ctx, ownerID, id)
}

// InviteMember provisions a login for a roster member. The identity is found
// or created by email, linked to the member row, and a recovery link doubles
// as the invitation the member uses to set a password.
func (s *Service) InviteMember(ctx context.Context, ownerID, id string) (string, string, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.InviteMember")
	defer span.End()

	member, err := s.storage.GetTeamMemberByID(ctx, ownerID, id)
	if err != nil {
		return "", "", err
	}
	if member.Email == "" {
		return "", "", ErrNoEmail
	}

	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, member.Email)
	if err != nil {
		s.logger.Errorf("failed to check identity existence: %v", err)
		return "", "", fmt.Errorf("failed to check identity")
	}

	if identityID == "" {
		s.logger.Infof("creating new identity for email %s", member.Email)
		identityID, err = s.kratos.CreateIdentity(ctx, member.Email)
		if err != nil {
			s.logger.Errorf("failed to create identity: %v", err)
			return "", "", fmt.Errorf("failed to provision member")
		}
	}

	if err := s.storage.SetTeamMemberIdentity(ctx, ownerID, id, identityID); err != nil {
		return "", "", fmt.Errorf("failed to link identity: %w", err)
	}

	link, code, err := s.kratos.CreateRecoveryLink(ctx, identityID, s.invitationLifetime)
	if err != nil {
		s.logger.Errorf("failed to create recovery link: %v", err)
		return "", "", fmt.Errorf("failed to generate invitation link")
	}

	return link, code, nil
}
