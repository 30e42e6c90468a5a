// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

var (
	// ErrLimitReached signals that the tenant's plan has no room for the
	// requested resource.
	ErrLimitReached = errors.New("plan limit reached")
	// ErrTrialExpired blocks resource creation once the trial has lapsed with
	// no paid subscription. The gate normally catches this first; the create
	// path checks again so it never depends on middleware ordering.
	ErrTrialExpired = errors.New("trial expired")
)

// LimitError carries the numbers behind a plan-limit rejection so the user
// can be told how full their plan is.
type LimitError struct {
	Resource string
	Current  int
	Limit    int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s limit reached (%d/%d)", e.Resource, e.Current, e.Limit)
}

// Unwrap keeps errors.Is(err, ErrLimitReached) matching.
func (e *LimitError) Unwrap() error { return ErrLimitReached }

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface
	config  Config

	// now is swappable for tests.
	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		kratos:  kratos,
		config:  config,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CheckAccess resolves the tenant's subscription and identity and evaluates
// the paywall. A missing subscription row is the normal trial case, not an
// error.
func (s *Service) CheckAccess(ctx context.Context, ownerID string) (*Decision, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CheckAccess")
	defer span.End()

	sub, err := s.storage.GetSubscriptionByOwnerID(ctx, ownerID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}

	if sub.Gateable() {
		d := Evaluate(sub, time.Time{}, s.now(), s.config.TrialDays)
		return &d, nil
	}

	identity, err := s.kratos.GetIdentity(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	d := Evaluate(sub, identity.CreatedAt, s.now(), s.config.TrialDays)
	return &d, nil
}

// CanCreate enforces the plan limit for countable resources. Accounts on
// trial get the pro allowance, so the trial shows the product at full size.
func (s *Service) CanCreate(ctx context.Context, ownerID, resource string) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.CanCreate")
	defer span.End()

	decision, err := s.CheckAccess(ctx, ownerID)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return ErrTrialExpired
	}

	plan := decision.Plan
	if plan == "" {
		plan = types.PlanPro
	}

	var current int
	switch resource {
	case ResourceProject:
		current, err = s.storage.CountProjects(ctx, ownerID)
	case ResourceEquipment:
		current, err = s.storage.CountEquipment(ctx, ownerID)
	default:
		return fmt.Errorf("unknown resource: %s", resource)
	}
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", resource, err)
	}

	if !WithinLimit(s.config.Plans, plan, resource, current) {
		limit, _ := limitFor(s.config.Plans, plan, resource)
		s.logger.Security().PaywallBlock(ownerID, fmt.Sprintf("%s limit reached on plan %s (%d/%d)", resource, plan, current, limit))
		return &LimitError{Resource: resource, Current: current, Limit: limit}
	}

	return nil
}
