// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

const subscriptionColumns = "id, owner_id, plan, status, provider_customer_id, provider_subscription_id, price_id, current_period_end, created_at, updated_at"

func scanSubscription(row sq.RowScanner) (*types.Subscription, error) {
	var sub types.Subscription
	err := row.Scan(&sub.ID, &sub.OwnerID, &sub.Plan, &sub.Status, &sub.ProviderCustomerID, &sub.ProviderSubscriptionID, &sub.PriceID, &sub.CurrentPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// GetSubscriptionByOwnerID returns the tenant's most recent subscription.
func (s *Storage) GetSubscriptionByOwnerID(ctx context.Context, ownerID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSubscriptionByOwnerID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(subscriptionColumns).
		From("subscriptions").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC").
		Limit(1).
		QueryRowContext(ctx)

	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return sub, nil
}

func (s *Storage) GetSubscriptionByProviderID(ctx context.Context, providerSubscriptionID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSubscriptionByProviderID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(subscriptionColumns).
		From("subscriptions").
		Where(sq.Eq{"provider_subscription_id": providerSubscriptionID}).
		QueryRowContext(ctx)

	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get subscription by provider id: %w", err)
	}

	return sub, nil
}

// UpsertSubscription inserts or refreshes the row keyed on the provider's
// subscription id, which makes webhook delivery idempotent: replays and
// out-of-order events converge on the provider's latest state.
func (s *Storage) UpsertSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSubscription")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("subscriptions").
		Columns("id", "owner_id", "plan", "status", "provider_customer_id", "provider_subscription_id", "price_id", "current_period_end").
		Values(id, sub.OwnerID, sub.Plan, sub.Status, sub.ProviderCustomerID, sub.ProviderSubscriptionID, sub.PriceID, sub.CurrentPeriodEnd).
		Suffix(`ON CONFLICT (provider_subscription_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			provider_customer_id = EXCLUDED.provider_customer_id,
			price_id = EXCLUDED.price_id,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = NOW()
		RETURNING ` + subscriptionColumns).
		QueryRowContext(ctx)

	upserted, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return upserted, nil
}

// UpdateSubscriptionStatusByProviderID handles lifecycle events that carry
// only the provider subscription id, such as cancellations.
func (s *Storage) UpdateSubscriptionStatusByProviderID(ctx context.Context, providerSubscriptionID, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubscriptionStatusByProviderID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("subscriptions").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"provider_subscription_id": providerSubscriptionID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
