// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"testing"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	trialDays := 14

	testCases := []struct {
		name              string
		sub               *types.Subscription
		identityCreatedAt time.Time
		expected          Decision
	}{
		{
			name: "active subscription short-circuits",
			sub:  &types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionActive},
			expected: Decision{
				Allowed: true,
				Reason:  ReasonActiveSubscription,
				Plan:    types.PlanPro,
			},
		},
		{
			name: "trialing subscription counts as paid",
			sub:  &types.Subscription{Plan: types.PlanBasic, Status: types.SubscriptionTrialing},
			expected: Decision{
				Allowed: true,
				Reason:  ReasonActiveSubscription,
				Plan:    types.PlanBasic,
			},
		},
		{
			name:              "fresh account",
			identityCreatedAt: now.Add(-2 * time.Hour),
			expected: Decision{
				Allowed:            true,
				Reason:             ReasonTrialActive,
				TrialDaysRemaining: 13,
			},
		},
		{
			name:              "mid trial",
			identityCreatedAt: now.AddDate(0, 0, -7),
			expected: Decision{
				Allowed:            true,
				Reason:             ReasonTrialActive,
				TrialDaysRemaining: 7,
			},
		},
		{
			name:              "last trial day",
			identityCreatedAt: now.AddDate(0, 0, -14),
			expected: Decision{
				Allowed:            true,
				Reason:             ReasonTrialActive,
				TrialDaysRemaining: 0,
			},
		},
		{
			name:              "expired, never subscribed",
			identityCreatedAt: now.AddDate(0, 0, -15),
			expected: Decision{
				Allowed: false,
				Reason:  ReasonTrialExpired,
			},
		},
		{
			name:              "expired with canceled subscription",
			sub:               &types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionCanceled},
			identityCreatedAt: now.AddDate(0, 0, -30),
			expected: Decision{
				Allowed: false,
				Reason:  ReasonSubscriptionLapsed,
			},
		},
		{
			name:              "past due subscription falls back to the trial clock",
			sub:               &types.Subscription{Plan: types.PlanPro, Status: types.SubscriptionPastDue},
			identityCreatedAt: now.AddDate(0, 0, -5),
			expected: Decision{
				Allowed:            true,
				Reason:             ReasonTrialActive,
				TrialDaysRemaining: 9,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.sub, tc.identityCreatedAt, now, trialDays)
			if got != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestWithinLimit(t *testing.T) {
	plans := map[string]Limits{
		types.PlanBasic:      {Equipment: 1, Projects: 1},
		types.PlanPro:        {Equipment: 3, Projects: 3},
		types.PlanEnterprise: {},
	}

	testCases := []struct {
		name     string
		plan     string
		resource string
		current  int
		expected bool
	}{
		{"basic under limit", types.PlanBasic, ResourceEquipment, 0, true},
		{"basic at limit", types.PlanBasic, ResourceEquipment, 1, false},
		{"pro under limit", types.PlanPro, ResourceProject, 2, true},
		{"pro at limit", types.PlanPro, ResourceProject, 3, false},
		{"enterprise unlimited", types.PlanEnterprise, ResourceEquipment, 1000, true},
		{"unknown plan", "gold", ResourceEquipment, 0, false},
		{"unknown resource", types.PlanBasic, "widgets", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinLimit(plans, tc.plan, tc.resource, tc.current); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
