// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package access decides whether a tenant may use the system at all and
// whether their plan still has room for new resources.
package access

import (
	"math"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

const (
	ReasonActiveSubscription = "active_subscription"
	ReasonTrialActive        = "trial_active"
	ReasonTrialExpired       = "trial_expired"
	ReasonSubscriptionLapsed = "subscription_lapsed"
)

// Decision is the result of evaluating a tenant's access.
type Decision struct {
	Allowed            bool   `json:"allowed"`
	Reason             string `json:"reason"`
	Plan               string `json:"plan,omitempty"`
	TrialDaysRemaining int    `json:"trial_days_remaining"`
}

// Limits caps resource counts for one plan. Zero or negative means unlimited.
type Limits struct {
	Equipment int
	Projects  int
}

// Config carries the paywall knobs resolved from the environment.
type Config struct {
	TrialDays int
	Plans     map[string]Limits
}

// Evaluate applies the paywall rules. A gateable subscription short-circuits
// everything; otherwise the account runs on the trial clock anchored at the
// identity's creation time. Elapsed days round up, so access lapses at the
// start of the day after the trial window, never mid-day.
func Evaluate(sub *types.Subscription, identityCreatedAt, now time.Time, trialDays int) Decision {
	if sub.Gateable() {
		return Decision{
			Allowed: true,
			Reason:  ReasonActiveSubscription,
			Plan:    sub.Plan,
		}
	}

	elapsed := int(math.Ceil(now.Sub(identityCreatedAt).Hours() / 24))
	if elapsed < 0 {
		elapsed = 0
	}

	remaining := trialDays - elapsed
	if remaining < 0 {
		remaining = 0
	}

	if elapsed <= trialDays {
		return Decision{
			Allowed:            true,
			Reason:             ReasonTrialActive,
			TrialDaysRemaining: remaining,
		}
	}

	reason := ReasonTrialExpired
	if sub != nil {
		reason = ReasonSubscriptionLapsed
	}

	return Decision{
		Allowed:            false,
		Reason:             reason,
		TrialDaysRemaining: 0,
	}
}

// WithinLimit reports whether a plan has room for one more resource given the
// current count. Unknown plans get no allowance at all.
func WithinLimit(plans map[string]Limits, plan, resource string, current int) bool {
	max, ok := limitFor(plans, plan, resource)
	if !ok {
		return false
	}

	if max <= 0 {
		// Unlimited.
		return true
	}
	return current < max
}

func limitFor(plans map[string]Limits, plan, resource string) (int, bool) {
	limits, ok := plans[plan]
	if !ok {
		return 0, false
	}

	switch resource {
	case ResourceEquipment:
		return limits.Equipment, true
	case ResourceProject:
		return limits.Projects, true
	}
	return 0, false
}

const (
	ResourceEquipment = "equipment"
	ResourceProject   = "project"
)
