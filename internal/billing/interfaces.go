// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package billing

import "context"

type ClientInterface interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSession, error)
	VerifySignature(payload []byte, sigHeader string) error
	ParseEvent(payload []byte) (*Event, error)
}
