// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package billing is a thin client for the Stripe REST API. It covers only
// the surface the application needs: hosted checkout, the customer portal
// and webhook verification.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

const defaultBaseURL = "https://api.stripe.com/v1"

type Config struct {
	APIKey        string
	WebhookSecret string
}

type Client struct {
	baseURL       string
	apiKey        string
	webhookSecret string
	httpClient    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL:       defaultBaseURL,
		apiKey:        cfg.APIKey,
		webhookSecret: cfg.WebhookSecret,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

type CheckoutParams struct {
	// ClientReferenceID carries the tenant's identity id so the completed
	// session can be tied back to an account.
	ClientReferenceID string
	CustomerEmail     string
	PriceID           string
	SuccessURL        string
	CancelURL         string
}

type CheckoutSession struct {
	ID       string    `json:"id"`
	URL      string    `json:"url"`
	Customer string    `json:"customer"`
	Error    *apiError `json:"error,omitempty"`
}

type PortalSession struct {
	ID    string    `json:"id"`
	URL   string    `json:"url"`
	Error *apiError `json:"error,omitempty"`
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	c.setAvailability(1)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) setAvailability(up float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "billing"}, up); err != nil {
		c.logger.Errorf("failed to record billing availability: %v", err)
	}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	ctx, span := c.tracer.Start(ctx, "billing.Client.CreateCheckoutSession")
	defer span.End()

	form := url.Values{}
	form.Add("mode", "subscription")
	form.Add("client_reference_id", p.ClientReferenceID)
	form.Add("customer_email", p.CustomerEmail)
	form.Add("line_items[0][price]", p.PriceID)
	form.Add("line_items[0][quantity]", "1")
	form.Add("success_url", p.SuccessURL)
	form.Add("cancel_url", p.CancelURL)
	form.Add("subscription_data[metadata][owner_id]", p.ClientReferenceID)

	var session CheckoutSession
	if err := c.postForm(ctx, "/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	if session.Error != nil {
		return nil, fmt.Errorf("billing API error: %s", session.Error.Message)
	}

	return &session, nil
}

func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSession, error) {
	ctx, span := c.tracer.Start(ctx, "billing.Client.CreatePortalSession")
	defer span.End()

	form := url.Values{}
	form.Add("customer", customerID)
	form.Add("return_url", returnURL)

	var session PortalSession
	if err := c.postForm(ctx, "/billing_portal/sessions", form, &session); err != nil {
		return nil, err
	}
	if session.Error != nil {
		return nil, fmt.Errorf("billing API error: %s", session.Error.Message)
	}

	return &session, nil
}
