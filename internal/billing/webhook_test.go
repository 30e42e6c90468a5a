// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

func signPayload(payload []byte, secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"id":"evt_1","type":"customer.subscription.created"}`)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		header      func() string
		expectedErr error
	}{
		{
			name: "valid signature",
			header: func() string {
				ts := now.Unix()
				return fmt.Sprintf("t=%d,v1=%s", ts, signPayload(payload, secret, ts))
			},
		},
		{
			name: "valid signature among rotated ones",
			header: func() string {
				ts := now.Unix()
				return fmt.Sprintf("t=%d,v1=%s,v1=%s", ts, signPayload(payload, "whsec_old", ts), signPayload(payload, secret, ts))
			},
		},
		{
			name: "wrong secret",
			header: func() string {
				ts := now.Unix()
				return fmt.Sprintf("t=%d,v1=%s", ts, signPayload(payload, "whsec_wrong", ts))
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "timestamp too old",
			header: func() string {
				ts := now.Add(-10 * time.Minute).Unix()
				return fmt.Sprintf("t=%d,v1=%s", ts, signPayload(payload, secret, ts))
			},
			expectedErr: ErrStaleTimestamp,
		},
		{
			name: "timestamp in the future",
			header: func() string {
				ts := now.Add(10 * time.Minute).Unix()
				return fmt.Sprintf("t=%d,v1=%s", ts, signPayload(payload, secret, ts))
			},
			expectedErr: ErrStaleTimestamp,
		},
		{
			name:        "missing timestamp",
			header:      func() string { return "v1=" + signPayload(payload, secret, now.Unix()) },
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "missing signature",
			header:      func() string { return fmt.Sprintf("t=%d", now.Unix()) },
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "malformed timestamp",
			header:      func() string { return "t=yesterday,v1=deadbeef" },
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "garbage header",
			header:      func() string { return "not a signature" },
			expectedErr: ErrInvalidSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := verifySignature(payload, tc.header(), secret, now)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	c := NewClient(Config{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	t.Run("valid event", func(t *testing.T) {
		payload := []byte(`{"id":"evt_1","type":"customer.subscription.updated","created":1767225600,"data":{"object":{"id":"sub_1"}}}`)

		event, err := c.ParseEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "evt_1" || event.Type != EventSubscriptionUpdated {
			t.Errorf("unexpected event: %+v", event)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		if _, err := c.ParseEvent([]byte(`{"id":`)); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestSubscriptionObject_PriceID(t *testing.T) {
	var obj SubscriptionObject
	if got := obj.PriceID(); got != "" {
		t.Errorf("expected empty price for no items, got %q", got)
	}

	obj.Items.Data = []struct {
		Price struct {
			ID string `json:"id"`
		} `json:"price"`
	}{{}}
	obj.Items.Data[0].Price.ID = "price_pro"
	if got := obj.PriceID(); got != "price_pro" {
		t.Errorf("expected price_pro, got %q", got)
	}
}
