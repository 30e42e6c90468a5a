// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

// recordingMonitor captures availability gauge updates.
type recordingMonitor struct {
	tags   []map[string]string
	values []float64
}

func (m *recordingMonitor) GetService() string { return "test" }

func (m *recordingMonitor) SetResponseTimeMetric(map[string]string, float64) error { return nil }

func (m *recordingMonitor) SetDependencyAvailability(tags map[string]string, available float64) error {
	m.tags = append(m.tags, tags)
	m.values = append(m.values, available)
	return nil
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	t.Run("posts the form and marks the dependency up", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotForm url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			if err := r.ParseForm(); err != nil {
				t.Errorf("failed to parse form: %v", err)
			}
			gotForm = r.PostForm
			fmt.Fprint(w, `{"id":"cs_1","url":"https://pay.example/cs_1","customer":"cus_1"}`)
		}))
		defer server.Close()

		monitor := &recordingMonitor{}
		c := NewClient(Config{APIKey: "sk_test"}, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())
		c.baseURL = server.URL

		session, err := c.CreateCheckoutSession(context.Background(), CheckoutParams{
			ClientReferenceID: "owner-123",
			CustomerEmail:     "operador@example.com",
			PriceID:           "price_pro",
			SuccessURL:        "https://app.example/ok",
			CancelURL:         "https://app.example/cancel",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if session.URL != "https://pay.example/cs_1" || session.Customer != "cus_1" {
			t.Errorf("unexpected session: %+v", session)
		}
		if gotPath != "/checkout/sessions" {
			t.Errorf("unexpected path %q", gotPath)
		}
		if gotAuth != "Bearer sk_test" {
			t.Errorf("unexpected authorization header %q", gotAuth)
		}
		if gotForm.Get("client_reference_id") != "owner-123" || gotForm.Get("line_items[0][price]") != "price_pro" {
			t.Errorf("unexpected form: %v", gotForm)
		}
		if gotForm.Get("subscription_data[metadata][owner_id]") != "owner-123" {
			t.Errorf("expected owner metadata on the subscription, got %v", gotForm)
		}

		if len(monitor.values) != 1 || monitor.values[0] != 1 {
			t.Fatalf("expected one availability update of 1, got %v", monitor.values)
		}
		if monitor.tags[0]["component"] != "billing" {
			t.Errorf("unexpected gauge tags %v", monitor.tags[0])
		}
	})

	t.Run("transport failure marks the dependency down", func(t *testing.T) {
		monitor := &recordingMonitor{}
		c := NewClient(Config{APIKey: "sk_test"}, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())
		c.baseURL = "http://127.0.0.1:0"

		if _, err := c.CreateCheckoutSession(context.Background(), CheckoutParams{PriceID: "price_pro"}); err == nil {
			t.Fatal("expected an error")
		}

		if len(monitor.values) != 1 || monitor.values[0] != 0 {
			t.Fatalf("expected one availability update of 0, got %v", monitor.values)
		}
	})

	t.Run("API error is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"no such price","type":"invalid_request_error"}}`)
		}))
		defer server.Close()

		monitor := &recordingMonitor{}
		c := NewClient(Config{APIKey: "sk_test"}, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())
		c.baseURL = server.URL

		if _, err := c.CreateCheckoutSession(context.Background(), CheckoutParams{PriceID: "price_gone"}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestClient_CreatePortalSession(t *testing.T) {
	t.Run("posts the customer and return URL", func(t *testing.T) {
		var gotForm url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Errorf("failed to parse form: %v", err)
			}
			gotForm = r.PostForm
			fmt.Fprint(w, `{"id":"bps_1","url":"https://portal.example/bps_1"}`)
		}))
		defer server.Close()

		monitor := &recordingMonitor{}
		c := NewClient(Config{APIKey: "sk_test"}, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())
		c.baseURL = server.URL

		session, err := c.CreatePortalSession(context.Background(), "cus_1", "https://app.example/billing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if session.URL != "https://portal.example/bps_1" {
			t.Errorf("unexpected session: %+v", session)
		}
		if gotForm.Get("customer") != "cus_1" || gotForm.Get("return_url") != "https://app.example/billing" {
			t.Errorf("unexpected form: %v", gotForm)
		}
	})
}
