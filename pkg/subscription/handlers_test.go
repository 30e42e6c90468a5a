// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/billing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

func newWebhookAPI(t *testing.T) (*chi.Mux, *MockServiceInterface, *MockClientInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockBilling := NewMockClientInterface(ctrl)

	api := NewAPI(mockService, mockBilling, tracing.NewNoopTracer(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterWebhook(mux)
	return mux, mockService, mockBilling
}

func TestHandler_Webhook(t *testing.T) {
	payload := `{"id":"evt_1","type":"customer.subscription.created"}`

	t.Run("verified event is handled and acknowledged", func(t *testing.T) {
		mux, mockService, mockBilling := newWebhookAPI(t)

		event := &billing.Event{ID: "evt_1", Type: billing.EventSubscriptionCreated}

		mockBilling.EXPECT().VerifySignature([]byte(payload), "t=1,v1=abc").Return(nil)
		mockBilling.EXPECT().ParseEvent([]byte(payload)).Return(event, nil)
		mockService.EXPECT().HandleEvent(gomock.Any(), event).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("bad signature is rejected before parsing", func(t *testing.T) {
		mux, _, mockBilling := newWebhookAPI(t)

		mockBilling.EXPECT().VerifySignature([]byte(payload), "").Return(billing.ErrInvalidSignature)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("handler failure turns into a 500 so the provider retries", func(t *testing.T) {
		mux, mockService, mockBilling := newWebhookAPI(t)

		event := &billing.Event{ID: "evt_1", Type: billing.EventSubscriptionCreated}

		mockBilling.EXPECT().VerifySignature([]byte(payload), "t=1,v1=abc").Return(nil)
		mockBilling.EXPECT().ParseEvent([]byte(payload)).Return(event, nil)
		mockService.EXPECT().HandleEvent(gomock.Any(), event).Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
		}
	})
}
