// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

func TestMiddleware_Gate(t *testing.T) {
	ownerID := "owner-123"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newGated := func(t *testing.T) (*Middleware, *MockServiceInterface) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockService := NewMockServiceInterface(ctrl)
		m := NewMiddleware(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger())
		return m, mockService
	}

	request := func(userID string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/v0/projects", nil)
		if userID != "" {
			r = r.WithContext(context.WithValue(r.Context(), identity.ContextKey, userID))
		}
		return r
	}

	t.Run("allowed request passes through", func(t *testing.T) {
		m, mockService := newGated(t)

		mockService.EXPECT().CheckAccess(gomock.Any(), ownerID).
			Return(&Decision{Allowed: true, Reason: ReasonActiveSubscription, Plan: types.PlanPro}, nil)

		rec := httptest.NewRecorder()
		m.Gate(next).ServeHTTP(rec, request(ownerID))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("expired tenant gets 402 with the decision", func(t *testing.T) {
		m, mockService := newGated(t)

		mockService.EXPECT().CheckAccess(gomock.Any(), ownerID).
			Return(&Decision{Allowed: false, Reason: ReasonTrialExpired}, nil)

		rec := httptest.NewRecorder()
		m.Gate(next).ServeHTTP(rec, request(ownerID))

		if rec.Code != http.StatusPaymentRequired {
			t.Fatalf("expected status %d, got %d", http.StatusPaymentRequired, rec.Code)
		}

		var decision Decision
		if err := json.Unmarshal(rec.Body.Bytes(), &decision); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if decision.Reason != ReasonTrialExpired {
			t.Errorf("expected reason %q, got %q", ReasonTrialExpired, decision.Reason)
		}
	})

	t.Run("missing identity gets 401", func(t *testing.T) {
		m, _ := newGated(t)

		rec := httptest.NewRecorder()
		m.Gate(next).ServeHTTP(rec, request(""))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("evaluation failure gets 500", func(t *testing.T) {
		m, mockService := newGated(t)

		mockService.EXPECT().CheckAccess(gomock.Any(), ownerID).
			Return(nil, errors.New("connection refused"))

		rec := httptest.NewRecorder()
		m.Gate(next).ServeHTTP(rec, request(ownerID))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
		}
	})
}
