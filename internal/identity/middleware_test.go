// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
)

type stubVerifier struct {
	subject string
	err     error
}

func (v *stubVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	return v.subject, v.err
}

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		verifier       TokenVerifierInterface
		header         map[string]string
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "proxy header wins",
			header:         map[string]string{HeaderName: "user-1"},
			expectedStatus: http.StatusOK,
			expectedUser:   "user-1",
		},
		{
			name:           "bearer token fallback",
			verifier:       &stubVerifier{subject: "machine-1"},
			header:         map[string]string{"Authorization": "Bearer token"},
			expectedStatus: http.StatusOK,
			expectedUser:   "machine-1",
		},
		{
			name:           "proxy header takes precedence over the token",
			verifier:       &stubVerifier{subject: "machine-1"},
			header:         map[string]string{HeaderName: "user-1", "Authorization": "Bearer token"},
			expectedStatus: http.StatusOK,
			expectedUser:   "user-1",
		},
		{
			name:           "invalid token is rejected",
			verifier:       &stubVerifier{err: errors.New("bad signature")},
			header:         map[string]string{"Authorization": "Bearer token"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-bearer authorization is ignored",
			verifier:       &stubVerifier{subject: "machine-1"},
			header:         map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token without a verifier is ignored",
			header:         map[string]string{"Authorization": "Bearer token"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no identity at all",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMiddleware(tc.verifier, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/projects", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			m.HTTPMiddleware(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if tc.expectedStatus == http.StatusOK && gotUser != tc.expectedUser {
				t.Errorf("expected user %q, got %q", tc.expectedUser, gotUser)
			}
		})
	}
}
