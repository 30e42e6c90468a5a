// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	api := NewAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux, mockService
}

func authenticated(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identity.ContextKey, userID))
}

func TestHandler_Create(t *testing.T) {
	ownerID := "owner-123"

	t.Run("creates a project", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *types.Project) (*types.Project, error) {
				if p.OwnerID != ownerID || p.Name != "Pedreira Norte" {
					t.Errorf("unexpected project: %+v", p)
				}
				p.ID = "project-1"
				return p, nil
			})

		body := `{"name":"Pedreira Norte","status":"Planejamento","start_date":"2026-02-01T00:00:00Z"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(body)), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
		}

		var created types.Project
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if created.ID != "project-1" {
			t.Errorf("unexpected response: %+v", created)
		}
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := `{"status":"Planejamento","start_date":"2026-02-01T00:00:00Z"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(body)), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := `{"name":"Pedreira Norte","status":"Arquivada","start_date":"2026-02-01T00:00:00Z"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(body)), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(`{"name":`)), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("plan limit reached surfaces the usage", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			Return(nil, &access.LimitError{Resource: access.ResourceProject, Current: 3, Limit: 3})

		body := `{"name":"Pedreira Norte","start_date":"2026-02-01T00:00:00Z"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(body)), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "project limit reached (3/3)") {
			t.Errorf("expected usage in body, got %q", rec.Body.String())
		}
	})

	t.Run("bare limit sentinel still maps to 403", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			Return(nil, access.ErrLimitReached)

		body := `{"name":"Pedreira Norte","start_date":"2026-02-01T00:00:00Z"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v0/projects", strings.NewReader(body)), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
		}
	})
}

func TestHandler_List(t *testing.T) {
	ownerID := "owner-123"

	t.Run("empty roster serializes as an array", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().ListProjects(gomock.Any(), ownerID).Return(nil, nil)

		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/v0/projects", nil), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("expected empty array, got %q", got)
		}
	})
}

func TestHandler_Get(t *testing.T) {
	ownerID := "owner-123"

	t.Run("missing project returns 404", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().GetProject(gomock.Any(), ownerID, "project-9").
			Return(nil, storage.ErrNotFound)

		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/v0/projects/project-9", nil), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}

func TestHandler_Delete(t *testing.T) {
	ownerID := "owner-123"

	t.Run("deletes and returns no content", func(t *testing.T) {
		mux, mockService := newTestAPI(t)

		mockService.EXPECT().DeleteProject(gomock.Any(), ownerID, "project-1").Return(nil)

		req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/v0/projects/project-1", nil), ownerID)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
	})
}
