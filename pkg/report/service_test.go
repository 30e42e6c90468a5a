// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package report

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/inventory"
)

//go:generate mockgen -build_flags=--mod=mod -package report -destination ./mock_report.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockDeducterInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockDeducter := NewMockDeducterInterface(ctrl)

	s := NewService(mockStorage, mockDeducter, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage, mockDeducter
}

func TestService_CreateReport(t *testing.T) {
	ownerID := "owner-123"

	t.Run("allocates the number and derives the totals", func(t *testing.T) {
		s, mockStorage, mockDeducter := newTestService(t)

		r := &types.DrillingReport{
			OwnerID:        ownerID,
			ProjectID:      "project-1",
			Status:         types.ReportApproved, // clients cannot pre-approve
			HourmeterStart: 100,
			HourmeterEnd:   108.5,
			Services: []types.ReportService{
				{Kind: types.ServiceDrilling, Holes: []types.ReportHole{{Number: 1, Depth: 12}, {Number: 2, Depth: 10.5}}},
				{Kind: types.ServiceDowntime, Hours: 2, Reason: "chuva"},
			},
			Supplies: []types.ReportSupply{{Type: "Diesel", Quantity: 40}},
		}

		mockStorage.EXPECT().NextReportNumber(gomock.Any(), ownerID).Return(int64(7), nil)
		mockStorage.EXPECT().CreateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *types.DrillingReport) (*types.DrillingReport, error) {
				if r.ReportNumber != 7 {
					t.Errorf("expected report number 7, got %d", r.ReportNumber)
				}
				if r.Status != types.ReportPending {
					t.Errorf("expected status %q, got %q", types.ReportPending, r.Status)
				}
				if r.TotalMeters != 22.5 {
					t.Errorf("expected 22.5 total meters, got %f", r.TotalMeters)
				}
				if r.TotalHours != 8.5 {
					t.Errorf("expected 8.5 total hours, got %f", r.TotalHours)
				}
				return r, nil
			})
		mockDeducter.EXPECT().DeductSupplies(gomock.Any(), ownerID, r.Supplies).
			Return([]inventory.Warning{{Supply: "Diesel", Reason: "no matching stock item"}})

		created, warnings, err := s.CreateReport(context.Background(), r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("expected a created report")
		}
		if len(warnings) != 1 {
			t.Errorf("expected the deduction warning to pass through, got %v", warnings)
		}
	})

	t.Run("hourmeter going backwards floors the hours at zero", func(t *testing.T) {
		s, mockStorage, mockDeducter := newTestService(t)

		r := &types.DrillingReport{OwnerID: ownerID, HourmeterStart: 50, HourmeterEnd: 48}

		mockStorage.EXPECT().NextReportNumber(gomock.Any(), ownerID).Return(int64(1), nil)
		mockStorage.EXPECT().CreateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *types.DrillingReport) (*types.DrillingReport, error) {
				if r.TotalHours != 0 {
					t.Errorf("expected 0 total hours, got %f", r.TotalHours)
				}
				return r, nil
			})
		mockDeducter.EXPECT().DeductSupplies(gomock.Any(), ownerID, gomock.Any()).Return(nil)

		if _, _, err := s.CreateReport(context.Background(), r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost number race surfaces as a conflict", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().NextReportNumber(gomock.Any(), ownerID).Return(int64(7), nil)
		mockStorage.EXPECT().CreateReport(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrDuplicateKey)

		_, _, err := s.CreateReport(context.Background(), &types.DrillingReport{OwnerID: ownerID})
		if !errors.Is(err, ErrNumberConflict) {
			t.Errorf("expected %v, got %v", ErrNumberConflict, err)
		}
	})

	t.Run("number allocation failure aborts", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().NextReportNumber(gomock.Any(), ownerID).
			Return(int64(0), errors.New("connection refused"))

		if _, _, err := s.CreateReport(context.Background(), &types.DrillingReport{OwnerID: ownerID}); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestService_UpdateReport(t *testing.T) {
	ownerID := "owner-123"
	reportID := "report-1"

	t.Run("preserves the stored number and status", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		stored := &types.DrillingReport{ID: reportID, OwnerID: ownerID, ReportNumber: 12, Status: types.ReportApproved}

		update := &types.DrillingReport{
			ID:           reportID,
			OwnerID:      ownerID,
			ReportNumber: 99,                  // must be ignored
			Status:       types.ReportPending, // must be ignored
			Services: []types.ReportService{
				{Kind: types.ServiceDrilling, Holes: []types.ReportHole{{Number: 1, Depth: 5}}},
			},
		}

		mockStorage.EXPECT().GetReportByID(gomock.Any(), ownerID, reportID).Return(stored, nil)
		mockStorage.EXPECT().UpdateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *types.DrillingReport) error {
				if r.ReportNumber != 12 {
					t.Errorf("expected report number 12, got %d", r.ReportNumber)
				}
				if r.Status != types.ReportApproved {
					t.Errorf("expected status %q, got %q", types.ReportApproved, r.Status)
				}
				if r.TotalMeters != 5 {
					t.Errorf("expected 5 total meters, got %f", r.TotalMeters)
				}
				return nil
			})
		mockStorage.EXPECT().GetReportByID(gomock.Any(), ownerID, reportID).
			Return(&types.DrillingReport{ID: reportID, OwnerID: ownerID, ReportNumber: 12, Status: types.ReportApproved, TotalMeters: 5}, nil)

		updated, err := s.UpdateReport(context.Background(), update)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ReportNumber != 12 || updated.Status != types.ReportApproved {
			t.Errorf("unexpected updated report: %+v", updated)
		}
	})

	t.Run("missing report aborts", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetReportByID(gomock.Any(), ownerID, reportID).
			Return(nil, errors.New("not found"))

		if _, err := s.UpdateReport(context.Background(), &types.DrillingReport{ID: reportID, OwnerID: ownerID}); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestService_SetStatus(t *testing.T) {
	ownerID := "owner-123"
	reportID := "report-1"

	testCases := []struct {
		name        string
		status      string
		expectWrite bool
		expectedErr error
	}{
		{"approve", types.ReportApproved, true, nil},
		{"reject", types.ReportRejected, true, nil},
		{"back to pending", types.ReportPending, true, nil},
		{"unknown status", "ARQUIVADO", false, ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)

			if tc.expectWrite {
				mockStorage.EXPECT().SetReportStatus(gomock.Any(), ownerID, reportID, tc.status).Return(nil)
			}

			err := s.SetStatus(context.Background(), ownerID, reportID, tc.status)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
