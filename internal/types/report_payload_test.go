// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"
)

func TestReportService_UnmarshalJSON(t *testing.T) {
	t.Run("drilling entry", func(t *testing.T) {
		var s ReportService
		payload := []byte(`{"kind":"perfuracao","holes":[{"number":1,"depth":12.5},{"number":2,"depth":10}]}`)
		if err := json.Unmarshal(payload, &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Kind != ServiceDrilling || len(s.Holes) != 2 {
			t.Errorf("unexpected entry: %+v", s)
		}
	})

	t.Run("downtime entry", func(t *testing.T) {
		var s ReportService
		payload := []byte(`{"kind":"horas_paradas","hours":2.5,"reason":"chuva"}`)
		if err := json.Unmarshal(payload, &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Kind != ServiceDowntime || s.Hours != 2.5 || s.Reason != "chuva" {
			t.Errorf("unexpected entry: %+v", s)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		var s ReportService
		if err := json.Unmarshal([]byte(`{"kind":"desmonte"}`), &s); err == nil {
			t.Error("expected error but got none")
		}
	})

	t.Run("missing kind is rejected", func(t *testing.T) {
		var s ReportService
		if err := json.Unmarshal([]byte(`{"hours":2}`), &s); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestTotalMeters(t *testing.T) {
	testCases := []struct {
		name     string
		services []ReportService
		expected float64
	}{
		{"no services", nil, 0},
		{
			name: "single drilling entry",
			services: []ReportService{
				{Kind: ServiceDrilling, Holes: []ReportHole{{Number: 1, Depth: 12}, {Number: 2, Depth: 8.5}}},
			},
			expected: 20.5,
		},
		{
			name: "downtime and other entries do not count",
			services: []ReportService{
				{Kind: ServiceDrilling, Holes: []ReportHole{{Number: 1, Depth: 10}}},
				{Kind: ServiceDowntime, Hours: 4, Reason: "manutenção"},
				{Kind: ServiceOther, Description: "mobilização"},
			},
			expected: 10,
		},
		{
			name: "multiple drilling entries sum",
			services: []ReportService{
				{Kind: ServiceDrilling, Holes: []ReportHole{{Number: 1, Depth: 5}}},
				{Kind: ServiceDrilling, Holes: []ReportHole{{Number: 2, Depth: 7}}},
			},
			expected: 12,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalMeters(tc.services); got != tc.expected {
				t.Errorf("expected %f, got %f", tc.expected, got)
			}
		})
	}
}
