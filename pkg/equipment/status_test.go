// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package equipment

import (
	"testing"

	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
)

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name       string
		current    string
		openEvents int
		expected   string
	}{
		{"open event forces maintenance", types.EquipmentOperational, 1, types.EquipmentMaintenance},
		{"open event keeps maintenance", types.EquipmentMaintenance, 2, types.EquipmentMaintenance},
		{"open event overrides unavailable", types.EquipmentUnavailable, 1, types.EquipmentMaintenance},
		{"last event closed returns to operational", types.EquipmentMaintenance, 0, types.EquipmentOperational},
		{"operational stays operational", types.EquipmentOperational, 0, types.EquipmentOperational},
		{"unavailable is left alone", types.EquipmentUnavailable, 0, types.EquipmentUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.current, tc.openEvents); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
