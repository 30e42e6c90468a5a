// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package equipment

import "github.com/matheuspuca/NoteDrill-sub001/internal/types"

// DeriveStatus computes the status an equipment should carry given how many
// corrective or revision events are currently in progress on it.
//
// Any open event forces Manutenção. When the last one closes, the equipment
// returns to Operacional; a manually set Indisponível is left alone since the
// maintenance machinery never owns that state.
func DeriveStatus(current string, openEvents int) string {
	if openEvents > 0 {
		return types.EquipmentMaintenance
	}
	if current == types.EquipmentMaintenance {
		return types.EquipmentOperational
	}
	return current
}
