// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
)

// Report service kinds. The services array on a drilling report is a tagged
// variant: the shape of each entry depends on its kind.
const (
	ServiceDrilling = "perfuracao"
	ServiceDowntime = "horas_paradas"
	ServiceOther    = "outros"
)

// ReportHole is a single drilled hole within a drilling service entry.
type ReportHole struct {
	Number   int     `json:"number"`
	Depth    float64 `json:"depth"`
	Diameter float64 `json:"diameter,omitempty"`
}

// ReportService is one entry of a report's services array. Exactly the fields
// matching Kind are meaningful; the rest stay at their zero value.
type ReportService struct {
	Kind string `json:"kind"`

	// ServiceDrilling
	Holes []ReportHole `json:"holes,omitempty"`

	// ServiceDowntime
	Hours  float64 `json:"hours,omitempty"`
	Reason string  `json:"reason,omitempty"`

	// ServiceOther
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON rejects unknown kinds at the boundary instead of letting
// malformed payloads through as zero values.
func (s *ReportService) UnmarshalJSON(data []byte) error {
	type alias ReportService
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	switch a.Kind {
	case ServiceDrilling, ServiceDowntime, ServiceOther:
	default:
		return fmt.Errorf("unknown service kind: %q", a.Kind)
	}

	*s = ReportService(a)
	return nil
}

// Meters returns the meters drilled by this service entry.
func (s *ReportService) Meters() float64 {
	if s.Kind != ServiceDrilling {
		return 0
	}

	var total float64
	for _, h := range s.Holes {
		total += h.Depth
	}
	return total
}

// TotalMeters sums drilled meters across a services array. The stored
// total_meters column is denormalized from this.
func TotalMeters(services []ReportService) float64 {
	var total float64
	for _, s := range services {
		total += s.Meters()
	}
	return total
}

type ReportOccurrence struct {
	Time        string `json:"time,omitempty"`
	Description string `json:"description"`
}

// ReportSupply is a consumable line on a report. Type is the free-text name
// the operator wrote down, possibly with a unit suffix like "Diesel (L)".
type ReportSupply struct {
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
}
