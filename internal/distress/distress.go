// Package distress defines the ASTM D6433 asphalt distress catalog and
// field observation types.
package distress

import (
	"fmt"
	"strings"
)

// Severity is a distress severity level. The zero value means the
// distress does not use severity levels.
type Severity int

const (
	None Severity = iota
	Low
	Medium
	High
)

// ParseSeverity maps the standard single-letter codes to a Severity.
// An empty string means None.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return None, nil
	case "L":
		return Low, nil
	case "M":
		return Medium, nil
	case "H":
		return High, nil
	}
	return None, fmt.Errorf("unknown severity %q (want L, M or H)", s)
}

func (s Severity) String() string {
	switch s {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "H"
	default:
		return ""
	}
}

// Unit is the measurement unit for a distress quantity.
type Unit int

const (
	AreaUnit   Unit = iota // square feet
	LinearUnit             // linear feet
	CountUnit              // number of occurrences
)

func (u Unit) String() string {
	switch u {
	case LinearUnit:
		return "linear"
	case CountUnit:
		return "count"
	default:
		return "area"
	}
}

// Type is a catalog entry for one distress kind.
type Type struct {
	ID          int
	Name        string
	Unit        Unit
	HasSeverity bool
}

// catalog holds the ASTM D6433 asphalt distress types, ids 1-19.
var catalog = []Type{
	{1, "Alligator Cracking", AreaUnit, true},
	{2, "Bleeding", AreaUnit, true},
	{3, "Block Cracking", AreaUnit, true},
	{4, "Bumps and Sags", LinearUnit, true},
	{5, "Corrugation", AreaUnit, true},
	{6, "Depression", AreaUnit, true},
	{7, "Edge Cracking", LinearUnit, true},
	{8, "Joint Reflection Cracking", LinearUnit, true},
	{9, "Lane/Shoulder Drop-off", LinearUnit, true},
	{10, "Longitudinal & Transverse Cracking", LinearUnit, true},
	{11, "Patching and Utility Cut Patching", AreaUnit, true},
	{12, "Polished Aggregate", AreaUnit, false},
	{13, "Potholes", CountUnit, true},
	{14, "Railroad Crossing", AreaUnit, true},
	{15, "Rutting", AreaUnit, true},
	{16, "Shoving", AreaUnit, true},
	{17, "Slippage Cracking", AreaUnit, true},
	{18, "Swell", AreaUnit, true},
	{19, "Weathering/Raveling", AreaUnit, true},
}

// All returns the full catalog in id order.
func All() []Type {
	out := make([]Type, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a distress type by its catalog id.
func ByID(id int) (Type, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("unknown distress id %d", id)
}

// ByName looks up a distress type by case-insensitive substring match,
// first match in id order.
func ByName(name string) (Type, error) {
	needle := strings.ToLower(name)
	for _, t := range catalog {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("unknown distress name %q", name)
}

// Density converts a measured quantity into a percentage of the sample
// unit area. The same formula applies to area, linear and count units,
// all normalized against the sample area.
func Density(quantity, sampleArea float64) (float64, error) {
	if sampleArea <= 0 {
		return 0, fmt.Errorf("sample area must be positive, got %v", sampleArea)
	}
	return quantity / sampleArea * 100, nil
}

// Observation is a single field reading: one distress at one severity
// with a measured quantity. Construct via NewObservation so the
// severity rule and quantity sign are checked up front.
type Observation struct {
	Type     Type
	Severity Severity
	Quantity float64
}

// NewObservation validates and builds an observation. The severity must
// be present exactly when the distress type uses severity levels, and
// the quantity cannot be negative.
func NewObservation(distressID int, sev Severity, quantity float64) (Observation, error) {
	t, err := ByID(distressID)
	if err != nil {
		return Observation{}, err
	}
	if t.HasSeverity && sev == None {
		return Observation{}, fmt.Errorf("%s requires a severity level", t.Name)
	}
	if !t.HasSeverity && sev != None {
		return Observation{}, fmt.Errorf("%s does not use severity levels", t.Name)
	}
	if quantity < 0 {
		return Observation{}, fmt.Errorf("quantity cannot be negative, got %v", quantity)
	}
	return Observation{Type: t, Severity: sev, Quantity: quantity}, nil
}
