package pci

import (
	"fmt"

	"github.com/johns/pavecheck/internal/distress"
)

// SampleUnit is one fixed-area inspection unit within a section.
type SampleUnit struct {
	ID           string
	Area         float64 // square feet
	Observations []distress.Observation
}

// AddObservation validates a field reading against the catalog and
// appends it to the unit.
func (su *SampleUnit) AddObservation(distressID int, sev distress.Severity, quantity float64) error {
	obs, err := distress.NewObservation(distressID, sev, quantity)
	if err != nil {
		return err
	}
	su.Observations = append(su.Observations, obs)
	return nil
}

// Section is a pavement section made of sample units.
type Section struct {
	ID          string
	SampleUnits []SampleUnit
}

// SectionPCI computes the area-weighted mean PCI across a section's
// sample units. An empty section or zero total area reports 100. Any
// failing sample unit fails the whole section.
func (e *Engine) SectionPCI(sec Section) (float64, error) {
	if len(sec.SampleUnits) == 0 {
		return 100, nil
	}

	totalArea := 0.0
	for _, su := range sec.SampleUnits {
		totalArea += su.Area
	}
	if totalArea == 0 {
		return 100, nil
	}

	weighted := 0.0
	for _, su := range sec.SampleUnits {
		if su.Area == 0 {
			continue
		}
		result, err := e.CalculateSample(su.Observations, su.Area)
		if err != nil {
			return 0, fmt.Errorf("sample unit %s: %w", su.ID, err)
		}
		weighted += result.PCI * su.Area
	}

	return weighted / totalArea, nil
}
