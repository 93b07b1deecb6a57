// Package survey reads field survey files: TOML documents listing a
// section's sample units and their distress observations.
package survey

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/johns/pavecheck/internal/distress"
	"github.com/johns/pavecheck/internal/pci"
)

// Survey is the on-disk representation of one section survey.
type Survey struct {
	SectionID string   `toml:"section"`
	Samples   []Sample `toml:"sample"`
}

// Sample is one surveyed sample unit.
type Sample struct {
	ID           string             `toml:"id"`
	Area         float64            `toml:"area"`
	Observations []ObservationEntry `toml:"observations"`
}

// ObservationEntry is one raw field reading before catalog validation.
type ObservationEntry struct {
	Distress int     `toml:"distress"`
	Severity string  `toml:"severity"`
	Quantity float64 `toml:"quantity"`
}

// Parse decodes a survey from TOML.
func Parse(r io.Reader) (*Survey, error) {
	var s Survey
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("parse survey: %w", err)
	}
	return &s, nil
}

// Load reads a survey file from disk.
func Load(path string) (*Survey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survey: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Section validates every observation against the distress catalog and
// builds the section ready for calculation.
func (s *Survey) Section() (pci.Section, error) {
	sec := pci.Section{ID: s.SectionID}

	for _, sample := range s.Samples {
		su := pci.SampleUnit{ID: sample.ID, Area: sample.Area}
		for _, entry := range sample.Observations {
			sev, err := distress.ParseSeverity(entry.Severity)
			if err != nil {
				return pci.Section{}, fmt.Errorf("sample %s: %w", sample.ID, err)
			}
			if err := su.AddObservation(entry.Distress, sev, entry.Quantity); err != nil {
				return pci.Section{}, fmt.Errorf("sample %s: %w", sample.ID, err)
			}
		}
		sec.SampleUnits = append(sec.SampleUnits, su)
	}

	return sec, nil
}
