package pci

import (
	"fmt"
	"strings"

	"github.com/johns/pavecheck/internal/distress"
)

// FormatSample renders one sample unit result as aligned terminal
// output, optionally including the per-round CDV audit trail.
func FormatSample(su SampleUnit, r Result, showIterations bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sample unit %s (%.0f sq ft)\n", su.ID, su.Area)

	if len(su.Observations) > 0 {
		b.WriteString("\nObservations\n")
		for _, obs := range su.Observations {
			sev := "N/A"
			if obs.Severity != distress.None {
				sev = obs.Severity.String()
			}
			fmt.Fprintf(&b, "  %-36s %8.1f %-7s severity %s\n",
				obs.Type.Name, obs.Quantity, obs.Type.Unit, sev)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-20s %s\n", "deduct values", formatValues(r.DeductValues))
	if showIterations {
		fmt.Fprintf(&b, "  %-20s %s\n", "iteration CDVs", formatValues(r.IterationCDVs))
	}
	fmt.Fprintf(&b, "  %-20s %.1f\n", "max CDV", r.MaxCDV)
	fmt.Fprintf(&b, "  %-20s %.0f (%s)\n", "PCI", r.PCI, r.Rating)

	return b.String()
}

// FormatSection renders per-unit PCI lines plus the weighted section
// result.
func FormatSection(sec Section, results []Result, sectionPCI float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Section %s (%d sample units)\n\n", sec.ID, len(sec.SampleUnits))
	for i, su := range sec.SampleUnits {
		fmt.Fprintf(&b, "  %-12s PCI = %3.0f (%s)\n", su.ID, results[i].PCI, results[i].Rating)
	}

	fmt.Fprintf(&b, "\n  %-12s PCI = %3.0f (%s)\n", "section", sectionPCI, RatingFor(sectionPCI))

	return b.String()
}

// FormatCatalog renders the distress type catalog table.
func FormatCatalog() string {
	var b strings.Builder

	b.WriteString("Distress catalog (ASTM D6433 asphalt)\n\n")
	fmt.Fprintf(&b, "  %-4s %-36s %-8s %s\n", "ID", "Name", "Unit", "Severity")
	for _, t := range distress.All() {
		sev := "L/M/H"
		if !t.HasSeverity {
			sev = "none"
		}
		fmt.Fprintf(&b, "  %-4d %-36s %-8s %s\n", t.ID, t.Name, t.Unit, sev)
	}

	return b.String()
}

func formatValues(vs []float64) string {
	if len(vs) == 0 {
		return "none"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.1f", v)
	}
	return strings.Join(parts, ", ")
}
