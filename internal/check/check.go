// Package check validates a curve set against the distress catalog and
// renders a pass/warn/fail report.
package check

import (
	"fmt"
	"strings"

	"github.com/johns/pavecheck/internal/curvefile"
	"github.com/johns/pavecheck/internal/distress"
	"github.com/johns/pavecheck/internal/pci"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "pavecheck check\n\n  no checks ran\n"
	}

	// Find max name length for alignment.
	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("pavecheck check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckDeductCurves validates every deduct curve in the file: the
// distress id must be in the catalog, the severity must match the
// catalog entry, and the point set must build a valid curve.
func CheckDeductCurves(f *curvefile.File) []Result {
	var results []Result
	for _, e := range f.Deduct {
		name := fmt.Sprintf("deduct %d/%s", e.Distress, severityLabel(e.Severity))

		t, err := distress.ByID(e.Distress)
		if err != nil {
			results = append(results, Result{Name: name, Status: Fail, Detail: err.Error()})
			continue
		}

		sev, err := distress.ParseSeverity(e.Severity)
		if err != nil {
			results = append(results, Result{Name: name, Status: Fail, Detail: err.Error()})
			continue
		}
		if t.HasSeverity && sev == distress.None {
			results = append(results, Result{Name: name, Status: Fail, Detail: t.Name + " requires a severity level"})
			continue
		}
		if !t.HasSeverity && sev != distress.None {
			results = append(results, Result{Name: name, Status: Fail, Detail: t.Name + " does not use severity levels"})
			continue
		}

		points, convErr := curvefile.ToPoints(e.Points)
		if convErr != nil {
			results = append(results, Result{Name: name, Status: Fail, Detail: convErr.Error()})
			continue
		}
		dc, err := pci.NewDeductCurve(pci.DeductKey{Distress: e.Distress, Severity: sev}, points)
		if err != nil {
			results = append(results, Result{Name: name, Status: Fail, Detail: err.Error()})
			continue
		}

		detail := fmt.Sprintf("%s, %d points", t.Name, len(points))
		if dc.DeductValue(0) != 0 {
			results = append(results, Result{Name: name, Status: Warn,
				Detail: detail + "; nonzero deduct at zero density"})
			continue
		}
		results = append(results, Result{Name: name, Status: Pass, Detail: detail})
	}
	return results
}

// CheckCDVCurves validates every CDV curve in the file and that the q
// buckets form a contiguous run starting at 1.
func CheckCDVCurves(f *curvefile.File) []Result {
	var results []Result

	buckets := make(map[int]bool, len(f.CDV))
	maxQ := 0
	for _, e := range f.CDV {
		name := fmt.Sprintf("cdv q=%d", e.Q)

		points, convErr := curvefile.ToPoints(e.Points)
		if convErr != nil {
			results = append(results, Result{Name: name, Status: Fail, Detail: convErr.Error()})
			continue
		}
		if _, err := pci.NewCDVCurve(e.Q, points); err != nil {
			results = append(results, Result{Name: name, Status: Fail, Detail: err.Error()})
			continue
		}

		buckets[e.Q] = true
		if e.Q > maxQ {
			maxQ = e.Q
		}
		results = append(results, Result{Name: name, Status: Pass,
			Detail: fmt.Sprintf("%d points", len(points))})
	}

	if len(f.CDV) == 0 {
		results = append(results, Result{Name: "cdv", Status: Fail, Detail: "no CDV curves in set"})
		return results
	}
	for q := 1; q <= maxQ; q++ {
		if !buckets[q] {
			results = append(results, Result{Name: "cdv buckets", Status: Warn,
				Detail: fmt.Sprintf("gap at q=%d; lookups for that count will fail", q)})
		}
	}
	return results
}

// CheckCoverage warns about catalog severity combinations with no
// deduct curve. Missing combinations are not errors: partial curve
// sets are expected until the full standard is digitized.
func CheckCoverage(f *curvefile.File) Result {
	have := make(map[string]bool, len(f.Deduct))
	for _, e := range f.Deduct {
		sev, err := distress.ParseSeverity(e.Severity)
		if err != nil {
			continue
		}
		have[fmt.Sprintf("%d/%s", e.Distress, sev)] = true
	}

	total, covered := 0, 0
	for _, t := range distress.All() {
		sevs := []distress.Severity{distress.Low, distress.Medium, distress.High}
		if !t.HasSeverity {
			sevs = []distress.Severity{distress.None}
		}
		for _, sev := range sevs {
			total++
			if have[fmt.Sprintf("%d/%s", t.ID, sev)] {
				covered++
			}
		}
	}

	detail := fmt.Sprintf("%d of %d catalog combinations", covered, total)
	if covered < total {
		return Result{Name: "coverage", Status: Warn, Detail: detail}
	}
	return Result{Name: "coverage", Status: Pass, Detail: detail}
}

// Run executes all checks against a curve file and returns a report.
func Run(f *curvefile.File) Report {
	var results []Result

	results = append(results, Result{Name: "set", Status: Pass,
		Detail: fmt.Sprintf("%q: %d deduct, %d cdv curves", f.Name, len(f.Deduct), len(f.CDV))})
	results = append(results, CheckDeductCurves(f)...)
	results = append(results, CheckCDVCurves(f)...)
	results = append(results, CheckCoverage(f))

	return Report{Results: results}
}

func severityLabel(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
