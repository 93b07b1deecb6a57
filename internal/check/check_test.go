package check

import (
	"strings"
	"testing"

	"github.com/johns/pavecheck/internal/curvefile"
)

func TestRun_BuiltinPasses(t *testing.T) {
	report := Run(curvefile.Builtin())
	if report.HasFailures() {
		t.Fatalf("builtin curves must not fail checks:\n%s", report.Format())
	}
	// The builtin set is partial: coverage is a warning, not a pass.
	found := false
	for _, res := range report.Results {
		if res.Name == "coverage" {
			found = true
			if res.Status != Warn {
				t.Errorf("coverage = %v, want warn", res.Status)
			}
		}
	}
	if !found {
		t.Error("no coverage result emitted")
	}
}

func TestCheckDeductCurves(t *testing.T) {
	f := &curvefile.File{
		Name: "x",
		Deduct: []curvefile.DeductEntry{
			{Distress: 1, Severity: "M", Points: [][]float64{{0, 0}, {10, 44}}},
			{Distress: 99, Severity: "M", Points: [][]float64{{0, 0}, {10, 44}}},  // unknown id
			{Distress: 1, Severity: "", Points: [][]float64{{0, 0}, {10, 44}}},    // missing severity
			{Distress: 12, Severity: "L", Points: [][]float64{{0, 0}, {10, 44}}},  // severity not allowed
			{Distress: 3, Severity: "L", Points: [][]float64{{0, 0}}},             // too few points
			{Distress: 15, Severity: "L", Points: [][]float64{{0, 5}, {10, 44}}},  // nonzero at density 0
		},
	}

	results := CheckDeductCurves(f)
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}

	wantStatus := []Status{Pass, Fail, Fail, Fail, Fail, Warn}
	for i, want := range wantStatus {
		if results[i].Status != want {
			t.Errorf("result %d (%s) = %v, want %v", i, results[i].Name, results[i].Status, want)
		}
	}
}

func TestCheckCDVCurves_BucketGap(t *testing.T) {
	f := &curvefile.File{
		Name: "x",
		CDV: []curvefile.CDVEntry{
			{Q: 1, Points: [][]float64{{0, 0}, {100, 100}}},
			{Q: 3, Points: [][]float64{{0, 0}, {100, 58}}},
		},
	}

	results := CheckCDVCurves(f)
	var gapWarned bool
	for _, res := range results {
		if res.Status == Fail {
			t.Errorf("unexpected failure: %+v", res)
		}
		if res.Name == "cdv buckets" && res.Status == Warn && strings.Contains(res.Detail, "q=2") {
			gapWarned = true
		}
	}
	if !gapWarned {
		t.Errorf("expected warning for q=2 gap, got %+v", results)
	}
}

func TestCheckCDVCurves_Empty(t *testing.T) {
	results := CheckCDVCurves(&curvefile.File{Name: "x"})
	if len(results) != 1 || results[0].Status != Fail {
		t.Errorf("expected single failure for empty CDV table, got %+v", results)
	}
}

func TestRun_BrokenCurveFails(t *testing.T) {
	f := &curvefile.File{
		Name: "broken",
		Deduct: []curvefile.DeductEntry{
			{Distress: 1, Severity: "M", Points: [][]float64{{5, 10}, {5, 20}}}, // duplicate x
		},
		CDV: []curvefile.CDVEntry{
			{Q: 1, Points: [][]float64{{0, 0}, {100, 100}}},
		},
	}
	report := Run(f)
	if !report.HasFailures() {
		t.Fatalf("expected failures:\n%s", report.Format())
	}
}

func TestReport_Format(t *testing.T) {
	report := Report{Results: []Result{
		{Name: "set", Status: Pass, Detail: "ok"},
		{Name: "cdv q=1", Status: Warn, Detail: "something"},
		{Name: "deduct 1/M", Status: Fail, Detail: "bad"},
	}}
	out := report.Format()
	for _, want := range []string{"pass", "warn", "FAIL", "1 passed, 1 warning, 1 failure"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
