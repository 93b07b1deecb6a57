// Package pci implements the ASTM D6433 Pavement Condition Index
// calculation: deduct value lookup, the iterative corrected deduct
// value procedure, and area-weighted section aggregation.
package pci

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/johns/pavecheck/internal/distress"
)

// ErrNoCurve is wrapped by lookup failures for unregistered
// distress/severity combinations or missing CDV buckets.
var ErrNoCurve = errors.New("no curve registered")

// Deduct values at or below this floor do not count toward q, and the
// iteration flattens working values down to it.
const minSignificantDV = 2.0

// Result is the outcome of one sample unit calculation.
type Result struct {
	PCI    float64
	Rating Rating

	// DeductValues is the capped, descending-sorted deduct value set
	// the iteration ran on.
	DeductValues []float64

	// MaxCDV is the largest corrected deduct value seen across all
	// iteration rounds; PCI = 100 - MaxCDV.
	MaxCDV float64

	// IterationCDVs records the CDV from every round, for audit.
	IterationCDVs []float64
}

// Engine computes PCI against a caller-supplied curve set. Calculations
// are pure and safe to run concurrently; replacing the curve set must
// not race with in-flight calculations.
type Engine struct {
	curves *CurveSet
}

// New returns an engine using the given curve tables.
func New(curves *CurveSet) *Engine {
	return &Engine{curves: curves}
}

// SetCurves replaces both lookup tables wholesale.
func (e *Engine) SetCurves(curves *CurveSet) {
	e.curves = curves
}

// Curves returns the engine's current curve set.
func (e *Engine) Curves() *CurveSet { return e.curves }

// DeductValue looks up the deduct value for one distress, severity and
// density. Fails when no curve is registered for the combination.
func (e *Engine) DeductValue(distressID int, sev distress.Severity, density float64) (float64, error) {
	key := DeductKey{Distress: distressID, Severity: sev}
	dc := e.curves.DeductCurve(key)
	if dc == nil {
		return 0, fmt.Errorf("%w for %s", ErrNoCurve, key)
	}
	return dc.DeductValue(density), nil
}

// CDV looks up the corrected deduct value for a total deduct value.
// q is clamped to [1, largest digitized bucket]; more simultaneous
// deduct values than buckets fall back to the largest bucket.
func (e *Engine) CDV(tdv float64, q int) (float64, error) {
	if e.curves.MaxQ() == 0 {
		return 0, fmt.Errorf("%w: no CDV curves loaded", ErrNoCurve)
	}
	if q > e.curves.MaxQ() {
		q = e.curves.MaxQ()
	}
	if q < 1 {
		q = 1
	}
	cc := e.curves.cdv[q]
	if cc == nil {
		return 0, fmt.Errorf("%w for q=%d", ErrNoCurve, q)
	}
	return cc.CDV(tdv), nil
}

// maxDeductCount is the m limit on simultaneous deduct values:
// m = 1 + (9/98)(100 - HDV), floored, minimum 1.
func maxDeductCount(highestDV float64) int {
	m := int(1 + (9.0/98.0)*(100-highestDV))
	if m < 1 {
		return 1
	}
	return m
}

// CalculateSample computes the PCI for one sample unit from its
// observations and area.
func (e *Engine) CalculateSample(observations []distress.Observation, sampleArea float64) (Result, error) {
	if sampleArea <= 0 {
		return Result{}, fmt.Errorf("sample area must be positive, got %v", sampleArea)
	}

	if len(observations) == 0 {
		return perfectResult(), nil
	}

	// Deduct value per observation; zero values do not contribute.
	var dvs []float64
	for _, obs := range observations {
		density, err := distress.Density(obs.Quantity, sampleArea)
		if err != nil {
			return Result{}, err
		}
		dv, err := e.DeductValue(obs.Type.ID, obs.Severity, density)
		if err != nil {
			return Result{}, err
		}
		if dv > 0 {
			dvs = append(dvs, dv)
		}
	}

	if len(dvs) == 0 {
		return perfectResult(), nil
	}

	// Sort descending, then cap the list at m entries.
	sort.Sort(sort.Reverse(sort.Float64Slice(dvs)))
	if m := maxDeductCount(dvs[0]); len(dvs) > m {
		dvs = dvs[:m]
	}

	// Iterative CDV procedure: each round flattens the last working
	// value still above the floor to exactly the floor, until at most
	// one significant value remains. The reported correction is the
	// worst round, not the final one.
	working := make([]float64, len(dvs))
	copy(working, dvs)

	var iterationCDVs []float64
	for {
		q := 0
		for _, dv := range working {
			if dv > minSignificantDV {
				q++
			}
		}
		if q == 0 {
			q = 1
		}

		tdv := 0.0
		for _, dv := range working {
			tdv += dv
		}

		cdv, err := e.CDV(tdv, q)
		if err != nil {
			return Result{}, err
		}
		iterationCDVs = append(iterationCDVs, cdv)

		if q <= 1 {
			break
		}

		for i := len(working) - 1; i >= 0; i-- {
			if working[i] > minSignificantDV {
				working[i] = minSignificantDV
				break
			}
		}
	}

	maxCDV := iterationCDVs[0]
	for _, cdv := range iterationCDVs[1:] {
		if cdv > maxCDV {
			maxCDV = cdv
		}
	}

	pci := math.Min(100, math.Max(0, 100-maxCDV))

	return Result{
		PCI:           pci,
		Rating:        RatingFor(pci),
		DeductValues:  dvs,
		MaxCDV:        maxCDV,
		IterationCDVs: iterationCDVs,
	}, nil
}

func perfectResult() Result {
	return Result{
		PCI:           100,
		Rating:        Good,
		DeductValues:  []float64{},
		MaxCDV:        0,
		IterationCDVs: []float64{},
	}
}
