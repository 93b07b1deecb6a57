package pci

import (
	"fmt"

	"github.com/johns/pavecheck/internal/curve"
	"github.com/johns/pavecheck/internal/distress"
)

// DeductKey identifies one deduct curve: a distress id plus the
// severity level, or distress.None for severity-free distresses.
type DeductKey struct {
	Distress int
	Severity distress.Severity
}

func (k DeductKey) String() string {
	if k.Severity == distress.None {
		return fmt.Sprintf("distress %d", k.Distress)
	}
	return fmt.Sprintf("distress %d severity %s", k.Distress, k.Severity)
}

// DeductCurve maps distress density (%) to a deduct value for one
// distress/severity combination.
type DeductCurve struct {
	Key DeductKey
	c   *curve.Curve
}

// NewDeductCurve validates the point set for a deduct curve.
func NewDeductCurve(key DeductKey, points []curve.Point) (*DeductCurve, error) {
	c, err := curve.New(key.String(), points)
	if err != nil {
		return nil, err
	}
	return &DeductCurve{Key: key, c: c}, nil
}

// DeductValue returns the deduct value for a density, clamped to [0,100].
func (d *DeductCurve) DeductValue(density float64) float64 {
	return clamp100(d.c.Y(density))
}

// Points returns the curve knots as (density, deduct value) pairs.
func (d *DeductCurve) Points() []curve.Point { return d.c.Points() }

// CDVCurve maps total deduct value to corrected deduct value for one
// q bucket (count of deduct values above 2.0).
type CDVCurve struct {
	Q int
	c *curve.Curve
}

// NewCDVCurve validates the point set for a CDV curve.
func NewCDVCurve(q int, points []curve.Point) (*CDVCurve, error) {
	if q < 1 {
		return nil, fmt.Errorf("CDV curve q=%d: q must be at least 1", q)
	}
	c, err := curve.New(fmt.Sprintf("CDV curve q=%d", q), points)
	if err != nil {
		return nil, err
	}
	return &CDVCurve{Q: q, c: c}, nil
}

// CDV returns the corrected deduct value for a total deduct value,
// clamped to [0,100].
func (c *CDVCurve) CDV(tdv float64) float64 {
	return clamp100(c.c.Y(tdv))
}

// Points returns the curve knots as (TDV, CDV) pairs.
func (c *CDVCurve) Points() []curve.Point { return c.c.Points() }

// CurveSet is the engine's pair of lookup tables. It is built once
// from raw point data and replaced wholesale, never patched in place.
type CurveSet struct {
	deduct map[DeductKey]*DeductCurve
	cdv    map[int]*CDVCurve
	maxQ   int
}

// NewCurveSet validates every curve in the supplied tables. Any
// invalid point set rejects the whole set.
func NewCurveSet(deduct map[DeductKey][]curve.Point, cdv map[int][]curve.Point) (*CurveSet, error) {
	cs := &CurveSet{
		deduct: make(map[DeductKey]*DeductCurve, len(deduct)),
		cdv:    make(map[int]*CDVCurve, len(cdv)),
	}

	for key, points := range deduct {
		dc, err := NewDeductCurve(key, points)
		if err != nil {
			return nil, fmt.Errorf("deduct curve: %w", err)
		}
		cs.deduct[key] = dc
	}

	for q, points := range cdv {
		cc, err := NewCDVCurve(q, points)
		if err != nil {
			return nil, err
		}
		cs.cdv[q] = cc
		if q > cs.maxQ {
			cs.maxQ = q
		}
	}

	return cs, nil
}

// DeductCurve returns the registered curve for a key, or nil.
func (cs *CurveSet) DeductCurve(key DeductKey) *DeductCurve {
	return cs.deduct[key]
}

// DeductKeys returns the registered deduct keys in unspecified order.
func (cs *CurveSet) DeductKeys() []DeductKey {
	keys := make([]DeductKey, 0, len(cs.deduct))
	for k := range cs.deduct {
		keys = append(keys, k)
	}
	return keys
}

// CDVCurves returns the registered q buckets in unspecified order.
func (cs *CurveSet) CDVCurves() []*CDVCurve {
	out := make([]*CDVCurve, 0, len(cs.cdv))
	for _, c := range cs.cdv {
		out = append(out, c)
	}
	return out
}

// MaxQ returns the largest digitized q bucket, 0 when no CDV curves
// are registered.
func (cs *CurveSet) MaxQ() int { return cs.maxQ }

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
