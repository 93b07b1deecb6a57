// Package curvefile reads and writes curve set files: TOML documents
// holding digitized deduct and CDV curve points, optionally
// zstd-compressed on disk.
package curvefile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"

	"github.com/johns/pavecheck/internal/curve"
	"github.com/johns/pavecheck/internal/distress"
	"github.com/johns/pavecheck/internal/pci"
)

// File is the on-disk representation of one named curve set.
type File struct {
	Name   string        `toml:"name"`
	Deduct []DeductEntry `toml:"deduct"`
	CDV    []CDVEntry    `toml:"cdv"`
}

// DeductEntry is one deduct curve: (density %, deduct value) pairs for
// a distress/severity combination. Severity is "L", "M", "H" or empty
// for severity-free distresses.
type DeductEntry struct {
	Distress int         `toml:"distress"`
	Severity string      `toml:"severity"`
	Points   [][]float64 `toml:"points"`
}

// CDVEntry is one CDV curve: (total deduct value, corrected deduct
// value) pairs for a q bucket.
type CDVEntry struct {
	Q      int         `toml:"q"`
	Points [][]float64 `toml:"points"`
}

// Parse decodes a curve set from TOML.
func Parse(r io.Reader) (*File, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse curve file: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("parse curve file: missing name")
	}
	return &f, nil
}

// Load reads a curve set from disk. Paths ending in .zst are
// decompressed transparently.
func Load(path string) (*File, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curve file: %w", err)
	}
	defer src.Close()

	var r io.Reader = src
	if strings.HasSuffix(path, ".zst") {
		decoder, err := zstd.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
	}

	f, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Write encodes a curve set to disk, zstd-compressing when the path
// ends in .zst.
func Write(path string, f *File) error {
	dest, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create curve file: %w", err)
	}
	defer dest.Close()

	var w io.Writer = dest
	var encoder *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		encoder, err = zstd.NewWriter(dest)
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		w = encoder
	}

	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode curve file: %w", err)
	}

	if encoder != nil {
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("finalize compression: %w", err)
		}
	}
	return nil
}

// CurveSet builds the validated lookup tables from the file's raw
// points. All curve validation happens here, at load time.
func (f *File) CurveSet() (*pci.CurveSet, error) {
	deduct := make(map[pci.DeductKey][]curve.Point, len(f.Deduct))
	for _, e := range f.Deduct {
		sev, err := distress.ParseSeverity(e.Severity)
		if err != nil {
			return nil, fmt.Errorf("deduct curve for distress %d: %w", e.Distress, err)
		}
		points, err := ToPoints(e.Points)
		if err != nil {
			return nil, fmt.Errorf("deduct curve for distress %d severity %s: %w", e.Distress, e.Severity, err)
		}
		key := pci.DeductKey{Distress: e.Distress, Severity: sev}
		if _, dup := deduct[key]; dup {
			return nil, fmt.Errorf("duplicate deduct curve for %s", key)
		}
		deduct[key] = points
	}

	cdv := make(map[int][]curve.Point, len(f.CDV))
	for _, e := range f.CDV {
		points, err := ToPoints(e.Points)
		if err != nil {
			return nil, fmt.Errorf("CDV curve q=%d: %w", e.Q, err)
		}
		if _, dup := cdv[e.Q]; dup {
			return nil, fmt.Errorf("duplicate CDV curve for q=%d", e.Q)
		}
		cdv[e.Q] = points
	}

	return pci.NewCurveSet(deduct, cdv)
}

// ToPoints converts raw [x, y] pairs into curve points.
func ToPoints(raw [][]float64) ([]curve.Point, error) {
	points := make([]curve.Point, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("point %d: want [x, y], got %d values", i, len(pair))
		}
		points[i] = curve.Point{X: pair[0], Y: pair[1]}
	}
	return points, nil
}
