package pci

// Rating is the PCI condition category per ASTM D6433.
type Rating int

const (
	Failed Rating = iota
	Serious
	VeryPoor
	Poor
	Fair
	Satisfactory
	Good
)

// Rating thresholds, inclusive lower bounds.
const (
	goodMin         = 85
	satisfactoryMin = 70
	fairMin         = 55
	poorMin         = 40
	veryPoorMin     = 25
	seriousMin      = 10
)

// RatingFor maps a numeric PCI to its condition category.
func RatingFor(pci float64) Rating {
	switch {
	case pci >= goodMin:
		return Good
	case pci >= satisfactoryMin:
		return Satisfactory
	case pci >= fairMin:
		return Fair
	case pci >= poorMin:
		return Poor
	case pci >= veryPoorMin:
		return VeryPoor
	case pci >= seriousMin:
		return Serious
	default:
		return Failed
	}
}

func (r Rating) String() string {
	switch r {
	case Good:
		return "Good"
	case Satisfactory:
		return "Satisfactory"
	case Fair:
		return "Fair"
	case Poor:
		return "Poor"
	case VeryPoor:
		return "Very Poor"
	case Serious:
		return "Serious"
	case Failed:
		return "Failed"
	default:
		return "unknown"
	}
}
