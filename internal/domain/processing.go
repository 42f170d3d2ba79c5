package domain

import "fmt"

// Canonical processing (manufacturing operation) type identifiers.
const (
	ProcessingCNCClassic     = "cnc_classic"
	ProcessingCNCRifled      = "cnc_rifled"
	ProcessingGlassSandblast = "glass_sandblast"
	ProcessingGlassDrill     = "glass_drill"
	ProcessingPainting       = "painting"
	ProcessingEdgeBanding    = "edge_banding"
)

// ProcessingTypes is the full set of allowed processing type identifiers.
var ProcessingTypes = []string{
	ProcessingCNCClassic,
	ProcessingCNCRifled,
	ProcessingGlassSandblast,
	ProcessingGlassDrill,
	ProcessingPainting,
	ProcessingEdgeBanding,
}

// ValidProcessingType reports whether t is a known processing type identifier.
func ValidProcessingType(t string) bool {
	for _, known := range ProcessingTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Processing is a manufacturing operation applied to one of a module's
// materials. Area is square meters for surface operations; for discrete
// operations such as glass_drill it holds the unit count.
type Processing struct {
	Type       string  `json:"type"`
	MaterialID string  `json:"materialId"`
	Area       float64 `json:"area"`
}

// NewProcessing validates and builds a Processing entry.
func NewProcessing(processingType, materialID string, area float64) (Processing, error) {
	if !ValidProcessingType(processingType) {
		return Processing{}, fmt.Errorf("unknown processing type %q", processingType)
	}
	if materialID == "" {
		return Processing{}, fmt.Errorf("processing %s: material id is required", processingType)
	}
	if area < 0 {
		return Processing{}, fmt.Errorf("processing %s: area must not be negative", processingType)
	}
	return Processing{Type: processingType, MaterialID: materialID, Area: area}, nil
}
