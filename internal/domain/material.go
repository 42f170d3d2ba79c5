package domain

// Canonical material type identifiers.
//
// These values are stored in the database in the Material.Type field and are
// used throughout the engines as stable, language-agnostic keys. Human-facing
// labels belong to the consuming UI.
const (
	MaterialPAL        = "pal"
	MaterialMDF        = "mdf"
	MaterialMDFAGT     = "mdf_agt"
	MaterialPFL        = "pfl"
	MaterialGlass      = "glass"
	MaterialCountertop = "countertop"
)

// MaterialTypes is the full set of allowed material type identifiers.
//
// This slice is the single source of truth for validation and schema enums.
// Any new type must be added here to be considered valid.
var MaterialTypes = []string{
	MaterialPAL,
	MaterialMDF,
	MaterialMDFAGT,
	MaterialPFL,
	MaterialGlass,
	MaterialCountertop,
}

// ValidMaterialType reports whether t is a known material type identifier.
func ValidMaterialType(t string) bool {
	for _, known := range MaterialTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Material is an immutable catalog record for a board, glass or countertop
// product. The engines only read materials; the catalog owns their lifecycle.
type Material struct {
	ID                   string   `json:"id"`
	Code                 string   `json:"code"`
	Name                 string   `json:"name"`
	Manufacturer         string   `json:"manufacturer"`
	Supplier             string   `json:"supplier"`
	Type                 string   `json:"type"`
	ThicknessMM          float64  `json:"thicknessMm"`
	PricePerSqm          float64  `json:"pricePerSqm"`
	Paintable            bool     `json:"paintable"`
	Cantable             bool     `json:"cantable"`
	Available            bool     `json:"available"`
	CompatibleOperations []string `json:"compatibleOperations"`
}

// SupportsOperation reports whether the processing type is allowed on this material.
func (m Material) SupportsOperation(processingType string) bool {
	for _, op := range m.CompatibleOperations {
		if op == processingType {
			return true
		}
	}
	return false
}
