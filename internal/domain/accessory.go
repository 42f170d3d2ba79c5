package domain

// Canonical accessory type identifiers.
const (
	AccessoryHinge        = "hinge"
	AccessorySlide        = "slide"
	AccessoryHandle       = "handle"
	AccessoryFoot         = "foot"
	AccessoryProfile      = "profile"
	AccessoryPushSystem   = "push_system"
	AccessoryShelfSupport = "shelf_support"
	AccessoryConnector    = "connector"
	AccessoryOther        = "other"
)

// AccessoryTypes is the full set of allowed accessory type identifiers.
var AccessoryTypes = []string{
	AccessoryHinge,
	AccessorySlide,
	AccessoryHandle,
	AccessoryFoot,
	AccessoryProfile,
	AccessoryPushSystem,
	AccessoryShelfSupport,
	AccessoryConnector,
	AccessoryOther,
}

// ValidAccessoryType reports whether t is a known accessory type identifier.
func ValidAccessoryType(t string) bool {
	for _, known := range AccessoryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AccessoryItem is an immutable catalog record for hardware that can be
// attached to a module (hinges, slides, handles, feet, ...).
type AccessoryItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Manufacturer  string   `json:"manufacturer"`
	Price         float64  `json:"price"`
	Compatibility []string `json:"compatibility"`
}

// CompatibleWithModule reports whether the item may attach to the given
// module type. An empty compatibility list means unrestricted.
func (a AccessoryItem) CompatibleWithModule(moduleType string) bool {
	if len(a.Compatibility) == 0 {
		return true
	}
	for _, mt := range a.Compatibility {
		if mt == moduleType {
			return true
		}
	}
	return false
}
