package rules

import (
	"strings"

	"github.com/atelier-mobila/configurator/internal/domain"
)

// Condition kinds. Each kind reads exactly one payload group on Condition.
const (
	CondModuleType = "module_type"
	CondDimension  = "dimension"
	CondPredicate  = "predicate"
)

// Dimension axes for CondDimension.
const (
	AxisWidth  = "width"
	AxisHeight = "height"
	AxisDepth  = "depth"
)

// Named predicates for CondPredicate. Predicates keep the rule table
// declarative for checks that need more than a field comparison.
const (
	PredNoHandle            = "no_handle"
	PredGlassDoor           = "glass_door"
	PredShelfWithoutSupport = "shelf_without_support"
	PredPaintedNonMDF       = "painted_non_mdf"
	PredDrawerWithoutSlide  = "drawer_without_slide"
	PredBaseWithoutFoot     = "base_without_foot"
)

// Condition is a tagged variant: Kind selects which payload fields apply.
type Condition struct {
	Kind string `json:"kind"`

	// CondModuleType payload.
	ModuleType string `json:"moduleType,omitempty"`

	// CondDimension payload.
	Axis    string  `json:"axis,omitempty"`
	Op      string  `json:"op,omitempty"`
	ValueMM float64 `json:"valueMm,omitempty"`

	// CondPredicate payload.
	Predicate string `json:"predicate,omitempty"`
}

// Consequence kinds.
const (
	ConsequenceSuggest = "suggest"
	ConsequenceWarning = "warning"
	ConsequenceError   = "error"
	ConsequenceBlock   = "block"
)

// Selector narrows the catalog when resolving a suggestion. Target is
// "accessory", "material" or "processing"; Manufacturer and Code optionally
// restrict the match further.
type Selector struct {
	Target       string `json:"target"`
	Type         string `json:"type"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Code         string `json:"code,omitempty"`
}

// Consequence describes what a fired rule produces. Blocked may accompany any
// kind: it marks configuration options the UI should disable.
type Consequence struct {
	Kind     string   `json:"kind"`
	Selector Selector `json:"selector"`
	Message  string   `json:"message,omitempty"`
	Blocked  []string `json:"blocked,omitempty"`
}

// Rule is one declarative condition → consequence mapping.
type Rule struct {
	ID          string      `json:"id"`
	Condition   Condition   `json:"condition"`
	Consequence Consequence `json:"consequence"`
}

// Suggestion is a concrete, resolved proposal. The engine never applies it;
// the caller decides whether to accept.
type Suggestion struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Outcome aggregates everything the fired rules produced.
type Outcome struct {
	Suggestions    []Suggestion `json:"suggestions"`
	Warnings       []string     `json:"warnings"`
	Errors         []string     `json:"errors"`
	BlockedOptions []string     `json:"blockedOptions"`
}

// Evaluate runs every rule against the module, in declaration order, with no
// short-circuiting: all fired consequences are combined. Catalogs are passed
// as ordered lists because suggestion resolution is a first-match over source
// order.
func Evaluate(ruleSet []Rule, module domain.FurnitureModule, materials []domain.Material, accessories []domain.AccessoryItem) Outcome {
	outcome := Outcome{
		Suggestions:    []Suggestion{},
		Warnings:       []string{},
		Errors:         []string{},
		BlockedOptions: []string{},
	}
	materialIndex := domain.MaterialIndex(materials)
	blocked := map[string]bool{}

	for _, rule := range ruleSet {
		if !conditionHolds(rule.Condition, module, materialIndex) {
			continue
		}

		switch rule.Consequence.Kind {
		case ConsequenceSuggest:
			if suggestion, ok := resolveSuggestion(rule.Consequence, materials, accessories); ok {
				outcome.Suggestions = append(outcome.Suggestions, suggestion)
			}
		case ConsequenceWarning:
			outcome.Warnings = append(outcome.Warnings, rule.Consequence.Message)
		case ConsequenceError:
			outcome.Errors = append(outcome.Errors, rule.Consequence.Message)
		}

		for _, option := range rule.Consequence.Blocked {
			if !blocked[option] {
				blocked[option] = true
				outcome.BlockedOptions = append(outcome.BlockedOptions, option)
			}
		}
	}

	return outcome
}

// conditionHolds is the single dispatch point for all condition kinds.
func conditionHolds(cond Condition, module domain.FurnitureModule, materials map[string]domain.Material) bool {
	switch cond.Kind {
	case CondModuleType:
		return module.Type == cond.ModuleType
	case CondDimension:
		return compareDimension(dimensionValue(module, cond.Axis), cond.Op, cond.ValueMM)
	case CondPredicate:
		return predicateHolds(cond.Predicate, module, materials)
	}
	return false
}

func dimensionValue(module domain.FurnitureModule, axis string) float64 {
	switch axis {
	case AxisWidth:
		return module.WidthMM
	case AxisHeight:
		return module.HeightMM
	case AxisDepth:
		return module.DepthMM
	}
	return 0
}

func compareDimension(value float64, op string, threshold float64) bool {
	switch op {
	case "=":
		return value == threshold
	case "<":
		return value < threshold
	case ">":
		return value > threshold
	case "<=":
		return value <= threshold
	case ">=":
		return value >= threshold
	}
	return false
}

func predicateHolds(predicate string, module domain.FurnitureModule, materials map[string]domain.Material) bool {
	switch predicate {
	case PredNoHandle:
		return !module.HasAccessoryType(domain.AccessoryHandle) && !module.HasAccessoryType(domain.AccessoryPushSystem)
	case PredGlassDoor:
		door, ok := module.MaterialForPart(domain.PartDoor)
		if !ok {
			return false
		}
		material, found := materials[door.MaterialID]
		return found && material.Type == domain.MaterialGlass
	case PredShelfWithoutSupport:
		_, hasShelf := module.MaterialForPart(domain.PartShelf)
		return hasShelf && !module.HasAccessoryType(domain.AccessoryShelfSupport)
	case PredPaintedNonMDF:
		for _, p := range module.ProcessingOptions {
			if p.Type != domain.ProcessingPainting {
				continue
			}
			material, found := materials[p.MaterialID]
			if found && !isMDF(material.Type) {
				return true
			}
		}
		return false
	case PredDrawerWithoutSlide:
		return module.Type == domain.ModuleDrawerUnit && !module.HasAccessoryType(domain.AccessorySlide)
	case PredBaseWithoutFoot:
		return module.Type == domain.ModuleBaseCabinet && !module.HasAccessoryType(domain.AccessoryFoot)
	}
	return false
}

func isMDF(materialType string) bool {
	return materialType == domain.MaterialMDF || materialType == domain.MaterialMDFAGT
}

// resolveSuggestion turns a selector into a concrete proposal: the first
// catalog entry, in source order, matching the selector's type and optional
// manufacturer/code narrowing.
func resolveSuggestion(consequence Consequence, materials []domain.Material, accessories []domain.AccessoryItem) (Suggestion, bool) {
	selector := consequence.Selector

	switch selector.Target {
	case "accessory":
		for _, item := range accessories {
			if item.Type != selector.Type {
				continue
			}
			if selector.Manufacturer != "" && !strings.EqualFold(item.Manufacturer, selector.Manufacturer) {
				continue
			}
			return Suggestion{Type: "accessory", ID: item.ID, Name: item.Name, Reason: consequence.Message}, true
		}
	case "material":
		for _, m := range materials {
			if m.Type != selector.Type {
				continue
			}
			if selector.Manufacturer != "" && !strings.EqualFold(m.Manufacturer, selector.Manufacturer) {
				continue
			}
			if selector.Code != "" && !strings.EqualFold(m.Code, selector.Code) {
				continue
			}
			return Suggestion{Type: "material", ID: m.ID, Name: m.Name, Reason: consequence.Message}, true
		}
	case "processing":
		// Processing operations have no catalog; the type itself is the proposal.
		return Suggestion{Type: "processing", ID: selector.Type, Name: selector.Type, Reason: consequence.Message}, true
	}

	return Suggestion{}, false
}
