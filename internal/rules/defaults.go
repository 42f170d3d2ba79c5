package rules

import "github.com/atelier-mobila/configurator/internal/domain"

// DefaultRules is the rule set shipped with the configurator. Rules are
// evaluated in the order they appear here.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:        "drawer-needs-slides",
			Condition: Condition{Kind: CondPredicate, Predicate: PredDrawerWithoutSlide},
			Consequence: Consequence{
				Kind:     ConsequenceSuggest,
				Selector: Selector{Target: "accessory", Type: domain.AccessorySlide},
				Message:  "drawer units need slides",
			},
		},
		{
			ID:        "base-needs-feet",
			Condition: Condition{Kind: CondPredicate, Predicate: PredBaseWithoutFoot},
			Consequence: Consequence{
				Kind:     ConsequenceSuggest,
				Selector: Selector{Target: "accessory", Type: domain.AccessoryFoot},
				Message:  "base cabinets stand on adjustable feet",
			},
		},
		{
			ID:        "opening-hardware",
			Condition: Condition{Kind: CondPredicate, Predicate: PredNoHandle},
			Consequence: Consequence{
				Kind:     ConsequenceSuggest,
				Selector: Selector{Target: "accessory", Type: domain.AccessoryHandle},
				Message:  "module has no handle or push-open system",
			},
		},
		{
			ID:        "glass-door-profile",
			Condition: Condition{Kind: CondPredicate, Predicate: PredGlassDoor},
			Consequence: Consequence{
				Kind:     ConsequenceSuggest,
				Selector: Selector{Target: "accessory", Type: domain.AccessoryProfile},
				Message:  "glass doors mount in an aluminium profile frame",
			},
		},
		{
			ID:        "shelf-supports",
			Condition: Condition{Kind: CondPredicate, Predicate: PredShelfWithoutSupport},
			Consequence: Consequence{
				Kind:     ConsequenceSuggest,
				Selector: Selector{Target: "accessory", Type: domain.AccessoryShelfSupport},
				Message:  "shelves need supports",
			},
		},
		{
			ID:        "painting-requires-mdf",
			Condition: Condition{Kind: CondPredicate, Predicate: PredPaintedNonMDF},
			Consequence: Consequence{
				Kind:    ConsequenceError,
				Message: "painting requires an MDF substrate",
				Blocked: []string{"processing:" + domain.ProcessingPainting},
			},
		},
		{
			ID:        "no-glass-drawer-fronts",
			Condition: Condition{Kind: CondModuleType, ModuleType: domain.ModuleDrawerUnit},
			Consequence: Consequence{
				Kind:    ConsequenceBlock,
				Blocked: []string{"material:" + domain.MaterialGlass},
			},
		},
		{
			ID:        "wide-span",
			Condition: Condition{Kind: CondDimension, Axis: AxisWidth, Op: ">", ValueMM: 1200},
			Consequence: Consequence{
				Kind:    ConsequenceWarning,
				Message: "spans over 1200 mm sag; consider splitting into two modules",
			},
		},
		{
			ID:        "over-height",
			Condition: Condition{Kind: CondDimension, Axis: AxisHeight, Op: ">", ValueMM: 2700},
			Consequence: Consequence{
				Kind:    ConsequenceWarning,
				Message: "taller than a standard board; sides must be joined from two panels",
			},
		},
		{
			ID:        "island-connectors",
			Condition: Condition{Kind: CondModuleType, ModuleType: domain.ModuleIsland},
			Consequence: Consequence{
				Kind:     ConsequenceSuggest,
				Selector: Selector{Target: "accessory", Type: domain.AccessoryConnector},
				Message:  "islands are assembled from joined carcasses",
			},
		},
	}
}
