package pricing

import "github.com/atelier-mobila/configurator/internal/domain"

// Price per linear meter of edge banding, applied on top of the board price
// for cantable materials.
const EdgeBandingPricePerML = 3.5

// Hourly-equivalent rate used by the labor estimate, per cubic meter of
// module volume.
const laborRatePerCbm = 100.0

// Per-square-meter unit prices by processing type. glass_drill is priced per
// hole (the entry's Area field holds the hole count); edge_banding is zero
// because it is already accounted for inside the materials cost.
var processingUnitPrices = map[string]float64{
	domain.ProcessingCNCClassic:     60,
	domain.ProcessingCNCRifled:      68,
	domain.ProcessingGlassSandblast: 18,
	domain.ProcessingGlassDrill:     5,
	domain.ProcessingPainting:       45,
	domain.ProcessingEdgeBanding:    0,
}

// Breakdown decomposes a module price into its cost categories.
type Breakdown struct {
	Materials   float64 `json:"materials"`
	Accessories float64 `json:"accessories"`
	Processing  float64 `json:"processing"`
	Labor       float64 `json:"labor"`
}

// Result is the full pricing output for one module.
type Result struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// ModulePrice computes the cost breakdown for one module against resolved
// catalogs. It is pure and total: a material or accessory id that does not
// resolve simply contributes nothing, so a price is always computable even
// with dangling references (the validation engine reports those).
func ModulePrice(module domain.FurnitureModule, materials map[string]domain.Material, accessories map[string]domain.AccessoryItem) Result {
	breakdown := Breakdown{
		Materials:   materialsCost(module, materials),
		Accessories: accessoriesCost(module, accessories),
		Processing:  processingCost(module),
		Labor:       laborCost(module),
	}

	return Result{
		Total:     breakdown.Materials + breakdown.Accessories + breakdown.Processing + breakdown.Labor,
		Breakdown: breakdown,
	}
}

func materialsCost(module domain.FurnitureModule, materials map[string]domain.Material) float64 {
	cost := 0.0
	for _, mm := range module.Materials {
		material, ok := materials[mm.MaterialID]
		if !ok {
			continue
		}

		cost += material.PricePerSqm * mm.Quantity

		if material.Cantable {
			cost += edgeBandingLength(module, mm.Part) * EdgeBandingPricePerML
		}
	}
	return cost
}

// edgeBandingLength returns the banded edge length in meters for a part.
//
// The per-part formulas are empirical approximations carried over from the
// shop's costing sheet, not exact geometric derivations: the body aggregates
// both side-panel perimeters, fronts use the front perimeter, shelves band
// only the visible front edge.
func edgeBandingLength(module domain.FurnitureModule, part string) float64 {
	w := module.WidthMM / 1000
	h := module.HeightMM / 1000
	d := module.DepthMM / 1000

	switch part {
	case domain.PartBody:
		return 2 * (2 * (h + d))
	case domain.PartDoor, domain.PartDrawerFront:
		return 2 * (w + h)
	case domain.PartShelf:
		return w
	}
	return 0
}

func accessoriesCost(module domain.FurnitureModule, accessories map[string]domain.AccessoryItem) float64 {
	cost := 0.0
	for _, ma := range module.Accessories {
		item, ok := accessories[ma.AccessoryItemID]
		if !ok {
			continue
		}
		cost += item.Price * float64(ma.Quantity)
	}
	return cost
}

func processingCost(module domain.FurnitureModule) float64 {
	cost := 0.0
	for _, p := range module.ProcessingOptions {
		cost += processingUnitPrices[p.Type] * p.Area
	}
	return cost
}

// laborCost estimates assembly effort as module volume scaled by a complexity
// factor that grows with the number of configured accessory and processing
// lines.
func laborCost(module domain.FurnitureModule) float64 {
	volume := module.WidthMM * module.HeightMM * module.DepthMM / 1e9
	complexity := 1 + 0.1*float64(len(module.Accessories)) + 0.2*float64(len(module.ProcessingOptions))
	return volume * laborRatePerCbm * complexity
}
