package validation

import (
	"fmt"
	"strings"

	"github.com/atelier-mobila/configurator/internal/domain"
)

// Report is the outcome of validating one module configuration.
//
// Errors block manufacturing, warnings and suggestions are advisory and never
// affect validity.
type Report struct {
	IsValid     bool     `json:"isValid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// ValidateModule checks a module's physical and manufacturing compatibility
// against resolved catalogs. Unlike pricing, an unresolved material or
// accessory reference is a hard error here: silently skipping it would hide a
// data-integrity problem.
func ValidateModule(module domain.FurnitureModule, materials map[string]domain.Material, accessories map[string]domain.AccessoryItem) Report {
	report := Report{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	checkReferences(module, materials, accessories, &report)
	checkProcessingCompatibility(module, materials, &report)
	checkAccessoryCompatibility(module, accessories, &report)
	checkRequiredAccessories(module, &report)
	collectSuggestions(module, materials, accessories, &report)

	report.IsValid = len(report.Errors) == 0
	return report
}

func checkReferences(module domain.FurnitureModule, materials map[string]domain.Material, accessories map[string]domain.AccessoryItem, report *Report) {
	seenMaterials := map[string]bool{}
	for _, mm := range module.Materials {
		if seenMaterials[mm.MaterialID] {
			continue
		}
		seenMaterials[mm.MaterialID] = true
		if _, ok := materials[mm.MaterialID]; !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("material %s not found", mm.MaterialID))
		}
	}

	for _, p := range module.ProcessingOptions {
		if seenMaterials[p.MaterialID] {
			continue
		}
		seenMaterials[p.MaterialID] = true
		if _, ok := materials[p.MaterialID]; !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("material %s not found", p.MaterialID))
		}
	}

	seenAccessories := map[string]bool{}
	for _, ma := range module.Accessories {
		if seenAccessories[ma.AccessoryItemID] {
			continue
		}
		seenAccessories[ma.AccessoryItemID] = true
		if _, ok := accessories[ma.AccessoryItemID]; !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("accessory %s not found", ma.AccessoryItemID))
		}
	}
}

func checkProcessingCompatibility(module domain.FurnitureModule, materials map[string]domain.Material, report *Report) {
	for _, p := range module.ProcessingOptions {
		material, ok := materials[p.MaterialID]
		if !ok {
			// Already reported as a missing reference.
			continue
		}

		switch p.Type {
		case domain.ProcessingPainting:
			if !material.Paintable {
				report.Errors = append(report.Errors, fmt.Sprintf("material %s (%s) is not paintable", material.ID, material.Name))
				continue
			}
		case domain.ProcessingEdgeBanding:
			if !material.Cantable {
				report.Errors = append(report.Errors, fmt.Sprintf("material %s (%s) cannot be edge-banded", material.ID, material.Name))
				continue
			}
		}

		if !material.SupportsOperation(p.Type) {
			report.Errors = append(report.Errors, fmt.Sprintf("processing %s is not compatible with material %s (%s)", p.Type, material.ID, material.Name))
		}
	}
}

func checkAccessoryCompatibility(module domain.FurnitureModule, accessories map[string]domain.AccessoryItem, report *Report) {
	for _, ma := range module.Accessories {
		item, ok := accessories[ma.AccessoryItemID]
		if !ok {
			// Already reported as a missing reference.
			continue
		}
		if !item.CompatibleWithModule(module.Type) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("accessory %s (%s) is not intended for %s modules", item.ID, item.Name, module.Type))
		}
	}
}

func checkRequiredAccessories(module domain.FurnitureModule, report *Report) {
	if module.Type == domain.ModuleBaseCabinet && !module.HasAccessoryType(domain.AccessoryFoot) {
		report.Warnings = append(report.Warnings, "base cabinet has no feet")
	}

	if module.Type == domain.ModuleDrawerUnit && !module.HasAccessoryType(domain.AccessorySlide) {
		report.Warnings = append(report.Warnings, "drawer unit has no slides")
	}

	_, hasDoor := module.MaterialForPart(domain.PartDoor)
	if domain.IsCabinetType(module.Type) && hasDoor && !module.HasAccessoryType(domain.AccessoryHinge) {
		report.Warnings = append(report.Warnings, "cabinet with a door has no hinges")
	}

	_, hasFront := module.MaterialForPart(domain.PartDrawerFront)
	if (hasDoor || hasFront) && !module.HasAccessoryType(domain.AccessoryHandle) && !module.HasAccessoryType(domain.AccessoryPushSystem) {
		report.Warnings = append(report.Warnings, "module has neither handles nor a push-open system")
	}
}

func collectSuggestions(module domain.FurnitureModule, materials map[string]domain.Material, accessories map[string]domain.AccessoryItem, report *Report) {
	if door, ok := module.MaterialForPart(domain.PartDoor); ok {
		if material, found := materials[door.MaterialID]; found && material.Type == domain.MaterialGlass && !module.HasAccessoryType(domain.AccessoryProfile) {
			report.Suggestions = append(report.Suggestions, "glass door: consider adding an aluminium profile frame")
		}
	}

	if _, ok := module.MaterialForPart(domain.PartShelf); ok && !module.HasAccessoryType(domain.AccessoryShelfSupport) {
		report.Suggestions = append(report.Suggestions, "shelf without supports: consider adding shelf supports")
	}

	if module.Type == domain.ModuleDrawerUnit && !hasSoftCloseSlide(module, accessories) {
		report.Suggestions = append(report.Suggestions, "drawer unit: consider upgrading to soft-close slides")
	}
}

// hasSoftCloseSlide reports whether any configured slide resolves to an item
// labeled soft-close. The quality is only visible in the catalog name.
func hasSoftCloseSlide(module domain.FurnitureModule, accessories map[string]domain.AccessoryItem) bool {
	for _, ma := range module.Accessories {
		if ma.Type != domain.AccessorySlide {
			continue
		}
		item, ok := accessories[ma.AccessoryItemID]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), "soft") {
			return true
		}
	}
	return false
}
