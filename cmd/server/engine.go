package main

import (
	"fmt"
	"net/http"

	"github.com/atelier-mobila/configurator/internal/domain"
	"github.com/atelier-mobila/configurator/internal/pricing"
	"github.com/atelier-mobila/configurator/internal/rules"
	"github.com/atelier-mobila/configurator/internal/validation"
)

type moduleRequest struct {
	Module domain.FurnitureModule `json:"module"`
}

// decodeModule reads and normalizes a module from the request body. Malformed
// configurations (unknown enums, non-positive quantities) are rejected here,
// at the boundary, so the engines never see them. A material line without an
// explicit quantity gets the geometry-derived part area.
func decodeModule(r *http.Request) (domain.FurnitureModule, error) {
	var req moduleRequest
	if err := decodeJSON(r, &req); err != nil {
		return domain.FurnitureModule{}, fmt.Errorf("invalid request body")
	}
	return normalizeModule(req.Module)
}

func normalizeModule(raw domain.FurnitureModule) (domain.FurnitureModule, error) {
	module, err := domain.NewFurnitureModule(raw.ID, raw.Name, raw.Type, raw.WidthMM, raw.HeightMM, raw.DepthMM)
	if err != nil {
		return domain.FurnitureModule{}, err
	}
	module.Position = raw.Position
	module.Rotation = raw.Rotation

	for _, mm := range raw.Materials {
		quantity := mm.Quantity
		if quantity == 0 {
			quantity = domain.PartArea(module, mm.Part)
		}
		checked, err := domain.NewModuleMaterial(mm.MaterialID, mm.Part, quantity)
		if err != nil {
			return domain.FurnitureModule{}, err
		}
		module.PutMaterial(checked)
	}

	for _, ma := range raw.Accessories {
		checked, err := domain.NewModuleAccessory(ma.AccessoryItemID, ma.Type, ma.Quantity)
		if err != nil {
			return domain.FurnitureModule{}, err
		}
		module.AddAccessory(checked)
	}

	for _, p := range raw.ProcessingOptions {
		checked, err := domain.NewProcessing(p.Type, p.MaterialID, p.Area)
		if err != nil {
			return domain.FurnitureModule{}, err
		}
		module.AddProcessing(checked)
	}

	return module, nil
}

func (s *server) handleModulePrice(w http.ResponseWriter, r *http.Request) {
	module, err := decodeModule(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	materials, accessories, err := s.loadCatalogs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalogs")
		return
	}

	result := pricing.ModulePrice(module, domain.MaterialIndex(materials), domain.AccessoryIndex(accessories))
	writeJSON(w, http.StatusOK, result)
}

func (s *server) handleModuleValidate(w http.ResponseWriter, r *http.Request) {
	module, err := decodeModule(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	materials, accessories, err := s.loadCatalogs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalogs")
		return
	}

	report := validation.ValidateModule(module, domain.MaterialIndex(materials), domain.AccessoryIndex(accessories))
	writeJSON(w, http.StatusOK, report)
}

func (s *server) handleModuleCombos(w http.ResponseWriter, r *http.Request) {
	module, err := decodeModule(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	materials, accessories, err := s.loadCatalogs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalogs")
		return
	}

	outcome := rules.Evaluate(rules.DefaultRules(), module, materials, accessories)
	writeJSON(w, http.StatusOK, outcome)
}

func (s *server) loadCatalogs() ([]domain.Material, []domain.AccessoryItem, error) {
	materials, err := s.loadMaterials()
	if err != nil {
		return nil, nil, err
	}
	accessories, err := s.loadAccessories()
	if err != nil {
		return nil, nil, err
	}
	return materials, accessories, nil
}
