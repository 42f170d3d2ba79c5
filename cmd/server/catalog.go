package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atelier-mobila/configurator/internal/domain"
)

// loadMaterials reads the full material catalog in insertion order. Order
// matters: the rule engine's suggestion tie-break is first match over the
// source list.
func (s *server) loadMaterials() ([]domain.Material, error) {
	rows, err := s.db.Query(`
		SELECT id, code, name, COALESCE(manufacturer, ''), COALESCE(supplier, ''), type,
			thickness_mm, price_per_sqm, paintable, cantable, available, compatible_operations
		FROM materials
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	materials := make([]domain.Material, 0)
	for rows.Next() {
		var m domain.Material
		var ops string
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Manufacturer, &m.Supplier, &m.Type,
			&m.ThicknessMM, &m.PricePerSqm, &m.Paintable, &m.Cantable, &m.Available, &ops); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		if err := json.Unmarshal([]byte(ops), &m.CompatibleOperations); err != nil {
			return nil, fmt.Errorf("decode compatible operations for %s: %w", m.ID, err)
		}
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	return materials, nil
}

func (s *server) loadAccessories() ([]domain.AccessoryItem, error) {
	rows, err := s.db.Query(`
		SELECT id, name, type, COALESCE(manufacturer, ''), price, compatibility
		FROM accessories
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query accessories: %w", err)
	}
	defer rows.Close()

	accessories := make([]domain.AccessoryItem, 0)
	for rows.Next() {
		var a domain.AccessoryItem
		var compat string
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Manufacturer, &a.Price, &compat); err != nil {
			return nil, fmt.Errorf("scan accessory: %w", err)
		}
		if err := json.Unmarshal([]byte(compat), &a.Compatibility); err != nil {
			return nil, fmt.Errorf("decode compatibility for %s: %w", a.ID, err)
		}
		accessories = append(accessories, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accessories: %w", err)
	}

	return accessories, nil
}

func (s *server) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	materials, err := s.loadMaterials()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load materials")
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (s *server) handleMaterialsCreate(w http.ResponseWriter, r *http.Request) {
	var m domain.Material
	if err := decodeJSON(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if err := validateMaterial(m); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ops, err := json.Marshal(m.CompatibleOperations)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode material")
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO materials (id, code, name, manufacturer, supplier, type, thickness_mm, price_per_sqm, paintable, cantable, available, compatible_operations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Code, m.Name, m.Manufacturer, m.Supplier, m.Type, m.ThicknessMM, m.PricePerSqm, m.Paintable, m.Cantable, m.Available, string(ops))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create material")
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

func (s *server) handleMaterialsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var m domain.Material
	if err := decodeJSON(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m.ID = id

	if err := validateMaterial(m); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ops, err := json.Marshal(m.CompatibleOperations)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode material")
		return
	}

	result, err := s.db.Exec(`
		UPDATE materials
		SET
			code = ?,
			name = ?,
			manufacturer = ?,
			supplier = ?,
			type = ?,
			thickness_mm = ?,
			price_per_sqm = ?,
			paintable = ?,
			cantable = ?,
			available = ?,
			compatible_operations = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, m.Code, m.Name, m.Manufacturer, m.Supplier, m.Type, m.ThicknessMM, m.PricePerSqm, m.Paintable, m.Cantable, m.Available, string(ops), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update material")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update material")
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "material not found")
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (s *server) handleAccessoriesList(w http.ResponseWriter, r *http.Request) {
	accessories, err := s.loadAccessories()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load accessories")
		return
	}
	writeJSON(w, http.StatusOK, accessories)
}

func (s *server) handleAccessoriesCreate(w http.ResponseWriter, r *http.Request) {
	var a domain.AccessoryItem
	if err := decodeJSON(r, &a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	if err := validateAccessory(a); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	compat, err := json.Marshal(a.Compatibility)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode accessory")
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO accessories (id, name, type, manufacturer, price, compatibility)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Name, a.Type, a.Manufacturer, a.Price, string(compat))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create accessory")
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (s *server) handleAccessoriesUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var a domain.AccessoryItem
	if err := decodeJSON(r, &a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a.ID = id

	if err := validateAccessory(a); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	compat, err := json.Marshal(a.Compatibility)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode accessory")
		return
	}

	result, err := s.db.Exec(`
		UPDATE accessories
		SET
			name = ?,
			type = ?,
			manufacturer = ?,
			price = ?,
			compatibility = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, a.Name, a.Type, a.Manufacturer, a.Price, string(compat), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update accessory")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update accessory")
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "accessory not found")
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func validateMaterial(m domain.Material) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !domain.ValidMaterialType(m.Type) {
		return fmt.Errorf("unknown material type %q", m.Type)
	}
	if m.ThicknessMM <= 0 {
		return fmt.Errorf("thickness must be positive")
	}
	if m.PricePerSqm <= 0 {
		return fmt.Errorf("price per sqm must be positive")
	}
	for _, op := range m.CompatibleOperations {
		if !domain.ValidProcessingType(op) {
			return fmt.Errorf("unknown processing type %q", op)
		}
	}
	return nil
}

func validateAccessory(a domain.AccessoryItem) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !domain.ValidAccessoryType(a.Type) {
		return fmt.Errorf("unknown accessory type %q", a.Type)
	}
	if a.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	for _, mt := range a.Compatibility {
		if !domain.ValidModuleType(mt) {
			return fmt.Errorf("unknown module type %q", mt)
		}
	}
	return nil
}
