package domain

import "fmt"

// Canonical furniture module type identifiers.
const (
	ModuleBaseCabinet   = "base_cabinet"
	ModuleWallCabinet   = "wall_cabinet"
	ModuleTallCabinet   = "tall_cabinet"
	ModuleDrawerUnit    = "drawer_unit"
	ModuleCornerCabinet = "corner_cabinet"
	ModuleIsland        = "island"
	ModuleShelfUnit     = "shelf_unit"
	ModuleOther         = "other"
)

// ModuleTypes is the full set of allowed module type identifiers.
var ModuleTypes = []string{
	ModuleBaseCabinet,
	ModuleWallCabinet,
	ModuleTallCabinet,
	ModuleDrawerUnit,
	ModuleCornerCabinet,
	ModuleIsland,
	ModuleShelfUnit,
	ModuleOther,
}

// ValidModuleType reports whether t is a known module type identifier.
func ValidModuleType(t string) bool {
	for _, known := range ModuleTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsCabinetType reports whether the module type is a carcass cabinet, the
// family the hinge requirement applies to.
func IsCabinetType(t string) bool {
	switch t {
	case ModuleBaseCabinet, ModuleWallCabinet, ModuleTallCabinet, ModuleCornerCabinet:
		return true
	}
	return false
}

// Canonical module part identifiers a material can be assigned to.
const (
	PartBody        = "body"
	PartDoor        = "door"
	PartDrawerFront = "drawer_front"
	PartBackPanel   = "back_panel"
	PartShelf       = "shelf"
)

// Parts is the full set of allowed part identifiers.
var Parts = []string{
	PartBody,
	PartDoor,
	PartDrawerFront,
	PartBackPanel,
	PartShelf,
}

// ValidPart reports whether p is a known part identifier.
func ValidPart(p string) bool {
	for _, known := range Parts {
		if p == known {
			return true
		}
	}
	return false
}

// ModuleMaterial assigns a catalog material to one part of a module.
// Quantity is the part's surface in square meters, normally derived from the
// module geometry via PartArea.
type ModuleMaterial struct {
	MaterialID string  `json:"materialId"`
	Part       string  `json:"part"`
	Quantity   float64 `json:"quantity"`
}

// NewModuleMaterial validates and builds a ModuleMaterial entry.
func NewModuleMaterial(materialID, part string, quantity float64) (ModuleMaterial, error) {
	if materialID == "" {
		return ModuleMaterial{}, fmt.Errorf("module material: material id is required")
	}
	if !ValidPart(part) {
		return ModuleMaterial{}, fmt.Errorf("unknown module part %q", part)
	}
	if quantity <= 0 {
		return ModuleMaterial{}, fmt.Errorf("module material %s: quantity must be positive", part)
	}
	return ModuleMaterial{MaterialID: materialID, Part: part, Quantity: quantity}, nil
}

// ModuleAccessory attaches a catalog accessory to a module. Type mirrors the
// referenced item's type so filtering does not need a catalog lookup.
type ModuleAccessory struct {
	AccessoryItemID string `json:"accessoryItemId"`
	Type            string `json:"type"`
	Quantity        int    `json:"quantity"`
}

// NewModuleAccessory validates and builds a ModuleAccessory entry.
func NewModuleAccessory(accessoryItemID, accessoryType string, quantity int) (ModuleAccessory, error) {
	if accessoryItemID == "" {
		return ModuleAccessory{}, fmt.Errorf("module accessory: accessory item id is required")
	}
	if !ValidAccessoryType(accessoryType) {
		return ModuleAccessory{}, fmt.Errorf("unknown accessory type %q", accessoryType)
	}
	if quantity < 1 {
		return ModuleAccessory{}, fmt.Errorf("module accessory %s: quantity must be at least 1", accessoryItemID)
	}
	return ModuleAccessory{AccessoryItemID: accessoryItemID, Type: accessoryType, Quantity: quantity}, nil
}

// FurnitureModule is a single configurable furniture unit inside a project.
//
// Price is a cached value: it holds the last pricing result for the current
// materials/accessories/processing configuration. Every mutator on this type
// clears it, so a stale price can never be observed through CachedPrice.
type FurnitureModule struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	WidthMM           float64           `json:"width"`
	HeightMM          float64           `json:"height"`
	DepthMM           float64           `json:"depth"`
	Position          [3]float64        `json:"position"`
	Rotation          [3]float64        `json:"rotation"`
	Materials         []ModuleMaterial  `json:"materials"`
	Accessories       []ModuleAccessory `json:"accessories"`
	ProcessingOptions []Processing      `json:"processingOptions"`
	Price             float64           `json:"price"`
	PriceValid        bool              `json:"priceValid"`
}

// NewFurnitureModule validates and builds an empty module.
func NewFurnitureModule(id, name, moduleType string, widthMM, heightMM, depthMM float64) (FurnitureModule, error) {
	if !ValidModuleType(moduleType) {
		return FurnitureModule{}, fmt.Errorf("unknown module type %q", moduleType)
	}
	if widthMM <= 0 || heightMM <= 0 || depthMM <= 0 {
		return FurnitureModule{}, fmt.Errorf("module %s: dimensions must be positive", name)
	}
	return FurnitureModule{
		ID:       id,
		Name:     name,
		Type:     moduleType,
		WidthMM:  widthMM,
		HeightMM: heightMM,
		DepthMM:  depthMM,
	}, nil
}

// SetDimensions updates the module geometry and invalidates the cached price.
func (m *FurnitureModule) SetDimensions(widthMM, heightMM, depthMM float64) error {
	if widthMM <= 0 || heightMM <= 0 || depthMM <= 0 {
		return fmt.Errorf("module %s: dimensions must be positive", m.Name)
	}
	m.WidthMM, m.HeightMM, m.DepthMM = widthMM, heightMM, depthMM
	m.invalidatePrice()
	return nil
}

// PutMaterial assigns a material to a part, replacing any previous assignment
// for the same part. At most one material per part is kept.
func (m *FurnitureModule) PutMaterial(mm ModuleMaterial) {
	for i, existing := range m.Materials {
		if existing.Part == mm.Part {
			m.Materials[i] = mm
			m.invalidatePrice()
			return
		}
	}
	m.Materials = append(m.Materials, mm)
	m.invalidatePrice()
}

// AddAccessory appends an accessory line and invalidates the cached price.
func (m *FurnitureModule) AddAccessory(ma ModuleAccessory) {
	m.Accessories = append(m.Accessories, ma)
	m.invalidatePrice()
}

// RemoveAccessory drops every accessory line referencing the given item id.
func (m *FurnitureModule) RemoveAccessory(accessoryItemID string) {
	kept := m.Accessories[:0]
	for _, ma := range m.Accessories {
		if ma.AccessoryItemID != accessoryItemID {
			kept = append(kept, ma)
		}
	}
	m.Accessories = kept
	m.invalidatePrice()
}

// AddProcessing appends a processing entry and invalidates the cached price.
func (m *FurnitureModule) AddProcessing(p Processing) {
	m.ProcessingOptions = append(m.ProcessingOptions, p)
	m.invalidatePrice()
}

// SetPrice caches a freshly computed total for the current configuration.
func (m *FurnitureModule) SetPrice(total float64) {
	m.Price = total
	m.PriceValid = true
}

// CachedPrice returns the cached total and whether it is current.
func (m *FurnitureModule) CachedPrice() (float64, bool) {
	return m.Price, m.PriceValid
}

func (m *FurnitureModule) invalidatePrice() {
	m.Price = 0
	m.PriceValid = false
}

// MaterialForPart returns the material assigned to the given part, if any.
func (m *FurnitureModule) MaterialForPart(part string) (ModuleMaterial, bool) {
	for _, mm := range m.Materials {
		if mm.Part == part {
			return mm, true
		}
	}
	return ModuleMaterial{}, false
}

// HasAccessoryType reports whether any accessory line has the given type.
func (m *FurnitureModule) HasAccessoryType(accessoryType string) bool {
	for _, ma := range m.Accessories {
		if ma.Type == accessoryType {
			return true
		}
	}
	return false
}

// PartArea derives the default surface in square meters for a part from the
// module geometry. Used when a material is assigned without an explicit
// quantity.
func PartArea(m FurnitureModule, part string) float64 {
	w := m.WidthMM / 1000
	h := m.HeightMM / 1000
	d := m.DepthMM / 1000

	switch part {
	case PartBody:
		// Two side panels plus top and bottom.
		return 2*h*d + 2*w*d
	case PartDoor, PartDrawerFront, PartBackPanel:
		return w * h
	case PartShelf:
		return w * d
	}
	return 0
}
