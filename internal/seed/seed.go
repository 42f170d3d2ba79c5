package seed

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/atelier-mobila/configurator/internal/domain"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way: every catalog record is
// inserted only if its id is not present yet, inside a single transaction.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for _, m := range defaultMaterials() {
		if err := ensureMaterial(tx, m, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for _, a := range defaultAccessories() {
		if err := ensureAccessory(tx, a, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureMaterial(tx *sql.Tx, m domain.Material, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM materials WHERE id = ? LIMIT 1)`, m.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check material %s existence: %w", m.ID, err)
	}
	if exists {
		return nil
	}

	ops, err := json.Marshal(m.CompatibleOperations)
	if err != nil {
		return fmt.Errorf("marshal compatible operations for %s: %w", m.ID, err)
	}

	if _, err := tx.Exec(`
		INSERT INTO materials (id, code, name, manufacturer, supplier, type, thickness_mm, price_per_sqm, paintable, cantable, available, compatible_operations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Code, m.Name, m.Manufacturer, m.Supplier, m.Type, m.ThicknessMM, m.PricePerSqm, m.Paintable, m.Cantable, m.Available, string(ops)); err != nil {
		return fmt.Errorf("insert material %s: %w", m.ID, err)
	}
	stats.Inserts++
	return nil
}

func ensureAccessory(tx *sql.Tx, a domain.AccessoryItem, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM accessories WHERE id = ? LIMIT 1)`, a.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check accessory %s existence: %w", a.ID, err)
	}
	if exists {
		return nil
	}

	compat, err := json.Marshal(a.Compatibility)
	if err != nil {
		return fmt.Errorf("marshal compatibility for %s: %w", a.ID, err)
	}

	if _, err := tx.Exec(`
		INSERT INTO accessories (id, name, type, manufacturer, price, compatibility)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Name, a.Type, a.Manufacturer, a.Price, string(compat)); err != nil {
		return fmt.Errorf("insert accessory %s: %w", a.ID, err)
	}
	stats.Inserts++
	return nil
}

func defaultMaterials() []domain.Material {
	boardOps := []string{domain.ProcessingCNCClassic, domain.ProcessingEdgeBanding}
	mdfOps := []string{domain.ProcessingCNCClassic, domain.ProcessingCNCRifled, domain.ProcessingPainting, domain.ProcessingEdgeBanding}
	glassOps := []string{domain.ProcessingGlassSandblast, domain.ProcessingGlassDrill}

	return []domain.Material{
		{ID: "mat-pal-w980", Code: "W980 SM", Name: "PAL Alb Platinum", Manufacturer: "Egger", Supplier: "Depozit Central",
			Type: domain.MaterialPAL, ThicknessMM: 18, PricePerSqm: 38.50, Cantable: true, Available: true, CompatibleOperations: boardOps},
		{ID: "mat-pal-h1180", Code: "H1180 ST37", Name: "PAL Stejar Halifax", Manufacturer: "Egger", Supplier: "Depozit Central",
			Type: domain.MaterialPAL, ThicknessMM: 18, PricePerSqm: 52.90, Cantable: true, Available: true, CompatibleOperations: boardOps},
		{ID: "mat-mdf-vopsit", Code: "MDF-V18", Name: "MDF Vopsibil", Manufacturer: "Kastamonu", Supplier: "Depozit Central",
			Type: domain.MaterialMDF, ThicknessMM: 18, PricePerSqm: 61, Paintable: true, Cantable: true, Available: true, CompatibleOperations: mdfOps},
		{ID: "mat-mdf-agt-lucios", Code: "AGT-6001", Name: "MDF AGT Alb Lucios", Manufacturer: "AGT", Supplier: "Profil Grup",
			Type: domain.MaterialMDFAGT, ThicknessMM: 18, PricePerSqm: 86, Cantable: true, Available: true, CompatibleOperations: boardOps},
		{ID: "mat-pfl-alb", Code: "PFL-3", Name: "PFL Alb", Manufacturer: "Kronospan", Supplier: "Depozit Central",
			Type: domain.MaterialPFL, ThicknessMM: 3, PricePerSqm: 9.80, Available: true, CompatibleOperations: []string{domain.ProcessingCNCClassic}},
		{ID: "mat-sticla-clara", Code: "GL-4", Name: "Sticla Clara 4mm", Manufacturer: "Saint-Gobain", Supplier: "GlassExpert",
			Type: domain.MaterialGlass, ThicknessMM: 4, PricePerSqm: 74, Available: true, CompatibleOperations: glassOps},
		{ID: "mat-blat-stejar", Code: "BL-38", Name: "Blat Stejar Artisan", Manufacturer: "Egger", Supplier: "Depozit Central",
			Type: domain.MaterialCountertop, ThicknessMM: 38, PricePerSqm: 145, Available: true, CompatibleOperations: []string{domain.ProcessingCNCClassic}},
	}
}

func defaultAccessories() []domain.AccessoryItem {
	cabinets := []string{domain.ModuleBaseCabinet, domain.ModuleWallCabinet, domain.ModuleTallCabinet, domain.ModuleCornerCabinet}

	return []domain.AccessoryItem{
		{ID: "acc-balama-cliptop", Name: "Balama Clip Top 110", Type: domain.AccessoryHinge, Manufacturer: "Blum", Price: 11.20, Compatibility: cabinets},
		{ID: "acc-glisiera-std", Name: "Glisiera cu bile 450mm", Type: domain.AccessorySlide, Manufacturer: "Hafele", Price: 17.50,
			Compatibility: []string{domain.ModuleDrawerUnit, domain.ModuleBaseCabinet}},
		{ID: "acc-glisiera-tandem", Name: "Glisiera Tandem soft-close", Type: domain.AccessorySlide, Manufacturer: "Blum", Price: 64,
			Compatibility: []string{domain.ModuleDrawerUnit, domain.ModuleBaseCabinet}},
		{ID: "acc-maner-inox", Name: "Maner inox 128mm", Type: domain.AccessoryHandle, Manufacturer: "GTV", Price: 6.40},
		{ID: "acc-picior-reglabil", Name: "Picior reglabil 100mm", Type: domain.AccessoryFoot, Manufacturer: "GTV", Price: 2.10,
			Compatibility: []string{domain.ModuleBaseCabinet, domain.ModuleTallCabinet, domain.ModuleIsland}},
		{ID: "acc-profil-alu", Name: "Profil aluminiu rama sticla", Type: domain.AccessoryProfile, Manufacturer: "AGT", Price: 22},
		{ID: "acc-tipon", Name: "Sistem Tip-On push", Type: domain.AccessoryPushSystem, Manufacturer: "Blum", Price: 19.90},
		{ID: "acc-suport-polita", Name: "Suport polita cu blocare", Type: domain.AccessoryShelfSupport, Manufacturer: "Hafele", Price: 0.90},
		{ID: "acc-conector", Name: "Conector corp VB36", Type: domain.AccessoryConnector, Manufacturer: "Hafele", Price: 1.60},
	}
}
