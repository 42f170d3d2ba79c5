package main

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/atelier-mobila/configurator/internal/config"
)

// newTestServer opens an in-memory database with the full schema and wraps it
// in a server. Schema mirrors the goose migrations.
func newTestServer(t *testing.T) *server {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE materials (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			manufacturer TEXT,
			supplier TEXT,
			type TEXT NOT NULL,
			thickness_mm REAL NOT NULL DEFAULT 18,
			price_per_sqm REAL NOT NULL,
			paintable BOOLEAN NOT NULL DEFAULT FALSE,
			cantable BOOLEAN NOT NULL DEFAULT FALSE,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			compatible_operations TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE accessories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			manufacturer TEXT,
			price REAL NOT NULL,
			compatibility TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE quotes (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			client_name TEXT,
			client_email TEXT,
			status TEXT NOT NULL DEFAULT 'draft',
			discount_percent REAL NOT NULL DEFAULT 0,
			breakdown_json TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			expires_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return &server{db: db, cfg: config.Config{Currency: "RON"}}
}

func seedMaterial(t *testing.T, srv *server, id, name, materialType string, pricePerSqm float64, paintable, cantable bool, ops string) {
	t.Helper()

	_, err := srv.db.Exec(`
		INSERT INTO materials (id, code, name, type, thickness_mm, price_per_sqm, paintable, cantable, available, compatible_operations)
		VALUES (?, ?, ?, ?, 18, ?, ?, ?, TRUE, ?)
	`, id, id, name, materialType, pricePerSqm, paintable, cantable, ops)
	if err != nil {
		t.Fatalf("failed to seed material: %v", err)
	}
}

func seedAccessory(t *testing.T, srv *server, id, name, accessoryType string, price float64) {
	t.Helper()

	_, err := srv.db.Exec(`
		INSERT INTO accessories (id, name, type, price, compatibility)
		VALUES (?, ?, ?, ?, '[]')
	`, id, name, accessoryType, price)
	if err != nil {
		t.Fatalf("failed to seed accessory: %v", err)
	}
}
