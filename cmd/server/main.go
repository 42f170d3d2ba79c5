package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelier-mobila/configurator/internal/config"
	"github.com/atelier-mobila/configurator/internal/db"
	"github.com/atelier-mobila/configurator/internal/seed"
)

type server struct {
	db  *sql.DB
	cfg config.Config
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := db.Migrate(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to seed default catalog: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d catalog records", stats.Inserts)
	}

	srv := &server{db: database, cfg: cfg}

	r := chi.NewRouter()
	r.Get("/healthz", srv.handleHealth)
	r.Get("/materials", srv.handleMaterialsList)
	r.Post("/materials", srv.handleMaterialsCreate)
	r.Post("/materials/{id}", srv.handleMaterialsUpdate)
	r.Get("/accessories", srv.handleAccessoriesList)
	r.Post("/accessories", srv.handleAccessoriesCreate)
	r.Post("/accessories/{id}", srv.handleAccessoriesUpdate)
	r.Post("/modules/price", srv.handleModulePrice)
	r.Post("/modules/validate", srv.handleModuleValidate)
	r.Post("/modules/combos", srv.handleModuleCombos)
	r.Post("/quotes", srv.handleQuoteCreate)
	r.Get("/quotes", srv.handleQuotesList)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "currency": s.cfg.Currency})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
