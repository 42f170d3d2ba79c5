package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atelier-mobila/configurator/internal/domain"
	"github.com/atelier-mobila/configurator/internal/quote"
)

type quoteRequest struct {
	Project         domain.Project `json:"project"`
	ClientName      string         `json:"clientName"`
	ClientEmail     string         `json:"clientEmail"`
	DiscountPercent float64        `json:"discountPercent"`
}

type quoteListItem struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"createdAt"`
	ClientName string  `json:"clientName"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
}

func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		writeError(w, http.StatusBadRequest, "discountPercent must be between 0 and 100")
		return
	}

	for i, module := range req.Project.Modules {
		normalized, err := normalizeModule(module)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("module %d: %v", i, err))
			return
		}
		req.Project.Modules[i] = normalized
	}

	materials, accessories, err := s.loadCatalogs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load catalogs")
		return
	}

	q := quote.Generate(req.Project, domain.MaterialIndex(materials), domain.AccessoryIndex(accessories),
		req.DiscountPercent, req.ClientName, req.ClientEmail)

	if err := s.insertQuote(q); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

func (s *server) insertQuote(q quote.Quote) error {
	breakdownJSON, err := json.Marshal(q.Breakdown)
	if err != nil {
		return fmt.Errorf("encode quote breakdown: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO quotes (id, project_id, client_name, client_email, status, discount_percent, breakdown_json, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.ProjectID, q.ClientName, q.ClientEmail, q.Status, q.Breakdown.DiscountPercent, string(breakdownJSON),
		q.CreatedAt.Format(time.RFC3339), q.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load quotes")
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			id,
			created_at,
			COALESCE(client_name, ''),
			status,
			breakdown_json
		FROM quotes
		WHERE (? = '' OR COALESCE(client_name, '') LIKE ? OR COALESCE(client_email, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		var breakdownJSON string
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.ClientName, &item.Status, &breakdownJSON); err != nil {
			return nil, err
		}
		item.Total = extractTotalFromJSON(breakdownJSON)
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

func extractTotalFromJSON(breakdownJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(breakdownJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"totalPrice", "total", "grand_total"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}
