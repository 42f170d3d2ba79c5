package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelier-mobila/configurator/internal/quote"
)

func seedQuote(t *testing.T, srv *server, id, createdAt, clientName, clientEmail, breakdownJSON string) {
	t.Helper()

	_, err := srv.db.Exec(`
		INSERT INTO quotes (id, project_id, client_name, client_email, status, discount_percent, breakdown_json, created_at, expires_at)
		VALUES (?, 'prj-1', ?, ?, 'draft', 0, ?, ?, ?)
	`, id, clientName, clientEmail, breakdownJSON, createdAt, createdAt)
	if err != nil {
		t.Fatalf("failed to seed quote: %v", err)
	}
}

func TestListQuotesOrdersByDateDescAndReadsTotal(t *testing.T) {
	srv := newTestServer(t)

	seedQuote(t, srv, "q1", "2026-01-01T10:00:00Z", "Popescu", "p@example.com", `{"totalPrice": 100.50}`)
	seedQuote(t, srv, "q3", "2026-01-03T12:00:00Z", "Georgescu", "g@example.com", `{"totalPrice": 300.00}`)
	seedQuote(t, srv, "q2", "2026-01-02T11:00:00Z", "Ionescu", "i@example.com", `{"totalPrice": 200.25}`)

	quotes, err := srv.listQuotes("")
	if err != nil {
		t.Fatalf("listQuotes returned error: %v", err)
	}

	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}

	if quotes[0].ClientName != "Georgescu" || quotes[1].ClientName != "Ionescu" || quotes[2].ClientName != "Popescu" {
		t.Fatalf("quotes are not sorted desc by created_at: %+v", quotes)
	}

	if quotes[0].Total != 300.00 || quotes[1].Total != 200.25 || quotes[2].Total != 100.50 {
		t.Fatalf("unexpected totals: %+v", quotes)
	}
}

func TestListQuotesFilterByClientNameAndEmail(t *testing.T) {
	srv := newTestServer(t)

	seedQuote(t, srv, "q1", "2026-01-01T10:00:00Z", "Maria Ionescu", "maria@acme.ro", `{"totalPrice": 80}`)
	seedQuote(t, srv, "q2", "2026-01-02T10:00:00Z", "Dan Popa", "dan@ionescu.ro", `{"totalPrice": 120}`)
	seedQuote(t, srv, "q3", "2026-01-03T10:00:00Z", "Elena Radu", "elena@acme.ro", `{"totalPrice": 160}`)

	byName, err := srv.listQuotes("Radu")
	if err != nil {
		t.Fatalf("listQuotes name filter returned error: %v", err)
	}
	if len(byName) != 1 || byName[0].ClientName != "Elena Radu" {
		t.Fatalf("expected 1 quote filtered by name, got %+v", byName)
	}

	byEmail, err := srv.listQuotes("ionescu")
	if err != nil {
		t.Fatalf("listQuotes email filter returned error: %v", err)
	}
	if len(byEmail) != 2 {
		t.Fatalf("expected 2 quotes matching name or email, got %+v", byEmail)
	}
}

func TestExtractTotalFromJSON(t *testing.T) {
	if got := extractTotalFromJSON(`{"totalPrice": 42.5}`); got != 42.5 {
		t.Fatalf("totalPrice = %v, want 42.5", got)
	}
	if got := extractTotalFromJSON(`{"total": 10}`); got != 10 {
		t.Fatalf("total fallback = %v, want 10", got)
	}
	if got := extractTotalFromJSON(`not json`); got != 0 {
		t.Fatalf("malformed json = %v, want 0", got)
	}
}

func TestHandleQuoteCreate_PersistsDraftQuote(t *testing.T) {
	srv := newTestServer(t)
	seedMaterial(t, srv, "M1", "PFL", "pfl", 90, false, false, `["cnc_classic"]`)

	body := map[string]any{
		"project": map[string]any{
			"id":   "prj-1",
			"name": "Bucatarie",
			"modules": []map[string]any{{
				"id": "mod-1", "name": "Dulap", "type": "tall_cabinet",
				"width": 1000, "height": 1000, "depth": 1000,
				"materials": []map[string]any{{"materialId": "M1", "part": "body", "quantity": 10}},
			}},
		},
		"clientName":      "Maria Ionescu",
		"clientEmail":     "maria@example.com",
		"discountPercent": 10,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest("POST", "/quotes", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.handleQuoteCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created quote.Quote
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != quote.StatusDraft {
		t.Fatalf("status = %q, want draft", created.Status)
	}
	// 10 m2 at 90/m2 plus 1 m3 of labor, minus 10% discount, plus 19% VAT.
	if created.Breakdown.TotalPrice != 1071 {
		t.Fatalf("totalPrice = %v, want 1071", created.Breakdown.TotalPrice)
	}

	quotes, err := srv.listQuotes("Maria")
	if err != nil {
		t.Fatalf("listQuotes: %v", err)
	}
	if len(quotes) != 1 || quotes[0].Total != 1071 {
		t.Fatalf("quote not persisted correctly: %+v", quotes)
	}
}

func TestHandleQuoteCreate_RejectsBadDiscount(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{"project": {"id": "p", "name": "x", "modules": []}, "discountPercent": 120}`)
	req := httptest.NewRequest("POST", "/quotes", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.handleQuoteCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
