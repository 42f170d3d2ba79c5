package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/atelier-mobila/configurator/internal/domain"
)

func TestHandleMaterialsCreateAndList(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{
		"code": "W980 SM",
		"name": "PAL Alb Platinum",
		"manufacturer": "Egger",
		"type": "pal",
		"thicknessMm": 18,
		"pricePerSqm": 38.5,
		"cantable": true,
		"available": true,
		"compatibleOperations": ["cnc_classic", "edge_banding"]
	}`)
	req := httptest.NewRequest("POST", "/materials", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.handleMaterialsCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created domain.Material
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id, got %+v", created)
	}

	materials, err := srv.loadMaterials()
	if err != nil {
		t.Fatalf("loadMaterials: %v", err)
	}
	if len(materials) != 1 || materials[0].Name != "PAL Alb Platinum" || !materials[0].Cantable {
		t.Fatalf("unexpected materials: %+v", materials)
	}
	if !materials[0].SupportsOperation(domain.ProcessingEdgeBanding) {
		t.Fatalf("compatible operations lost on round-trip: %+v", materials[0])
	}
}

func TestHandleMaterialsCreate_RejectsInvalidInput(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name    string
		payload string
	}{
		{"unknown type", `{"name": "x", "type": "titanium", "thicknessMm": 18, "pricePerSqm": 10}`},
		{"missing name", `{"name": " ", "type": "pal", "thicknessMm": 18, "pricePerSqm": 10}`},
		{"zero price", `{"name": "x", "type": "pal", "thicknessMm": 18, "pricePerSqm": 0}`},
		{"bad operation", `{"name": "x", "type": "pal", "thicknessMm": 18, "pricePerSqm": 10, "compatibleOperations": ["laser"]}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/materials", bytes.NewReader([]byte(tc.payload)))
		rec := httptest.NewRecorder()
		srv.handleMaterialsCreate(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestHandleMaterialsUpdate_UnknownIdIs404(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{"name": "x", "type": "pal", "thicknessMm": 18, "pricePerSqm": 10}`)
	req := httptest.NewRequest("POST", "/materials/ghost", bytes.NewReader(payload))
	req = withURLParam(req, "id", "ghost")
	rec := httptest.NewRecorder()
	srv.handleMaterialsUpdate(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleAccessoriesCreateAndUpdate(t *testing.T) {
	srv := newTestServer(t)

	payload := []byte(`{"id": "acc-1", "name": "Balama", "type": "hinge", "manufacturer": "Blum", "price": 11.2}`)
	req := httptest.NewRequest("POST", "/accessories", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.handleAccessoriesCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	update := []byte(`{"name": "Balama Clip Top", "type": "hinge", "manufacturer": "Blum", "price": 12.9}`)
	req = httptest.NewRequest("POST", "/accessories/acc-1", bytes.NewReader(update))
	req = withURLParam(req, "id", "acc-1")
	rec = httptest.NewRecorder()
	srv.handleAccessoriesUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}

	accessories, err := srv.loadAccessories()
	if err != nil {
		t.Fatalf("loadAccessories: %v", err)
	}
	if len(accessories) != 1 || accessories[0].Name != "Balama Clip Top" || accessories[0].Price != 12.9 {
		t.Fatalf("unexpected accessories: %+v", accessories)
	}
}

func TestLoadMaterials_PreservesInsertionOrder(t *testing.T) {
	srv := newTestServer(t)
	seedMaterial(t, srv, "M3", "third", "pal", 10, false, false, `[]`)
	seedMaterial(t, srv, "M1", "first", "mdf", 20, true, true, `[]`)
	seedMaterial(t, srv, "M2", "second", "glass", 30, false, false, `[]`)

	materials, err := srv.loadMaterials()
	if err != nil {
		t.Fatalf("loadMaterials: %v", err)
	}
	if len(materials) != 3 || materials[0].ID != "M3" || materials[1].ID != "M1" || materials[2].ID != "M2" {
		t.Fatalf("insertion order not preserved: %+v", materials)
	}
}

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
