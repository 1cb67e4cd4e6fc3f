package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/writewell/writewell/internal/httpserver/deps"
)

func newThemeRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/theme", GetTheme(d))
	r.Put("/api/theme", SetTheme(d))
	return r
}

func TestThemeEndpoint(t *testing.T) {
	d := newTestDeps()
	router := newThemeRouter(d)

	rec := doRequest(t, router, http.MethodGet, "/api/theme", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/theme status = %v, want 200", rec.Code)
	}
	var got themePayload
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Theme != "" {
		t.Errorf("initial theme = %q, want empty", got.Theme)
	}

	rec = doRequest(t, router, http.MethodPut, "/api/theme", `{"theme":"dark"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PUT dark status = %v, want 204: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/api/theme", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Theme != "dark" {
		t.Errorf("theme = %q after set, want dark", got.Theme)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	d := newTestDeps()
	router := newThemeRouter(d)

	for _, body := range []string{`{"theme":"sepia"}`, `{"theme":""}`, `{}`} {
		rec := doRequest(t, router, http.MethodPut, "/api/theme", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("PUT %s status = %v, want 400", body, rec.Code)
		}
	}
}
