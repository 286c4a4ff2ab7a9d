package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestHealthz(t *testing.T) {
	router := NewRouter()

	w := doRequest(router, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var payload struct {
		Status string `json:"status"`
	}
	decodeBody(t, w, &payload)
	if payload.Status != "ok" {
		t.Fatalf("unexpected status %q", payload.Status)
	}
}

func TestReadyzReportsFailingCheck(t *testing.T) {
	health := NewHealthHandlers(
		WithReadyCheck("store", func(ctx context.Context) error { return errors.New("closed") }),
	)
	router := NewRouter(WithHealthHandlers(health))

	w := doRequest(router, http.MethodGet, "/readyz", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var payload struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	decodeBody(t, w, &payload)
	if payload.Status != "unavailable" || payload.Checks["store"] != "closed" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestRouterErrorEnvelope(t *testing.T) {
	router := NewRouter(WithPublicRoutes(NewPublicHandlers().Routes))

	w := doRequest(router, http.MethodGet, "/api/v1/no/such/route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	decodeBody(t, w, &payload)
	if payload.Error != "route_not_found" || payload.Status != http.StatusNotFound {
		t.Fatalf("unexpected envelope %+v", payload)
	}

	w = doRequest(router, http.MethodPost, "/api/v1/public/products", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	decodeBody(t, w, &payload)
	if payload.Error != "method_not_allowed" {
		t.Fatalf("unexpected envelope %+v", payload)
	}
}
