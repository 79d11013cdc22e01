package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func pingOK(context.Context) error   { return nil }
func pingDown(context.Context) error { return errors.New("connection refused") }

func checkHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()
	c, rec := newContext(http.MethodGet, "/health", "", nil)
	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name     string
		database Pinger
		cache    Pinger
		code     int
		status   string
		db       string
		cacheVal any
	}{
		{"healthy without cache", pingOK, nil, http.StatusOK, "healthy", "connected", nil},
		{"healthy with cache", pingOK, pingOK, http.StatusOK, "healthy", "connected", "connected"},
		{"cache down stays healthy", pingOK, pingDown, http.StatusOK, "healthy", "connected", "disconnected"},
		{"database down", pingDown, pingOK, http.StatusServiceUnavailable, "unhealthy", "disconnected", "connected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := checkHealth(t, NewHealthHandler(tc.database, tc.cache))
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if resp["status"] != tc.status || resp["database"] != tc.db || resp["cache"] != tc.cacheVal {
				t.Fatalf("unexpected payload: %+v", resp)
			}
			if _, ok := resp["timestamp"]; !ok {
				t.Fatal("timestamp missing")
			}
		})
	}
}
