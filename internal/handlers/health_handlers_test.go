package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		checks   map[string]HealthCheck
		wantCode int
	}{
		{"no checks", nil, http.StatusOK},
		{"all ok", map[string]HealthCheck{"database": func(context.Context) error { return nil }}, http.StatusOK},
		{"one failing", map[string]HealthCheck{
			"database": func(context.Context) error { return nil },
			"cache":    func(context.Context) error { return errors.New("connection refused") },
		}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.checks)
			r := gin.New()
			r.GET("/health", h.Health)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			var body struct {
				Status string `json:"status"`
				Error  *struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if tt.wantCode == http.StatusOK {
				if body.Status != "ok" || body.Error != nil {
					t.Errorf("unexpected healthy body: %s", rec.Body.String())
				}
				return
			}
			if body.Error == nil || body.Error.Code != utils.ErrCodeServiceUnavailable {
				t.Errorf("expected %s error code, got %s", utils.ErrCodeServiceUnavailable, rec.Body.String())
			}
		})
	}
}

func TestPing(t *testing.T) {
	r := gin.New()
	r.GET("/ping", NewHealthHandler(nil).Ping)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response: %d %s", rec.Code, rec.Body.String())
	}
}
