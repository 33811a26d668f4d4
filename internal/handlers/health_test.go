package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantState  string
	}{
		{name: "all up", checks: map[string]Check{"database": ok, "redis": ok}, wantStatus: fiber.StatusOK, wantState: "ok"},
		{name: "redis down", checks: map[string]Check{"database": ok, "redis": down}, wantStatus: fiber.StatusServiceUnavailable, wantState: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.checks).HealthCheck)

			status, body := doJSON(t, app, "GET", "/health", nil)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantState, body["status"])
			services := body["services"].(map[string]interface{})
			assert.Equal(t, "connected", services["database"])
		})
	}
}
