package handlers

import (
	"testing"
	"time"

	"cosec/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		setupMock  func(*MockAuthService)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{"email": "admin@cosec.my", "password": "pw"},
			setupMock: func(m *MockAuthService) {
				m.On("Login", "admin@cosec.my", "pw").
					Return(&auth.Token{AccessToken: "jwt", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]interface{}{"email": "admin@cosec.my", "password": "nope"},
			setupMock: func(m *MockAuthService) {
				m.On("Login", "admin@cosec.my", "nope").Return(nil, auth.ErrInvalidCredentials)
			},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       map[string]interface{}{"email": "admin@cosec.my"},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			app := fiber.New()
			app.Post("/login", NewAuthHandler(svc, nil).Login)

			status, body := doJSON(t, app, "POST", "/login", tt.body)

			assert.Equal(t, tt.wantStatus, status)
			if status == fiber.StatusOK {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "jwt", data["access_token"])
				assert.Equal(t, "Bearer", data["token_type"])
			}
			svc.AssertExpectations(t)
		})
	}
}
