// Package auth authenticates the single marketplace administrator.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cosec/internal/logger"
	"cosec/internal/models"
	"cosec/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin credentials not configured")
)

type Service interface {
	Login(email, password string) (*Token, error)
	ParseToken(token string) (*models.AdminClaims, error)
}

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Config struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

type service struct {
	email        string
	passwordHash []byte
	secret       string
	ttl          time.Duration
	log          *logger.Logger
	now          func() time.Time
}

// NewService hashes the configured admin password once at startup.
func NewService(cfg Config, log *logger.Logger) (Service, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" || cfg.JWTSecret == "" {
		return nil, ErrNotConfigured
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &service{
		email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		passwordHash: hash,
		secret:       cfg.JWTSecret,
		ttl:          ttl,
		log:          log,
		now:          time.Now,
	}, nil
}

func (s *service) Login(email, password string) (*Token, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Always run bcrypt so an unknown email costs the same as a wrong password.
	pwErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if email != s.email || pwErr != nil {
		s.log.Warn("admin login failed", "email", email)
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	signed, err := utils.GenerateToken(s.email, s.secret, s.ttl, now)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("admin logged in", "email", email)
	return &Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: now.Add(s.ttl)}, nil
}

func (s *service) ParseToken(token string) (*models.AdminClaims, error) {
	return utils.ParseToken(token, s.secret)
}
