package auth

import (
	"context"

	"go-insights/internal/common/apperr"
	"go-insights/internal/config"
	"go-insights/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthServiceImpl struct {
	Config *config.Config
	Log    *zap.Logger
}

func NewAuthService(cfg *config.Config, log *zap.Logger) AuthService {
	return &AuthServiceImpl{Config: cfg, Log: log}
}

// Login exchanges the configured admin credentials for a JWT carrying the
// admin claim. There is no user store; this backend knows exactly one admin.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	if s.Config.AdminUser == "" || s.Config.AdminPass == "" {
		s.Log.Warn("admin credentials not configured")
		return "", apperr.Unauthorized("Server not configured for admin auth")
	}
	if username != s.Config.AdminUser || password != s.Config.AdminPass {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(username, true)
	if err != nil {
		s.Log.Error("token generation failed", zap.Error(err))
		return "", apperr.Persistence("Failed to issue token", err)
	}
	return token, nil
}
