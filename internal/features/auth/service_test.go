package auth

import (
	"context"
	"testing"

	"go-insights/internal/common/apperr"
	"go-insights/internal/config"
	"go-insights/pkg/utils"

	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	cfg := &config.Config{AdminUser: "admin", AdminPass: "s3cret", JWTSecret: "test-secret"}
	utils.SetSecret(cfg.JWTSecret)
	svc := NewAuthService(cfg, zap.NewNop())
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin", "s3cret")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if !claims.IsAdmin {
			t.Error("issued token must carry the admin claim")
		}
		if claims.Username != "admin" {
			t.Errorf("Username = %q, want admin", claims.Username)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "nope")
		if !apperr.IsKind(err, apperr.KindAuth) {
			t.Fatalf("Login() error = %v, want auth error", err)
		}
	})

	t.Run("Unconfigured", func(t *testing.T) {
		empty := NewAuthService(&config.Config{}, zap.NewNop())
		_, err := empty.Login(ctx, "admin", "s3cret")
		if !apperr.IsKind(err, apperr.KindAuth) {
			t.Fatalf("Login() error = %v, want auth error", err)
		}
	})
}
