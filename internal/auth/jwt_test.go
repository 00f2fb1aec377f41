// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/angelamos/accounts-api/internal/config"
	"github.com/angelamos/accounts-api/internal/middleware"
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privatePath, publicPath); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath: privatePath,
		PublicKeyPath:  publicPath,
		TokenExpire:    time.Hour,
		Issuer:         "accounts-api-test",
		Audience:       "accounts-api-test-clients",
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	return manager
}

func TestTokenRoundTrip(t *testing.T) {
	manager := newTestManager(t)

	token, err := manager.CreateToken(middleware.NamespaceAdmin, "account-1")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	subject, err := manager.VerifyToken(
		context.Background(), middleware.NamespaceAdmin, token,
	)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != "account-1" {
		t.Errorf("expected subject account-1, got %q", subject)
	}
}

func TestNamespaceCrossRejection(t *testing.T) {
	manager := newTestManager(t)

	adminToken, err := manager.CreateToken(
		middleware.NamespaceAdmin, "account-1",
	)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	_, err = manager.VerifyToken(
		context.Background(), middleware.NamespaceUser, adminToken,
	)
	if err == nil {
		t.Error("admin token must be rejected under the user namespace")
	}

	userToken, err := manager.CreateToken(middleware.NamespaceUser, "account-2")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	_, err = manager.VerifyToken(
		context.Background(), middleware.NamespaceAdmin, userToken,
	)
	if err == nil {
		t.Error("user token must be rejected under the admin namespace")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.VerifyToken(
		context.Background(), middleware.NamespaceAdmin, "not-a-token",
	)
	if err == nil {
		t.Error("garbage token must not verify")
	}
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	manager := newTestManager(t)
	other := newTestManager(t)

	token, err := other.CreateToken(middleware.NamespaceAdmin, "account-1")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	_, err = manager.VerifyToken(
		context.Background(), middleware.NamespaceAdmin, token,
	)
	if err == nil {
		t.Error("token signed by another key must not verify")
	}
}
