// AngelaMos | 2026
// errcode_test.go

package errcode

import (
	"context"
	"net/http"
	"testing"

	"github.com/angelamos/accounts-api/internal/i18n"
)

func TestErrDefaultVariant(t *testing.T) {
	appErr := AdminInvalidCredentials.Err(context.Background())

	if appErr.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.Status)
	}
	if appErr.Success {
		t.Error("error envelope must have success=false")
	}
	if appErr.Code != "ADMIN.BAD_REQUEST_INVALID_CREDENTIALS" {
		t.Errorf("unexpected code %q", appErr.Code)
	}
	if appErr.Message != "Login failed. Email and/or password is incorrect." {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestErrIndexSelectsVariant(t *testing.T) {
	appErr := AdminInvalidArguments.ErrIndex(context.Background(), 1)

	want := "An account with this email already exists, please try again email."
	if appErr.Message != want {
		t.Errorf("expected duplicate-email variant, got %q", appErr.Message)
	}

	// Out-of-range index falls back to the default variant.
	appErr = AdminInvalidArguments.ErrIndex(context.Background(), 99)
	if appErr.Message != "One or more request arguments are invalid." {
		t.Errorf("expected default variant, got %q", appErr.Message)
	}
}

func TestMessageLocalizedCodeNever(t *testing.T) {
	ctx := i18n.WithLocale(context.Background(), "ko")
	appErr := AdminAccountDoesNotExist.Err(ctx)

	if appErr.Code != "ADMIN.BAD_REQUEST_ACCOUNT_DOES_NOT_EXIST" {
		t.Errorf("code must never be localized, got %q", appErr.Code)
	}
	if appErr.Message != "계정이 존재하지 않습니다." {
		t.Errorf("message must be localized, got %q", appErr.Message)
	}
}

func TestByCode(t *testing.T) {
	def, ok := ByCode("USER.BAD_REQUEST_ACCOUNT_INACTIVE")
	if !ok {
		t.Fatal("expected registered code")
	}
	if def.Status != http.StatusBadRequest {
		t.Errorf("unexpected status %d", def.Status)
	}

	if _, ok := ByCode("NOT.A.CODE"); ok {
		t.Error("unregistered code must not resolve")
	}
}

func TestAllEnumerable(t *testing.T) {
	defs := All()
	if len(defs) == 0 {
		t.Fatal("registry must not be empty")
	}

	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if _, dup := seen[d.Code]; dup {
			t.Errorf("duplicate code %q", d.Code)
		}
		seen[d.Code] = struct{}{}
		if len(d.Messages) == 0 {
			t.Errorf("code %q has no messages", d.Code)
		}
	}
}
