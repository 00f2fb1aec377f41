// AngelaMos | 2026
// errcode.go

// Package errcode is the static registry of every error code the API can
// return. Codes are registered at compile time so the full set is
// enumerable; message text is localized at render time, codes never are.
package errcode

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/i18n"
)

// Def is one registered error kind. Messages holds the selectable message
// variants; index 0 is the default.
type Def struct {
	Code     string
	Status   int
	Messages []string
}

// Err builds the AppError for the default message variant.
func (d Def) Err(ctx context.Context) *core.AppError {
	return d.ErrIndex(ctx, 0)
}

// ErrIndex builds the AppError for the message variant at index.
func (d Def) ErrIndex(ctx context.Context, index int) *core.AppError {
	if index < 0 || index >= len(d.Messages) {
		index = 0
	}
	return core.NewAppError(d.Status, d.Code, i18n.T(ctx, d.Messages[index]))
}

// ErrMessage builds the AppError with a literal message override. The
// message is still passed through the locale catalog so known keys
// translate.
func (d Def) ErrMessage(ctx context.Context, message string) *core.AppError {
	return core.NewAppError(d.Status, d.Code, i18n.T(ctx, message))
}

var registry = map[string]Def{}

func register(d Def) Def {
	if _, dup := registry[d.Code]; dup {
		panic(fmt.Sprintf("errcode: duplicate code %q", d.Code))
	}
	if len(d.Messages) == 0 {
		panic(fmt.Sprintf("errcode: code %q has no messages", d.Code))
	}
	registry[d.Code] = d
	return d
}

// ByCode looks a definition up by its code string.
func ByCode(code string) (Def, bool) {
	d, ok := registry[code]
	return d, ok
}

// All returns every registered definition.
func All() []Def {
	defs := make([]Def, 0, len(registry))
	for _, d := range registry {
		defs = append(defs, d)
	}
	return defs
}

// Global codes.
var (
	Unauthorized = register(Def{
		Code:   "UNAUTHORIZED",
		Status: http.StatusUnauthorized,
		Messages: []string{
			"You do not have permission to make this request.",
		},
	})

	BadRequestInvalidArguments = register(Def{
		Code:   "BAD_REQUEST_INVALID_ARGUMENTS",
		Status: http.StatusBadRequest,
		Messages: []string{
			"One or more request arguments are invalid.",
		},
	})

	InternalServerError = register(Def{
		Code:   "INTERNAL_SERVER_ERROR",
		Status: http.StatusInternalServerError,
		Messages: []string{
			"An unexpected error has occurred.",
		},
	})

	ServiceUnavailable = register(Def{
		Code:   "SERVICE_UNAVAILABLE",
		Status: http.StatusServiceUnavailable,
		Messages: []string{
			"Server is in the process of shutting down or restarting.",
		},
	})
)

// Admin feature codes.
var (
	AdminInvalidCredentials = register(Def{
		Code:   "ADMIN.BAD_REQUEST_INVALID_CREDENTIALS",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Login failed. Email and/or password is incorrect.",
		},
	})

	AdminInvalidArguments = register(Def{
		Code:   "ADMIN.BAD_REQUEST_INVALID_ARGUMENTS",
		Status: http.StatusBadRequest,
		Messages: []string{
			"One or more request arguments are invalid.",
			"An account with this email already exists, please try again email.",
		},
	})

	AdminAccountInactive = register(Def{
		Code:   "ADMIN.BAD_REQUEST_ACCOUNT_INACTIVE",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Login failed. Account is inactive.",
		},
	})

	AdminAccountDeleted = register(Def{
		Code:   "ADMIN.BAD_REQUEST_ACCOUNT_DELETED",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Login failed. Account has been deleted.",
		},
	})

	AdminAccountDoesNotExist = register(Def{
		Code:   "ADMIN.BAD_REQUEST_ACCOUNT_DOES_NOT_EXIST",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Account does not exist.",
		},
	})
)

// User feature codes.
var (
	UserInvalidCredentials = register(Def{
		Code:   "USER.BAD_REQUEST_INVALID_CREDENTIALS",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Login failed. Email and/or password is incorrect.",
		},
	})

	UserInvalidArguments = register(Def{
		Code:   "USER.BAD_REQUEST_INVALID_ARGUMENTS",
		Status: http.StatusBadRequest,
		Messages: []string{
			"One or more request arguments are invalid.",
			"An account with this email already exists, please try again email.",
		},
	})

	UserAccountInactive = register(Def{
		Code:   "USER.BAD_REQUEST_ACCOUNT_INACTIVE",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Login failed. Account is inactive.",
		},
	})

	UserAccountDeleted = register(Def{
		Code:   "USER.BAD_REQUEST_ACCOUNT_DELETED",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Login failed. Account has been deleted.",
		},
	})

	UserAccountDoesNotExist = register(Def{
		Code:   "USER.BAD_REQUEST_ACCOUNT_DOES_NOT_EXIST",
		Status: http.StatusBadRequest,
		Messages: []string{
			"Account does not exist.",
		},
	})
)
