// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/errcode"
)

// Namespace is one of the two disjoint account namespaces. Tokens minted for
// one namespace are rejected by the other's verification middleware.
type Namespace string

const (
	NamespaceAdmin Namespace = "admin"
	NamespaceUser  Namespace = "user"
)

// Scheme is the Authorization header scheme that selects this namespace,
// e.g. "Authorization: jwt-admin <token>".
func (n Namespace) Scheme() string {
	return "jwt-" + string(n)
}

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	NamespaceKey contextKey = "namespace"
	AccountKey   contextKey = "account"
)

type TokenVerifier interface {
	VerifyToken(
		ctx context.Context,
		ns Namespace,
		token string,
	) (accountID string, err error)
}

// AccountResolver re-loads the authenticated account row for each request.
// Return an error (core.ErrNotFound for a vanished or soft-deleted account)
// to fail authentication; a stale token is not a server error.
type AccountResolver func(ctx context.Context, id string) (any, error)

// Authenticator builds the verification middleware for one namespace. The
// scheme prefix of the Authorization header must match the namespace, the
// token signature and claims must verify, and the account must still exist.
func Authenticator(
	verifier TokenVerifier,
	ns Namespace,
	resolve AccountResolver,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, ns.Scheme())
			if token == "" {
				core.JSONError(w, errcode.Unauthorized.Err(r.Context()))
				return
			}

			accountID, err := verifier.VerifyToken(r.Context(), ns, token)
			if err != nil {
				core.JSONError(w, errcode.Unauthorized.Err(r.Context()))
				return
			}

			account, err := resolve(r.Context(), accountID)
			if err != nil {
				core.JSONError(w, errcode.Unauthorized.Err(r.Context()))
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, AccountIDKey, accountID)
			ctx = context.WithValue(ctx, NamespaceKey, ns)
			ctx = context.WithValue(ctx, AccountKey, account)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken pulls the bearer token out of the Authorization header when
// the scheme matches. A mismatched scheme yields "" so an admin token never
// reaches the user verifier and vice versa.
func ExtractToken(r *http.Request, scheme string) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetAccountID(ctx context.Context) string {
	if id, ok := ctx.Value(AccountIDKey).(string); ok {
		return id
	}
	return ""
}

func GetNamespace(ctx context.Context) Namespace {
	if ns, ok := ctx.Value(NamespaceKey).(Namespace); ok {
		return ns
	}
	return ""
}

// GetAccount returns the account row loaded by the authenticator; callers
// assert it back to their feature's entity type.
func GetAccount(ctx context.Context) any {
	return ctx.Value(AccountKey)
}

func IsAuthenticated(ctx context.Context) bool {
	return GetAccountID(ctx) != ""
}
