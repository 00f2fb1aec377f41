// AngelaMos | 2026
// shutdown.go

package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/errcode"
)

// ShutdownState is the shared drain flag. The server flips it on when a
// termination signal arrives; the guard middleware then rejects new work
// while in-flight requests finish.
type ShutdownState struct {
	draining atomic.Bool
}

func NewShutdownState() *ShutdownState {
	return &ShutdownState{}
}

func (s *ShutdownState) StartDraining() {
	s.draining.Store(true)
}

func (s *ShutdownState) Draining() bool {
	return s.draining.Load()
}

// ShutdownGuard rejects requests with 503 once draining has begun. Load
// balancers see the failures and stop routing here before the listener
// closes.
func ShutdownGuard(state *ShutdownState) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if state.Draining() {
				w.Header().Set("Connection", "close")
				core.JSONError(
					w,
					errcode.ServiceUnavailable.Err(r.Context()),
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
