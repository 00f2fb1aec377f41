// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/errcode"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the user surface. Registration, login, activation
// and the reset flow are open; everything else requires a user token.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/create", h.Create)
		r.Post("/confirmlogin", h.ConfirmLogin)
		r.Post("/resetpassword", h.ResetPassword)
		r.Post("/confirmpassword", h.ConfirmPassword)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/read", h.Read)
			r.Post("/read", h.Read)
			r.Post("/update", h.Update)
			r.Post("/query", h.Query)
			r.Post("/updatepassword", h.UpdatePassword)
			r.Post("/updateemail", h.UpdateEmail)
			r.Post("/export", h.Export)
		})
	})
}

func (h *Handler) decode(
	w http.ResponseWriter,
	r *http.Request,
	dst any,
) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.JSONError(w, errcode.UserInvalidArguments.Err(r.Context()))
		return false
	}

	// Coerce before validation so a padded email still passes the format
	// check in its canonical form.
	if n, ok := dst.(interface{ Normalize() }); ok {
		n.Normalize()
	}

	if err := h.validator.Struct(dst); err != nil {
		core.JSONError(w, errcode.UserInvalidArguments.ErrMessage(
			r.Context(), core.FormatValidationError(err),
		))
		return false
	}

	return true
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, resp.Status, resp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req, clientIP(r))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, resp.Status, resp)
}

func (h *Handler) ConfirmLogin(w http.ResponseWriter, r *http.Request) {
	var req ConfirmLoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.ConfirmLogin(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(
		w,
		http.StatusOK,
		NewMessageResponse("Account has been confirmed."),
	)
}

// Read accepts the target id in the query string (GET) or body (POST) and
// defaults to the caller's own account.
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	var req ReadRequest

	if r.Method == http.MethodGet {
		req.ID = r.URL.Query().Get("id")
	} else if r.Body != nil && r.ContentLength != 0 {
		if !h.decode(w, r, &req) {
			return
		}
	}

	account, err := h.service.Read(r.Context(), req.ID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, http.StatusOK, NewUserEnvelope(http.StatusOK, account))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.service.Update(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, http.StatusOK, NewUserEnvelope(http.StatusOK, account))
}

func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Query(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, resp.Status, resp)
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.UpdatePassword(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(
		w,
		http.StatusOK,
		NewMessageResponse("Password has been updated."),
	)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.ResetPassword(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, resp.Status, resp)
}

func (h *Handler) ConfirmPassword(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.ConfirmPassword(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(
		w,
		http.StatusOK,
		NewMessageResponse("Password has been confirmed and updated."),
	)
}

func (h *Handler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmailRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.service.UpdateEmail(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(w, http.StatusOK, NewUserEnvelope(http.StatusOK, account))
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Export(r.Context()); err != nil {
		core.JSONError(w, err)
		return
	}

	core.WriteJSON(
		w,
		http.StatusAccepted,
		MessageResponse{
			Status:  http.StatusAccepted,
			Success: true,
			Message: "Export has been queued.",
		},
	)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
