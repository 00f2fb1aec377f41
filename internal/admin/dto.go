// AngelaMos | 2026
// dto.go

package admin

import (
	"net/http"
	"time"

	"github.com/angelamos/accounts-api/internal/core"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = core.NormalizeEmail(r.Email)
}

type LoginResponse struct {
	Status  int            `json:"status"`
	Success bool           `json:"success"`
	Token   string         `json:"token"`
	Admin   *AdminResponse `json:"admin"`
}

type CreateRequest struct {
	Timezone      string  `json:"timezone"      validate:"required"`
	Locale        string  `json:"locale"        validate:"required"`
	Name          string  `json:"name"          validate:"required"`
	Email         string  `json:"email"         validate:"required,email"`
	Phone         *string `json:"phone"         validate:"omitempty,max=32"`
	Password1     string  `json:"password1"     validate:"required"`
	Password2     string  `json:"password2"     validate:"required"`
	AcceptedTerms bool    `json:"acceptedTerms"`
}

func (r *CreateRequest) Normalize() {
	r.Email = core.NormalizeEmail(r.Email)
}

type ReadRequest struct {
	ID string `json:"id" validate:"omitempty,uuid"`
}

type UpdateRequest struct {
	Timezone *string `json:"timezone"`
	Locale   *string `json:"locale"`
	Name     *string `json:"name"   validate:"omitempty,min=1"`
	Phone    *string `json:"phone"  validate:"omitempty,max=32"`
}

type QueryRequest struct {
	Active *bool  `json:"active"`
	Sort   string `json:"sort"`
	Page   int    `json:"page"  validate:"omitempty,min=1"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type QueryResponse struct {
	Status     int             `json:"status"`
	Success    bool            `json:"success"`
	Admins     []AdminResponse `json:"admins"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

type UpdatePasswordRequest struct {
	Password  string `json:"password"  validate:"required"`
	Password1 string `json:"password1" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

type ResetPasswordRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password1 string `json:"password1" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Email = core.NormalizeEmail(r.Email)
}

type ResetPasswordResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	// ResetLink is populated outside production only, so integration tests
	// can complete the flow without a mailbox.
	ResetLink string `json:"resetLink,omitempty"`
}

type ConfirmPasswordRequest struct {
	PasswordResetToken string `json:"passwordResetToken" validate:"required,len=64"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
}

func (r *UpdateEmailRequest) Normalize() {
	r.NewEmail = core.NormalizeEmail(r.NewEmail)
}

// AdminResponse is the outward shape of an account. Salt, hashes and reset
// token never leave the service.
type AdminResponse struct {
	ID            string     `json:"id"`
	Timezone      string     `json:"timezone"`
	Locale        string     `json:"locale"`
	Active        bool       `json:"active"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone,omitempty"`
	AcceptedTerms bool       `json:"acceptedTerms"`
	LoginCount    int        `json:"loginCount"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type AdminEnvelope struct {
	Status  int            `json:"status"`
	Success bool           `json:"success"`
	Admin   *AdminResponse `json:"admin"`
}

type MessageResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ToAdminResponse(a *Admin) *AdminResponse {
	return &AdminResponse{
		ID:            a.ID,
		Timezone:      a.Timezone,
		Locale:        a.Locale,
		Active:        a.Active,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		AcceptedTerms: a.AcceptedTerms,
		LoginCount:    a.LoginCount,
		LastLogin:     a.LastLogin,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func ToAdminResponseList(admins []Admin) []AdminResponse {
	out := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, *ToAdminResponse(&admins[i]))
	}
	return out
}

func NewAdminEnvelope(status int, a *Admin) AdminEnvelope {
	return AdminEnvelope{
		Status:  status,
		Success: true,
		Admin:   ToAdminResponse(a),
	}
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
	}
}
