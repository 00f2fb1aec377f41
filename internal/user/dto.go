// AngelaMos | 2026
// dto.go

package user

import (
	"encoding/json"
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
	Status  int           `json:"status"`
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// CreateRequest is the open registration body. The account starts inactive
// and is activated through the emailed login-confirmation link.
type CreateRequest struct {
	Timezone        string          `json:"timezone"    validate:"required"`
	Locale          string          `json:"locale"      validate:"required"`
	Company         *string         `json:"company"     validate:"omitempty,max=128"`
	FirstName       string          `json:"firstName"   validate:"required,min=1"`
	LastName        string          `json:"lastName"    validate:"required,min=1"`
	Email           string          `json:"email"       validate:"required,email"`
	Phone           *string         `json:"phone"       validate:"omitempty,max=32"`
	Birthday        *string         `json:"birthday"    validate:"omitempty,datetime=2006-01-02"`
	Sex             *string         `json:"sex"         validate:"omitempty,oneof=MALE FEMALE OTHER"`
	CountryCode     *string         `json:"countryCode" validate:"omitempty,len=2"`
	Password1       string          `json:"password1"   validate:"required"`
	Password2       string          `json:"password2"   validate:"required"`
	AcceptedTerms   bool            `json:"acceptedTerms"`
	EmailSubscribed *bool           `json:"emailSubscribed"`
	PushSubscribed  *bool           `json:"pushSubscribed"`
	Interests       json.RawMessage `json:"interests"`
}

func (r *CreateRequest) Normalize() {
	r.Email = core.NormalizeEmail(r.Email)
}

type CreateResponse struct {
	Status  int           `json:"status"`
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
	// LoginLink is populated outside production only, so integration tests
	// can activate the account without a mailbox.
	LoginLink string `json:"loginLink,omitempty"`
}

type ReadRequest struct {
	ID string `json:"id" validate:"omitempty,uuid"`
}

type UpdateRequest struct {
	Timezone        *string         `json:"timezone"`
	Locale          *string         `json:"locale"`
	Company         *string         `json:"company"     validate:"omitempty,max=128"`
	FirstName       *string         `json:"firstName"   validate:"omitempty,min=1"`
	LastName        *string         `json:"lastName"    validate:"omitempty,min=1"`
	Phone           *string         `json:"phone"       validate:"omitempty,max=32"`
	Birthday        *string         `json:"birthday"    validate:"omitempty,datetime=2006-01-02"`
	Sex             *string         `json:"sex"         validate:"omitempty,oneof=MALE FEMALE OTHER"`
	CountryCode     *string         `json:"countryCode" validate:"omitempty,len=2"`
	EmailSubscribed *bool           `json:"emailSubscribed"`
	PushSubscribed  *bool           `json:"pushSubscribed"`
	Interests       json.RawMessage `json:"interests"`
}

type QueryRequest struct {
	Active *bool  `json:"active"`
	Sort   string `json:"sort"`
	Page   int    `json:"page"  validate:"omitempty,min=1"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type QueryResponse struct {
	Status     int            `json:"status"`
	Success    bool           `json:"success"`
	Users      []UserResponse `json:"users"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
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
	Status    int    `json:"status"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ResetLink string `json:"resetLink,omitempty"`
}

type ConfirmPasswordRequest struct {
	PasswordResetToken string `json:"passwordResetToken" validate:"required,len=64"`
}

type ConfirmLoginRequest struct {
	LoginConfirmationToken string `json:"loginConfirmationToken" validate:"required,len=64"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
}

func (r *UpdateEmailRequest) Normalize() {
	r.NewEmail = core.NormalizeEmail(r.NewEmail)
}

// UserResponse is the outward shape of an account. Salt, hashes, tokens and
// the captured IP never leave the service.
type UserResponse struct {
	ID              string          `json:"id"`
	Timezone        string          `json:"timezone"`
	Locale          string          `json:"locale"`
	Active          bool            `json:"active"`
	Company         *string         `json:"company,omitempty"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone,omitempty"`
	Birthday        *string         `json:"birthday,omitempty"`
	Sex             *string         `json:"sex,omitempty"`
	CountryCode     *string         `json:"countryCode,omitempty"`
	AcceptedTerms   bool            `json:"acceptedTerms"`
	EmailSubscribed bool            `json:"emailSubscribed"`
	PushSubscribed  bool            `json:"pushSubscribed"`
	Interests       json.RawMessage `json:"interests,omitempty"`
	LoginCount      int             `json:"loginCount"`
	LastLogin       *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type UserEnvelope struct {
	Status  int           `json:"status"`
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
}

type MessageResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ToUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		Timezone:        u.Timezone,
		Locale:          u.Locale,
		Active:          u.Active,
		Company:         u.Company,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Phone:           u.Phone,
		Birthday:        u.Birthday,
		Sex:             u.Sex,
		CountryCode:     u.CountryCode,
		AcceptedTerms:   u.AcceptedTerms,
		EmailSubscribed: u.EmailSubscribed,
		PushSubscribed:  u.PushSubscribed,
		Interests:       json.RawMessage(u.Interests),
		LoginCount:      u.LoginCount,
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *ToUserResponse(&users[i]))
	}
	return out
}

func NewUserEnvelope(status int, u *User) UserEnvelope {
	return UserEnvelope{
		Status:  status,
		Success: true,
		User:    ToUserResponse(u),
	}
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
	}
}
