// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// User is one end-user account row. It mirrors the admin shape plus profile
// fields and the login-confirmation token used for initial activation.
type User struct {
	ID                      string         `db:"id"           json:"id"`
	Timezone                string         `db:"timezone"     json:"timezone"`
	Locale                  string         `db:"locale"       json:"locale"`
	Active                  bool           `db:"active"       json:"active"`
	Company                 *string        `db:"company"      json:"company,omitempty"`
	FirstName               string         `db:"first_name"   json:"firstName"`
	LastName                string         `db:"last_name"    json:"lastName"`
	Email                   string         `db:"email"        json:"email"`
	Phone                   *string        `db:"phone"        json:"phone,omitempty"`
	Birthday                *string        `db:"birthday"     json:"birthday,omitempty"`
	Sex                     *string        `db:"sex"          json:"sex,omitempty"`
	CountryCode             *string        `db:"country_code" json:"countryCode,omitempty"`
	IPAddress               *string        `db:"ip_address"   json:"-"`
	LoginConfirmationToken  *string        `db:"login_confirmation_token"  json:"-"`
	LoginConfirmationExpire *time.Time     `db:"login_confirmation_expire" json:"-"`
	Salt                    string         `db:"salt"           json:"-"`
	Password                string         `db:"password"       json:"-"`
	ResetPassword           *string        `db:"reset_password" json:"-"`
	PasswordResetToken      *string        `db:"password_reset_token"  json:"-"`
	PasswordResetExpire     *time.Time     `db:"password_reset_expire" json:"-"`
	AcceptedTerms           bool           `db:"accepted_terms"   json:"acceptedTerms"`
	EmailSubscribed         bool           `db:"email_subscribed" json:"emailSubscribed"`
	PushSubscribed          bool           `db:"push_subscribed"  json:"pushSubscribed"`
	Interests               types.JSONText `db:"interests"        json:"interests,omitempty"`
	LoginCount              int            `db:"login_count" json:"loginCount"`
	LastLogin               *time.Time     `db:"last_login"  json:"lastLogin,omitempty"`
	DeletedAt               *time.Time     `db:"deleted_at"  json:"-"`
	CreatedAt               time.Time      `db:"created_at"  json:"createdAt"`
	UpdatedAt               time.Time      `db:"updated_at"  json:"updatedAt"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
