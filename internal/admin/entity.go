// AngelaMos | 2026
// entity.go

package admin

import "time"

// Admin is one administrator account row. Password holds the argon2id hash
// derived from Salt; ResetPassword holds a pending hash awaiting token
// confirmation. Soft deletion is the DeletedAt timestamp, never a row delete.
type Admin struct {
	ID                  string     `db:"id"             json:"id"`
	Timezone            string     `db:"timezone"       json:"timezone"`
	Locale              string     `db:"locale"         json:"locale"`
	Active              bool       `db:"active"         json:"active"`
	Name                string     `db:"name"           json:"name"`
	Email               string     `db:"email"          json:"email"`
	Phone               *string    `db:"phone"          json:"phone,omitempty"`
	Salt                string     `db:"salt"           json:"-"`
	Password            string     `db:"password"       json:"-"`
	ResetPassword       *string    `db:"reset_password" json:"-"`
	PasswordResetToken  *string    `db:"password_reset_token"  json:"-"`
	PasswordResetExpire *time.Time `db:"password_reset_expire" json:"-"`
	AcceptedTerms       bool       `db:"accepted_terms" json:"acceptedTerms"`
	LoginCount          int        `db:"login_count"    json:"loginCount"`
	LastLogin           *time.Time `db:"last_login"     json:"lastLogin,omitempty"`
	DeletedAt           *time.Time `db:"deleted_at"     json:"-"`
	CreatedAt           time.Time  `db:"created_at"     json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at"     json:"updatedAt"`
}

func (a *Admin) IsDeleted() bool {
	return a.DeletedAt != nil
}
