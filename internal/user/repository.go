// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/accounts-api/internal/core"
)

type ListParams struct {
	Active *bool
	Sort   []core.SortColumn
	Page   int
	Limit  int
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = core.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = core.DefaultLimit
	}
	if len(p.Sort) == 0 {
		p.Sort = []core.SortColumn{{Column: "id"}}
	}
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail returns the row even when soft-deleted; login needs to
	// distinguish a deleted account from a missing one.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetResetPassword(
		ctx context.Context,
		id, pendingHash, token string,
		expire time.Time,
	) error
	ConfirmResetPassword(ctx context.Context, token string, now time.Time) error
	// ConfirmLogin activates the row whose confirmation token matches and
	// has not expired, clearing the token. core.ErrNotFound covers both the
	// wrong-token and expired cases.
	ConfirmLogin(ctx context.Context, token string, now time.Time) error
	RecordLogin(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, params ListParams) ([]User, int, error)
	All(ctx context.Context) ([]User, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `
	id, timezone, locale, active, company, first_name, last_name, email,
	phone, birthday, sex, country_code, ip_address,
	login_confirmation_token, login_confirmation_expire,
	salt, password, reset_password, password_reset_token,
	password_reset_expire, accepted_terms, email_subscribed, push_subscribed,
	interests, login_count, last_login, deleted_at, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			id, timezone, locale, active, company, first_name, last_name,
			email, phone, birthday, sex, country_code, ip_address,
			login_confirmation_token, login_confirmation_expire,
			salt, password, accepted_terms, email_subscribed,
			push_subscribed, interests
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Timezone,
		user.Locale,
		user.Active,
		user.Company,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Birthday,
		user.Sex,
		user.CountryCode,
		user.IPAddress,
		user.LoginConfirmationToken,
		user.LoginConfirmationExpire,
		user.Salt,
		user.Password,
		user.AcceptedTerms,
		user.EmailSubscribed,
		user.PushSubscribed,
		user.Interests,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET timezone = $2, locale = $3, company = $4, first_name = $5,
		    last_name = $6, phone = $7, birthday = $8, sex = $9,
		    country_code = $10, email_subscribed = $11, push_subscribed = $12,
		    interests = $13, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.Timezone,
		user.Locale,
		user.Company,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Birthday,
		user.Sex,
		user.CountryCode,
		user.EmailSubscribed,
		user.PushSubscribed,
		user.Interests,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *repository) UpdateEmail(ctx context.Context, id, email string) error {
	query := `
		UPDATE users
		SET email = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, email)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update email: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update email: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update email: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update email: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetResetPassword(
	ctx context.Context,
	id, pendingHash, token string,
	expire time.Time,
) error {
	query := `
		UPDATE users
		SET reset_password = $2, password_reset_token = $3,
		    password_reset_expire = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, pendingHash, token, expire)
	if err != nil {
		return fmt.Errorf("set reset password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set reset password: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("set reset password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ConfirmResetPassword(
	ctx context.Context,
	token string,
	now time.Time,
) error {
	// The expiry column is deliberately left in place; the token is the
	// consumable and clearing it alone makes the row unmatchable.
	query := `
		UPDATE users
		SET password = reset_password,
		    reset_password = NULL,
		    password_reset_token = NULL,
		    updated_at = NOW()
		WHERE password_reset_token = $1
		  AND password_reset_expire >= $2
		  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, token, now)
	if err != nil {
		return fmt.Errorf("confirm reset password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm reset password: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("confirm reset password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ConfirmLogin(
	ctx context.Context,
	token string,
	now time.Time,
) error {
	query := `
		UPDATE users
		SET active = TRUE,
		    login_confirmation_token = NULL,
		    updated_at = NOW()
		WHERE login_confirmation_token = $1
		  AND login_confirmation_expire >= $2
		  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, token, now)
	if err != nil {
		return fmt.Errorf("confirm login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm login: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("confirm login: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) RecordLogin(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	query := `
		UPDATE users
		SET login_count = login_count + 1, last_login = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("record login: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]User, int, error) {
	params.Normalize()

	conditions := []string{"deleted_at IS NULL"}
	var args []any
	argIdx := 1

	if params.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *params.Active)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM users WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+userColumns+`
		FROM users
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		whereClause,
		core.OrderByClause(params.Sort),
		argIdx, argIdx+1)

	args = append(args, params.Limit, core.Offset(params.Page, params.Limit))

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *repository) All(ctx context.Context) ([]User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("all users: %w", err)
	}

	return users, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
