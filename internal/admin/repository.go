// AngelaMos | 2026
// repository.go

package admin

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
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	// GetByEmail returns the row even when soft-deleted; login needs to
	// distinguish a deleted account from a missing one.
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, admin *Admin) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetResetPassword(
		ctx context.Context,
		id, pendingHash, token string,
		expire time.Time,
	) error
	// ConfirmResetPassword promotes the pending hash for the row whose
	// token matches and has not expired. core.ErrNotFound covers both the
	// wrong-token and expired cases.
	ConfirmResetPassword(ctx context.Context, token string, now time.Time) error
	RecordLogin(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, params ListParams) ([]Admin, int, error)
	All(ctx context.Context) ([]Admin, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const adminColumns = `
	id, timezone, locale, active, name, email, phone, salt, password,
	reset_password, password_reset_token, password_reset_expire,
	accepted_terms, login_count, last_login, deleted_at,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, admin *Admin) error {
	query := `
		INSERT INTO admins (
			id, timezone, locale, active, name, email, phone,
			salt, password, accepted_terms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, admin, query,
		admin.ID,
		admin.Timezone,
		admin.Locale,
		admin.Active,
		admin.Name,
		admin.Email,
		admin.Phone,
		admin.Salt,
		admin.Password,
		admin.AcceptedTerms,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create admin: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE id = $1 AND deleted_at IS NULL`

	var admin Admin
	err := r.db.GetContext(ctx, &admin, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get admin: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &admin, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE email = $1`

	var admin Admin
	err := r.db.GetContext(ctx, &admin, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get admin by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get admin by email: %w", err)
	}

	return &admin, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, admin *Admin) error {
	query := `
		UPDATE admins
		SET timezone = $2, locale = $3, name = $4, phone = $5,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &admin.UpdatedAt, query,
		admin.ID,
		admin.Timezone,
		admin.Locale,
		admin.Name,
		admin.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update admin: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}

	return nil
}

func (r *repository) UpdateEmail(ctx context.Context, id, email string) error {
	query := `
		UPDATE admins
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
		UPDATE admins
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
		UPDATE admins
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
		UPDATE admins
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

func (r *repository) RecordLogin(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	query := `
		UPDATE admins
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
) ([]Admin, int, error) {
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
		"SELECT COUNT(*) FROM admins WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count admins: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+adminColumns+`
		FROM admins
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		whereClause,
		core.OrderByClause(params.Sort),
		argIdx, argIdx+1)

	args = append(args, params.Limit, core.Offset(params.Page, params.Limit))

	var admins []Admin
	if err := r.db.SelectContext(ctx, &admins, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list admins: %w", err)
	}

	return admins, total, nil
}

func (r *repository) All(ctx context.Context) ([]Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE deleted_at IS NULL
		ORDER BY id`

	var admins []Admin
	if err := r.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, fmt.Errorf("all admins: %w", err)
	}

	return admins, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
