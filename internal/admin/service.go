// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/accounts-api/internal/config"
	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/errcode"
	"github.com/angelamos/accounts-api/internal/events"
	"github.com/angelamos/accounts-api/internal/i18n"
	"github.com/angelamos/accounts-api/internal/jobs"
	"github.com/angelamos/accounts-api/internal/mailer"
	"github.com/angelamos/accounts-api/internal/middleware"
)

// PasswordResetWindow bounds how long a reset token stays confirmable.
const PasswordResetWindow = 6 * time.Hour

const resetEmailSentMessage = "If an account with that email exists, " +
	"a confirmation email has been sent."

// TokenIssuer mints namespace-scoped bearer tokens.
type TokenIssuer interface {
	CreateToken(ns middleware.Namespace, accountID string) (string, error)
}

type Service struct {
	repo    Repository
	tokens  TokenIssuer
	mail    mailer.Mailer
	emitter events.Emitter
	queue   jobs.Enqueuer
	cfg     *config.Config
	logger  *slog.Logger
}

func NewService(
	repo Repository,
	tokens TokenIssuer,
	mail mailer.Mailer,
	emitter events.Emitter,
	queue jobs.Enqueuer,
	cfg *config.Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:    repo,
		tokens:  tokens,
		mail:    mail,
		emitter: emitter,
		queue:   queue,
		cfg:     cfg,
		logger:  logger,
	}
}

// Login exchanges credentials for a bearer token. Unknown emails and wrong
// passwords produce the same error after the same amount of hashing work;
// inactive and deleted accounts are reported distinctly.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResponse, error) {
	account, err := s.repo.GetByEmail(ctx, core.NormalizeEmail(req.Email))
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	var salt, hash *string
	if account != nil {
		salt, hash = &account.Salt, &account.Password
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, salt, hash)
	if err != nil {
		return nil, err
	}
	if account == nil || !valid {
		return nil, errcode.AdminInvalidCredentials.Err(ctx)
	}

	if account.IsDeleted() {
		return nil, errcode.AdminAccountDeleted.Err(ctx)
	}
	if !account.Active {
		return nil, errcode.AdminAccountInactive.Err(ctx)
	}

	now := time.Now().UTC()
	if err := s.repo.RecordLogin(ctx, account.ID, now); err != nil {
		return nil, err
	}
	account.LoginCount++
	account.LastLogin = &now

	token, err := s.tokens.CreateToken(middleware.NamespaceAdmin, account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResponse{
		Status:  http.StatusCreated,
		Success: true,
		Token:   token,
		Admin:   ToAdminResponse(account),
	}, nil
}

// Create registers a new administrator. Callers must already be
// authenticated as an admin; the handler enforces that.
func (s *Service) Create(
	ctx context.Context,
	req CreateRequest,
) (*Admin, error) {
	if msg := core.CheckPasswordPair(req.Password1, req.Password2); msg != "" {
		return nil, errcode.AdminInvalidArguments.ErrMessage(ctx, msg)
	}
	if !core.ValidTimezone(req.Timezone) {
		return nil, errcode.AdminInvalidArguments.ErrMessage(
			ctx, "Time zone is invalid.",
		)
	}
	if !req.AcceptedTerms {
		return nil, errcode.AdminInvalidArguments.ErrMessage(
			ctx, "You must agree to Terms of Service.",
		)
	}

	email := core.NormalizeEmail(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errcode.AdminInvalidArguments.ErrIndex(ctx, 1)
	}

	salt, err := core.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := core.HashPassword(req.Password1, salt)
	if err != nil {
		return nil, err
	}

	account := &Admin{
		ID:            uuid.New().String(),
		Timezone:      req.Timezone,
		Locale:        req.Locale,
		Active:        true,
		Name:          req.Name,
		Email:         email,
		Phone:         req.Phone,
		Salt:          salt,
		Password:      hash,
		AcceptedTerms: req.AcceptedTerms,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, errcode.AdminInvalidArguments.ErrIndex(ctx, 1)
		}
		return nil, err
	}

	s.emitter.Emit(
		ctx, events.GlobalRoom, events.AdminCreated, ToAdminResponse(account),
	)

	return account, nil
}

// Read loads one account, defaulting to the caller's own.
func (s *Service) Read(ctx context.Context, id string) (*Admin, error) {
	if id == "" {
		id = middleware.GetAccountID(ctx)
	}

	account, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, errcode.AdminAccountDoesNotExist.Err(ctx)
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Update applies a partial profile update to the caller's own account.
func (s *Service) Update(
	ctx context.Context,
	req UpdateRequest,
) (*Admin, error) {
	account, err := s.repo.GetByID(ctx, middleware.GetAccountID(ctx))
	if errors.Is(err, core.ErrNotFound) {
		return nil, errcode.AdminAccountDoesNotExist.Err(ctx)
	}
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		if !core.ValidTimezone(*req.Timezone) {
			return nil, errcode.AdminInvalidArguments.ErrMessage(
				ctx, "Time zone is invalid.",
			)
		}
		account.Timezone = *req.Timezone
	}
	if req.Locale != nil {
		account.Locale = *req.Locale
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Phone != nil {
		account.Phone = req.Phone
	}

	if err := s.repo.UpdateProfile(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

var allowedSortColumns = map[string]struct{}{
	"id":          {},
	"name":        {},
	"email":       {},
	"active":      {},
	"login_count": {},
	"last_login":  {},
	"created_at":  {},
	"updated_at":  {},
}

// Query runs a filtered, sorted, paginated listing. The count and the page
// fetch are separate statements, so totals can drift under concurrent
// writes; fine for an admin listing.
func (s *Service) Query(
	ctx context.Context,
	req QueryRequest,
) (*QueryResponse, error) {
	sort, err := core.ParseSort(req.Sort, allowedSortColumns)
	if err != nil {
		return nil, errcode.AdminInvalidArguments.Err(ctx)
	}

	params := ListParams{
		Active: req.Active,
		Sort:   sort,
		Page:   req.Page,
		Limit:  req.Limit,
	}
	params.Normalize()

	accounts, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &QueryResponse{
		Status:     http.StatusOK,
		Success:    true,
		Admins:     ToAdminResponseList(accounts),
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: core.TotalPages(total, params.Limit),
	}, nil
}

// UpdatePassword changes the caller's password after re-verifying the
// current one. No token machinery is involved.
func (s *Service) UpdatePassword(
	ctx context.Context,
	req UpdatePasswordRequest,
) error {
	account, err := s.repo.GetByID(ctx, middleware.GetAccountID(ctx))
	if errors.Is(err, core.ErrNotFound) {
		return errcode.AdminAccountDoesNotExist.Err(ctx)
	}
	if err != nil {
		return err
	}

	valid, err := core.VerifyPassword(
		req.Password, account.Salt, account.Password,
	)
	if err != nil {
		return err
	}
	if !valid {
		return errcode.AdminInvalidArguments.ErrMessage(
			ctx, "Original password is incorrect, please try again.",
		)
	}

	if msg := core.CheckPasswordPair(req.Password1, req.Password2); msg != "" {
		return errcode.AdminInvalidArguments.ErrMessage(ctx, msg)
	}

	hash, err := core.HashPassword(req.Password1, account.Salt)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, account.ID, hash)
}

// ResetPassword stages a pending password hash behind a single-use token and
// emails a confirmation link. Unknown emails get the identical response with
// no email sent, so the endpoint cannot be used to probe for accounts.
func (s *Service) ResetPassword(
	ctx context.Context,
	req ResetPasswordRequest,
) (*ResetPasswordResponse, error) {
	if msg := core.CheckPasswordPair(req.Password1, req.Password2); msg != "" {
		return nil, errcode.AdminInvalidArguments.ErrMessage(ctx, msg)
	}

	resp := &ResetPasswordResponse{
		Status:  http.StatusOK,
		Success: true,
		Message: i18n.T(ctx, resetEmailSentMessage),
	}

	account, err := s.repo.GetByEmail(ctx, core.NormalizeEmail(req.Email))
	if errors.Is(err, core.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	if account.IsDeleted() {
		return resp, nil
	}

	pendingHash, err := core.HashPassword(req.Password1, account.Salt)
	if err != nil {
		return nil, err
	}

	token, err := core.GenerateResetToken()
	if err != nil {
		return nil, err
	}

	expire := time.Now().UTC().Add(PasswordResetWindow)
	err = s.repo.SetResetPassword(ctx, account.ID, pendingHash, token, expire)
	if err != nil {
		return nil, err
	}

	resetLink := fmt.Sprintf(
		"%s/confirm-password?token=%s", s.cfg.Client.AdminHost, token,
	)

	if err := s.mail.Send(ctx, mailer.Message{
		To:       account.Email,
		Subject:  "Confirm your new password",
		Template: mailer.TemplatePasswordReset,
		Args: map[string]any{
			"Name":      account.Name,
			"ResetLink": resetLink,
		},
	}); err != nil {
		s.logger.Warn("reset email send failed",
			"admin_id", account.ID,
			"error", err,
		)
	}

	if !s.cfg.IsProduction() {
		resp.ResetLink = resetLink
	}

	return resp, nil
}

// ConfirmPassword consumes a reset token and promotes the pending hash.
// Wrong and expired tokens are indistinguishable in the response.
func (s *Service) ConfirmPassword(
	ctx context.Context,
	req ConfirmPasswordRequest,
) error {
	err := s.repo.ConfirmResetPassword(
		ctx, req.PasswordResetToken, time.Now().UTC(),
	)
	if errors.Is(err, core.ErrNotFound) {
		return errcode.AdminInvalidArguments.ErrMessage(
			ctx,
			"Invalid password reset token or reset token has expired.",
		)
	}
	return err
}

// UpdateEmail moves the caller to a new address, rejecting the current one
// and any address already held by another account.
func (s *Service) UpdateEmail(
	ctx context.Context,
	req UpdateEmailRequest,
) (*Admin, error) {
	account, err := s.repo.GetByID(ctx, middleware.GetAccountID(ctx))
	if errors.Is(err, core.ErrNotFound) {
		return nil, errcode.AdminAccountDoesNotExist.Err(ctx)
	}
	if err != nil {
		return nil, err
	}

	newEmail := core.NormalizeEmail(req.NewEmail)

	if newEmail == account.Email {
		return nil, errcode.AdminInvalidArguments.ErrMessage(
			ctx, "New email cannot be the same as the current email.",
		)
	}

	exists, err := s.repo.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errcode.AdminInvalidArguments.ErrMessage(
			ctx, "The new email is already being used.",
		)
	}

	if err := s.repo.UpdateEmail(ctx, account.ID, newEmail); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, errcode.AdminInvalidArguments.ErrMessage(
				ctx, "The new email is already being used.",
			)
		}
		return nil, err
	}
	account.Email = newEmail

	return account, nil
}

// Export enqueues a durable CSV export job for the worker.
func (s *Service) Export(ctx context.Context) error {
	task, err := jobs.NewAdminExportTask(jobs.ExportPayload{
		RequestedBy: middleware.GetAccountID(ctx),
		Locale:      i18n.FromContext(ctx),
	})
	if err != nil {
		return err
	}
	return s.queue.Enqueue(task)
}
