// AngelaMos | 2026
// service_test.go

package admin

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"

	"github.com/angelamos/accounts-api/internal/config"
	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/mailer"
	"github.com/angelamos/accounts-api/internal/middleware"
)

// fakeRepository is an in-memory Repository with the same matching rules as
// the SQL implementation.
type fakeRepository struct {
	mu       sync.Mutex
	accounts map[string]*Admin
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: make(map[string]*Admin)}
}

func (f *fakeRepository) Create(_ context.Context, a *Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return core.ErrDuplicateKey
		}
	}
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	clone := *a
	f.accounts[a.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok || a.DeletedAt != nil {
		return nil, core.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeRepository) GetByEmail(
	_ context.Context,
	email string,
) (*Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) UpdateProfile(_ context.Context, a *Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.accounts[a.ID]
	if !ok || stored.DeletedAt != nil {
		return core.ErrNotFound
	}
	stored.Timezone = a.Timezone
	stored.Locale = a.Locale
	stored.Name = a.Name
	stored.Phone = a.Phone
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeRepository) UpdateEmail(_ context.Context, id, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email && a.ID != id {
			return core.ErrDuplicateKey
		}
	}
	stored, ok := f.accounts[id]
	if !ok || stored.DeletedAt != nil {
		return core.ErrNotFound
	}
	stored.Email = email
	return nil
}

func (f *fakeRepository) UpdatePassword(
	_ context.Context,
	id, passwordHash string,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.accounts[id]
	if !ok || stored.DeletedAt != nil {
		return core.ErrNotFound
	}
	stored.Password = passwordHash
	return nil
}

func (f *fakeRepository) SetResetPassword(
	_ context.Context,
	id, pendingHash, token string,
	expire time.Time,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.accounts[id]
	if !ok || stored.DeletedAt != nil {
		return core.ErrNotFound
	}
	stored.ResetPassword = &pendingHash
	stored.PasswordResetToken = &token
	stored.PasswordResetExpire = &expire
	return nil
}

func (f *fakeRepository) ConfirmResetPassword(
	_ context.Context,
	token string,
	now time.Time,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.DeletedAt != nil || a.PasswordResetToken == nil {
			continue
		}
		if *a.PasswordResetToken != token {
			continue
		}
		if a.PasswordResetExpire == nil || a.PasswordResetExpire.Before(now) {
			continue
		}
		a.Password = *a.ResetPassword
		a.ResetPassword = nil
		a.PasswordResetToken = nil
		return nil
	}
	return core.ErrNotFound
}

func (f *fakeRepository) RecordLogin(
	_ context.Context,
	id string,
	at time.Time,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.accounts[id]
	if !ok || stored.DeletedAt != nil {
		return core.ErrNotFound
	}
	stored.LoginCount++
	stored.LastLogin = &at
	return nil
}

func (f *fakeRepository) List(
	_ context.Context,
	params ListParams,
) ([]Admin, int, error) {
	params.Normalize()
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []Admin
	for _, a := range f.accounts {
		if a.DeletedAt != nil {
			continue
		}
		if params.Active != nil && a.Active != *params.Active {
			continue
		}
		matched = append(matched, *a)
	}

	total := len(matched)
	offset := core.Offset(params.Page, params.Limit)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + params.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) All(_ context.Context) ([]Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Admin
	for _, a := range f.accounts {
		if a.DeletedAt == nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeEmitter) Emit(_ context.Context, room, event string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, room+"/"+event)
}

type fakeQueue struct {
	mu    sync.Mutex
	tasks []*asynq.Task
}

func (f *fakeQueue) Enqueue(task *asynq.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

type stubTokens struct{}

func (stubTokens) CreateToken(
	ns middleware.Namespace,
	accountID string,
) (string, error) {
	return "token-" + string(ns) + "-" + accountID, nil
}

type fixture struct {
	repo    *fakeRepository
	mail    *fakeMailer
	emitter *fakeEmitter
	queue   *fakeQueue
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	return newFixtureEnv(t, "development")
}

func newFixtureEnv(t *testing.T, environment string) *fixture {
	t.Helper()

	repo := newFakeRepository()
	mail := &fakeMailer{}
	emitter := &fakeEmitter{}
	queue := &fakeQueue{}

	cfg := &config.Config{
		App: config.AppConfig{Environment: environment},
		Client: config.ClientConfig{
			AdminHost: "http://localhost:3000",
			UserHost:  "http://localhost:3001",
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		repo:    repo,
		mail:    mail,
		emitter: emitter,
		queue:   queue,
		svc: NewService(
			repo, stubTokens{}, mail, emitter, queue, cfg, logger,
		),
	}
}

func (fx *fixture) seedAdmin(t *testing.T, email, password string) *Admin {
	t.Helper()

	account, err := fx.svc.Create(context.Background(), CreateRequest{
		Timezone:      "America/Los_Angeles",
		Locale:        "en",
		Name:          "Jonathan Chen",
		Email:         email,
		Password1:     password,
		Password2:     password,
		AcceptedTerms: true,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return account
}

func authedCtx(id string) context.Context {
	return context.WithValue(
		context.Background(), middleware.AccountIDKey, id,
	)
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

func TestLoginSuccess(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	before := time.Now().UTC()
	resp, err := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "new-admin@example.com",
		Password: "thisisapassword",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.Status != 201 || !resp.Success {
		t.Errorf("unexpected envelope status=%d success=%v",
			resp.Status, resp.Success)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.Admin.LoginCount != seeded.LoginCount+1 {
		t.Errorf("login count must increment by exactly 1, got %d",
			resp.Admin.LoginCount)
	}
	if resp.Admin.LastLogin == nil || resp.Admin.LastLogin.Before(before) {
		t.Error("last login must be set to a timestamp >= call time")
	}
}

func TestLoginUnknownEmailAndWrongPasswordSameError(t *testing.T) {
	fx := newFixture(t)
	fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	_, err1 := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "thisisapassword",
	})
	_, err2 := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "new-admin@example.com",
		Password: "wrongpassword",
	})

	code1 := appErrCode(t, err1)
	code2 := appErrCode(t, err2)
	if code1 != code2 || code1 != "ADMIN.BAD_REQUEST_INVALID_CREDENTIALS" {
		t.Errorf("unknown email and wrong password must be "+
			"indistinguishable, got %q and %q", code1, code2)
	}
}

func TestLoginInactiveAndDeletedDistinct(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	fx.repo.mu.Lock()
	fx.repo.accounts[seeded.ID].Active = false
	fx.repo.mu.Unlock()

	_, err := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "new-admin@example.com",
		Password: "thisisapassword",
	})
	if code := appErrCode(t, err); code != "ADMIN.BAD_REQUEST_ACCOUNT_INACTIVE" {
		t.Errorf("expected inactive error, got %q", code)
	}

	now := time.Now().UTC()
	fx.repo.mu.Lock()
	fx.repo.accounts[seeded.ID].Active = true
	fx.repo.accounts[seeded.ID].DeletedAt = &now
	fx.repo.mu.Unlock()

	_, err = fx.svc.Login(context.Background(), LoginRequest{
		Email:    "new-admin@example.com",
		Password: "thisisapassword",
	})
	if code := appErrCode(t, err); code != "ADMIN.BAD_REQUEST_ACCOUNT_DELETED" {
		t.Errorf("expected deleted error, got %q", code)
	}
}

func TestCreateStoresDerivableHash(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	stored := fx.repo.accounts[seeded.ID]
	if stored.Password == "thisisapassword" {
		t.Error("stored password must never equal the plaintext")
	}

	derived, err := core.HashPassword("thisisapassword", stored.Salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if derived != stored.Password {
		t.Error("stored hash must be re-derivable from the stored salt")
	}

	if len(fx.emitter.events) == 0 ||
		fx.emitter.events[0] != "GLOBAL/ADMIN_CREATED" {
		t.Errorf("expected ADMIN_CREATED event, got %v", fx.emitter.events)
	}
}

func TestCreateDuplicateEmailVariant(t *testing.T) {
	fx := newFixture(t)
	fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	_, err := fx.svc.Create(context.Background(), CreateRequest{
		Timezone:      "UTC",
		Locale:        "en",
		Name:          "Someone Else",
		Email:         "new-admin@example.com",
		Password1:     "anotherpassword",
		Password2:     "anotherpassword",
		AcceptedTerms: true,
	})

	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if !strings.Contains(appErr.Message, "already exists") {
		t.Errorf("expected duplicate-email message variant, got %q",
			appErr.Message)
	}
}

func TestCreateValidationRules(t *testing.T) {
	fx := newFixture(t)

	base := CreateRequest{
		Timezone:      "America/Los_Angeles",
		Locale:        "en",
		Name:          "Jonathan Chen",
		Email:         "new-admin@example.com",
		Password1:     "thisisapassword",
		Password2:     "thisisapassword",
		AcceptedTerms: true,
	}

	bad := base
	bad.Password2 = "doesnotmatch"
	if _, err := fx.svc.Create(context.Background(), bad); err == nil {
		t.Error("mismatched passwords must be rejected")
	}

	bad = base
	bad.Timezone = "Not/AZone"
	if _, err := fx.svc.Create(context.Background(), bad); err == nil {
		t.Error("invalid timezone must be rejected")
	}

	bad = base
	bad.AcceptedTerms = false
	if _, err := fx.svc.Create(context.Background(), bad); err == nil {
		t.Error("unaccepted terms must be rejected")
	}
}

func TestResetThenConfirmOnce(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	resp, err := fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "new-admin@example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if resp.ResetLink == "" {
		t.Error("reset link must be returned outside production")
	}
	if len(fx.mail.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(fx.mail.sent))
	}

	stored := fx.repo.accounts[seeded.ID]
	if stored.PasswordResetToken == nil ||
		len(*stored.PasswordResetToken) != 64 {
		t.Fatal("expected a 64-character reset token")
	}
	token := *stored.PasswordResetToken

	window := time.Until(*stored.PasswordResetExpire)
	if window < 5*time.Hour+59*time.Minute || window > 6*time.Hour {
		t.Errorf("expiry must be ~6h out, got %v", window)
	}

	err = fx.svc.ConfirmPassword(context.Background(), ConfirmPasswordRequest{
		PasswordResetToken: token,
	})
	if err != nil {
		t.Fatalf("ConfirmPassword: %v", err)
	}

	derived, _ := core.HashPassword("mynewpassword", stored.Salt)
	if fx.repo.accounts[seeded.ID].Password != derived {
		t.Error("confirmed password must equal hash of new password and salt")
	}
	if fx.repo.accounts[seeded.ID].PasswordResetToken != nil {
		t.Error("token must be cleared after confirmation")
	}

	// Second use of the consumed token fails with the ambiguous error.
	err = fx.svc.ConfirmPassword(context.Background(), ConfirmPasswordRequest{
		PasswordResetToken: token,
	})
	if err == nil {
		t.Fatal("consumed token must not confirm twice")
	}
}

func TestConfirmExpiredAndInvalidIndistinguishable(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	_, err := fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "new-admin@example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	stored := fx.repo.accounts[seeded.ID]
	token := *stored.PasswordResetToken

	expired := time.Now().UTC().Add(-time.Minute)
	fx.repo.mu.Lock()
	fx.repo.accounts[seeded.ID].PasswordResetExpire = &expired
	fx.repo.mu.Unlock()

	errExpired := fx.svc.ConfirmPassword(
		context.Background(),
		ConfirmPasswordRequest{PasswordResetToken: token},
	)
	errInvalid := fx.svc.ConfirmPassword(
		context.Background(),
		ConfirmPasswordRequest{
			PasswordResetToken: strings.Repeat("x", 64),
		},
	)

	expiredErr, ok1 := core.AsAppError(errExpired)
	invalidErr, ok2 := core.AsAppError(errInvalid)
	if !ok1 || !ok2 {
		t.Fatalf("expected AppErrors, got %v / %v", errExpired, errInvalid)
	}
	if expiredErr.Code != invalidErr.Code ||
		expiredErr.Message != invalidErr.Message {
		t.Error("expired and invalid tokens must be indistinguishable")
	}
}

func TestEmailStoredAndMatchedCaseInsensitively(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "Mixed.Case@Example.com", "thisisapassword")

	if fx.repo.accounts[seeded.ID].Email != "mixed.case@example.com" {
		t.Errorf("email must be stored lowercase, got %q",
			fx.repo.accounts[seeded.ID].Email)
	}

	resp, err := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "mixed.case@example.com",
		Password: "thisisapassword",
	})
	if err != nil {
		t.Fatalf("lowercase login against mixed-case signup: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}

	_, err = fx.svc.Create(context.Background(), CreateRequest{
		Timezone:      "UTC",
		Locale:        "en",
		Name:          "Someone Else",
		Email:         "MIXED.CASE@EXAMPLE.COM",
		Password1:     "anotherpassword",
		Password2:     "anotherpassword",
		AcceptedTerms: true,
	})
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if !strings.Contains(appErr.Message, "already exists") {
		t.Errorf("case-variant address must be a duplicate, got %q",
			appErr.Message)
	}

	_, err = fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "MIXED.case@Example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if len(fx.mail.sent) != 1 {
		t.Errorf("case-variant reset must reach the account, got %d emails",
			len(fx.mail.sent))
	}
}

func TestResetLinkHiddenInProduction(t *testing.T) {
	fx := newFixtureEnv(t, "production")
	fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	resp, err := fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "new-admin@example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if resp.ResetLink != "" {
		t.Errorf("reset link must never be returned in production, got %q",
			resp.ResetLink)
	}
}

func TestResetUnknownEmailNoEnumeration(t *testing.T) {
	fx := newFixture(t)
	fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	known, err := fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "new-admin@example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	unknown, err := fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "nobody@example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}

	if unknown.Status != known.Status || unknown.Message != known.Message {
		t.Error("known and unknown emails must get the identical response")
	}
	if len(fx.mail.sent) != 1 {
		t.Errorf("no email must be sent for an unknown address, got %d",
			len(fx.mail.sent))
	}
}

func TestUpdatePasswordRequiresCurrent(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")
	ctx := authedCtx(seeded.ID)

	err := fx.svc.UpdatePassword(ctx, UpdatePasswordRequest{
		Password:  "wrongcurrent",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if !strings.Contains(appErr.Message, "Original password is incorrect") {
		t.Errorf("unexpected message %q", appErr.Message)
	}

	err = fx.svc.UpdatePassword(ctx, UpdatePasswordRequest{
		Password:  "thisisapassword",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	stored := fx.repo.accounts[seeded.ID]
	derived, _ := core.HashPassword("mynewpassword", stored.Salt)
	if stored.Password != derived {
		t.Error("password must be updated to the new hash")
	}
}

func TestUpdateEmailRules(t *testing.T) {
	fx := newFixture(t)
	first := fx.seedAdmin(t, "first@example.com", "thisisapassword")
	fx.seedAdmin(t, "second@example.com", "thisisapassword")
	ctx := authedCtx(first.ID)

	_, err := fx.svc.UpdateEmail(ctx, UpdateEmailRequest{
		NewEmail: "first@example.com",
	})
	if err == nil {
		t.Error("new email equal to current must be rejected")
	}

	_, err = fx.svc.UpdateEmail(ctx, UpdateEmailRequest{
		NewEmail: "second@example.com",
	})
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if !strings.Contains(appErr.Message, "already being used") {
		t.Errorf("unexpected message %q", appErr.Message)
	}

	updated, err := fx.svc.UpdateEmail(ctx, UpdateEmailRequest{
		NewEmail: "fresh@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateEmail: %v", err)
	}
	if updated.Email != "fresh@example.com" {
		t.Errorf("unexpected email %q", updated.Email)
	}
}

func TestQueryPagination(t *testing.T) {
	fx := newFixture(t)
	for _, email := range []string{
		"a@example.com", "b@example.com", "c@example.com",
	} {
		fx.seedAdmin(t, email, "thisisapassword")
	}

	resp, err := fx.svc.Query(context.Background(), QueryRequest{
		Page:  1,
		Limit: 2,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	if resp.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Total)
	}
	if resp.TotalPages != 2 {
		t.Errorf("expected ceil(3/2)=2 pages, got %d", resp.TotalPages)
	}
	if len(resp.Admins) > resp.Limit {
		t.Errorf("row count %d exceeds limit %d", len(resp.Admins), resp.Limit)
	}
}

func TestQueryRejectsUnknownSortColumn(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Query(context.Background(), QueryRequest{Sort: "salt"})
	if err == nil {
		t.Error("sorting on a non-allow-listed column must be rejected")
	}
}

func TestExportEnqueues(t *testing.T) {
	fx := newFixture(t)
	seeded := fx.seedAdmin(t, "new-admin@example.com", "thisisapassword")

	if err := fx.svc.Export(authedCtx(seeded.ID)); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(fx.queue.tasks) != 1 {
		t.Fatalf("expected 1 enqueued task, got %d", len(fx.queue.tasks))
	}
	if fx.queue.tasks[0].Type() != "admin:export" {
		t.Errorf("unexpected task type %q", fx.queue.tasks[0].Type())
	}
}
