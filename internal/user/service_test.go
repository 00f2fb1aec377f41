// AngelaMos | 2026
// service_test.go

package user

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
	accounts map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: make(map[string]*User)}
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.accounts {
		if existing.Email == u.Email {
			return core.ErrDuplicateKey
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	clone := *u
	f.accounts[u.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.accounts[id]
	if !ok || u.DeletedAt != nil {
		return nil, core.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepository) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.accounts {
		if u.Email == email {
			clone := *u
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
	for _, u := range f.accounts {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) UpdateProfile(_ context.Context, u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.accounts[u.ID]
	if !ok || stored.DeletedAt != nil {
		return core.ErrNotFound
	}
	clone := *u
	clone.UpdatedAt = time.Now().UTC()
	f.accounts[u.ID] = &clone
	return nil
}

func (f *fakeRepository) UpdateEmail(_ context.Context, id, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.accounts {
		if u.Email == email && u.ID != id {
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
	for _, u := range f.accounts {
		if u.DeletedAt != nil || u.PasswordResetToken == nil {
			continue
		}
		if *u.PasswordResetToken != token {
			continue
		}
		if u.PasswordResetExpire == nil || u.PasswordResetExpire.Before(now) {
			continue
		}
		u.Password = *u.ResetPassword
		u.ResetPassword = nil
		u.PasswordResetToken = nil
		return nil
	}
	return core.ErrNotFound
}

func (f *fakeRepository) ConfirmLogin(
	_ context.Context,
	token string,
	now time.Time,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.accounts {
		if u.DeletedAt != nil || u.LoginConfirmationToken == nil {
			continue
		}
		if *u.LoginConfirmationToken != token {
			continue
		}
		if u.LoginConfirmationExpire == nil ||
			u.LoginConfirmationExpire.Before(now) {
			continue
		}
		u.Active = true
		u.LoginConfirmationToken = nil
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
) ([]User, int, error) {
	params.Normalize()
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []User
	for _, u := range f.accounts {
		if u.DeletedAt != nil {
			continue
		}
		if params.Active != nil && u.Active != *params.Active {
			continue
		}
		matched = append(matched, *u)
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

func (f *fakeRepository) All(_ context.Context) ([]User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []User
	for _, u := range f.accounts {
		if u.DeletedAt == nil {
			out = append(out, *u)
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
	t.Helper()

	repo := newFakeRepository()
	mail := &fakeMailer{}
	emitter := &fakeEmitter{}
	queue := &fakeQueue{}

	cfg := &config.Config{
		App: config.AppConfig{Environment: "development"},
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

func registerRequest(email string) CreateRequest {
	return CreateRequest{
		Timezone:      "America/Los_Angeles",
		Locale:        "en",
		FirstName:     "Jonathan",
		LastName:      "Chen",
		Email:         email,
		Password1:     "thisisapassword",
		Password2:     "thisisapassword",
		AcceptedTerms: true,
	}
}

// register creates and activates an account via the confirmation token, the
// same path a real client takes.
func (fx *fixture) register(t *testing.T, email string) *User {
	t.Helper()

	resp, err := fx.svc.Create(
		context.Background(), registerRequest(email), "203.0.113.7",
	)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := fx.repo.accounts[resp.User.ID]
	err = fx.svc.ConfirmLogin(context.Background(), ConfirmLoginRequest{
		LoginConfirmationToken: *stored.LoginConfirmationToken,
	})
	if err != nil {
		t.Fatalf("confirm login: %v", err)
	}

	return fx.repo.accounts[resp.User.ID]
}

func TestRegisterStartsInactive(t *testing.T) {
	fx := newFixture(t)

	resp, err := fx.svc.Create(
		context.Background(), registerRequest("person@example.com"), "203.0.113.7",
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.Status != 201 || !resp.Success {
		t.Errorf("unexpected envelope status=%d success=%v",
			resp.Status, resp.Success)
	}
	if resp.User.Active {
		t.Error("a freshly registered account must start inactive")
	}
	if resp.LoginLink == "" {
		t.Error("login link must be returned outside production")
	}

	stored := fx.repo.accounts[resp.User.ID]
	if stored.LoginConfirmationToken == nil ||
		len(*stored.LoginConfirmationToken) != 64 {
		t.Fatal("expected a 64-character login confirmation token")
	}
	window := time.Until(*stored.LoginConfirmationExpire)
	if window < 59*time.Minute || window > time.Hour {
		t.Errorf("confirmation expiry must be ~1h out, got %v", window)
	}
	if stored.IPAddress == nil || *stored.IPAddress != "203.0.113.7" {
		t.Error("registration must capture the client IP")
	}
	if !stored.EmailSubscribed || !stored.PushSubscribed {
		t.Error("subscription flags must default to true")
	}

	if len(fx.mail.sent) != 1 ||
		fx.mail.sent[0].Template != mailer.TemplateWelcome {
		t.Errorf("expected one welcome email, got %+v", fx.mail.sent)
	}
	if len(fx.emitter.events) == 0 ||
		fx.emitter.events[0] != "GLOBAL/USER_CREATED" {
		t.Errorf("expected USER_CREATED event, got %v", fx.emitter.events)
	}
}

func TestConfirmLoginActivates(t *testing.T) {
	fx := newFixture(t)

	resp, err := fx.svc.Create(
		context.Background(), registerRequest("person@example.com"), "",
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored := fx.repo.accounts[resp.User.ID]
	token := *stored.LoginConfirmationToken

	err = fx.svc.ConfirmLogin(context.Background(), ConfirmLoginRequest{
		LoginConfirmationToken: token,
	})
	if err != nil {
		t.Fatalf("ConfirmLogin: %v", err)
	}

	if !stored.Active {
		t.Error("confirmation must activate the account")
	}
	if stored.LoginConfirmationToken != nil {
		t.Error("confirmation must clear the token")
	}

	// A consumed token cannot activate again.
	err = fx.svc.ConfirmLogin(context.Background(), ConfirmLoginRequest{
		LoginConfirmationToken: token,
	})
	if err == nil {
		t.Fatal("consumed token must not confirm twice")
	}
}

func TestConfirmLoginExpiredAndInvalidIndistinguishable(t *testing.T) {
	fx := newFixture(t)

	resp, err := fx.svc.Create(
		context.Background(), registerRequest("person@example.com"), "",
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored := fx.repo.accounts[resp.User.ID]
	token := *stored.LoginConfirmationToken

	expired := time.Now().UTC().Add(-time.Minute)
	fx.repo.mu.Lock()
	stored.LoginConfirmationExpire = &expired
	fx.repo.mu.Unlock()

	errExpired := fx.svc.ConfirmLogin(context.Background(), ConfirmLoginRequest{
		LoginConfirmationToken: token,
	})
	errInvalid := fx.svc.ConfirmLogin(context.Background(), ConfirmLoginRequest{
		LoginConfirmationToken: strings.Repeat("x", 64),
	})

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

func TestLoginBeforeConfirmationRejected(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Create(
		context.Background(), registerRequest("person@example.com"), "",
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = fx.svc.Login(context.Background(), LoginRequest{
		Email:    "person@example.com",
		Password: "thisisapassword",
	})
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != "USER.BAD_REQUEST_ACCOUNT_INACTIVE" {
		t.Errorf("unconfirmed login must report inactive, got %q", appErr.Code)
	}
}

func TestLoginAfterConfirmation(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, "person@example.com")

	resp, err := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "person@example.com",
		Password: "thisisapassword",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.LoginCount != 1 {
		t.Errorf("expected login count 1, got %d", resp.User.LoginCount)
	}
}

func TestEmailStoredAndMatchedCaseInsensitively(t *testing.T) {
	fx := newFixture(t)

	resp, err := fx.svc.Create(
		context.Background(), registerRequest("Mixed.Case@Example.com"), "",
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.User.Email != "mixed.case@example.com" {
		t.Errorf("email must be stored lowercase, got %q", resp.User.Email)
	}

	stored := fx.repo.accounts[resp.User.ID]
	err = fx.svc.ConfirmLogin(context.Background(), ConfirmLoginRequest{
		LoginConfirmationToken: *stored.LoginConfirmationToken,
	})
	if err != nil {
		t.Fatalf("confirm login: %v", err)
	}

	if _, err := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "mixed.case@example.com",
		Password: "thisisapassword",
	}); err != nil {
		t.Fatalf("lowercase login against mixed-case signup: %v", err)
	}

	_, err = fx.svc.Create(
		context.Background(), registerRequest("MIXED.CASE@EXAMPLE.COM"), "",
	)
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if !strings.Contains(appErr.Message, "already exists") {
		t.Errorf("case-variant address must be a duplicate, got %q",
			appErr.Message)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, "person@example.com")

	_, err := fx.svc.Create(
		context.Background(), registerRequest("person@example.com"), "",
	)
	appErr, ok := core.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != "USER.BAD_REQUEST_INVALID_ARGUMENTS" {
		t.Errorf("unexpected code %q", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "already exists") {
		t.Errorf("expected duplicate-email variant, got %q", appErr.Message)
	}
}

func TestResetPasswordFlow(t *testing.T) {
	fx := newFixture(t)
	registered := fx.register(t, "person@example.com")

	_, err := fx.svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:     "person@example.com",
		Password1: "mynewpassword",
		Password2: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	stored := fx.repo.accounts[registered.ID]
	err = fx.svc.ConfirmPassword(context.Background(), ConfirmPasswordRequest{
		PasswordResetToken: *stored.PasswordResetToken,
	})
	if err != nil {
		t.Fatalf("ConfirmPassword: %v", err)
	}

	resp, err := fx.svc.Login(context.Background(), LoginRequest{
		Email:    "person@example.com",
		Password: "mynewpassword",
	})
	if err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}

	// The old password is gone.
	_, err = fx.svc.Login(context.Background(), LoginRequest{
		Email:    "person@example.com",
		Password: "thisisapassword",
	})
	if err == nil {
		t.Error("old password must stop working after a confirmed reset")
	}
}

func TestUpdatePartialFields(t *testing.T) {
	fx := newFixture(t)
	registered := fx.register(t, "person@example.com")
	ctx := context.WithValue(
		context.Background(), middleware.AccountIDKey, registered.ID,
	)

	company := "Initech"
	subscribed := false
	updated, err := fx.svc.Update(ctx, UpdateRequest{
		Company:         &company,
		EmailSubscribed: &subscribed,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Company == nil || *updated.Company != "Initech" {
		t.Error("company must be updated")
	}
	if updated.EmailSubscribed {
		t.Error("emailSubscribed must be updated to false")
	}
	if updated.FirstName != "Jonathan" {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestExportEnqueuesUserTask(t *testing.T) {
	fx := newFixture(t)
	registered := fx.register(t, "person@example.com")
	ctx := context.WithValue(
		context.Background(), middleware.AccountIDKey, registered.ID,
	)

	if err := fx.svc.Export(ctx); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(fx.queue.tasks) != 1 {
		t.Fatalf("expected 1 enqueued task, got %d", len(fx.queue.tasks))
	}
	if fx.queue.tasks[0].Type() != "user:export" {
		t.Errorf("unexpected task type %q", fx.queue.tasks[0].Type())
	}
}
