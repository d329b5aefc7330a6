package auth

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"biccshop.org/internal/account"
	"biccshop.org/internal/mail"
)

type stubStore struct {
	account.Store

	findByEmailFn func(context.Context, account.Role, string) (*account.Account, error)
	findByIDFn    func(context.Context, account.Role, int64) (*account.Account, error)
	existsFn      func(context.Context, account.Role, string) (bool, error)
	createFn      func(context.Context, *account.Account) error
	replaceCodeFn func(context.Context, int64, int) error
	consumeCodeFn func(context.Context, int64, int) (bool, error)
}

func (s *stubStore) FindByEmail(ctx context.Context, role account.Role, email string) (*account.Account, error) {
	return s.findByEmailFn(ctx, role, email)
}

func (s *stubStore) FindByID(ctx context.Context, role account.Role, id int64) (*account.Account, error) {
	return s.findByIDFn(ctx, role, id)
}

func (s *stubStore) ExistsByEmail(ctx context.Context, role account.Role, email string) (bool, error) {
	return s.existsFn(ctx, role, email)
}

func (s *stubStore) Create(ctx context.Context, a *account.Account) error {
	return s.createFn(ctx, a)
}

func (s *stubStore) ReplaceVerificationCode(ctx context.Context, userID int64, code int) error {
	return s.replaceCodeFn(ctx, userID, code)
}

func (s *stubStore) ConsumeVerificationCode(ctx context.Context, userID int64, code int) (bool, error) {
	return s.consumeCodeFn(ctx, userID, code)
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{7}, 32)))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func storedCustomer(t *testing.T, email, password string) *account.Account {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &account.Account{
		ID:           11,
		Name:         "Ana",
		Email:        email,
		PasswordHash: hash,
		Role:         account.RoleCustomer,
		Status:       account.StatusActive,
	}
}

func TestLoginIssuesTokenForStoredAccount(t *testing.T) {
	acct := storedCustomer(t, "a@b.com", "secret")
	store := &stubStore{
		findByEmailFn: func(_ context.Context, role account.Role, email string) (*account.Account, error) {
			if role != account.RoleCustomer || email != "a@b.com" {
				t.Fatalf("unexpected lookup: %s %s", role, email)
			}
			return acct, nil
		},
	}
	tokens := newTestTokens(t)
	svc := NewService(store, tokens, mail.NopSender{})

	res, err := svc.Login(context.Background(), "  A@B.com ", "secret", account.RoleCustomer)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := tokens.Validate(res.Token)
	if err != nil {
		t.Fatalf("Validate issued token: %v", err)
	}
	if claims.Subject != "a@b.com" || claims.Role != "CUSTOMER" {
		t.Fatalf("token claims mismatch: %+v", claims)
	}
	if res.Account.Email != "a@b.com" {
		t.Fatalf("unexpected account view: %+v", res.Account)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	acct := storedCustomer(t, "a@b.com", "secret")
	store := &stubStore{
		findByEmailFn: func(context.Context, account.Role, string) (*account.Account, error) {
			return acct, nil
		},
	}
	svc := NewService(store, newTestTokens(t), mail.NopSender{})

	if _, err := svc.Login(context.Background(), "a@b.com", "secre", account.RoleCustomer); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	store := &stubStore{
		findByEmailFn: func(context.Context, account.Role, string) (*account.Account, error) {
			return nil, account.ErrNotFound
		},
	}
	svc := NewService(store, newTestTokens(t), mail.NopSender{})

	if _, err := svc.Login(context.Background(), "ghost@b.com", "x", account.RoleCustomer); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := &stubStore{
		existsFn: func(_ context.Context, _ account.Role, email string) (bool, error) {
			return email == "a@b.com", nil
		},
	}
	svc := NewService(store, newTestTokens(t), mail.NopSender{})

	_, err := svc.Signup(context.Background(), SignupRequest{Email: "A@B.com", Password: "pw", Name: "Ana"}, account.RoleCustomer)
	if !errors.Is(err, account.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestSignupHashesPassword(t *testing.T) {
	var created *account.Account
	store := &stubStore{
		existsFn: func(context.Context, account.Role, string) (bool, error) { return false, nil },
		createFn: func(_ context.Context, a *account.Account) error {
			a.ID = 5
			created = a
			return nil
		},
	}
	svc := NewService(store, newTestTokens(t), mail.NopSender{})

	view, err := svc.Signup(context.Background(), SignupRequest{Email: "a@b.com", Password: "secret", Name: "Ana"}, account.RoleCustomer)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if created == nil || created.PasswordHash == "secret" || created.PasswordHash == "" {
		t.Fatalf("password was not hashed: %+v", created)
	}
	if err := VerifyPassword(created.PasswordHash, "secret"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if err := VerifyPassword(created.PasswordHash, "secre"); err == nil {
		t.Fatal("stored hash verified a wrong password")
	}
	if view.ID != 5 || view.Email != "a@b.com" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestSendVerificationCodeReissues(t *testing.T) {
	var gotUser int64
	var gotCode int
	store := &stubStore{
		findByIDFn: func(_ context.Context, role account.Role, id int64) (*account.Account, error) {
			if role != account.RoleCustomer {
				t.Fatalf("unexpected role %s", role)
			}
			return &account.Account{ID: id, Email: "a@b.com", Role: role}, nil
		},
		replaceCodeFn: func(_ context.Context, userID int64, code int) error {
			gotUser, gotCode = userID, code
			return nil
		},
	}
	svc := NewService(store, newTestTokens(t), mail.NopSender{})
	svc.randInt = func(int) int { return 234567 - 100000 }

	if err := svc.SendVerificationCode(context.Background(), 42); err != nil {
		t.Fatalf("SendVerificationCode: %v", err)
	}
	if gotUser != 42 || gotCode != 234567 {
		t.Fatalf("unexpected stored code: user=%d code=%d", gotUser, gotCode)
	}
}
