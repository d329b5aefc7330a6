package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"biccshop.org/internal/account"
	"biccshop.org/internal/mail"
)

// Service verifies credentials against the account store, issues tokens, and
// runs the signup and e-mail verification flows.
type Service struct {
	store   account.Store
	tokens  *TokenService
	mailer  mail.Sender
	randInt func(n int) int
}

// NewService wires the authenticator.
func NewService(store account.Store, tokens *TokenService, mailer mail.Sender) *Service {
	return &Service{
		store:   store,
		tokens:  tokens,
		mailer:  mailer,
		randInt: rand.Intn,
	}
}

// Result is the successful login payload: a signed token plus the public view
// of the account. The password hash never leaves the store layer.
type Result struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Account   account.PublicView `json:"user"`
}

// Login authenticates an account of the given role by e-mail and password.
// Lookup and credential failures stay distinct internally (ErrAccountNotFound
// vs ErrInvalidCredentials); callers present them uniformly.
func (s *Service) Login(ctx context.Context, email, password string, role account.Role) (Result, error) {
	email = account.NormalizeEmail(email)
	if email == "" || password == "" {
		return Result{}, ErrInvalidCredentials
	}
	acct, err := s.store.FindByEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return Result{}, ErrAccountNotFound
		}
		return Result{}, fmt.Errorf("login lookup: %w", err)
	}
	if err := VerifyPassword(acct.PasswordHash, password); err != nil {
		return Result{}, ErrInvalidCredentials
	}
	token, exp, err := s.tokens.Issue(acct.Email, string(acct.Role), nil)
	if err != nil {
		return Result{}, fmt.Errorf("issue token: %w", err)
	}
	return Result{Token: token, ExpiresAt: exp, Account: acct.Public()}, nil
}

// SignupRequest is the inbound signup payload.
type SignupRequest struct {
	Name      string
	Email     string
	Password  string
	Address   string
	StoreName string
}

// Signup creates an account of the given role, rejecting duplicate e-mails
// case-insensitively, and sends the welcome message in the background.
func (s *Service) Signup(ctx context.Context, req SignupRequest, role account.Role) (account.PublicView, error) {
	email := account.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return account.PublicView{}, errors.New("auth: email and password are required")
	}
	exists, err := s.store.ExistsByEmail(ctx, role, email)
	if err != nil {
		return account.PublicView{}, fmt.Errorf("signup lookup: %w", err)
	}
	if exists {
		return account.PublicView{}, account.ErrAlreadyExists
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return account.PublicView{}, fmt.Errorf("hash password: %w", err)
	}
	acct := &account.Account{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       account.StatusActive,
		Address:      req.Address,
		StoreName:    req.StoreName,
	}
	if err := s.store.Create(ctx, acct); err != nil {
		return account.PublicView{}, err
	}

	subject, body := mail.Welcome(acct.Name, acct.Email, acct.Address, roleLabel(role))
	mail.SendAsync(s.mailer, acct.Email, subject, body)

	return acct.Public(), nil
}

// SendVerificationCode reissues the customer's 6-digit code; the previous
// code stops working the moment the new one is stored.
func (s *Service) SendVerificationCode(ctx context.Context, customerID int64) error {
	acct, err := s.store.FindByID(ctx, account.RoleCustomer, customerID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("code recipient lookup: %w", err)
	}
	code := 100000 + s.randInt(900000)
	if err := s.store.ReplaceVerificationCode(ctx, acct.ID, code); err != nil {
		return err
	}
	subject, body := mail.VerificationCode(code)
	mail.SendAsync(s.mailer, acct.Email, subject, body)
	return nil
}

// VerifyCode consumes the code; on a match the customer's e-mail is marked
// verified and a confirmation is mailed.
func (s *Service) VerifyCode(ctx context.Context, customerID int64, code int) (bool, error) {
	ok, err := s.store.ConsumeVerificationCode(ctx, customerID, code)
	if err != nil || !ok {
		return false, err
	}
	if acct, err := s.store.FindByID(ctx, account.RoleCustomer, customerID); err == nil {
		subject, body := mail.EmailVerified()
		mail.SendAsync(s.mailer, acct.Email, subject, body)
	}
	return true, nil
}

func roleLabel(role account.Role) string {
	switch role {
	case account.RoleAdmin:
		return "Administrateur"
	case account.RoleSeller:
		return "Vendeur"
	default:
		return "Client"
	}
}
