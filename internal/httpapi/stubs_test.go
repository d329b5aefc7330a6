package httpapi

import (
	"context"
	"encoding/base64"
	"testing"

	"biccshop.org/internal/account"
	"biccshop.org/internal/auth"
	"biccshop.org/internal/catalog"
	"biccshop.org/internal/mail"
	"biccshop.org/internal/order"
	"biccshop.org/internal/report"
	"biccshop.org/internal/wishlist"
)

type stubAccounts struct {
	account.Store
	findByEmailFn func(ctx context.Context, role account.Role, email string) (*account.Account, error)
	findByIDFn    func(ctx context.Context, role account.Role, id int64) (*account.Account, error)
	existsFn      func(ctx context.Context, role account.Role, email string) (bool, error)
	listByRoleFn  func(ctx context.Context, role account.Role) ([]account.PublicView, error)
}

func (s *stubAccounts) FindByEmail(ctx context.Context, role account.Role, email string) (*account.Account, error) {
	return s.findByEmailFn(ctx, role, email)
}

func (s *stubAccounts) FindByID(ctx context.Context, role account.Role, id int64) (*account.Account, error) {
	return s.findByIDFn(ctx, role, id)
}

func (s *stubAccounts) ExistsByEmail(ctx context.Context, role account.Role, email string) (bool, error) {
	return s.existsFn(ctx, role, email)
}

func (s *stubAccounts) ListByRole(ctx context.Context, role account.Role) ([]account.PublicView, error) {
	return s.listByRoleFn(ctx, role)
}

type stubOrderStore struct {
	order.Store
	createFn    func(ctx context.Context, o *order.Order) error
	cartItemsFn func(ctx context.Context, customerID int64) ([]order.CartItem, error)
}

func (s *stubOrderStore) Create(ctx context.Context, o *order.Order) error {
	return s.createFn(ctx, o)
}

func (s *stubOrderStore) ClearCart(ctx context.Context, customerID int64) error {
	return nil
}

func (s *stubOrderStore) CartItems(ctx context.Context, customerID int64) ([]order.CartItem, error) {
	return s.cartItemsFn(ctx, customerID)
}

type stubCatalog struct {
	catalog.Store
	listActiveFn func(ctx context.Context) ([]catalog.Product, error)
}

func (s *stubCatalog) ListActive(ctx context.Context) ([]catalog.Product, error) {
	return s.listActiveFn(ctx)
}

type stubWishlist struct {
	wishlist.Store
}

type stubStats struct {
	report.Store
}

func testSecret(t *testing.T) string {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = 0x42
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// newTestAPI builds an API around stub stores; tests swap in the stubs they
// exercise.
func newTestAPI(t *testing.T, accounts *stubAccounts, orders *stubOrderStore, cat *stubCatalog) *API {
	t.Helper()
	tokens, err := auth.NewTokenService(testSecret(t))
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	if accounts == nil {
		accounts = &stubAccounts{}
	}
	if orders == nil {
		orders = &stubOrderStore{}
	}
	if cat == nil {
		cat = &stubCatalog{}
	}
	authSvc := auth.NewService(accounts, tokens, mail.NopSender{})
	orderSvc := order.NewService(orders, accounts, mail.NopSender{})
	return New(Deps{
		Auth:       authSvc,
		Tokens:     tokens,
		Accounts:   accounts,
		Catalog:    cat,
		Orders:     orderSvc,
		OrderStore: orders,
		Wishlist:   &stubWishlist{},
		Reports:    report.NewService(&stubStats{}),
		Stats:      &stubStats{},
		Mailer:     mail.NopSender{},
		AdminEmail: "admin@biccshop.org",
		CORSOrigin: "http://localhost:4200",
		Version:    "test",
	})
}
