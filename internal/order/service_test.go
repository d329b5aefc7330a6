package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"biccshop.org/internal/account"
)

type stubStore struct {
	Store
	createFn    func(ctx context.Context, o *Order) error
	clearCartFn func(ctx context.Context, customerID int64) error
}

func (s *stubStore) Create(ctx context.Context, o *Order) error {
	return s.createFn(ctx, o)
}

func (s *stubStore) ClearCart(ctx context.Context, customerID int64) error {
	if s.clearCartFn == nil {
		return nil
	}
	return s.clearCartFn(ctx, customerID)
}

type stubAccounts struct {
	account.Store
	findByIDFn func(ctx context.Context, role account.Role, id int64) (*account.Account, error)
}

func (s *stubAccounts) FindByID(ctx context.Context, role account.Role, id int64) (*account.Account, error) {
	return s.findByIDFn(ctx, role, id)
}

type sentMail struct {
	to, subject, body string
}

type recorderSender struct {
	ch chan sentMail
}

func (r *recorderSender) Send(to, subject, body string) error {
	r.ch <- sentMail{to: to, subject: subject, body: body}
	return nil
}

func TestPlaceSendsConfirmation(t *testing.T) {
	store := &stubStore{createFn: func(ctx context.Context, o *Order) error {
		o.ID = 42
		return nil
	}}
	accounts := &stubAccounts{findByIDFn: func(ctx context.Context, role account.Role, id int64) (*account.Account, error) {
		if role != account.RoleCustomer || id != 5 {
			t.Fatalf("lookup role=%s id=%d", role, id)
		}
		return &account.Account{ID: 5, Email: "client@example.org"}, nil
	}}
	mailer := &recorderSender{ch: make(chan sentMail, 1)}

	svc := NewService(store, accounts, mailer)
	placed, err := svc.Place(context.Background(), &Order{
		CustomerID: 5,
		Details:    []Detail{{ProductID: 10, ProductName: "Clavier", Quantity: 2, SubTotal: 99.8}},
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placed.ID != 42 {
		t.Fatalf("order id = %d, want 42", placed.ID)
	}
	if placed.Status != StatusPending || placed.Details[0].Status != StatusPending {
		t.Fatalf("defaults not applied: %+v", placed)
	}
	if placed.OrderDate.IsZero() {
		t.Fatal("order date not defaulted")
	}

	select {
	case m := <-mailer.ch:
		if m.to != "client@example.org" {
			t.Fatalf("mail to %q", m.to)
		}
		if !strings.Contains(m.body, "Clavier") {
			t.Fatalf("mail body missing product line: %q", m.body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation mail never sent")
	}
}

func TestPlaceRejectsBadInput(t *testing.T) {
	svc := NewService(&stubStore{}, &stubAccounts{}, nil)

	if _, err := svc.Place(context.Background(), &Order{}); !errors.Is(err, ErrNoCustomer) {
		t.Fatalf("err = %v, want ErrNoCustomer", err)
	}

	o := &Order{CustomerID: 5, Details: []Detail{{ProductID: 10, Quantity: 0}}}
	if _, err := svc.Place(context.Background(), o); !errors.Is(err, ErrBadQuantity) {
		t.Fatalf("err = %v, want ErrBadQuantity", err)
	}
}

func TestPlaceSucceedsWhenRecipientLookupFails(t *testing.T) {
	store := &stubStore{createFn: func(ctx context.Context, o *Order) error {
		o.ID = 9
		return nil
	}}
	accounts := &stubAccounts{findByIDFn: func(ctx context.Context, role account.Role, id int64) (*account.Account, error) {
		return nil, account.ErrNotFound
	}}

	svc := NewService(store, accounts, nil)
	placed, err := svc.Place(context.Background(), &Order{CustomerID: 5})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if placed.ID != 9 {
		t.Fatalf("order id = %d, want 9", placed.ID)
	}
}
