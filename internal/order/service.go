package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"biccshop.org/internal/account"
	"biccshop.org/internal/mail"
	"biccshop.org/internal/obs"
)

var (
	// ErrNoCustomer reports an order submitted without an owning customer.
	ErrNoCustomer = errors.New("order: missing customer")
	// ErrBadQuantity reports a line with a non-positive quantity.
	ErrBadQuantity = errors.New("order: quantity must be positive")
)

// Service places orders and sends the confirmation e-mail. The notification
// is best effort; a mail failure never undoes a committed order.
type Service struct {
	store    Store
	accounts account.Store
	mailer   mail.Sender
	now      func() time.Time
}

func NewService(store Store, accounts account.Store, mailer mail.Sender) *Service {
	return &Service{store: store, accounts: accounts, mailer: mailer, now: time.Now}
}

// Place validates and persists the order, clears the customer's cart and
// queues the confirmation e-mail. The returned order carries the generated
// identifiers for the header and every line. Monetary totals are stored as
// submitted; the service does not recompute them.
func (s *Service) Place(ctx context.Context, o *Order) (*Order, error) {
	if o.CustomerID == 0 {
		return nil, ErrNoCustomer
	}
	for _, d := range o.Details {
		if d.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: %w", d.ProductID, ErrBadQuantity)
		}
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = s.now().UTC()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	for i := range o.Details {
		if o.Details[i].Status == "" {
			o.Details[i].Status = StatusPending
		}
	}

	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}
	obs.OrderPlaced()

	if err := s.store.ClearCart(ctx, o.CustomerID); err != nil {
		obs.Log(map[string]any{
			"level": "error", "msg": "clear cart after order", "order_id": o.ID, "error": err.Error(),
		})
	}

	s.notifyCustomer(ctx, o)
	return o, nil
}

func (s *Service) notifyCustomer(ctx context.Context, o *Order) {
	cust, err := s.accounts.FindByID(ctx, account.RoleCustomer, o.CustomerID)
	if err != nil {
		obs.Log(map[string]any{
			"level": "error", "msg": "order confirmation recipient lookup", "order_id": o.ID, "error": err.Error(),
		})
		return
	}
	lines := make([]mail.OrderLine, 0, len(o.Details))
	for _, d := range o.Details {
		lines = append(lines, mail.OrderLine{
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
			SubTotal:    d.SubTotal,
		})
	}
	subject, body := mail.OrderConfirmation(lines)
	mail.SendAsync(s.mailer, cust.Email, subject, body)
}
