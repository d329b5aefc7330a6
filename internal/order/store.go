package order

import (
	"context"
	"errors"
)

var (
	// ErrNotFound reports an order, detail line or cart row that does not
	// exist or does not belong to the caller.
	ErrNotFound = errors.New("order: not found")
)

// Store persists carts and orders.
type Store interface {
	// Create writes the header and all detail lines in one transaction and
	// fills in the generated identifiers.
	Create(ctx context.Context, o *Order) error
	ListAll(ctx context.Context) ([]Order, error)
	ListShipped(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, orderID int64) (*Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	GetForCustomer(ctx context.Context, orderID, customerID int64) (*Order, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]Order, error)
	GetForSeller(ctx context.Context, orderID, sellerID int64) (*Order, error)
	TrackDetail(ctx context.Context, detailID int64) (*Detail, error)
	UpdateDetailStatus(ctx context.Context, d *Detail) error
	HasPurchased(ctx context.Context, customerID, productID int64) (bool, error)

	AddCartItem(ctx context.Context, item *CartItem) error
	UpdateCartItem(ctx context.Context, item *CartItem) error
	RemoveCartItem(ctx context.Context, cartID int64) error
	CartItems(ctx context.Context, customerID int64) ([]CartItem, error)
	ClearCart(ctx context.Context, customerID int64) error
}
