// Package wishlist keeps per-customer product bookmarks. A wishlist entry
// only pairs a customer with a product; listings join the live product so the
// client always sees current prices.
package wishlist

import (
	"context"
	"database/sql"
	"fmt"
)

// Entry is one bookmark.
type Entry struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
}

// Detail is an entry joined with its product for display.
type Detail struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	ProductID    int64   `json:"productId"`
	Title        string  `json:"title"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	RegularPrice float64 `json:"regularPrice"`
	SalePrice    float64 `json:"salePrice"`
	StoreName    string  `json:"storeName"`
	StockStatus  string  `json:"stockStatus"`
}

// Store persists wishlist entries.
type Store interface {
	Add(ctx context.Context, e *Entry) error
	Remove(ctx context.Context, customerID, productID int64) error
	Exists(ctx context.Context, customerID, productID int64) (bool, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Detail, error)
}

var _ Store = (*PGStore)(nil)

// PGStore implements Store over PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

// Add is idempotent; bookmarking an already wishlisted product changes
// nothing.
func (s *PGStore) Add(ctx context.Context, e *Entry) error {
	err := s.db.QueryRowContext(ctx, `insert into wishlists (customer_id, product_id)
		values ($1, $2)
		on conflict (customer_id, product_id) do update set customer_id = excluded.customer_id
		returning wishlist_id`,
		e.CustomerID, e.ProductID).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("add wishlist entry: %w", err)
	}
	return nil
}

func (s *PGStore) Remove(ctx context.Context, customerID, productID int64) error {
	_, err := s.db.ExecContext(ctx,
		`delete from wishlists where customer_id = $1 and product_id = $2`, customerID, productID)
	if err != nil {
		return fmt.Errorf("remove wishlist entry: %w", err)
	}
	return nil
}

func (s *PGStore) Exists(ctx context.Context, customerID, productID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`select 1 from wishlists where customer_id = $1 and product_id = $2`,
		customerID, productID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check wishlist entry: %w", err)
	}
	return true, nil
}

func (s *PGStore) ListByCustomer(ctx context.Context, customerID int64) ([]Detail, error) {
	rows, err := s.db.QueryContext(ctx, `select w.wishlist_id, w.customer_id, w.product_id,
		p.title, p.thumbnail_url, p.regular_price, p.sale_price, s.store_name, p.stock_status
		from wishlists w
		join products p on p.product_id = w.product_id
		join sellers s on s.seller_id = p.seller_id
		where w.customer_id = $1
		order by w.wishlist_id desc`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()
	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.ProductID, &d.Title, &d.ThumbnailURL,
			&d.RegularPrice, &d.SalePrice, &d.StoreName, &d.StockStatus); err != nil {
			return nil, fmt.Errorf("scan wishlist entry: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
