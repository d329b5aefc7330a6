package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound reports a product or category that does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("catalog: not found")
)

// Store persists products, categories and reviews.
type Store interface {
	ListActive(ctx context.Context) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, sellerID, id int64) error

	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error

	AddReview(ctx context.Context, r *Review) error
	ReviewsByProduct(ctx context.Context, productID int64) ([]Review, error)
}
