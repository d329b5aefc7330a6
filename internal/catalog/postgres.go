package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store over PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

const productColumns = `p.product_id, p.seller_id, s.store_name, p.title, p.description,
	p.thumbnail_url, p.regular_price, p.sale_price, p.category, p.stock_status, p.stock_count, p.status`

const activeProductFrom = `from products p
	join sellers s on s.seller_id = p.seller_id
	where p.status = 'Active' and s.status = 'Active'`

func (s *PGStore) ListActive(ctx context.Context) ([]Product, error) {
	q := fmt.Sprintf(`select %s %s order by p.product_id desc`, productColumns, activeProductFrom)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListAll includes inactive products and sellers for moderation.
func (s *PGStore) ListAll(ctx context.Context) ([]Product, error) {
	q := fmt.Sprintf(`select %s
		from products p
		join sellers s on s.seller_id = p.seller_id
		order by p.product_id desc`, productColumns)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Get has no status filter; sellers load their own inactive products
// through it and order history links may point at retired listings.
func (s *PGStore) Get(ctx context.Context, id int64) (*Product, error) {
	q := fmt.Sprintf(`select %s
		from products p
		join sellers s on s.seller_id = p.seller_id
		where p.product_id = $1`, productColumns)
	p, err := scanProduct(s.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *PGStore) Search(ctx context.Context, query string) ([]Product, error) {
	q := fmt.Sprintf(`select %s %s and (lower(p.title) like $1 or lower(p.category) like $1)
		order by p.product_id desc`, productColumns, activeProductFrom)
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := s.db.QueryContext(ctx, q, pattern)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PGStore) ListBySeller(ctx context.Context, sellerID int64) ([]Product, error) {
	q := fmt.Sprintf(`select %s
		from products p
		join sellers s on s.seller_id = p.seller_id
		where p.seller_id = $1
		order by p.product_id desc`, productColumns)
	rows, err := s.db.QueryContext(ctx, q, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PGStore) CreateProduct(ctx context.Context, p *Product) error {
	err := s.db.QueryRowContext(ctx, `insert into products
		(seller_id, title, description, thumbnail_url, regular_price, sale_price, category, stock_status, stock_count, status)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		returning product_id`,
		p.SellerID, p.Title, p.Description, p.ThumbnailURL, p.RegularPrice, p.SalePrice,
		p.Category, p.StockStatus, p.StockCount, p.Status,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// UpdateProduct only touches rows owned by p.SellerID.
func (s *PGStore) UpdateProduct(ctx context.Context, p *Product) error {
	res, err := s.db.ExecContext(ctx, `update products set
		title = $1, description = $2, thumbnail_url = $3, regular_price = $4, sale_price = $5,
		category = $6, stock_status = $7, stock_count = $8, status = $9
		where product_id = $10 and seller_id = $11`,
		p.Title, p.Description, p.ThumbnailURL, p.RegularPrice, p.SalePrice,
		p.Category, p.StockStatus, p.StockCount, p.Status, p.ID, p.SellerID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return requireRow(res)
}

func (s *PGStore) DeleteProduct(ctx context.Context, sellerID, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from products where product_id = $1 and seller_id = $2`, id, sellerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return requireRow(res)
}

func (s *PGStore) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `select category_id, name from categories order by name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PGStore) CreateCategory(ctx context.Context, name string) (*Category, error) {
	c := Category{Name: name}
	err := s.db.QueryRowContext(ctx,
		`insert into categories (name) values ($1) returning category_id`, name).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

func (s *PGStore) UpdateCategory(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(ctx, `update categories set name = $1 where category_id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireRow(res)
}

func (s *PGStore) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `delete from categories where category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res)
}

func (s *PGStore) AddReview(ctx context.Context, r *Review) error {
	err := s.db.QueryRowContext(ctx, `insert into reviews (product_id, customer_id, rating, comment)
		values ($1, $2, $3, $4)
		returning review_id, created_at`,
		r.ProductID, r.CustomerID, r.Rating, r.Comment).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("add review: %w", err)
	}
	return nil
}

func (s *PGStore) ReviewsByProduct(ctx context.Context, productID int64) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, `select review_id, product_id, customer_id, rating, comment, created_at
		from reviews where product_id = $1 order by created_at desc`, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var out []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.CustomerID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.SellerID, &p.StoreName, &p.Title, &p.Description,
		&p.ThumbnailURL, &p.RegularPrice, &p.SalePrice, &p.Category, &p.StockStatus, &p.StockCount, &p.Status)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
