package order

import (
	"context"
	"database/sql"
	"fmt"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store over PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

const orderColumns = `order_id, customer_id, order_date, status, sub_total, discount,
	shipping_charge, tax, gateway_fee, order_total, shipping_street, shipping_city,
	shipping_post_code, shipping_state, shipping_country, payment_status, payment_method,
	card_number, card_cvv, card_holder_name, card_expiry_date`

const detailColumns = `order_details_id, order_id, product_id, seller_id, store_name,
	product_name, product_unit_price, product_thumbnail_url, status, quantity, sub_total, delivery_date`

func (s *PGStore) Create(ctx context.Context, o *Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `insert into orders
		(customer_id, order_date, status, sub_total, discount, shipping_charge, tax, gateway_fee,
		 order_total, shipping_street, shipping_city, shipping_post_code, shipping_state,
		 shipping_country, payment_status, payment_method, card_number, card_cvv,
		 card_holder_name, card_expiry_date)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		returning order_id`,
		o.CustomerID, o.OrderDate, o.Status, o.SubTotal, o.Discount, o.ShippingCharge, o.Tax,
		o.GatewayFee, o.OrderTotal, o.ShippingStreet, o.ShippingCity, o.ShippingPostCode,
		o.ShippingState, o.ShippingCountry, o.PaymentStatus, o.PaymentMethod, o.CardNumber,
		o.CardCvv, o.CardHolderName, o.CardExpiryDate,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range o.Details {
		d := &o.Details[i]
		d.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `insert into order_details
			(order_id, product_id, seller_id, store_name, product_name, product_unit_price,
			 product_thumbnail_url, status, quantity, sub_total, delivery_date)
			values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			returning order_details_id`,
			d.OrderID, d.ProductID, d.SellerID, d.StoreName, d.ProductName, d.ProductUnitPrice,
			d.ProductThumbnailURL, d.Status, d.Quantity, d.SubTotal, d.DeliveryDate,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("insert order detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	return nil
}

func (s *PGStore) ListAll(ctx context.Context) ([]Order, error) {
	q := fmt.Sprintf(`select %s from orders order by order_id desc`, orderColumns)
	return s.listWithDetails(ctx, q)
}

func (s *PGStore) ListShipped(ctx context.Context) ([]Order, error) {
	q := fmt.Sprintf(`select %s from orders where status = '%s' order by order_id desc`,
		orderColumns, StatusShipped)
	return s.listWithDetails(ctx, q)
}

func (s *PGStore) Get(ctx context.Context, orderID int64) (*Order, error) {
	q := fmt.Sprintf(`select %s from orders where order_id = $1`, orderColumns)
	o, err := scanOrder(s.db.QueryRowContext(ctx, q, orderID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.Details, err = s.detailsByOrder(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *PGStore) listWithDetails(ctx context.Context, q string, args ...any) ([]Order, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Details, err = s.detailsByOrder(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *PGStore) ListByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	q := fmt.Sprintf(`select %s from orders where customer_id = $1 order by order_id desc`, orderColumns)
	return s.listWithDetails(ctx, q, customerID)
}

func (s *PGStore) GetForCustomer(ctx context.Context, orderID, customerID int64) (*Order, error) {
	q := fmt.Sprintf(`select %s from orders where order_id = $1 and customer_id = $2`, orderColumns)
	o, err := scanOrder(s.db.QueryRowContext(ctx, q, orderID, customerID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.Details, err = s.detailsByOrder(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

// ListBySeller returns orders containing at least one line sold by the
// seller; Details holds only that seller's lines.
func (s *PGStore) ListBySeller(ctx context.Context, sellerID int64) ([]Order, error) {
	q := fmt.Sprintf(`select distinct %s from orders o
		join order_details od on od.order_id = o.order_id
		where od.seller_id = $1 order by o.order_id desc`, qualifyOrderColumns("o"))
	rows, err := s.db.QueryContext(ctx, q, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller orders: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Details, err = s.detailsByOrderAndSeller(ctx, orders[i].ID, sellerID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *PGStore) GetForSeller(ctx context.Context, orderID, sellerID int64) (*Order, error) {
	details, err := s.detailsByOrderAndSeller(ctx, orderID, sellerID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	q := fmt.Sprintf(`select %s from orders where order_id = $1`, orderColumns)
	o, err := scanOrder(s.db.QueryRowContext(ctx, q, orderID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get seller order: %w", err)
	}
	o.Details = details
	// The header may reference other sellers' lines; card fields stay with
	// the customer side only.
	o.CardNumber, o.CardCvv, o.CardHolderName, o.CardExpiryDate = "", "", "", ""
	return o, nil
}

func (s *PGStore) TrackDetail(ctx context.Context, detailID int64) (*Detail, error) {
	q := fmt.Sprintf(`select %s from order_details where order_details_id = $1`, detailColumns)
	d, err := scanDetail(s.db.QueryRowContext(ctx, q, detailID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("track detail: %w", err)
	}
	return d, nil
}

// UpdateDetailStatus moves one detail line through its lifecycle. A non-zero
// seller id guards against touching another seller's line; zero means an
// admin update with no ownership constraint.
func (s *PGStore) UpdateDetailStatus(ctx context.Context, d *Detail) error {
	var res sql.Result
	var err error
	if d.SellerID != 0 {
		res, err = s.db.ExecContext(ctx, `update order_details
			set status = $1, delivery_date = $2
			where order_details_id = $3 and seller_id = $4`,
			d.Status, d.DeliveryDate, d.ID, d.SellerID)
	} else {
		res, err = s.db.ExecContext(ctx, `update order_details
			set status = $1, delivery_date = $2
			where order_details_id = $3`,
			d.Status, d.DeliveryDate, d.ID)
	}
	if err != nil {
		return fmt.Errorf("update detail status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) HasPurchased(ctx context.Context, customerID, productID int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `select count(*) from orders o
		join order_details od on od.order_id = o.order_id
		where o.customer_id = $1 and od.product_id = $2`, customerID, productID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check purchased: %w", err)
	}
	return n > 0, nil
}

func (s *PGStore) AddCartItem(ctx context.Context, item *CartItem) error {
	err := s.db.QueryRowContext(ctx, `insert into carts
		(customer_id, product_id, seller_id, store_name, product_name, product_thumbnail_url,
		 product_unit_price, quantity, sub_total)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		returning cart_id`,
		item.CustomerID, item.ProductID, item.SellerID, item.StoreName, item.ProductName,
		item.ProductThumbnailURL, item.ProductUnitPrice, item.Quantity, item.SubTotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (s *PGStore) UpdateCartItem(ctx context.Context, item *CartItem) error {
	res, err := s.db.ExecContext(ctx,
		`update carts set quantity = $1, sub_total = $2 where cart_id = $3`,
		item.Quantity, item.SubTotal, item.ID)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) RemoveCartItem(ctx context.Context, cartID int64) error {
	res, err := s.db.ExecContext(ctx, `delete from carts where cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) CartItems(ctx context.Context, customerID int64) ([]CartItem, error) {
	rows, err := s.db.QueryContext(ctx, `select cart_id, customer_id, product_id, seller_id,
		store_name, product_name, product_thumbnail_url, product_unit_price, quantity, sub_total
		from carts where customer_id = $1 order by cart_id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var out []CartItem
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.ProductID, &it.SellerID, &it.StoreName,
			&it.ProductName, &it.ProductThumbnailURL, &it.ProductUnitPrice, &it.Quantity, &it.SubTotal); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *PGStore) ClearCart(ctx context.Context, customerID int64) error {
	if _, err := s.db.ExecContext(ctx, `delete from carts where customer_id = $1`, customerID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *PGStore) detailsByOrder(ctx context.Context, orderID int64) ([]Detail, error) {
	q := fmt.Sprintf(`select %s from order_details where order_id = $1 order by order_details_id`, detailColumns)
	rows, err := s.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (s *PGStore) detailsByOrderAndSeller(ctx context.Context, orderID, sellerID int64) ([]Detail, error) {
	q := fmt.Sprintf(`select %s from order_details where order_id = $1 and seller_id = $2 order by order_details_id`, detailColumns)
	rows, err := s.db.QueryContext(ctx, q, orderID, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller order details: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.Status, &o.SubTotal, &o.Discount,
		&o.ShippingCharge, &o.Tax, &o.GatewayFee, &o.OrderTotal, &o.ShippingStreet,
		&o.ShippingCity, &o.ShippingPostCode, &o.ShippingState, &o.ShippingCountry,
		&o.PaymentStatus, &o.PaymentMethod, &o.CardNumber, &o.CardCvv, &o.CardHolderName,
		&o.CardExpiryDate)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func scanDetail(row rowScanner) (*Detail, error) {
	var d Detail
	err := row.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.SellerID, &d.StoreName, &d.ProductName,
		&d.ProductUnitPrice, &d.ProductThumbnailURL, &d.Status, &d.Quantity, &d.SubTotal, &d.DeliveryDate)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDetails(rows *sql.Rows) ([]Detail, error) {
	var out []Detail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// qualifyOrderColumns prefixes every header column so joins against
// order_details stay unambiguous.
func qualifyOrderColumns(alias string) string {
	return alias + ".order_id, " + alias + ".customer_id, " + alias + ".order_date, " +
		alias + ".status, " + alias + ".sub_total, " + alias + ".discount, " +
		alias + ".shipping_charge, " + alias + ".tax, " + alias + ".gateway_fee, " +
		alias + ".order_total, " + alias + ".shipping_street, " + alias + ".shipping_city, " +
		alias + ".shipping_post_code, " + alias + ".shipping_state, " + alias + ".shipping_country, " +
		alias + ".payment_status, " + alias + ".payment_method, " + alias + ".card_number, " +
		alias + ".card_cvv, " + alias + ".card_holder_name, " + alias + ".card_expiry_date"
}
