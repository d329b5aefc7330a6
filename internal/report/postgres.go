package report

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

func (s *PGStore) AdminStat(ctx context.Context) (*AdminStat, error) {
	var st AdminStat
	err := s.db.QueryRowContext(ctx, `select
		(select count(*) from customers),
		(select count(*) from sellers),
		(select count(*) from products),
		(select count(*) from orders),
		(select coalesce(sum(order_total), 0) from orders)`).
		Scan(&st.TotalCustomers, &st.TotalSellers, &st.TotalProducts, &st.TotalOrders, &st.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("admin stat: %w", err)
	}
	return &st, nil
}

func (s *PGStore) SellerStat(ctx context.Context, sellerID int64) (*SellerStat, error) {
	var st SellerStat
	err := s.db.QueryRowContext(ctx, `select
		(select count(*) from products where seller_id = $1),
		(select count(distinct order_id) from order_details where seller_id = $1),
		(select count(*) from order_details where seller_id = $1 and status = 'Pending'),
		(select coalesce(sum(sub_total), 0) from order_details where seller_id = $1)`, sellerID).
		Scan(&st.TotalProducts, &st.TotalOrders, &st.PendingOrders, &st.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("seller stat: %w", err)
	}
	return &st, nil
}

func (s *PGStore) AdminSales(ctx context.Context, startDate, endDate string) ([]SalesRow, error) {
	rows, err := s.db.QueryContext(ctx, `select to_char(order_date, 'YYYY-MM-DD'),
		count(*), coalesce(sum(order_total), 0)
		from orders
		where order_date::date between $1::date and $2::date
		group by 1 order by 1`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("admin sales: %w", err)
	}
	defer rows.Close()
	return scanSalesRows(rows)
}

func (s *PGStore) SellerSales(ctx context.Context, sellerID int64, startDate, endDate string) ([]SalesRow, error) {
	rows, err := s.db.QueryContext(ctx, `select to_char(o.order_date, 'YYYY-MM-DD'),
		count(distinct o.order_id), coalesce(sum(od.sub_total), 0)
		from orders o
		join order_details od on od.order_id = o.order_id
		where od.seller_id = $1 and o.order_date::date between $2::date and $3::date
		group by 1 order by 1`, sellerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("seller sales: %w", err)
	}
	defer rows.Close()
	return scanSalesRows(rows)
}

func (s *PGStore) VendorSales(ctx context.Context, startDate, endDate string) ([]VendorSalesRow, error) {
	rows, err := s.db.QueryContext(ctx, `select od.store_name,
		count(distinct od.order_id), coalesce(sum(od.sub_total), 0)
		from order_details od
		join orders o on o.order_id = od.order_id
		where o.order_date::date between $1::date and $2::date
		group by od.store_name order by 3 desc`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("vendor sales: %w", err)
	}
	defer rows.Close()
	var out []VendorSalesRow
	for rows.Next() {
		var r VendorSalesRow
		if err := rows.Scan(&r.StoreName, &r.Orders, &r.Sales); err != nil {
			return nil, fmt.Errorf("scan vendor sales: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) Products(ctx context.Context) ([]ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, `select p.title, s.store_name, p.category,
		p.regular_price, p.sale_price, p.stock_count, p.status
		from products p
		join sellers s on s.seller_id = p.seller_id
		order by s.store_name, p.title`)
	if err != nil {
		return nil, fmt.Errorf("product report: %w", err)
	}
	defer rows.Close()
	var out []ProductRow
	for rows.Next() {
		var r ProductRow
		if err := rows.Scan(&r.Title, &r.StoreName, &r.Category, &r.RegularPrice, &r.SalePrice,
			&r.StockCount, &r.Status); err != nil {
			return nil, fmt.Errorf("scan product report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) FavoriteItems(ctx context.Context) ([]FavoriteItemRow, error) {
	rows, err := s.db.QueryContext(ctx, `select p.title, s.store_name, count(w.wishlist_id)
		from wishlists w
		join products p on p.product_id = w.product_id
		join sellers s on s.seller_id = p.seller_id
		group by p.title, s.store_name
		order by 3 desc`)
	if err != nil {
		return nil, fmt.Errorf("favorite items: %w", err)
	}
	defer rows.Close()
	var out []FavoriteItemRow
	for rows.Next() {
		var r FavoriteItemRow
		if err := rows.Scan(&r.Title, &r.StoreName, &r.Wishlists); err != nil {
			return nil, fmt.Errorf("scan favorite item: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) Customers(ctx context.Context) ([]CustomerRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`select name, email, coalesce(address, ''), status from customers order by name`)
	if err != nil {
		return nil, fmt.Errorf("customer report: %w", err)
	}
	defer rows.Close()
	var out []CustomerRow
	for rows.Next() {
		var r CustomerRow
		if err := rows.Scan(&r.Name, &r.Email, &r.Address, &r.Status); err != nil {
			return nil, fmt.Errorf("scan customer report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) Sellers(ctx context.Context) ([]SellerRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`select name, coalesce(store_name, ''), email, status from sellers order by store_name`)
	if err != nil {
		return nil, fmt.Errorf("seller report: %w", err)
	}
	defer rows.Close()
	var out []SellerRow
	for rows.Next() {
		var r SellerRow
		if err := rows.Scan(&r.Name, &r.StoreName, &r.Email, &r.Status); err != nil {
			return nil, fmt.Errorf("scan seller report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AdminProfit attributes to the platform the gateway fee of each order,
// split across sellers in proportion to their share of the order sub-total.
func (s *PGStore) AdminProfit(ctx context.Context) ([]ProfitRow, error) {
	rows, err := s.db.QueryContext(ctx, `select od.store_name,
		coalesce(sum(od.sub_total), 0),
		coalesce(sum(case when o.sub_total > 0 then o.gateway_fee * od.sub_total / o.sub_total else 0 end), 0)
		from order_details od
		join orders o on o.order_id = od.order_id
		group by od.store_name
		order by 2 desc`)
	if err != nil {
		return nil, fmt.Errorf("admin profit: %w", err)
	}
	defer rows.Close()
	var out []ProfitRow
	for rows.Next() {
		var r ProfitRow
		if err := rows.Scan(&r.StoreName, &r.Sales, &r.PlatformProfit); err != nil {
			return nil, fmt.Errorf("scan admin profit: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) CustomerOrders(ctx context.Context, customerID int64) (*CustomerOrders, error) {
	var co CustomerOrders
	err := s.db.QueryRowContext(ctx,
		`select name, email, coalesce(address, '') from customers where customer_id = $1`,
		customerID).Scan(&co.Name, &co.Email, &co.Address)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("customer orders header: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `select order_id, to_char(order_date, 'YYYY-MM-DD'),
		status, order_total
		from orders where customer_id = $1 order by order_id desc`, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer orders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r CustomerOrderRow
		if err := rows.Scan(&r.OrderID, &r.OrderDate, &r.Status, &r.OrderTotal); err != nil {
			return nil, fmt.Errorf("scan customer order: %w", err)
		}
		co.Orders = append(co.Orders, r)
	}
	return &co, rows.Err()
}

const stockAlertThreshold = 10

func (s *PGStore) StockAlert(ctx context.Context, sellerID int64) ([]StockAlertRow, error) {
	rows, err := s.db.QueryContext(ctx, `select title, stock_count, stock_status
		from products
		where seller_id = $1 and stock_count <= $2
		order by stock_count`, sellerID, stockAlertThreshold)
	if err != nil {
		return nil, fmt.Errorf("stock alert: %w", err)
	}
	defer rows.Close()
	var out []StockAlertRow
	for rows.Next() {
		var r StockAlertRow
		if err := rows.Scan(&r.Title, &r.StockCount, &r.StockStatus); err != nil {
			return nil, fmt.Errorf("scan stock alert: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) TopSelling(ctx context.Context, sellerID int64) ([]TopSellingRow, error) {
	rows, err := s.db.QueryContext(ctx, `select product_name,
		coalesce(sum(quantity), 0), coalesce(sum(sub_total), 0)
		from order_details
		where seller_id = $1
		group by product_name
		order by 2 desc
		limit 10`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("top selling: %w", err)
	}
	defer rows.Close()
	var out []TopSellingRow
	for rows.Next() {
		var r TopSellingRow
		if err := rows.Scan(&r.ProductName, &r.Quantity, &r.Sales); err != nil {
			return nil, fmt.Errorf("scan top selling: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) Invoice(ctx context.Context, orderID int64) (*Invoice, error) {
	var inv Invoice
	err := s.db.QueryRowContext(ctx, `select order_id, shipping_street, shipping_city,
		shipping_state, sub_total, gateway_fee, shipping_charge, discount, tax, order_total
		from orders where order_id = $1`, orderID).
		Scan(&inv.OrderID, &inv.Street, &inv.City, &inv.State, &inv.SubTotal, &inv.GatewayFee,
			&inv.ShippingCharge, &inv.Discount, &inv.Tax, &inv.OrderTotal)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("invoice header: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `select product_name, quantity, product_unit_price, sub_total
		from order_details where order_id = $1 order by order_details_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r InvoiceRow
		if err := rows.Scan(&r.ProductName, &r.Quantity, &r.UnitPrice, &r.SubTotal); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		inv.Items = append(inv.Items, r)
	}
	return &inv, rows.Err()
}

func scanSalesRows(rows *sql.Rows) ([]SalesRow, error) {
	var out []SalesRow
	for rows.Next() {
		var r SalesRow
		if err := rows.Scan(&r.Date, &r.Orders, &r.Sales); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
