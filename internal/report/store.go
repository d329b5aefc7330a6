package report

import (
	"context"
	"errors"
)

// ErrNotFound reports a report subject (order, customer) that does not exist.
var ErrNotFound = errors.New("report: not found")

// Store runs the aggregate queries behind stats and reports. Date arguments
// use the YYYY-MM-DD form and bound the range inclusively.
type Store interface {
	AdminStat(ctx context.Context) (*AdminStat, error)
	SellerStat(ctx context.Context, sellerID int64) (*SellerStat, error)
	AdminSales(ctx context.Context, startDate, endDate string) ([]SalesRow, error)
	SellerSales(ctx context.Context, sellerID int64, startDate, endDate string) ([]SalesRow, error)

	VendorSales(ctx context.Context, startDate, endDate string) ([]VendorSalesRow, error)
	Products(ctx context.Context) ([]ProductRow, error)
	FavoriteItems(ctx context.Context) ([]FavoriteItemRow, error)
	Customers(ctx context.Context) ([]CustomerRow, error)
	Sellers(ctx context.Context) ([]SellerRow, error)
	AdminProfit(ctx context.Context) ([]ProfitRow, error)
	CustomerOrders(ctx context.Context, customerID int64) (*CustomerOrders, error)
	StockAlert(ctx context.Context, sellerID int64) ([]StockAlertRow, error)
	TopSelling(ctx context.Context, sellerID int64) ([]TopSellingRow, error)
	Invoice(ctx context.Context, orderID int64) (*Invoice, error)
}
