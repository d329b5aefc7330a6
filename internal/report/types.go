// Package report computes dashboard statistics and renders downloadable PDF
// reports over the order and catalog data.
package report

// AdminStat feeds the admin dashboard.
type AdminStat struct {
	TotalCustomers int64   `json:"totalCustomers"`
	TotalSellers   int64   `json:"totalSellers"`
	TotalProducts  int64   `json:"totalProducts"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalSales     float64 `json:"totalSales"`
}

// SellerStat feeds one seller's dashboard.
type SellerStat struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalSales    float64 `json:"totalSales"`
}

// SalesRow is one day of a date-bounded sales report.
type SalesRow struct {
	Date   string  `json:"date"`
	Orders int64   `json:"orders"`
	Sales  float64 `json:"sales"`
}

// VendorSalesRow aggregates sales per seller over a date range.
type VendorSalesRow struct {
	StoreName string  `json:"storeName"`
	Orders    int64   `json:"orders"`
	Sales     float64 `json:"sales"`
}

// ProductRow is one product line of the catalog report.
type ProductRow struct {
	Title        string  `json:"title"`
	StoreName    string  `json:"storeName"`
	Category     string  `json:"category"`
	RegularPrice float64 `json:"regularPrice"`
	SalePrice    float64 `json:"salePrice"`
	StockCount   int     `json:"stockCount"`
	Status       string  `json:"status"`
}

// FavoriteItemRow counts how often a product is wishlisted.
type FavoriteItemRow struct {
	Title     string `json:"title"`
	StoreName string `json:"storeName"`
	Wishlists int64  `json:"wishlists"`
}

// CustomerRow is one customer line of the customer report.
type CustomerRow struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// SellerRow is one seller line of the seller report.
type SellerRow struct {
	Name      string `json:"name"`
	StoreName string `json:"storeName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

// ProfitRow aggregates platform takings per seller. PlatformProfit is the
// gateway fee share collected on that seller's sales.
type ProfitRow struct {
	StoreName      string  `json:"storeName"`
	Sales          float64 `json:"sales"`
	PlatformProfit float64 `json:"platformProfit"`
}

// StockAlertRow lists a seller's products running low.
type StockAlertRow struct {
	Title       string `json:"title"`
	StockCount  int    `json:"stockCount"`
	StockStatus string `json:"stockStatus"`
}

// TopSellingRow ranks a seller's products by units sold.
type TopSellingRow struct {
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Sales       float64 `json:"sales"`
}

// CustomerOrders is the per-customer order history report.
type CustomerOrders struct {
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Address string             `json:"address"`
	Orders  []CustomerOrderRow `json:"orders"`
}

type CustomerOrderRow struct {
	OrderID    int64   `json:"orderId"`
	OrderDate  string  `json:"orderDate"`
	Status     string  `json:"status"`
	OrderTotal float64 `json:"orderTotal"`
}

// Invoice is the printable invoice for one order.
type Invoice struct {
	OrderID        int64        `json:"orderId"`
	Street         string       `json:"street"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	SubTotal       float64      `json:"subTotal"`
	GatewayFee     float64      `json:"gatewayFee"`
	ShippingCharge float64      `json:"shippingCharge"`
	Discount       float64      `json:"discount"`
	Tax            float64      `json:"tax"`
	OrderTotal     float64      `json:"orderTotal"`
	Items          []InvoiceRow `json:"items"`
}

type InvoiceRow struct {
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	SubTotal    float64 `json:"subTotal"`
}
