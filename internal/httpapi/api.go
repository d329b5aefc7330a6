// Package httpapi is the HTTP surface of the shop: routing, middleware,
// authentication and the JSON/PDF handlers.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"biccshop.org/internal/account"
	"biccshop.org/internal/auth"
	"biccshop.org/internal/catalog"
	"biccshop.org/internal/mail"
	"biccshop.org/internal/obs"
	"biccshop.org/internal/order"
	"biccshop.org/internal/report"
	"biccshop.org/internal/wishlist"
)

// ReadyProbe checks database reachability for /readyz.
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// Deps bundles everything the HTTP layer talks to.
type Deps struct {
	Auth       *auth.Service
	Tokens     *auth.TokenService
	Accounts   account.Store
	Catalog    catalog.Store
	Orders     *order.Service
	OrderStore order.Store
	Wishlist   wishlist.Store
	Reports    *report.Service
	Stats      report.Store
	Mailer     mail.Sender
	AdminEmail string
	CORSOrigin string
	ReadyProbe ReadyProbe
	Version    string
}

// API is the HTTP layer.
type API struct {
	mux        *http.ServeMux
	auth       *auth.Service
	tokens     *auth.TokenService
	accounts   account.Store
	catalog    catalog.Store
	orders     *order.Service
	orderStore order.Store
	wishlist   wishlist.Store
	reports    *report.Service
	stats      report.Store
	mailer     mail.Sender
	adminEmail string
	corsOrigin string
	readyProbe ReadyProbe
	version    string
}

func New(d Deps) *API {
	a := &API{
		mux:        http.NewServeMux(),
		auth:       d.Auth,
		tokens:     d.Tokens,
		accounts:   d.Accounts,
		catalog:    d.Catalog,
		orders:     d.Orders,
		orderStore: d.OrderStore,
		wishlist:   d.Wishlist,
		reports:    d.Reports,
		stats:      d.Stats,
		mailer:     d.Mailer,
		adminEmail: d.AdminEmail,
		corsOrigin: d.CORSOrigin,
		readyProbe: d.ReadyProbe,
		version:    d.Version,
	}

	// health/ready/metrics
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.Handle("/metrics", obs.Handler())

	// auth, one entry point per role
	a.mux.HandleFunc("/admin/login", a.Login(account.RoleAdmin))
	a.mux.HandleFunc("/seller/login", a.Login(account.RoleSeller))
	a.mux.HandleFunc("/customer/login", a.Login(account.RoleCustomer))
	a.mux.HandleFunc("/admin/signup", a.Signup(account.RoleAdmin))
	a.mux.HandleFunc("/seller/signup", a.Signup(account.RoleSeller))
	a.mux.HandleFunc("/customer/signup", a.Signup(account.RoleCustomer))
	a.mux.HandleFunc("/check-email", a.CheckEmail(account.RoleCustomer))
	a.mux.HandleFunc("/seller/check-email", a.CheckEmail(account.RoleSeller))
	a.mux.HandleFunc("/customer/send-code", a.SendVerificationCode)
	a.mux.HandleFunc("/customer/verify-code", a.VerifyCode)

	// public catalog
	a.mux.HandleFunc("/products", a.Products)
	a.mux.HandleFunc("/product/", a.ProductByID)
	a.mux.HandleFunc("/search", a.SearchProducts)
	a.mux.HandleFunc("/category/all", a.Categories)
	a.mux.HandleFunc("/category", a.CategoryCRUD)
	a.mux.HandleFunc("/reviews", a.Reviews)

	// customer area
	a.mux.HandleFunc("/customer/cart", a.Cart)
	a.mux.HandleFunc("/customer/order", a.CustomerOrder)
	a.mux.HandleFunc("/customer/orders", a.CustomerOrders)
	a.mux.HandleFunc("/customer/track", a.TrackOrder)
	a.mux.HandleFunc("/customer/check-purchased", a.CheckPurchased)
	a.mux.HandleFunc("/customer/wishlist", a.Wishlist)
	a.mux.HandleFunc("/customer/wishlist/check", a.WishlistCheck)
	a.mux.HandleFunc("/customer/review", a.AddReview)
	a.mux.HandleFunc("/customer/contact", a.ContactUs)
	a.mux.HandleFunc("/customer/", a.CustomerByID)

	// seller area
	a.mux.HandleFunc("/seller/product", a.SellerProduct)
	a.mux.HandleFunc("/seller/product/", a.SellerProductByID)
	a.mux.HandleFunc("/seller/products/", a.SellerProducts)
	a.mux.HandleFunc("/seller/orders", a.SellerOrders)
	a.mux.HandleFunc("/seller/order", a.SellerOrder)
	a.mux.HandleFunc("/seller/stat", a.SellerStat)
	a.mux.HandleFunc("/seller/report/sales", a.SellerSalesReport)
	a.mux.HandleFunc("/seller/", a.SellerByID)

	// admin area
	a.mux.HandleFunc("/admin/products", a.AdminProducts)
	a.mux.HandleFunc("/admin/product", a.AdminProduct)
	a.mux.HandleFunc("/admin/sellers", a.AdminSellers)
	a.mux.HandleFunc("/admin/seller", a.AdminUpdateSeller)
	a.mux.HandleFunc("/admin/customers", a.AdminCustomers)
	a.mux.HandleFunc("/admin/customer", a.AdminUpdateCustomer)
	a.mux.HandleFunc("/admin/orders", a.AdminOrders)
	a.mux.HandleFunc("/admin/orders/shipped", a.AdminShippedOrders)
	a.mux.HandleFunc("/admin/order", a.AdminOrder)
	a.mux.HandleFunc("/admin/support/emails", a.SupportEmails)
	a.mux.HandleFunc("/admin/stat", a.AdminStat)
	a.mux.HandleFunc("/admin/report/sales", a.AdminSalesReport)

	// complaints
	a.mux.HandleFunc("/api/complaints/admin/notify", a.NotifyComplaint)

	// PDF reports
	a.mux.HandleFunc("/reports/vendor-sales", a.ReportVendorSales)
	a.mux.HandleFunc("/reports/product-details", a.ReportProductDetails)
	a.mux.HandleFunc("/reports/favorite-item", a.ReportFavoriteItem)
	a.mux.HandleFunc("/reports/customer", a.ReportCustomers)
	a.mux.HandleFunc("/reports/admin-profit", a.ReportAdminProfit)
	a.mux.HandleFunc("/reports/seller", a.ReportSellers)
	a.mux.HandleFunc("/reports/customer-order", a.ReportCustomerOrders)
	a.mux.HandleFunc("/reports/stock-alert", a.ReportStockAlert)
	a.mux.HandleFunc("/reports/top-selling", a.ReportTopSelling)
	a.mux.HandleFunc("/reports/invoice", a.ReportInvoice)

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler assembles the middleware chain around the mux.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = obs.Instrument(h)
	h = a.withAuth(h)
	h = MaxBodyBytes(h, 1<<20)
	h = RateLimit(h, 50, 25)
	h = SecurityHeaders(h)
	h = CORS(h, a.corsOrigin)
	h = LoggingJSON(h)
	h = RequestID(h)
	return h
}

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "bicc-api",
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.readyProbe.Check(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
