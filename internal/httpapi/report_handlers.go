package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"biccshop.org/internal/report"
)

func (a *API) AdminStat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	st, err := a.stats.AdminStat(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (a *API) SellerStat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	sellerID, err := queryID(r, "sellerId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	st, err := a.stats.SellerStat(r.Context(), sellerID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (a *API) AdminSalesReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := a.stats.AdminSales(r.Context(), start, end)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == nil {
		rows = []report.SalesRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (a *API) SellerSalesReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	sellerID, err := queryID(r, "sellerId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := a.stats.SellerSales(r.Context(), sellerID, start, end)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == nil {
		rows = []report.SalesRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (a *API) ReportVendorSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	a.servePDF(w, r, func(ctx context.Context) ([]byte, string, error) {
		return a.reports.VendorSales(ctx, start, end)
	})
}

func (a *API) ReportProductDetails(w http.ResponseWriter, r *http.Request) {
	a.simplePDF(w, r, a.reports.ProductDetails)
}

func (a *API) ReportFavoriteItem(w http.ResponseWriter, r *http.Request) {
	a.simplePDF(w, r, a.reports.FavoriteItem)
}

func (a *API) ReportCustomers(w http.ResponseWriter, r *http.Request) {
	a.simplePDF(w, r, a.reports.Customers)
}

func (a *API) ReportSellers(w http.ResponseWriter, r *http.Request) {
	a.simplePDF(w, r, a.reports.Sellers)
}

func (a *API) ReportAdminProfit(w http.ResponseWriter, r *http.Request) {
	a.simplePDF(w, r, a.reports.AdminProfit)
}

func (a *API) ReportCustomerOrders(w http.ResponseWriter, r *http.Request) {
	a.idPDF(w, r, a.reports.CustomerOrders)
}

func (a *API) ReportStockAlert(w http.ResponseWriter, r *http.Request) {
	a.idPDF(w, r, a.reports.StockAlert)
}

func (a *API) ReportTopSelling(w http.ResponseWriter, r *http.Request) {
	a.idPDF(w, r, a.reports.TopSelling)
}

func (a *API) ReportInvoice(w http.ResponseWriter, r *http.Request) {
	a.idPDF(w, r, a.reports.Invoice)
}

func (a *API) simplePDF(w http.ResponseWriter, r *http.Request, build func(context.Context) ([]byte, string, error)) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	a.servePDF(w, r, build)
}

func (a *API) idPDF(w http.ResponseWriter, r *http.Request, build func(context.Context, int64) ([]byte, string, error)) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	id, err := queryID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	a.servePDF(w, r, func(ctx context.Context) ([]byte, string, error) {
		return build(ctx, id)
	})
}

func (a *API) servePDF(w http.ResponseWriter, r *http.Request, build func(context.Context) ([]byte, string, error)) {
	data, name, err := build(r.Context())
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writePDF(w, name, data)
}

// dateRange reads and validates startDate/endDate query parameters.
func dateRange(r *http.Request) (string, string, error) {
	start := strings.TrimSpace(r.URL.Query().Get("startDate"))
	end := strings.TrimSpace(r.URL.Query().Get("endDate"))
	if start == "" || end == "" {
		return "", "", errors.New("startDate and endDate are required")
	}
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return "", "", errors.New("startDate must be YYYY-MM-DD")
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return "", "", errors.New("endDate must be YYYY-MM-DD")
	}
	if e.Before(s) {
		return "", "", errors.New("endDate must not precede startDate")
	}
	return start, end, nil
}
