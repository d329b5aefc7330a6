package httpapi

import (
	"net/http"
	"strings"

	"biccshop.org/internal/catalog"
)

// SellerProduct creates (POST) or updates (PUT) one of the seller's
// products. The seller id in the body scopes the write; a seller cannot
// touch a row it does not own.
func (a *API) SellerProduct(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var p catalog.Product
		if err := decodeJSON(w, r, &p); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if p.SellerID <= 0 || strings.TrimSpace(p.Title) == "" {
			writeError(w, r, http.StatusBadRequest, "sellerId and title are required")
			return
		}
		if p.Status == "" {
			p.Status = "Active"
		}
		if err := a.catalog.CreateProduct(r.Context(), &p); err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, p)
	case http.MethodPut:
		var p catalog.Product
		if err := decodeJSON(w, r, &p); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if p.ID <= 0 || p.SellerID <= 0 {
			writeError(w, r, http.StatusBadRequest, "id and sellerId are required")
			return
		}
		if err := a.catalog.UpdateProduct(r.Context(), &p); err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	default:
		methodNotAllowed(w, r, http.MethodPost, http.MethodPut)
	}
}

// SellerProductByID fetches (GET) or deletes (DELETE) one product by path id.
// Deletion also needs ?sellerId= so the ownership check stays in SQL.
func (a *API) SellerProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.URL.Path, "/seller/product/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := a.catalog.Get(r.Context(), id)
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		sellerID, err := queryID(r, "sellerId")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if err := a.catalog.DeleteProduct(r.Context(), sellerID, id); err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodDelete)
	}
}

func (a *API) SellerProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	sellerID, err := pathID(r.URL.Path, "/seller/products/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	products, err := a.catalog.ListBySeller(r.Context(), sellerID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (a *API) AdminProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	products, err := a.catalog.ListAll(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// AdminProduct moderates any product; the body carries the owning seller id.
func (a *API) AdminProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, r, http.MethodPut)
		return
	}
	var p catalog.Product
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if p.ID <= 0 || p.SellerID <= 0 {
		writeError(w, r, http.StatusBadRequest, "id and sellerId are required")
		return
	}
	if err := a.catalog.UpdateProduct(r.Context(), &p); err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
