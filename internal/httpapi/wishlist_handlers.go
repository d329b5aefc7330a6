package httpapi

import (
	"net/http"

	"biccshop.org/internal/wishlist"
)

// Wishlist serves add (POST), remove (DELETE) and list (GET) on
// /customer/wishlist.
func (a *API) Wishlist(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		customerID, err := queryID(r, "id")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		entries, err := a.wishlist.ListByCustomer(r.Context(), customerID)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		if entries == nil {
			entries = []wishlist.Detail{}
		}
		writeJSON(w, http.StatusOK, entries)
	case http.MethodPost:
		var e wishlist.Entry
		if err := decodeJSON(w, r, &e); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if e.CustomerID <= 0 || e.ProductID <= 0 {
			writeError(w, r, http.StatusBadRequest, "customerId and productId are required")
			return
		}
		if err := a.wishlist.Add(r.Context(), &e); err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, e)
	case http.MethodDelete:
		customerID, err := queryID(r, "customerId")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		productID, err := queryID(r, "productId")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if err := a.wishlist.Remove(r.Context(), customerID, productID); err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"removed": true})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

func (a *API) WishlistCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	customerID, err := queryID(r, "customerId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	productID, err := queryID(r, "productId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := a.wishlist.Exists(r.Context(), customerID, productID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishlisted": ok})
}
