package httpapi

import (
	"errors"
	"net/http"

	"biccshop.org/internal/audit"
	"biccshop.org/internal/order"
)

// Cart serves the four cart verbs on /customer/cart.
func (a *API) Cart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		customerID, err := queryID(r, "id")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		items, err := a.orderStore.CartItems(r.Context(), customerID)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		if items == nil {
			items = []order.CartItem{}
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		var item order.CartItem
		if err := decodeJSON(w, r, &item); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if item.CustomerID <= 0 || item.ProductID <= 0 || item.Quantity <= 0 {
			writeError(w, r, http.StatusBadRequest, "customerId, productId and productQuantity are required")
			return
		}
		if err := a.orderStore.AddCartItem(r.Context(), &item); err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, item)
	case http.MethodPut:
		var item order.CartItem
		if err := decodeJSON(w, r, &item); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if item.ID <= 0 || item.Quantity <= 0 {
			writeError(w, r, http.StatusBadRequest, "id and productQuantity are required")
			return
		}
		if err := a.orderStore.UpdateCartItem(r.Context(), &item); err != nil {
			handleOrderError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		cartID, err := queryID(r, "id")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if err := a.orderStore.RemoveCartItem(r.Context(), cartID); err != nil {
			handleOrderError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"removed": true})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete)
	}
}

// CustomerOrder places an order (POST) or fetches one by id (GET).
func (a *API) CustomerOrder(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var o order.Order
		if err := decodeJSON(w, r, &o); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		placed, err := a.orders.Place(r.Context(), &o)
		if err != nil {
			if errors.Is(err, order.ErrNoCustomer) || errors.Is(err, order.ErrBadQuantity) {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		_ = audit.LogEvent(r.Context(), "order.placed", map[string]any{
			"order_id": placed.ID, "customer_id": placed.CustomerID, "total": placed.OrderTotal,
		})
		writeJSON(w, http.StatusCreated, placed)
	case http.MethodGet:
		orderID, err := queryID(r, "id")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		customerID, err := queryID(r, "customerId")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		o, err := a.orderStore.GetForCustomer(r.Context(), orderID, customerID)
		if err != nil {
			handleOrderError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) CustomerOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	customerID, err := queryID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	orders, err := a.orderStore.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *API) TrackOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	detailID, err := queryID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	d, err := a.orderStore.TrackDetail(r.Context(), detailID)
	if err != nil {
		handleOrderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (a *API) CheckPurchased(w http.ResponseWriter, r *http.Request) {
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
	ok, err := a.orderStore.HasPurchased(r.Context(), customerID, productID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"purchased": ok})
}

// SellerOrders lists the orders containing the seller's lines.
func (a *API) SellerOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	sellerID, err := queryID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	orders, err := a.orderStore.ListBySeller(r.Context(), sellerID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// SellerOrder fetches one order scoped to the seller (GET) or updates the
// status of one of the seller's lines (PUT).
func (a *API) SellerOrder(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		orderID, err := queryID(r, "orderid")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		sellerID, err := queryID(r, "sellerid")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		o, err := a.orderStore.GetForSeller(r.Context(), orderID, sellerID)
		if err != nil {
			handleOrderError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	case http.MethodPut:
		var d order.Detail
		if err := decodeJSON(w, r, &d); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if d.ID <= 0 || d.SellerID <= 0 || d.Status == "" {
			writeError(w, r, http.StatusBadRequest, "id, sellerId and status are required")
			return
		}
		if err := a.orderStore.UpdateDetailStatus(r.Context(), &d); err != nil {
			handleOrderError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "order.detail_status", map[string]any{
			"detail_id": d.ID, "status": d.Status,
		})
		writeJSON(w, http.StatusOK, map[string]any{"updated": true})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}

func (a *API) AdminOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	orders, err := a.orderStore.ListAll(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *API) AdminShippedOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	orders, err := a.orderStore.ListShipped(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// AdminOrder fetches any order (GET) or updates any detail line (PUT).
func (a *API) AdminOrder(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		orderID, err := queryID(r, "orderid")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		o, err := a.orderStore.Get(r.Context(), orderID)
		if err != nil {
			handleOrderError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	case http.MethodPut:
		var d order.Detail
		if err := decodeJSON(w, r, &d); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if d.ID <= 0 || d.Status == "" {
			writeError(w, r, http.StatusBadRequest, "id and status are required")
			return
		}
		d.SellerID = 0 // admin update, no ownership constraint
		if err := a.orderStore.UpdateDetailStatus(r.Context(), &d); err != nil {
			handleOrderError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "order.detail_status", map[string]any{
			"detail_id": d.ID, "status": d.Status,
		})
		writeJSON(w, http.StatusOK, map[string]any{"updated": true})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}

func handleOrderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, order.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal error")
}
