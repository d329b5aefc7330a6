package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"biccshop.org/internal/catalog"
)

func (a *API) Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	products, err := a.catalog.ListActive(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (a *API) ProductByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	id, err := pathID(r.URL.Path, "/product/")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	p, err := a.catalog.Get(r.Context(), id)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) SearchProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}
	products, err := a.catalog.Search(r.Context(), q)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (a *API) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	cats, err := a.catalog.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if cats == nil {
		cats = []catalog.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// CategoryCRUD serves create, rename and delete on /category.
func (a *API) CategoryCRUD(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req catalog.Category
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, r, http.StatusBadRequest, "name is required")
			return
		}
		c, err := a.catalog.CreateCategory(r.Context(), strings.TrimSpace(req.Name))
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, c)
	case http.MethodPut:
		var req catalog.Category
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if req.ID <= 0 || strings.TrimSpace(req.Name) == "" {
			writeError(w, r, http.StatusBadRequest, "id and name are required")
			return
		}
		if err := a.catalog.UpdateCategory(r.Context(), req.ID, strings.TrimSpace(req.Name)); err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"updated": true})
	case http.MethodDelete:
		id, err := queryID(r, "id")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if err := a.catalog.DeleteCategory(r.Context(), id); err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
	default:
		methodNotAllowed(w, r, http.MethodPost, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) Reviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	productID, err := queryID(r, "productId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	reviews, err := a.catalog.ReviewsByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if reviews == nil {
		reviews = []catalog.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// AddReview lets a customer review a product they bought.
func (a *API) AddReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req catalog.Review
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID <= 0 || req.CustomerID <= 0 {
		writeError(w, r, http.StatusBadRequest, "productId and customerId are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, r, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	purchased, err := a.orderStore.HasPurchased(r.Context(), req.CustomerID, req.ProductID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if !purchased {
		writeError(w, r, http.StatusForbidden, "only purchased products can be reviewed")
		return
	}
	if err := a.catalog.AddReview(r.Context(), &req); err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func handleCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal error")
}
