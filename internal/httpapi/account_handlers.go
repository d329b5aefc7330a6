package httpapi

import (
	"errors"
	"net/http"

	"biccshop.org/internal/account"
	"biccshop.org/internal/audit"
)

// statusUpdate is the admin moderation payload for accounts.
type statusUpdate struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (a *API) CustomerByID(w http.ResponseWriter, r *http.Request) {
	a.accountByID(w, r, account.RoleCustomer, "/customer/")
}

func (a *API) SellerByID(w http.ResponseWriter, r *http.Request) {
	a.accountByID(w, r, account.RoleSeller, "/seller/")
}

func (a *API) accountByID(w http.ResponseWriter, r *http.Request, role account.Role, prefix string) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	id, err := pathID(r.URL.Path, prefix)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	acc, err := a.accounts.FindByID(r.Context(), role, id)
	if err != nil {
		handleAccountError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc.Public())
}

func (a *API) AdminSellers(w http.ResponseWriter, r *http.Request) {
	a.listAccounts(w, r, account.RoleSeller)
}

func (a *API) AdminCustomers(w http.ResponseWriter, r *http.Request) {
	a.listAccounts(w, r, account.RoleCustomer)
}

func (a *API) listAccounts(w http.ResponseWriter, r *http.Request, role account.Role) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	views, err := a.accounts.ListByRole(r.Context(), role)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if views == nil {
		views = []account.PublicView{}
	}
	writeJSON(w, http.StatusOK, views)
}

func (a *API) AdminUpdateSeller(w http.ResponseWriter, r *http.Request) {
	a.updateAccountStatus(w, r, account.RoleSeller)
}

func (a *API) AdminUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	a.updateAccountStatus(w, r, account.RoleCustomer)
}

// updateAccountStatus activates or deactivates an account. Deactivated
// sellers disappear from customer-facing listings together with their
// products.
func (a *API) updateAccountStatus(w http.ResponseWriter, r *http.Request, role account.Role) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, r, http.MethodPut)
		return
	}
	var req statusUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID <= 0 {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}
	if req.Status != account.StatusActive && req.Status != account.StatusInactive {
		writeError(w, r, http.StatusBadRequest, "status must be Active or Inactive")
		return
	}
	if err := a.accounts.UpdateStatus(r.Context(), role, req.ID, req.Status); err != nil {
		handleAccountError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "account.status", map[string]any{
		"role": string(role), "account_id": req.ID, "status": req.Status,
	})
	writeJSON(w, http.StatusOK, req)
}

// SupportEmails lists the support mailboxes shown on the admin help page.
func (a *API) SupportEmails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	emails := []string{a.adminEmail}
	if a.adminEmail == "" {
		emails = []string{}
	}
	writeJSON(w, http.StatusOK, emails)
}

func handleAccountError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, account.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal error")
}
