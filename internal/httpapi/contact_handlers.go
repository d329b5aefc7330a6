package httpapi

import (
	"net/http"
	"strings"

	"biccshop.org/internal/mail"
)

// ContactUs relays a storefront contact form to the shop's admin mailbox.
// The form fields keep the storefront's French names.
func (a *API) ContactUs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	name := strings.TrimSpace(r.FormValue("nom"))
	email := strings.TrimSpace(r.FormValue("email"))
	subj := strings.TrimSpace(r.FormValue("sujet"))
	message := strings.TrimSpace(r.FormValue("message"))
	if name == "" || email == "" || message == "" {
		writeError(w, r, http.StatusBadRequest, "nom, email and message are required")
		return
	}
	if a.adminEmail == "" {
		writeError(w, r, http.StatusServiceUnavailable, "contact mailbox not configured")
		return
	}
	subject, body := mail.Contact(name, email, subj, message)
	mail.SendAsync(a.mailer, a.adminEmail, subject, body)
	writeJSON(w, http.StatusOK, map[string]any{"sent": true})
}

type complaintRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerAddress string `json:"customerAddress"`
	Subject         string `json:"subject"`
	Description     string `json:"description"`
}

// NotifyComplaint forwards a customer complaint to the admin mailbox.
func (a *API) NotifyComplaint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req complaintRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if a.adminEmail == "" {
		writeError(w, r, http.StatusServiceUnavailable, "contact mailbox not configured")
		return
	}
	subject, body := mail.Complaint(mail.ComplaintFields{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Subject:         req.Subject,
		Description:     req.Description,
	})
	mail.SendAsync(a.mailer, a.adminEmail, subject, body)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Notification envoyée à l'admin",
	})
}
