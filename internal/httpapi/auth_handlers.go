package httpapi

import (
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"biccshop.org/internal/account"
	"biccshop.org/internal/audit"
	"biccshop.org/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login returns a handler issuing a token for one role's entry point.
// Unknown account and wrong password collapse into the same 401 so the
// endpoint cannot be used to probe registered e-mails.
func (a *API) Login(role account.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r, http.MethodPost)
			return
		}
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		res, err := a.auth.Login(r.Context(), req.Email, req.Password, role)
		if err != nil {
			if errors.Is(err, auth.ErrAccountNotFound) || errors.Is(err, auth.ErrInvalidCredentials) {
				_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
					"role": string(role), "outcome": "denied",
				})
				writeError(w, r, http.StatusUnauthorized, "invalid email or password")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
			"role": string(role), "outcome": "success", "email": res.Account.Email,
		})
		writeJSON(w, http.StatusOK, res)
	}
}

// Signup returns a handler registering an account for one role.
func (a *API) Signup(role account.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r, http.MethodPost)
			return
		}
		var req auth.SignupRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if !validEmail(req.Email) {
			writeError(w, r, http.StatusBadRequest, "invalid email address")
			return
		}
		if req.Name == "" || req.Password == "" {
			writeError(w, r, http.StatusBadRequest, "name and password are required")
			return
		}
		view, err := a.auth.Signup(r.Context(), req, role)
		if err != nil {
			if errors.Is(err, account.ErrAlreadyExists) {
				writeError(w, r, http.StatusConflict, "email already registered")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		_ = audit.LogEvent(r.Context(), "auth.signup", map[string]any{
			"role": string(role), "email": view.Email,
		})
		writeJSON(w, http.StatusCreated, view)
	}
}

// CheckEmail reports whether an address is already registered for the role.
// A malformed address reads as taken, matching the storefront's validation.
func (a *API) CheckEmail(role account.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if !validEmail(email) {
			writeJSON(w, http.StatusOK, map[string]any{"exists": true})
			return
		}
		exists, err := a.accounts.ExistsByEmail(r.Context(), role, email)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"exists": exists})
	}
}

type sendCodeRequest struct {
	ID int64 `json:"id"`
}

func (a *API) SendVerificationCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req sendCodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID <= 0 {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}
	if err := a.auth.SendVerificationCode(r.Context(), req.ID); err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			writeError(w, r, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sent": true})
}

func (a *API) VerifyCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	code, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("code")))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "code must be an integer")
		return
	}
	ok, err := a.auth.VerifyCode(r.Context(), userID, code)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"verified": ok})
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
