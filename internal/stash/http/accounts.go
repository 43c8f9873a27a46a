package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
	"github.com/aussiebroadwan/stash/internal/stash/service"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/aussiebroadwan/stash/pkg/stashsdk"
)

type AccountsHandler struct {
	AccountService *service.AccountService
	SessionService *service.SessionService
	Cookie         httpx.CookieConfig
}

// HandleRegister godoc
//
//	@Summary		Register Account
//	@Description	Create an account and start a session. The session token is returned in the STASH_SESSION cookie.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name		formData	string						true	"Account name"
//	@Param			password	formData	string						true	"Account password"
//	@Success		201			{object}	stashsdk.SessionResponse	"account, expires_at"
//	@Failure		400			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Failure		429			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/accounts/register [post].
func (h *AccountsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	account, err := h.AccountService.Register(r.Context(), r.PostFormValue("name"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountRequest):
			stashsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrNameTaken):
			stashsdk.ErrNameTaken.WriteError(w)
		default:
			serverError(w, r, "failed to register account", err)
		}
		return
	}

	h.startSession(w, r, account, http.StatusCreated)
}

// HandleLogin godoc
//
//	@Summary		Log In
//	@Description	Check a name and password and start a session. The response never reveals whether the name exists.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name		formData	string						true	"Account name"
//	@Param			password	formData	string						true	"Account password"
//	@Success		200			{object}	stashsdk.SessionResponse	"account, expires_at"
//	@Failure		401			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Failure		429			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/accounts/login [post].
func (h *AccountsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	account, err := h.AccountService.Authenticate(r.Context(), r.PostFormValue("name"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			stashsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		serverError(w, r, "failed to authenticate", err)
		return
	}

	h.startSession(w, r, account, http.StatusOK)
}

// HandleLogout godoc
//
//	@Summary		Log Out
//	@Description	Discard the session cookie. Tokens are stateless and stay valid until they expire.
//	@Tags			Accounts
//	@Success		204
//	@Router			/v1/accounts/logout [post].
func (h *AccountsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.Cookie)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary		Current Account
//	@Description	Return the account the session cookie belongs to.
//	@Tags			Accounts
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	stashsdk.AccountResponse	"id, name, created_at"
//	@Failure		401	{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/accounts/me [get].
func (h *AccountsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		stashsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	account, err := h.AccountService.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			slogx.FromContext(r.Context()).Info("session for unknown account")
			stashsdk.ErrUnauthenticated.WriteError(w)
			return
		}
		serverError(w, r, "failed to fetch account", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountResponse(account))
}

func (h *AccountsHandler) startSession(w http.ResponseWriter, r *http.Request, account domain.Account, status int) {
	token, expiresAt, err := h.SessionService.Issue(account.ID)
	if err != nil {
		serverError(w, r, "failed to issue session", err)
		return
	}

	slogx.FromContext(r.Context()).Info("session issued",
		"account_id", account.ID,
		"session_fp", cryptox.FingerprintToken(token),
		"expires_at", expiresAt,
	)

	httpx.SetSessionCookie(w, h.Cookie, token, expiresAt)
	httpx.WriteJSON(w, status, stashsdk.SessionResponse{
		Account:   accountResponse(account),
		ExpiresAt: expiresAt,
	})
}

func accountResponse(a domain.Account) stashsdk.AccountResponse {
	return stashsdk.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}
