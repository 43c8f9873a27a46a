package httpx

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/aussiebroadwan/stash/pkg/slogx"
)

// SessionResolver turns a session token into the account ID it was issued
// for.
type SessionResolver interface {
	Resolve(token string) (string, error)
}

// SessionMiddleware requires a valid session cookie. A missing cookie and a
// rejected token get the same 401 response; only the logs tell them apart.
func SessionMiddleware(resolver SessionResolver, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
				log.Info("session rejected", "reason", "missing_cookie")
				writeUnauthenticated(w)
				return
			}
			if err != nil {
				log.Info("session rejected", "reason", "bad_cookie", "err", err)
				writeUnauthenticated(w)
				return
			}

			accountID, err := resolver.Resolve(cookie.Value)
			if err != nil {
				log.Info("session rejected",
					"reason", "invalid_token",
					"session_fp", cryptox.FingerprintToken(cookie.Value),
					"err", err,
				)
				writeUnauthenticated(w)
				return
			}

			ctx = WithAccountID(ctx, accountID)
			ctx = slogx.WithContext(ctx, log.With("account_id", accountID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "unauthenticated", "A valid session is required.")
}
