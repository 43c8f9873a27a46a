package httpx

import (
	"errors"
	"mime"
	"net/http"
)

// DefaultMaxFormBytes bounds request bodies on form endpoints.
const DefaultMaxFormBytes = 1 << 20

// RequireForm rejects bodies that are not url-encoded or multipart forms,
// caps how much of the body will be read and parses it. Oversized bodies get
// a 413. Credentials and passphrases only
// ever travel in such bodies, never in the query string.
func RequireForm(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || (mt != "application/x-www-form-urlencoded" && mt != "multipart/form-data") {
				WriteError(w, http.StatusUnsupportedMediaType, "invalid_request",
					"Body must be application/x-www-form-urlencoded or multipart/form-data.")
				return
			}

			// The form is parsed here so body-keyed rate limiters and handlers
			// downstream all see the same result.
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			if err := r.ParseMultipartForm(maxBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
				if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
					WriteError(w, http.StatusRequestEntityTooLarge, "request_too_large",
						"Body exceeds the size limit.")
					return
				}
				WriteError(w, http.StatusBadRequest, "invalid_request", "Body is not a readable form.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
