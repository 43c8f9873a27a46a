package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/aussiebroadwan/stash/pkg/stashsdk"
)

// parseForm reads a url-encoded or multipart body. On failure it writes a
// 400, or a 413 for an oversized body, and returns false.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	err := r.ParseMultipartForm(httpx.DefaultMaxFormBytes)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return true
	}
	if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
		stashsdk.ErrRequestTooLarge.WriteError(w)
		return false
	}

	slogx.FromContext(r.Context()).Info("unreadable form body", "err", err)
	stashsdk.ErrInvalidRequest.WriteError(w)
	return false
}

// serverError logs err and writes a generic 500.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slogx.FromContext(r.Context()).Error(msg, "err", err)
	stashsdk.ErrServerError.WriteError(w)
}
