package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/stash/internal/stash/domain"
	"github.com/aussiebroadwan/stash/internal/stash/service"
	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/aussiebroadwan/stash/pkg/stashsdk"
)

type ClipsHandler struct {
	ClipService *service.ClipService
}

// HandleSend godoc
//
//	@Summary		Send Clip
//	@Description	Store a clip and return its four digit code. With a passphrase the clip is stored encrypted.
//	@Description	A clip that already holds the same code is replaced.
//	@Tags			Clips
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			content		formData	string						true	"Clip text"
//	@Param			passphrase	formData	string						false	"Passphrase protecting the clip"
//	@Success		201			{object}	stashsdk.SendClipResponse	"code, protected"
//	@Failure		400			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Failure		429			{object}	stashsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/clips [post].
func (h *ClipsHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	clip, err := h.ClipService.Send(r.Context(), r.PostFormValue("content"), r.PostFormValue("passphrase"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidClip) {
			stashsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		serverError(w, r, "failed to send clip", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, stashsdk.SendClipResponse{
		Code:      clip.Code,
		Protected: clip.Protected,
	})
}

// HandleGet godoc
//
//	@Summary		Get Clip
//	@Description	Read an unprotected clip. Protected clips answer 403 passphrase_required.
//	@Tags			Clips
//	@Produce		json
//	@Param			code	path		int						true	"Clip code (0-9999)"
//	@Success		200		{object}	stashsdk.ClipResponse	"code, content, protected, updated_at"
//	@Failure		400		{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clips/{code} [get].
func (h *ClipsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	code, ok := parseClipCode(r.PathValue("code"))
	if !ok {
		stashsdk.ErrInvalidClipCode.WriteError(w)
		return
	}

	clip, err := h.ClipService.Get(r.Context(), code)
	if err != nil {
		h.writeClipError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clipResponse(clip, string(clip.Content)))
}

// HandleOpen godoc
//
//	@Summary		Open Clip
//	@Description	Read a clip with its passphrase. Any wrong passphrase answers 403 decryption_failed.
//	@Tags			Clips
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			code		path		int						true	"Clip code (0-9999)"
//	@Param			passphrase	formData	string					false	"Passphrase the clip was sent with"
//	@Success		200			{object}	stashsdk.ClipResponse	"code, content, protected, updated_at"
//	@Failure		400			{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Failure		429			{object}	stashsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clips/{code}/open [post].
func (h *ClipsHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	code, ok := parseClipCode(r.PathValue("code"))
	if !ok {
		stashsdk.ErrInvalidClipCode.WriteError(w)
		return
	}
	if !parseForm(w, r) {
		return
	}

	clip, text, err := h.ClipService.Open(r.Context(), code, r.PostFormValue("passphrase"))
	if err != nil {
		h.writeClipError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clipResponse(clip, text))
}

func (h *ClipsHandler) writeClipError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidClip):
		stashsdk.ErrInvalidClipCode.WriteError(w)
	case errors.Is(err, service.ErrClipNotFound):
		stashsdk.ErrClipNotFound.WriteError(w)
	case errors.Is(err, service.ErrPassphraseRequired):
		stashsdk.ErrPassphraseRequired.WriteError(w)
	case errors.Is(err, service.ErrDecryptionFailed):
		stashsdk.ErrDecryptionFailed.WriteError(w)
	default:
		serverError(w, r, "failed to read clip", err)
	}
}

// parseClipCode accepts one to four decimal digits.
func parseClipCode(s string) (int, bool) {
	if s == "" || len(s) > 4 {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	code, err := strconv.Atoi(s)
	if err != nil || !domain.ValidClipCode(code) {
		return 0, false
	}
	return code, true
}

func clipResponse(c domain.Clip, text string) stashsdk.ClipResponse {
	return stashsdk.ClipResponse{
		Code:      c.Code,
		Content:   text,
		Protected: c.Protected,
		UpdatedAt: c.UpdatedAt,
	}
}
