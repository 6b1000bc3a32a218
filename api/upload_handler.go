package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/services"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  services.Uploader
}

func newUploadHandler(uploader services.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// upload accepts a multipart form with a "file" part and an optional "folder"
// value, and returns the stored blob's public URL.
func (h uploadHandler) upload() http.HandlerFunc {
	// a little slack over the ceiling so the pipeline can reject oversized
	// files with a descriptive error instead of a truncated-body failure
	const maxFormSize = services.MaxUploadBytes + (1 << 20)

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
		if err := r.ParseMultipartForm(maxFormSize); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("file", "file is too large or the form is malformed"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("file", "no file provided"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
			return
		}

		url, err := h.uploader.Upload(r.Context(), r.FormValue("folder"), header.Filename, data)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, actionResponse{Success: true, URL: url})
	}
}

type deleteImageRequest struct {
	URL string `json:"url"`
}

// deleteImage removes a blob by URL. Only URLs inside the blob store are
// accepted; foreign and data URLs are rejected up front.
func (h uploadHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.URL == "" {
			h.responder.WriteError(w, errs.NewValidationError("url", "url is required"))
			return
		}

		store := h.uploader.Store()
		if !store.Owns(req.URL) {
			h.responder.WriteError(w, errs.NewValidationError("url", "URL is not managed by the blob store"))
			return
		}

		if err := store.Delete(r.Context(), req.URL); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to delete image", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
