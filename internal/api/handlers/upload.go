package handlers

import (
	"errors"
	"net/http"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
	"github.com/mindwellhq/mindwell-backend/internal/metrics"
	"github.com/mindwellhq/mindwell-backend/internal/upload"
)

const maxUploadBytes = 100 << 20 // 100 MiB

// UploadHandler stores a single media file and returns its relative path.
type UploadHandler struct {
	Store *upload.Store
}

func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{Store: store}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "no file uploaded", nil)
		return
	}
	defer func() { _ = file.Close() }()

	name, err := h.Store.Save(file, header)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "not a video or image file", nil)
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error storing file", nil)
		return
	}

	metrics.UploadsTotal.Inc()
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message":  "file uploaded successfully",
		"filePath": "/uploads/" + name,
	})
}
