package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/metrics"
	"github.com/mindwellhq/mindwell-backend/internal/ocr"
	"github.com/mindwellhq/mindwell-backend/internal/upload"
)

// OCRHandler proxies uploads to the external OCR service. The file is
// staged on disk, the service's health is probed before forwarding, and
// the staged file is always removed — success or failure.
type OCRHandler struct {
	Client *ocr.Client
	Store  *upload.Store
}

func NewOCRHandler(client *ocr.Client, store *upload.Store) *OCRHandler {
	return &OCRHandler{Client: client, Store: store}
}

func (h *OCRHandler) Recognize(w http.ResponseWriter, r *http.Request) {
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
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error staging file", nil)
		return
	}
	defer func() {
		if err := h.Store.Remove(name); err != nil {
			slog.Error("failed to remove staged ocr file", "file", name, "err", err)
		}
	}()

	// Fail fast without forwarding when the service is down.
	if _, err := h.Client.Health(r.Context()); err != nil {
		metrics.OCRRequestsTotal.WithLabelValues("unavailable").Inc()
		httpx.WriteError(w, http.StatusServiceUnavailable, "upstream_unavailable",
			"OCR service is not available. Please try again later.", err.Error())
		return
	}

	body, err := h.Client.Recognize(r.Context(),
		filepath.Join(h.Store.Dir(), name), header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, apperr.ErrUpstreamUnavailable) {
			metrics.OCRRequestsTotal.WithLabelValues("unavailable").Inc()
			httpx.WriteError(w, http.StatusServiceUnavailable, "upstream_unavailable",
				"OCR service is not available. Please try again later.", err.Error())
			return
		}
		metrics.OCRRequestsTotal.WithLabelValues("error").Inc()
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "error processing image", err.Error())
		return
	}

	metrics.OCRRequestsTotal.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Health relays the OCR service's health response.
func (h *OCRHandler) Health(w http.ResponseWriter, r *http.Request) {
	body, err := h.Client.Health(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "upstream_unavailable",
			"OCR service is not available", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
