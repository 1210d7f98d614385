package ocr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
)

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestClient_Health_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := NewClient(srv.URL).Health(context.Background())
	require.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestClient_Health_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Health(context.Background())
	require.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestClient_Recognize_RelaysJSON(t *testing.T) {
	staged := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(staged, []byte("png-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ocr", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "scan.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"hello"}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL).Recognize(context.Background(), staged, "scan.png", "image/png")
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, string(body))
}

func TestClient_Recognize_StreamsBody(t *testing.T) {
	staged := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(staged, []byte("png-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a piped body has no Content-Length; it arrives chunked
		assert.Equal(t, int64(-1), r.ContentLength)

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Recognize(context.Background(), staged, "scan.png", "image/png")
	require.NoError(t, err)
}

func TestClient_Recognize_Unreachable(t *testing.T) {
	staged := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(staged, []byte("png-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Recognize(context.Background(), staged, "scan.png", "image/png")
	require.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}
