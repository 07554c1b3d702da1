package handler

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MikhailRaia/cat-viewer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGzipTestRouter(enableGzip bool) http.Handler {
	mockService := &mockImageService{
		randomImageFunc: func(ctx context.Context) (model.Image, error) {
			return model.Image{URL: "http://example.com/cat.jpg"}, nil
		},
		initialPropsFunc: func(ctx context.Context) (model.PageProps, error) {
			return model.PageProps{InitialImageURL: "http://example.com/cat.jpg"}, nil
		},
	}

	return NewHandler(mockService, enableGzip).RegisterRoutes()
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	reader, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(body)
}

func TestRoutes_GzipJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, APIImagePath, nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	rec := httptest.NewRecorder()

	newGzipTestRouter(true).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Len(t, rec.Header().Values("Content-Type"), 1)
	assert.JSONEq(t, `{"url":"http://example.com/cat.jpg"}`, gunzip(t, rec.Body))
}

func TestRoutes_GzipPlainText(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()

	newGzipTestRouter(true).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "OK", gunzip(t, rec.Body))
}

func TestRoutes_NoGzipWithoutAcceptEncoding(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, APIImagePath, nil)

	rec := httptest.NewRecorder()

	newGzipTestRouter(true).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"url":"http://example.com/cat.jpg"}`, rec.Body.String())
}

func TestRoutes_GzipDisabled(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, APIImagePath, nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()

	newGzipTestRouter(false).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"url":"http://example.com/cat.jpg"}`, rec.Body.String())
}
