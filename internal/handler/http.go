package handler

import (
	"compress/gzip"
	"context"
	"net/http"

	"github.com/MikhailRaia/cat-viewer/internal/logger"
	"github.com/MikhailRaia/cat-viewer/internal/model"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

var compressibleTypes = []string{
	"application/json",
	"text/html",
	"text/plain",
}

// APIImagePath is the endpoint the page script calls to re-fetch an image.
const APIImagePath = "/api/image"

type ImageService interface {
	RandomImage(ctx context.Context) (model.Image, error)
	InitialProps(ctx context.Context) (model.PageProps, error)
}

type Handler struct {
	imageService ImageService
	enableGzip   bool
}

func NewHandler(imageService ImageService, enableGzip bool) *Handler {
	return &Handler{
		imageService: imageService,
		enableGzip:   enableGzip,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	if h.enableGzip {
		r.Use(chimiddleware.Compress(gzip.BestSpeed, compressibleTypes...))
	}

	r.Get("/", h.handleIndex)
	r.Get(APIImagePath, h.HandleImageJSON)
	r.Get("/ping", h.handlePing)

	return r
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
