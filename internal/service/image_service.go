package service

import (
	"context"
	"fmt"

	"github.com/MikhailRaia/cat-viewer/internal/model"
)

// ImageFetcher retrieves one validated image from the upstream API.
type ImageFetcher interface {
	FetchImage(ctx context.Context) (model.Image, error)
}

// ImageService provides the operations the page and the APIs are built on.
type ImageService struct {
	fetcher ImageFetcher
}

// NewImageService constructs an ImageService on top of the given fetcher.
func NewImageService(fetcher ImageFetcher) *ImageService {
	return &ImageService{
		fetcher: fetcher,
	}
}

// RandomImage fetches a new image. Every call is a fresh upstream round trip.
func (s *ImageService) RandomImage(ctx context.Context) (model.Image, error) {
	return s.fetcher.FetchImage(ctx)
}

// InitialProps runs the server-side prefetch for a page render.
func (s *ImageService) InitialProps(ctx context.Context) (model.PageProps, error) {
	image, err := s.fetcher.FetchImage(ctx)
	if err != nil {
		return model.PageProps{}, fmt.Errorf("error fetching initial image: %w", err)
	}

	return model.PageProps{
		InitialImageURL: image.URL,
	}, nil
}
