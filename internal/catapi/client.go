package catapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MikhailRaia/cat-viewer/internal/model"
	"github.com/MikhailRaia/cat-viewer/internal/pool"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is The Cat API random image search.
const DefaultEndpoint = "https://api.thecatapi.com/v1/images/search"

const (
	maxBodySize = 1 << 20
	bufferPool  = 16
	// Buffers grown past this are dropped instead of pooled.
	maxPooledBuffer = 64 << 10
)

var (
	// ErrMalformedResponse is returned when the decoded body is not a JSON array.
	ErrMalformedResponse = errors.New("cat api response is not an array")
	// ErrInvalidImageShape is returned when the first array element has no string url.
	ErrInvalidImageShape = errors.New("cat api response does not contain an image url")
	// ErrDecodeResponse is returned when the body is not valid JSON.
	ErrDecodeResponse = errors.New("cat api response is not valid json")
)

// Client fetches random images from the upstream search endpoint.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	buffers    *pool.Pool[*bytes.Buffer]
}

// NewClient creates a Client for endpoint with the given request timeout.
// An empty endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		buffers: pool.New(bufferPool, func() *bytes.Buffer {
			return new(bytes.Buffer)
		}),
	}
}

// FetchImage performs one GET against the endpoint and returns the first image
// of the result. The body is decoded without assuming its structure and only a
// validated model.Image leaves this function.
func (c *Client) FetchImage(ctx context.Context) (model.Image, error) {
	fetchID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return model.Image{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Image{}, fmt.Errorf("error requesting cat api: %w", err)
	}
	defer resp.Body.Close()

	buf := c.buffers.Get()
	defer c.releaseBuffer(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodySize)); err != nil {
		return model.Image{}, fmt.Errorf("error reading cat api response: %w", err)
	}

	var payload any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		log.Debug().
			Str("fetch_id", fetchID).
			Int("status", resp.StatusCode).
			Int("size", buf.Len()).
			Err(err).
			Msg("Undecodable cat api response")
		return model.Image{}, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	log.Debug().
		Str("fetch_id", fetchID).
		Int("status", resp.StatusCode).
		RawJSON("payload", bytes.TrimSpace(buf.Bytes())).
		Msg("Cat api response received")

	return imageFromPayload(payload)
}

func (c *Client) releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	c.buffers.Put(buf)
}

func imageFromPayload(payload any) (model.Image, error) {
	images, ok := payload.([]any)
	if !ok {
		return model.Image{}, ErrMalformedResponse
	}

	if len(images) == 0 || !IsImage(images[0]) {
		return model.Image{}, ErrInvalidImageShape
	}

	return model.Image{
		URL: images[0].(map[string]any)["url"].(string),
	}, nil
}
