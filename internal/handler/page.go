package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MikhailRaia/cat-viewer/internal/generator"
	"github.com/rs/zerolog/log"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	ImageURL string
	Nonce    string
	APIPath  string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	props, err := h.imageService.InitialProps(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to prepare initial image")
		http.Error(w, "Could not fetch a cat image, please reload the page.", statusForFetchError(err))
		return
	}

	nonce, err := generator.GenerateNonce()
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate nonce")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = indexTemplate.Execute(&buf, indexPage{
		ImageURL: props.InitialImageURL,
		Nonce:    nonce,
		APIPath:  APIImagePath,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to render index page")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy(nonce))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func contentSecurityPolicy(nonce string) string {
	return fmt.Sprintf(
		"default-src 'self'; img-src 'self' https: http: data:; script-src 'nonce-%[1]s'; style-src 'nonce-%[1]s'; connect-src 'self'",
		nonce,
	)
}
