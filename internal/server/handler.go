// Package server exposes workbook annotation over HTTP.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ukaji3/carpetarea-go/internal/config"
	"github.com/ukaji3/carpetarea-go/pkg/carpetarea"
)

// Handler annotates an uploaded workbook and returns it.
type Handler struct {
	opts      carpetarea.Options
	mode      config.InputMode
	maxUpload int64
}

// NewHandler returns a Handler for cfg.
func NewHandler(cfg config.Config) *Handler {
	return &Handler{
		opts:      cfg.Options(),
		mode:      cfg.Processing.InputMode,
		maxUpload: cfg.Server.MaxUploadBytes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}

	res := h.process(r)
	res.write(w)

	event := log.Info()
	if f, ok := res.(failure); ok {
		event = log.Error().Err(f.err)
	}
	if s, ok := res.(success); ok {
		event = event.Int("records", s.records)
	}
	event.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", res.status()).
		Str("kind", string(res.kind())).
		Dur("duration", time.Since(start)).
		Msg("request handled")
}

// process runs the request through upload decoding and annotation.
func (h *Handler) process(r *http.Request) result {
	if r.Method != http.MethodPost {
		return rejection{code: http.StatusMethodNotAllowed, reason: KindMethodNotAllowed, message: "Method Not Allowed"}
	}

	data, err := readUpload(r, h.mode, h.maxUpload)
	switch {
	case errors.Is(err, errTooLarge):
		return rejection{
			code:    http.StatusRequestEntityTooLarge,
			reason:  KindUploadTooLarge,
			message: fmt.Sprintf("Upload exceeds %d bytes", h.maxUpload),
		}
	case errors.Is(err, errNoFile):
		log.Debug().Err(err).Msg("rejecting upload")
		return rejection{code: http.StatusBadRequest, reason: KindMissingFile, message: "No file uploaded"}
	case err != nil:
		return failure{err: err}
	}

	out, report, err := carpetarea.Process(bytes.NewReader(data), h.opts)
	switch {
	case errors.Is(err, carpetarea.ErrSheetNotFound):
		return rejection{
			code:    http.StatusBadRequest,
			reason:  KindMissingSheet,
			message: fmt.Sprintf("Sheet %q not found", h.opts.Layout.SheetName),
		}
	case err != nil:
		return failure{err: err}
	}

	return success{
		workbook: out,
		base64:   h.mode == config.InputBase64,
		records:  len(report.Sheet.Records),
	}
}
