package api

import (
	"net/http"

	"github.com/bornholm/brief/internal/core/service"
)

type Handler struct {
	pipeline      *service.Pipeline
	maxUploadSize int64
	mux           *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(pipeline *service.Pipeline, maxUploadSize int64) *Handler {
	h := &Handler{
		pipeline:      pipeline,
		maxUploadSize: maxUploadSize,
		mux:           &http.ServeMux{},
	}

	h.mux.HandleFunc("POST /summarize", h.handleSummarize)
	h.mux.HandleFunc("GET /formats", h.handleListFormats)

	return h
}

var _ http.Handler = &Handler{}
