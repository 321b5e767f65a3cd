package summary

import (
	"net/http"

	"github.com/bornholm/brief/internal/core/service"
)

type Handler struct {
	mux           *http.ServeMux
	pipeline      *service.Pipeline
	maxUploadSize int64
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(pipeline *service.Pipeline, maxUploadSize int64) *Handler {
	h := &Handler{
		mux:           http.NewServeMux(),
		pipeline:      pipeline,
		maxUploadSize: maxUploadSize,
	}

	h.mux.HandleFunc("GET /{$}", h.getUploadPage)
	h.mux.HandleFunc("POST /{$}", h.handleSummarize)
	h.mux.HandleFunc("POST /export", h.handleExport)

	return h
}

var _ http.Handler = &Handler{}
