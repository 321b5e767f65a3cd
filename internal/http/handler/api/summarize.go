package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/brief/internal/core/model"
	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/core/service"
	"github.com/bornholm/brief/internal/http/upload"
	"github.com/bornholm/brief/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeFileTooLarge        = "file_too_large"
	ErrorCodeUnsupportedFormat   = "unsupported_format"
	ErrorCodeDocumentUnreadable  = "document_unreadable"
	ErrorCodeSummarizationFailed = "summarization_failed"
	ErrorCodeInternal            = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	metrics.Requests.With(prometheus.Labels{metrics.LabelSource: "api"}).Inc()

	file, err := upload.ReadFile(w, r, h.maxUploadSize)
	if err != nil {
		slog.ErrorContext(ctx, "could not read uploaded file", slog.Any("error", errors.WithStack(err)))

		switch {
		case errors.Is(err, upload.ErrTooLarge):
			writeError(w, r, http.StatusRequestEntityTooLarge, ErrorCodeFileTooLarge, "The uploaded file is too large.")
		default:
			writeError(w, r, http.StatusBadRequest, ErrorCodeInvalidRequest, "A file must be uploaded in the 'file' field.")
		}

		return
	}

	defer file.Close()

	result, err := h.pipeline.Run(ctx, file.Filename, file, service.WithRunMediaType(file.MediaType))
	if err != nil {
		slog.ErrorContext(ctx, "could not summarize document", slog.Any("error", errors.WithStack(err)))

		switch {
		case errors.Is(err, port.ErrNotSupported):
			writeError(w, r, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedFormat, result.Message)
		case errors.Is(err, port.ErrUnreadable):
			writeError(w, r, http.StatusUnprocessableEntity, ErrorCodeDocumentUnreadable, result.Message)
		case errors.Is(err, port.ErrSummarization):
			writeError(w, r, http.StatusBadGateway, ErrorCodeSummarizationFailed, result.Message)
		default:
			writeError(w, r, http.StatusInternalServerError, ErrorCodeInternal, http.StatusText(http.StatusInternalServerError))
		}

		return
	}

	writeJSON(w, r, http.StatusOK, model.NewSummary(result))
}

type ListFormatsResponse struct {
	Extensions []string `json:"extensions"`
}

func (h *Handler) handleListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, ListFormatsResponse{
		Extensions: h.pipeline.SupportedExtensions(),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string) {
	writeJSON(w, r, statusCode, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}
