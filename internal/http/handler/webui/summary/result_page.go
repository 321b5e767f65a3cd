package summary

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/brief/internal/core/service"
	"github.com/bornholm/brief/internal/http/handler/webui/common"
	"github.com/bornholm/brief/internal/http/handler/webui/summary/component"
	"github.com/bornholm/brief/internal/http/upload"
	"github.com/bornholm/brief/internal/markdown"
	"github.com/bornholm/brief/internal/metrics"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func (h *Handler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	metrics.Requests.With(prometheus.Labels{metrics.LabelSource: "webui"}).Inc()

	file, err := upload.ReadFile(w, r, h.maxUploadSize)
	if err != nil {
		slog.ErrorContext(ctx, "could not read uploaded file", slog.Any("error", errors.WithStack(err)))

		if errors.Is(err, upload.ErrTooLarge) {
			common.HandleError(w, r, common.NewError(err.Error(), "The file is too large. Maximum size is "+humanize.IBytes(uint64(h.maxUploadSize))+".", http.StatusRequestEntityTooLarge))
			return
		}

		common.HandleError(w, r, common.NewError(err.Error(), "Please select a document to summarize.", http.StatusBadRequest))
		return
	}

	defer file.Close()

	result, err := h.pipeline.Run(ctx, file.Filename, file, service.WithRunMediaType(file.MediaType))
	if err != nil {
		slog.ErrorContext(ctx, "could not summarize document", slog.Any("error", errors.WithStack(err)))

		common.HandleError(w, r, common.NewPipelineError(err, result.Message))
		return
	}

	summaryHTML, err := markdown.ToHTML(result.Summary)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.ResultPageVModel{
		Filename:        result.Filename,
		ExtractedLength: result.ExtractedLength,
		Chunks:          result.Chunks,
		Summary:         result.Summary,
		SummaryHTML:     summaryHTML,
	}

	resultPage := component.ResultPage(vmodel)

	templ.Handler(resultPage).ServeHTTP(w, r)
}
