package summary

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/bornholm/brief/internal/export"
	"github.com/bornholm/brief/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

const (
	maxExportFormSize = 1 << 20
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxExportFormSize)

	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(ctx, "could not parse form", slog.Any("error", errors.WithStack(err)))
		common.HandleError(w, r, common.NewError(err.Error(), "Invalid export request.", http.StatusBadRequest))
		return
	}

	filename := r.PostFormValue("filename")
	summary := r.PostFormValue("summary")

	if strings.TrimSpace(summary) == "" {
		common.HandleError(w, r, common.NewError("empty summary", "There is no summary to export.", http.StatusBadRequest))
		return
	}

	var buf bytes.Buffer

	if err := export.WriteDocx(&buf, filename, summary); err != nil {
		common.HandleError(w, r, errors.Wrap(err, "could not export summary"))
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": export.Filename(filename),
	})

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write exported document", slog.Any("error", errors.WithStack(err)))
	}
}
