package summary

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/brief/internal/http/handler/webui/summary/component"
)

func (h *Handler) getUploadPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.UploadPageVModel{
		SupportedExtensions: h.pipeline.SupportedExtensions(),
		MaxUploadSize:       h.maxUploadSize,
	}

	uploadPage := component.UploadPage(vmodel)

	templ.Handler(uploadPage).ServeHTTP(w, r)
}
