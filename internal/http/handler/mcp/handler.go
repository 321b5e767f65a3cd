package mcp

import (
	"net/http"

	"github.com/bornholm/brief/internal/build"
	"github.com/bornholm/brief/internal/core/service"
	"github.com/mark3labs/mcp-go/server"
)

type Handler struct {
	pipeline      *service.Pipeline
	maxUploadSize int64
	basePath      string
	handler       http.Handler
	mcp           *server.MCPServer
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	currentPath := r.URL.Path
	r.URL.Path = h.basePath
	r.URL = r.URL.JoinPath(currentPath)
	h.handler.ServeHTTP(w, r)
}

func NewHandler(baseURL string, basePath string, pipeline *service.Pipeline, maxUploadSize int64) *Handler {
	h := &Handler{
		pipeline:      pipeline,
		maxUploadSize: maxUploadSize,
		basePath:      basePath,
	}

	mcpServer := server.NewMCPServer("brief", build.ShortVersion,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(getSummarizeTool(pipeline.SupportedExtensions()), h.handleSummarize)

	h.mcp = mcpServer

	h.handler = server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(baseURL),
		server.WithStaticBasePath(basePath),
	)

	return h
}

var _ http.Handler = &Handler{}
