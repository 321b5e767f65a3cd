package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/brief/internal/metrics"
	"github.com/dustin/go-humanize"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ArgFilename = "filename"
	ArgContent  = "content"
	ArgEncoding = "encoding"

	EncodingText   = "text"
	EncodingBase64 = "base64"
)

func getSummarizeTool(extensions []string) mcp.Tool {
	return mcp.NewTool("summarize",
		mcp.WithDescription(fmt.Sprintf("Summarize a document. Supported formats: %s", strings.Join(extensions, ", "))),
		mcp.WithString(ArgFilename,
			mcp.Description("The name of the document, its extension selects the text extraction method"),
			mcp.Required(),
		),
		mcp.WithString(ArgContent,
			mcp.Description("The content of the document"),
			mcp.Required(),
		),
		mcp.WithString(ArgEncoding,
			mcp.Description("The encoding of the content: 'text' for plain text documents, 'base64' for binary documents"),
			mcp.Enum(EncodingText, EncodingBase64),
		),
	)
}

func (h *Handler) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metrics.Requests.With(prometheus.Labels{metrics.LabelSource: "mcp"}).Inc()

	arguments := request.Params.Arguments

	filename, ok := arguments[ArgFilename].(string)
	if !ok || filename == "" {
		return nil, fmt.Errorf("invalid %s argument", ArgFilename)
	}

	content, ok := arguments[ArgContent].(string)
	if !ok {
		return nil, fmt.Errorf("invalid %s argument", ArgContent)
	}

	encoding := EncodingText
	if rawEncoding, exists := arguments[ArgEncoding]; exists {
		encoding, ok = rawEncoding.(string)
		if !ok {
			return nil, fmt.Errorf("invalid %s argument", ArgEncoding)
		}
	}

	data, err := decodeContent(content, encoding)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if h.maxUploadSize > 0 && int64(len(data)) > h.maxUploadSize {
		return newErrorResult(fmt.Sprintf("The document is too large. Maximum size is %s.", humanize.IBytes(uint64(h.maxUploadSize)))), nil
	}

	result, err := h.pipeline.Run(ctx, filename, bytes.NewReader(data))
	if err != nil {
		slog.ErrorContext(ctx, "could not summarize document", slog.Any("error", errors.WithStack(err)))
		return newErrorResult(result.Message), nil
	}

	var sb strings.Builder

	sb.WriteString("# Summary of '")
	sb.WriteString(result.Filename)
	sb.WriteString("'\n\n")
	sb.WriteString("**Extracted text length:** ")
	sb.WriteString(humanize.Comma(int64(result.ExtractedLength)))
	sb.WriteString("\n\n")
	sb.WriteString(result.Summary)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: sb.String(),
			},
		},
	}, nil
}

func decodeContent(content string, encoding string) ([]byte, error) {
	switch encoding {
	case EncodingText, "":
		return []byte(content), nil
	case EncodingBase64:
		data, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode base64 content")
		}
		return data, nil
	default:
		return nil, errors.Errorf("unsupported encoding '%s'", encoding)
	}
}

func newErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
	}
}
