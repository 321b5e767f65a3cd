package port

import (
	"context"
	"io"
)

// TextExtractor turns an uploaded document into plain text.
//
// Implementations return ErrNotSupported when the filename extension is not
// handled and ErrUnreadable when the content cannot be decoded.
type TextExtractor interface {
	SupportedExtensions() []string
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}
