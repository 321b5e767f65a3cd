package common

import (
	"net/http"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

// Error is an error carrying the message shown to the user and the status
// code of the error page.
type Error struct {
	err         string
	userMessage string
	statusCode  int
}

func (e *Error) StatusCode() int {
	return e.statusCode
}

func (e *Error) Error() string {
	return e.err
}

func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(err string, userMessage string, statusCode int) *Error {
	return &Error{
		err:         err,
		userMessage: userMessage,
		statusCode:  statusCode,
	}
}

// NewPipelineError maps a pipeline failure to the page shown to the user.
// The message is the one carried by the pipeline result.
func NewPipelineError(err error, userMessage string) *Error {
	statusCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, port.ErrNotSupported):
		statusCode = http.StatusUnsupportedMediaType
	case errors.Is(err, port.ErrUnreadable):
		statusCode = http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrSummarization):
		statusCode = http.StatusBadGateway
	}

	if userMessage == "" {
		userMessage = http.StatusText(statusCode)
	}

	return NewError(err.Error(), userMessage, statusCode)
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
)
