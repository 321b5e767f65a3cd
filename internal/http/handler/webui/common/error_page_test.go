package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

func TestHandleError(t *testing.T) {
	type testCase struct {
		Name               string
		Err                error
		ExpectedStatusCode int
		ExpectedMessage    string
	}

	testCases := []testCase{
		{
			Name:               "user facing error",
			Err:                errors.WithStack(NewError("unsupported extension", "Unsupported file type.", http.StatusUnsupportedMediaType)),
			ExpectedStatusCode: http.StatusUnsupportedMediaType,
			ExpectedMessage:    "Unsupported file type.",
		},
		{
			Name:               "summarization failure",
			Err:                NewPipelineError(errors.Wrap(port.ErrSummarization, "timeout"), "Summarization failed."),
			ExpectedStatusCode: http.StatusBadGateway,
			ExpectedMessage:    "Summarization failed.",
		},
		{
			Name:               "unreadable document without message",
			Err:                NewPipelineError(errors.WithStack(port.ErrUnreadable), ""),
			ExpectedStatusCode: http.StatusUnprocessableEntity,
			ExpectedMessage:    http.StatusText(http.StatusUnprocessableEntity),
		},
		{
			Name:               "unexpected error",
			Err:                errors.New("boom"),
			ExpectedStatusCode: http.StatusInternalServerError,
			ExpectedMessage:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			res := httptest.NewRecorder()

			HandleError(res, req, tc.Err)

			if e, g := tc.ExpectedStatusCode, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}

			if !strings.Contains(res.Body.String(), tc.ExpectedMessage) {
				t.Errorf("expected body to contain '%s', got '%s'", tc.ExpectedMessage, res.Body.String())
			}
		})
	}
}
