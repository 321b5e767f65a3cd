package markdown

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestToHTML(t *testing.T) {
	type testCase struct {
		Name             string
		Source           string
		ExpectedContains []string
		ExpectedAbsent   []string
	}

	testCases := []testCase{
		{
			Name:             "paragraphs",
			Source:           "first summary\n\nsecond summary",
			ExpectedContains: []string{"<p>first summary</p>", "<p>second summary</p>"},
		},
		{
			Name:             "list",
			Source:           "- one\n- two",
			ExpectedContains: []string{"<li>one</li>", "<li>two</li>"},
		},
		{
			Name:             "raw html omitted",
			Source:           "hello <script>alert(1)</script>",
			ExpectedContains: []string{"hello"},
			ExpectedAbsent:   []string{"<script>"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			html, err := ToHTML(tc.Source)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			for _, s := range tc.ExpectedContains {
				if !strings.Contains(html, s) {
					t.Errorf("expected html to contain '%s', got '%s'", s, html)
				}
			}

			for _, s := range tc.ExpectedAbsent {
				if strings.Contains(html, s) {
					t.Errorf("expected html not to contain '%s', got '%s'", s, html)
				}
			}
		})
	}
}
