package text

import (
	"fmt"
	"strings"
	"testing"
)

func TestChunk(t *testing.T) {
	type testCase struct {
		Name           string
		Text           string
		Size           int
		ExpectedChunks []string
	}

	testCases := []testCase{
		{
			Name:           "empty",
			Text:           "",
			Size:           500,
			ExpectedChunks: []string{},
		},
		{
			Name:           "whitespace only",
			Text:           " \n\t  \r\n ",
			Size:           500,
			ExpectedChunks: []string{},
		},
		{
			Name:           "single short chunk",
			Text:           "hello world",
			Size:           500,
			ExpectedChunks: []string{"hello world"},
		},
		{
			Name:           "whitespace normalized",
			Text:           "  a\tb\n\nc   d ",
			Size:           3,
			ExpectedChunks: []string{"a b c", "d"},
		},
		{
			Name:           "exact multiple",
			Text:           "a b c d",
			Size:           2,
			ExpectedChunks: []string{"a b", "c d"},
		},
		{
			Name:           "invalid size falls back to default",
			Text:           "a b c",
			Size:           0,
			ExpectedChunks: []string{"a b c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			chunks := Chunk(tc.Text, tc.Size)

			if e, g := len(tc.ExpectedChunks), len(chunks); e != g {
				t.Fatalf("len(chunks): expected %d, got %d", e, g)
			}

			for i := range chunks {
				if e, g := tc.ExpectedChunks[i], chunks[i]; e != g {
					t.Errorf("chunks[%d]: expected '%s', got '%s'", i, e, g)
				}
			}
		})
	}
}

func TestChunkSizes(t *testing.T) {
	for _, total := range []int{1, 499, 500, 501, 1200, 1500} {
		t.Run(fmt.Sprintf("%d words", total), func(t *testing.T) {
			words := make([]string, total)
			for i := range words {
				words[i] = fmt.Sprintf("w%d", i)
			}

			text := strings.Join(words, "\n")

			chunks := Chunk(text, DefaultChunkSize)

			expectedChunks := (total + DefaultChunkSize - 1) / DefaultChunkSize
			if e, g := expectedChunks, len(chunks); e != g {
				t.Fatalf("len(chunks): expected %d, got %d", e, g)
			}

			for i, c := range chunks {
				count := len(SplitByWords(c))

				if i < len(chunks)-1 && count != DefaultChunkSize {
					t.Errorf("chunks[%d]: expected %d words, got %d", i, DefaultChunkSize, count)
				}

				if i == len(chunks)-1 && (count < 1 || count > DefaultChunkSize) {
					t.Errorf("last chunk: unexpected word count %d", count)
				}
			}

			if e, g := strings.Join(words, " "), strings.Join(chunks, " "); e != g {
				t.Errorf("joined chunks do not reconstruct the normalized text")
			}
		})
	}
}

func TestIntHash(t *testing.T) {
	first, err := IntHash("hello world")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	second, err := IntHash("hello world")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if first != second {
		t.Errorf("expected identical hashes, got %d and %d", first, second)
	}

	if first < 0 {
		t.Errorf("expected non negative hash, got %d", first)
	}
}

func TestMiddleOut(t *testing.T) {
	if e, g := "short", MiddleOut("short", 10, "..."); e != g {
		t.Errorf("expected '%s', got '%s'", e, g)
	}

	if e, g := "abc...xyz", MiddleOut("abcdefghijklmnopqrstuvwxyz", 3, "..."); e != g {
		t.Errorf("expected '%s', got '%s'", e, g)
	}
}
