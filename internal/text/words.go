package text

import (
	"strings"
)

const DefaultChunkSize = 500

// SplitByWords returns the whitespace separated tokens of the given text.
func SplitByWords(text string) []string {
	return strings.Fields(text)
}

// Chunk groups the words of text into contiguous, non overlapping chunks of
// at most size words, rejoined with single spaces. Every chunk but the last
// holds exactly size words. A text without words yields no chunk.
func Chunk(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := SplitByWords(text)

	chunks := make([]string, 0, (len(words)+size-1)/size)

	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}

	return chunks
}
