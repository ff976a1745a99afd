// Package chunker provides word-bounded text chunking by character count.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChunkChars is the default maximum characters per chunk.
// Character count stands in for the model's 512 token input limit.
const DefaultMaxChunkChars = 512

// Segment splits text into chunks of whole words that don't exceed
// maxChunkChars characters once joined with single spaces.
// Words are never split: a word longer than maxChunkChars gets its own chunk.
// Whitespace-only input yields no chunks.
func Segment(text string, maxChunkChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if maxChunkChars <= 0 {
		maxChunkChars = DefaultMaxChunkChars
	}

	var chunks []string
	var currentChunk []string
	currentChars := 0

	for _, word := range words {
		wordChars := utf8.RuneCountInString(word)

		// Joined length if the word were appended, separator included
		nextChars := wordChars
		if len(currentChunk) > 0 {
			nextChars = currentChars + 1 + wordChars
		}

		// If adding this word would exceed the limit, start a new chunk
		if nextChars > maxChunkChars && len(currentChunk) > 0 {
			chunks = append(chunks, strings.Join(currentChunk, " "))
			currentChunk = nil
			nextChars = wordChars
		}

		currentChunk = append(currentChunk, word)
		currentChars = nextChars
	}

	// Flush remaining chunk
	if len(currentChunk) > 0 {
		chunks = append(chunks, strings.Join(currentChunk, " "))
	}

	return chunks
}

// Length returns the character length of a chunk as Segment measures it.
func Length(chunk string) int {
	return utf8.RuneCountInString(chunk)
}
