package ai

import "github.com/johnquangdev/video-assistant/internal/domain/entities"

// Default chunking for the detailed summary, in characters
const (
	DefaultChunkSize    = 12000
	DefaultChunkOverlap = 1000

	// DefaultShortSummaryMaxChars is how much of the transcript the short summary reads
	DefaultShortSummaryMaxChars = 20000
)

// SplitChunks cuts text into windows of size characters, each starting size-overlap
// characters after the previous one. The last window may be shorter.
// The result has ceil(len/(size-overlap)) chunks and is empty only for empty text.
func SplitChunks(text string, size, overlap int) []entities.Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	step := size - overlap
	if step <= 0 {
		step = size
	}

	chunks := make([]entities.Chunk, 0, (len(runes)+step-1)/step)
	for offset := 0; offset < len(runes); offset += step {
		end := min(offset+size, len(runes))
		chunks = append(chunks, entities.Chunk{
			Index:  len(chunks),
			Offset: offset,
			Text:   string(runes[offset:end]),
		})
	}
	return chunks
}

// truncateRunes returns at most n leading characters of s
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
