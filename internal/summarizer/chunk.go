package summarizer

// DefaultChunkSize bounds the transcript slice sent in a single completion
// request.
const DefaultChunkSize = 8000

// SplitChunks partitions text into consecutive slices of at most max
// characters. The slices preserve order and content: concatenating them
// reproduces text exactly. Sizes are counted in runes so multi-byte
// transcripts do not split mid-character.
func SplitChunks(text string, max int) []string {
	if max <= 0 {
		max = DefaultChunkSize
	}

	runes := []rune(text)
	if len(runes) <= max {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+max-1)/max)
	for i := 0; i < len(runes); i += max {
		end := i + max
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
