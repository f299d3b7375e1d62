package service

import "strings"

// DefaultMaxChunkTokens bounds a chunk when no explicit limit is configured.
const DefaultMaxChunkTokens = 2000

// Tokenizer is the token-counting oracle behind the chunker. It only has to
// be deterministic and monotonic (longer text never counts fewer tokens);
// the concrete vocabulary is swappable.
type Tokenizer interface {
	Encode(text string) []string
	Decode(tokens []string) string
	Count(text string) int
}

// WordTokenizer tokenizes on whitespace. No tokenizer vocabulary ships with
// the pipeline; word tokens are a stable, monotonic stand-in that round-trip
// exactly over whitespace-normalized text.
type WordTokenizer struct{}

func (WordTokenizer) Encode(text string) []string {
	return strings.Fields(text)
}

func (WordTokenizer) Decode(tokens []string) string {
	return strings.Join(tokens, " ")
}

func (WordTokenizer) Count(text string) int {
	return len(strings.Fields(text))
}

// ChunkService splits document text into token-bounded segments for
// incremental context building.
type ChunkService struct {
	tokenizer Tokenizer
	maxTokens int
}

// NewChunkService creates a chunker. A nil tokenizer or non-positive bound
// falls back to the defaults.
func NewChunkService(tokenizer Tokenizer, maxTokens int) *ChunkService {
	if tokenizer == nil {
		tokenizer = WordTokenizer{}
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxChunkTokens
	}
	return &ChunkService{
		tokenizer: tokenizer,
		maxTokens: maxTokens,
	}
}

// CountTokens reports the token count of text under the configured oracle.
func (s *ChunkService) CountTokens(text string) int {
	return s.tokenizer.Count(text)
}

// SplitIntoChunks tokenizes the whole text once and slices the token
// sequence into contiguous windows of at most maxTokens, decoding each
// window back to text. Windows do not overlap; the last one may be shorter.
// Empty text yields an empty slice.
func (s *ChunkService) SplitIntoChunks(text string) []string {
	tokens := s.tokenizer.Encode(text)
	if len(tokens) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(tokens)+s.maxTokens-1)/s.maxTokens)
	for start := 0; start < len(tokens); start += s.maxTokens {
		end := start + s.maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, s.tokenizer.Decode(tokens[start:end]))
	}
	return chunks
}
