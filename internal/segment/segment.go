// Package segment restricts text to the counted alphabet and splits it
// into words using a CJK-aware segmenter.
package segment

import (
	"strings"

	"github.com/go-ego/gse"
)

// Tokenizer splits normalized text into word tokens. Implementations must
// preserve document order and handle mixed Latin/digit and CJK input.
type Tokenizer interface {
	Segment(text string) []string
}

// Normalize deletes every rune outside A-Z, a-z, 0-9 and the CJK Unified
// Ideographs block U+4E00..U+9FA5. Disallowed runes are removed, not
// replaced: words separated only by punctuation or whitespace concatenate.
// Downstream counting depends on exactly this behavior.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x4E00 && r <= 0x9FA5:
		return true
	}
	return false
}

// GseTokenizer segments text with the gse dictionary segmenter, the Go
// counterpart of the jieba-style cut used for Chinese word boundaries.
// Latin and digit runs come back as single tokens.
type GseTokenizer struct {
	seg gse.Segmenter
}

// NewGseTokenizer loads the default embedded dictionary. Loading is the
// expensive part, so callers should construct one tokenizer and reuse it.
func NewGseTokenizer() (*GseTokenizer, error) {
	t := &GseTokenizer{}
	if err := t.seg.LoadDict(); err != nil {
		return nil, err
	}
	return t, nil
}

// Segment splits text into tokens in document order using HMM for
// out-of-dictionary runs.
func (t *GseTokenizer) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return t.seg.Cut(text, true)
}

// Tokenize is the convenience composition used by the pipeline:
// normalize first, then segment.
func Tokenize(tok Tokenizer, text string) []string {
	return tok.Segment(Normalize(text))
}
