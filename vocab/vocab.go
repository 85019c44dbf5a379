package vocab

import (
	"github.com/thoas/go-funk"

	"github.com/quantlink/quantlink/corpus"
)

// Reserved tokens. Pad always sits at index 0 and Unknown at index 1, the
// eight structural markers follow, so every vocabulary shares the same
// ten-token prefix regardless of the training data.
const (
	Pad     = "<PAD>"
	Unknown = "<UNK>"

	PadIndex     = 0
	UnknownIndex = 1
)

// StartMarker and EndMarker return the structural tokens wrapped around an
// entity span of the given type, e.g. <Quantity> and </Quantity>.
func StartMarker(entityType string) string { return "<" + entityType + ">" }
func EndMarker(entityType string) string   { return "</" + entityType + ">" }

// Markers lists the eight structural tokens in their fixed vocabulary order.
func Markers() []string {
	markers := make([]string, 0, 2*len(corpus.EntityTypes))
	for _, typ := range corpus.EntityTypes {
		markers = append(markers, StartMarker(typ), EndMarker(typ))
	}
	return markers
}

// Vocabulary is the frozen, ordered token set used to encode candidate
// sequences. It is built once from the training split and shared read-only
// by the encoding of every split.
type Vocabulary struct {
	Tokens  []string
	indexOf map[string]int
}

// Build collects the distinct lemmas of the training sentences in
// first-occurrence order and prepends the reserved and structural tokens.
// Empty input yields the ten reserved tokens alone.
func Build(sentences []*corpus.Sentence) *Vocabulary {
	tokens := make([]string, 0, 2+8+4096)
	tokens = append(tokens, Pad, Unknown)
	tokens = append(tokens, Markers()...)
	for _, sent := range sentences {
		tokens = append(tokens, sent.Lemmas()...)
	}
	return New(funk.UniqString(tokens))
}

// New wraps an already-ordered token list, deriving the lookup map.
func New(tokens []string) *Vocabulary {
	indexOf := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		indexOf[tok] = i
	}
	return &Vocabulary{Tokens: tokens, indexOf: indexOf}
}

// Index returns the position of token, reporting whether it is known.
func (v *Vocabulary) Index(token string) (int, bool) {
	i, ok := v.indexOf[token]
	return i, ok
}

// Token returns the string at index i, or the unknown token when i is out
// of range.
func (v *Vocabulary) Token(i int) string {
	if i < 0 || i >= len(v.Tokens) {
		return Unknown
	}
	return v.Tokens[i]
}

// Size returns the number of tokens, reserved and structural included.
func (v *Vocabulary) Size() int {
	return len(v.Tokens)
}
