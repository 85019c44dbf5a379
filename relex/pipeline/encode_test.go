package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/vocab"
)

func testVocabulary() *vocab.Vocabulary {
	return vocab.Build([]*corpus.Sentence{{
		DocID: "d1",
		Tokens: []corpus.TokenRecord{
			tok("the", "O", "", ""),
			tok("temperature", "O", "", ""),
			tok("500", "O", "", ""),
		},
	}})
}

func TestEncodeFixedLength(t *testing.T) {
	t.Parallel()
	v := testVocabulary()
	tokens := []string{"<Quantity>", "500", "</Quantity>", "the"}

	seq := Encode(tokens, v, 8)
	assert.Len(t, seq, 8)
	// trailing positions are padding
	for i := 4; i < 8; i++ {
		assert.Equal(t, vocab.PadIndex, seq[i])
	}
	// non-padding positions decode back to the original tokens
	for i, token := range tokens {
		assert.Equal(t, token, v.Token(seq[i]))
	}
}

func TestEncodeUnknownTokens(t *testing.T) {
	t.Parallel()
	v := testVocabulary()
	seq := Encode([]string{"unseen", "500"}, v, 4)
	assert.Equal(t, vocab.UnknownIndex, seq[0])
	assert.Equal(t, vocab.Unknown, v.Token(seq[0]))
	assert.Equal(t, "500", v.Token(seq[1]))
}

func TestEncodeTruncation(t *testing.T) {
	t.Parallel()
	v := testVocabulary()
	seq := Encode([]string{"the", "temperature", "500", "the"}, v, 2)
	assert.Len(t, seq, 2)
	assert.Equal(t, "the", v.Token(seq[0]))
	assert.Equal(t, "temperature", v.Token(seq[1]))
}

func TestEncodeIsPure(t *testing.T) {
	t.Parallel()
	v := testVocabulary()
	tokens := []string{"the", "500"}
	assert.Equal(t, Encode(tokens, v, 6), Encode(tokens, v, 6))
}

func TestEncodeSplitsShapes(t *testing.T) {
	t.Parallel()
	args := relex.NewPipelineContext()
	args.Config = &relex.Config{MaxLen: 10}
	args.Vocabulary = testVocabulary()
	args.Candidates[corpus.SplitTrain] = []*relex.Candidate{
		{Tokens: []string{"the", "500"}, Label: true},
		{Tokens: []string{"temperature"}, Label: false},
	}

	assert.NoError(t, EncodeSplits(nil, args))

	train := args.Encoded[corpus.SplitTrain]
	assert.Len(t, train.X, 2)
	assert.Len(t, train.Y, 2)
	for _, row := range train.X {
		assert.Len(t, row, 10)
	}
	assert.Equal(t, []int{1, 0}, train.Y)

	// splits without candidates still get empty encoded arrays
	assert.NotNil(t, args.Encoded[corpus.SplitDev])
	assert.Empty(t, args.Encoded[corpus.SplitDev].X)
}
