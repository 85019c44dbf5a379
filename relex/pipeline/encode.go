package pipeline

import (
	"context"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/vocab"
)

// EncodeSplits turns every split's candidate table into model-ready
// fixed-length index arrays with parallel 0/1 labels.
func EncodeSplits(_ context.Context, args *relex.PipelineContext) error {
	maxLen := args.Config.MaxLen
	for _, split := range corpus.Splits {
		candidates := args.Candidates[split]
		encoded := &relex.EncodedSplit{
			X: make([][]int, 0, len(candidates)),
			Y: make([]int, 0, len(candidates)),
		}
		for _, cand := range candidates {
			encoded.X = append(encoded.X, Encode(cand.Tokens, args.Vocabulary, maxLen))
			label := 0
			if cand.Label {
				label = 1
			}
			encoded.Y = append(encoded.Y, label)
		}
		args.Encoded[split] = encoded
	}
	return nil
}

// Encode maps tokens to vocabulary indices, substituting the unknown index
// for tokens outside the vocabulary, right-padding with the padding index
// to exactly maxLen and hard-truncating anything longer. It is a pure
// function of its inputs.
func Encode(tokens []string, v *vocab.Vocabulary, maxLen int) []int {
	seq := make([]int, maxLen)
	for i := 0; i < maxLen; i++ {
		if i >= len(tokens) {
			seq[i] = vocab.PadIndex
			continue
		}
		if idx, ok := v.Index(tokens[i]); ok {
			seq[i] = idx
		} else {
			seq[i] = vocab.UnknownIndex
		}
	}
	return seq
}
