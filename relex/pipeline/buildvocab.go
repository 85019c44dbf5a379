package pipeline

import (
	"context"
	"log"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/vocab"
)

// BuildVocabulary builds the frozen token set from the training split
// alone; dev and test lemmas outside it encode as the unknown token.
func BuildVocabulary(_ context.Context, args *relex.PipelineContext) error {
	args.Vocabulary = vocab.Build(args.Sentences[corpus.SplitTrain])
	log.Printf("vocabulary: %d tokens", args.Vocabulary.Size())
	return nil
}
