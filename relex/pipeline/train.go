package pipeline

import (
	"context"
	"errors"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/nn"
	"github.com/quantlink/quantlink/relex"
)

// TrainClassifier fits the fixed-topology scorer on the training split,
// validating against the dev split each epoch.
func TrainClassifier(_ context.Context, args *relex.PipelineContext) error {
	train := args.Encoded[corpus.SplitTrain]
	dev := args.Encoded[corpus.SplitDev]
	if train == nil || len(train.X) == 0 {
		return errors.New("no encoded training examples")
	}
	if dev == nil {
		dev = &relex.EncodedSplit{}
	}

	cfg := args.Config
	args.Model = nn.New(nn.Config{
		VocabSize:    args.Vocabulary.Size(),
		EmbeddingDim: cfg.EmbeddingDim,
		Filters:      cfg.Filters,
		KernelSize:   cfg.KernelSize,
		HiddenDim:    cfg.HiddenDim,
		Seed:         cfg.Seed,
	})
	args.Model.Fit(train.X, train.Y, dev.X, dev.Y, cfg.Epochs, cfg.BatchSize)
	return nil
}
