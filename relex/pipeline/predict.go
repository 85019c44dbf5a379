package pipeline

import (
	"context"
	"errors"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/utils/counter"
	"github.com/quantlink/quantlink/utils/parallel"
)

// PredictTest scores the test split in fixed-size batches, thresholding
// the sigmoid output at 0.5, and writes the prediction column onto the
// test candidate table. The trained network is read-only here, so batches
// are scored concurrently.
func PredictTest(_ context.Context, args *relex.PipelineContext) error {
	if args.Model == nil {
		return errors.New("no trained model, run the training stage first")
	}
	test := args.Encoded[corpus.SplitTest]
	candidates := args.Candidates[corpus.SplitTest]
	if test == nil || len(test.X) != len(candidates) {
		return errors.New("test split encoding is out of sync with its candidates")
	}

	batchSize := args.Config.BatchSize
	batches := (len(test.X) + batchSize - 1) / batchSize
	preds := make([]bool, len(test.X))
	c := counter.NewCounter(
		counter.WithTotal(batches), counter.WithDesc("predict"))
	parallel.Parallel(func(b int) any {
		start := b * batchSize
		end := start + batchSize
		if end > len(test.X) {
			end = len(test.X)
		}
		for i := start; i < end; i++ {
			preds[i] = args.Model.Predict(test.X[i]) >= 0.5
		}
		c.Add()
		return nil
	}, batches, args.Config.Concurrency)

	for i, cand := range candidates {
		pred := preds[i]
		cand.Prediction = &pred
	}
	return nil
}
