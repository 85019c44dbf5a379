package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/eval"
	"github.com/quantlink/quantlink/relex"
)

// Evaluate computes positive-class metrics over the test split and prints
// the F1 score.
func Evaluate(_ context.Context, args *relex.PipelineContext) error {
	candidates := args.Candidates[corpus.SplitTest]
	truth := make([]bool, len(candidates))
	predicted := make([]bool, len(candidates))
	for i, cand := range candidates {
		if cand.Prediction == nil {
			return errors.New("test candidates are missing predictions")
		}
		truth[i] = cand.Label
		predicted[i] = *cand.Prediction
	}

	result := eval.Evaluate(truth, predicted)
	args.Metrics = &relex.Metrics{
		Accuracy:  result.Accuracy,
		Precision: result.Precision,
		Recall:    result.Recall,
		F1:        result.F1,
	}
	fmt.Printf("F1: %.3f\n", result.F1)
	return nil
}
