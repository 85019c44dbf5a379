package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	truth := []bool{true, true, true, false, false, false}
	predicted := []bool{true, true, false, true, false, false}

	r := Evaluate(truth, predicted)
	assert.Equal(t, 2, r.TruePositives)
	assert.Equal(t, 1, r.FalsePositives)
	assert.Equal(t, 1, r.FalseNegatives)
	assert.Equal(t, 2, r.TrueNegatives)
	assert.InDelta(t, 4.0/6.0, r.Accuracy, 1e-9)
	assert.InDelta(t, 2.0/3.0, r.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, r.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, r.F1, 1e-9)
}

func TestEvaluateDegenerate(t *testing.T) {
	t.Parallel()
	// no positives anywhere: metrics stay 0 instead of dividing by zero
	r := Evaluate([]bool{false, false}, []bool{false, false})
	assert.Equal(t, 0.0, r.Precision)
	assert.Equal(t, 0.0, r.Recall)
	assert.Equal(t, 0.0, r.F1)
	assert.Equal(t, 1.0, r.Accuracy)

	r = Evaluate(nil, nil)
	assert.Equal(t, 0.0, r.Accuracy)
	assert.Equal(t, 0.0, r.F1)
}
