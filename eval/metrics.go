// Package eval computes classification metrics for the positive
// (true-relation) class.
package eval

// Result holds the positive-class counts and derived metrics of one
// prediction run.
type Result struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	TrueNegatives  int

	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate compares parallel truth and prediction arrays. Precision,
// recall and F1 are 0 when their denominators are 0.
func Evaluate(truth, predicted []bool) Result {
	var r Result
	for i, t := range truth {
		p := predicted[i]
		switch {
		case t && p:
			r.TruePositives++
		case !t && p:
			r.FalsePositives++
		case t && !p:
			r.FalseNegatives++
		default:
			r.TrueNegatives++
		}
	}
	total := len(truth)
	if total > 0 {
		r.Accuracy = float64(r.TruePositives+r.TrueNegatives) / float64(total)
	}
	if r.TruePositives+r.FalsePositives > 0 {
		r.Precision = float64(r.TruePositives) / float64(r.TruePositives+r.FalsePositives)
	}
	if r.TruePositives+r.FalseNegatives > 0 {
		r.Recall = float64(r.TruePositives) / float64(r.TruePositives+r.FalseNegatives)
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	return r
}
