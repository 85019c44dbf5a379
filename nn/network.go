// Package nn implements the fixed five-stage relation scorer: an embedding
// lookup, one 1-D convolution with ReLU, global max pooling, a ReLU hidden
// layer and a sigmoid output unit. Weights live in flat float64 slices so a
// trained network gob-serializes as-is; gonum matrix views over those
// slices do the heavy multiplications.
package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

type Config struct {
	VocabSize    int
	EmbeddingDim int
	Filters      int
	KernelSize   int
	HiddenDim    int
	// LearningRate defaults to 0.001 when zero.
	LearningRate float64
	Seed         int64
}

// Network holds the model parameters. All fields are exported for gob.
type Network struct {
	Cfg Config

	// Emb is VocabSize x EmbeddingDim, row-major.
	Emb []float64
	// ConvW is Filters x (KernelSize*EmbeddingDim), row-major.
	ConvW []float64
	ConvB []float64
	// HidW is HiddenDim x Filters, row-major.
	HidW []float64
	HidB []float64
	// OutW is HiddenDim.
	OutW []float64
	OutB float64

	opt *adam
}

// New builds a network with seeded initialization: uniform(-0.05, 0.05)
// embeddings, Glorot-uniform conv and dense weights, zero biases.
func New(cfg Config) *Network {
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.001
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	n := &Network{
		Cfg:   cfg,
		Emb:   make([]float64, cfg.VocabSize*cfg.EmbeddingDim),
		ConvW: make([]float64, cfg.Filters*cfg.KernelSize*cfg.EmbeddingDim),
		ConvB: make([]float64, cfg.Filters),
		HidW:  make([]float64, cfg.HiddenDim*cfg.Filters),
		HidB:  make([]float64, cfg.HiddenDim),
		OutW:  make([]float64, cfg.HiddenDim),
	}
	for i := range n.Emb {
		n.Emb[i] = rng.Float64()*0.1 - 0.05
	}
	glorot(rng, n.ConvW, cfg.KernelSize*cfg.EmbeddingDim, cfg.Filters)
	glorot(rng, n.HidW, cfg.Filters, cfg.HiddenDim)
	glorot(rng, n.OutW, cfg.HiddenDim, 1)
	return n
}

func glorot(rng *rand.Rand, w []float64, fanIn, fanOut int) {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	for i := range w {
		w[i] = rng.Float64()*2*limit - limit
	}
}

// activations caches one example's forward pass for backprop.
type activations struct {
	seq    []int
	cols   *mat.Dense // positions x (kernel*embedding), the im2col matrix
	conv   *mat.Dense // positions x filters, post-ReLU
	argmax []int      // winning position per filter
	pooled []float64  // filters
	hidden []float64  // hidden dim, post-ReLU
	prob   float64
}

// forward runs one encoded sequence through the network. The sequence must
// be at least KernelSize long; encoded inputs are always MaxLen, which the
// pipeline keeps well above the kernel width.
func (n *Network) forward(seq []int) *activations {
	cfg := n.Cfg
	e, k, f := cfg.EmbeddingDim, cfg.KernelSize, cfg.Filters
	positions := len(seq) - k + 1

	cols := mat.NewDense(positions, k*e, nil)
	for p := 0; p < positions; p++ {
		row := cols.RawRowView(p)
		for j := 0; j < k; j++ {
			tok := seq[p+j]
			copy(row[j*e:(j+1)*e], n.Emb[tok*e:(tok+1)*e])
		}
	}

	convW := mat.NewDense(f, k*e, n.ConvW)
	conv := mat.NewDense(positions, f, nil)
	conv.Mul(cols, convW.T())

	argmax := make([]int, f)
	pooled := make([]float64, f)
	for j := 0; j < f; j++ {
		best := math.Inf(-1)
		for p := 0; p < positions; p++ {
			v := conv.At(p, j) + n.ConvB[j]
			if v < 0 {
				v = 0
			}
			conv.Set(p, j, v)
			if v > best {
				best = v
				argmax[j] = p
			}
		}
		pooled[j] = best
	}

	hidden := make([]float64, cfg.HiddenDim)
	hidW := mat.NewDense(cfg.HiddenDim, f, n.HidW)
	hv := mat.NewVecDense(cfg.HiddenDim, hidden)
	hv.MulVec(hidW, mat.NewVecDense(f, pooled))
	for i := range hidden {
		hidden[i] += n.HidB[i]
		if hidden[i] < 0 {
			hidden[i] = 0
		}
	}

	logit := n.OutB
	for i, w := range n.OutW {
		logit += w * hidden[i]
	}

	return &activations{
		seq:    seq,
		cols:   cols,
		conv:   conv,
		argmax: argmax,
		pooled: pooled,
		hidden: hidden,
		prob:   sigmoid(logit),
	}
}

// Predict returns the scored probability of the positive class.
func (n *Network) Predict(seq []int) float64 {
	return n.forward(seq).prob
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
