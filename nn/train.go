package nn

import (
	"log"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// grads mirrors the parameter tensors, accumulated over one minibatch.
type grads struct {
	emb   []float64
	convW []float64
	convB []float64
	hidW  []float64
	hidB  []float64
	outW  []float64
	outB  float64
}

func (n *Network) newGrads() *grads {
	return &grads{
		emb:   make([]float64, len(n.Emb)),
		convW: make([]float64, len(n.ConvW)),
		convB: make([]float64, len(n.ConvB)),
		hidW:  make([]float64, len(n.HidW)),
		hidB:  make([]float64, len(n.HidB)),
		outW:  make([]float64, len(n.OutW)),
	}
}

func (g *grads) reset() {
	zero(g.emb)
	zero(g.convW)
	zero(g.convB)
	zero(g.hidW)
	zero(g.hidB)
	zero(g.outW)
	g.outB = 0
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}

// backward accumulates one example's gradients into g and returns its
// binary cross-entropy loss.
func (n *Network) backward(act *activations, target float64, g *grads) float64 {
	cfg := n.Cfg
	e, k, f, h := cfg.EmbeddingDim, cfg.KernelSize, cfg.Filters, cfg.HiddenDim
	positions := len(act.seq) - k + 1

	// output unit
	dlogit := act.prob - target
	g.outB += dlogit
	dh := make([]float64, h)
	for i := 0; i < h; i++ {
		g.outW[i] += dlogit * act.hidden[i]
		if act.hidden[i] > 0 {
			dh[i] = dlogit * n.OutW[i]
		}
	}

	// hidden layer
	dm := make([]float64, f)
	for i := 0; i < h; i++ {
		if dh[i] == 0 {
			continue
		}
		g.hidB[i] += dh[i]
		for j := 0; j < f; j++ {
			g.hidW[i*f+j] += dh[i] * act.pooled[j]
			dm[j] += dh[i] * n.HidW[i*f+j]
		}
	}

	// max pool routes each filter's gradient to its winning position,
	// gated by the convolution's ReLU
	dZ := mat.NewDense(positions, f, nil)
	for j := 0; j < f; j++ {
		p := act.argmax[j]
		if act.conv.At(p, j) > 0 {
			dZ.Set(p, j, dm[j])
			g.convB[j] += dm[j]
		}
	}

	// convolution weights and input columns
	var dConvW mat.Dense
	dConvW.Mul(dZ.T(), act.cols)
	gConvW := mat.NewDense(f, k*e, g.convW)
	gConvW.Add(gConvW, &dConvW)

	var dCols mat.Dense
	dCols.Mul(dZ, mat.NewDense(f, k*e, n.ConvW))
	for p := 0; p < positions; p++ {
		row := dCols.RawRowView(p)
		for j := 0; j < k; j++ {
			tok := act.seq[p+j]
			dst := g.emb[tok*e : (tok+1)*e]
			src := row[j*e : (j+1)*e]
			for d := range dst {
				dst[d] += src[d]
			}
		}
	}

	return bce(act.prob, target)
}

func bce(prob, target float64) float64 {
	const eps = 1e-7
	p := math.Min(math.Max(prob, eps), 1-eps)
	return -(target*math.Log(p) + (1-target)*math.Log(1-p))
}

// Fit trains the network for the fixed number of epochs, shuffling the
// training set each epoch from the run seed and reporting loss and
// accuracy, plus validation accuracy when a dev split is given.
func (n *Network) Fit(xTrain [][]int, yTrain []int, xVal [][]int, yVal []int, epochs, batchSize int) {
	rng := rand.New(rand.NewSource(n.Cfg.Seed))
	if n.opt == nil {
		n.opt = newAdam(n.Cfg.LearningRate)
	}
	g := n.newGrads()

	order := make([]int, len(xTrain))
	for i := range order {
		order[i] = i
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		var lossSum float64
		var correct int
		for start := 0; start < len(order); start += batchSize {
			end := start + batchSize
			if end > len(order) {
				end = len(order)
			}
			g.reset()
			for _, i := range order[start:end] {
				act := n.forward(xTrain[i])
				target := float64(yTrain[i])
				lossSum += n.backward(act, target, g)
				if (act.prob >= 0.5) == (yTrain[i] == 1) {
					correct++
				}
			}
			n.opt.step(n, g, end-start)
		}

		trainLoss := lossSum / float64(len(order))
		trainAcc := float64(correct) / float64(len(order))
		if len(xVal) > 0 {
			valAcc := n.accuracy(xVal, yVal)
			log.Printf("epoch %d/%d loss=%.4f acc=%.4f val_acc=%.4f",
				epoch, epochs, trainLoss, trainAcc, valAcc)
		} else {
			log.Printf("epoch %d/%d loss=%.4f acc=%.4f",
				epoch, epochs, trainLoss, trainAcc)
		}
	}
}

func (n *Network) accuracy(xs [][]int, ys []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	correct := 0
	for i, seq := range xs {
		if (n.Predict(seq) >= 0.5) == (ys[i] == 1) {
			correct++
		}
	}
	return float64(correct) / float64(len(xs))
}
