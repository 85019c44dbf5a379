package nn

import "math"

// adam is the standard Adam optimizer with the usual defaults
// (beta1=0.9, beta2=0.999, eps=1e-8). Moment state is not persisted with
// the network; a reloaded checkpoint starts optimization fresh.
type adam struct {
	lr, beta1, beta2, eps float64
	t                     int

	m, v map[string][]float64
	// scalar moments for the output bias
	mOutB, vOutB float64
}

func newAdam(lr float64) *adam {
	return &adam{
		lr:    lr,
		beta1: 0.9,
		beta2: 0.999,
		eps:   1e-8,
		m:     make(map[string][]float64),
		v:     make(map[string][]float64),
	}
}

// step applies one Adam update from minibatch-averaged gradients.
func (a *adam) step(n *Network, g *grads, batch int) {
	a.t++
	scale := 1 / float64(batch)

	a.update("emb", n.Emb, g.emb, scale)
	a.update("convW", n.ConvW, g.convW, scale)
	a.update("convB", n.ConvB, g.convB, scale)
	a.update("hidW", n.HidW, g.hidW, scale)
	a.update("hidB", n.HidB, g.hidB, scale)
	a.update("outW", n.OutW, g.outW, scale)

	grad := g.outB * scale
	a.mOutB = a.beta1*a.mOutB + (1-a.beta1)*grad
	a.vOutB = a.beta2*a.vOutB + (1-a.beta2)*grad*grad
	n.OutB -= a.delta(a.mOutB, a.vOutB)
}

func (a *adam) update(name string, param, grad []float64, scale float64) {
	m, ok := a.m[name]
	if !ok {
		m = make([]float64, len(param))
		a.m[name] = m
	}
	v, ok := a.v[name]
	if !ok {
		v = make([]float64, len(param))
		a.v[name] = v
	}
	for i := range param {
		gi := grad[i] * scale
		m[i] = a.beta1*m[i] + (1-a.beta1)*gi
		v[i] = a.beta2*v[i] + (1-a.beta2)*gi*gi
		param[i] -= a.delta(m[i], v[i])
	}
}

// delta is the bias-corrected update for one parameter.
func (a *adam) delta(m, v float64) float64 {
	mhat := m / (1 - math.Pow(a.beta1, float64(a.t)))
	vhat := v / (1 - math.Pow(a.beta2, float64(a.t)))
	return a.lr * mhat / (math.Sqrt(vhat) + a.eps)
}
