package corpus

import "math/rand"

// Sample keeps a random fraction of whole sentences, stable under a fixed
// seed. Sentences are never split: a kept sentence keeps every token. A
// fraction at or above 1 returns the input unchanged, at or below 0 an
// empty slice.
func Sample(sentences []*Sentence, fraction float64, seed int64) []*Sentence {
	if fraction >= 1 {
		return sentences
	}
	if fraction <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	kept := make([]*Sentence, 0, int(float64(len(sentences))*fraction)+1)
	for _, sent := range sentences {
		if rng.Float64() < fraction {
			kept = append(kept, sent)
		}
	}
	return kept
}
