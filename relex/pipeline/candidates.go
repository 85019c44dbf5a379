package pipeline

import (
	"context"
	"log"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/vocab"
)

// GenerateCandidates enumerates every (Quantity, other-entity) pair of
// every sentence, per split.
func GenerateCandidates(_ context.Context, args *relex.PipelineContext) error {
	for _, split := range corpus.Splits {
		candidates := make([]*relex.Candidate, 0, 1024)
		positives := 0
		for _, sent := range args.Sentences[split] {
			for _, cand := range IntegrateSentence(sent) {
				if cand.Label {
					positives++
				}
				candidates = append(candidates, cand)
			}
		}
		log.Printf("%s: %d candidates, %d positive", split, len(candidates), positives)
		args.Candidates[split] = candidates
	}
	return nil
}

// IntegrateSentence builds one candidate per (Quantity span, other span)
// ordered pair of the sentence: Quantity spans in first-appearance order,
// then other spans in first-appearance order. The candidate's token
// sequence is the sentence's lemmas with exactly the two paired spans
// wrapped in their type markers; uninvolved spans of any type are left
// unmarked. The label is true iff the dataset points the other span's
// relation target at the paired Quantity. A sentence without a Quantity
// span or without an other span yields no candidates.
func IntegrateSentence(sent *corpus.Sentence) []*relex.Candidate {
	spans := corpus.ExtractSpans(sent)
	var quantities, others []corpus.Span
	for _, span := range spans {
		if span.Type == corpus.TypeQuantity {
			quantities = append(quantities, span)
		} else {
			others = append(others, span)
		}
	}
	if len(quantities) == 0 || len(others) == 0 {
		return nil
	}

	lemmas := sent.Lemmas()
	candidates := make([]*relex.Candidate, 0, len(quantities)*len(others))
	for _, q := range quantities {
		for _, o := range others {
			candidates = append(candidates, &relex.Candidate{
				DocID:      sent.DocID,
				SentID:     sent.SentID,
				QuantityID: q.ID,
				OtherID:    o.ID,
				Tokens:     markPair(lemmas, q, o),
				Label:      o.RelTarget != "" && o.RelTarget == q.ID,
			})
		}
	}
	return candidates
}

// markPair copies the lemma sequence and wraps the two spans in their
// start/end markers. Insertion runs right to left so the earlier span's
// offsets stay valid, adjacent spans included; entity spans never overlap
// under BIO tagging.
func markPair(lemmas []string, a, b corpus.Span) []string {
	first, second := a, b
	if first.Start > second.Start {
		first, second = second, first
	}
	tokens := make([]string, 0, len(lemmas)+4)
	tokens = append(tokens, lemmas...)
	tokens = insert(tokens, second.End, vocab.EndMarker(second.Type))
	tokens = insert(tokens, second.Start, vocab.StartMarker(second.Type))
	tokens = insert(tokens, first.End, vocab.EndMarker(first.Type))
	tokens = insert(tokens, first.Start, vocab.StartMarker(first.Type))
	return tokens
}

func insert(tokens []string, at int, tok string) []string {
	tokens = append(tokens, "")
	copy(tokens[at+1:], tokens[at:])
	tokens[at] = tok
	return tokens
}
