package corpus

import "strings"

// ExtractSpans reconstructs entity spans from the sentence's BIO tags.
// A span is a maximal contiguous run of tokens carrying the same non-empty
// entity id; its type comes from the BIO tag suffix (B-Quantity, I-Quantity).
// Spans are returned in first-appearance order.
func ExtractSpans(s *Sentence) []Span {
	spans := make([]Span, 0, 4)
	var cur *Span
	for i, tok := range s.Tokens {
		typ := bioType(tok.BIO)
		if typ == "" || tok.EntityID == "" {
			cur = nil
			continue
		}
		if cur != nil && cur.ID == tok.EntityID && cur.End == i {
			cur.End = i + 1
			continue
		}
		spans = append(spans, Span{
			Type:      typ,
			ID:        tok.EntityID,
			RelTarget: tok.RelTargetID,
			Start:     i,
			End:       i + 1,
		})
		cur = &spans[len(spans)-1]
	}
	return spans
}

// bioType strips the B-/I- prefix, returning "" for O or malformed tags.
func bioType(tag string) string {
	if tag == "" || tag == "O" {
		return ""
	}
	if strings.HasPrefix(tag, "B-") || strings.HasPrefix(tag, "I-") {
		return tag[2:]
	}
	return ""
}
