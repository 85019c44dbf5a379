package corpus

// Entity types used by the MeasEval-style annotation. Quantity is the
// source side of every relation candidate, the other three are targets.
const (
	TypeQuantity         = "Quantity"
	TypeMeasuredProperty = "MeasuredProperty"
	TypeMeasuredEntity   = "MeasuredEntity"
	TypeQualifier        = "Qualifier"
)

// EntityTypes lists all annotated types in marker order.
var EntityTypes = []string{
	TypeQuantity, TypeMeasuredProperty, TypeMeasuredEntity, TypeQualifier,
}

// TokenRecord is one row of the tab-separated corpus: one token of one
// sentence, carrying its BIO entity tag and, when the token belongs to an
// entity that is the target of a HasQuantity relation, the id of the
// Quantity span it points to.
type TokenRecord struct {
	DocID       string
	SentID      int
	Word        string
	Lemma       string
	BIO         string
	EntityID    string
	RelTargetID string
}

// Sentence is the ordered run of tokens sharing one (DocID, SentID).
type Sentence struct {
	DocID  string
	SentID int
	Tokens []TokenRecord
}

// Lemmas returns the sentence's lemma sequence.
func (s *Sentence) Lemmas() []string {
	lemmas := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		lemmas[i] = tok.Lemma
	}
	return lemmas
}

// Span is a maximal contiguous run of tokens sharing one entity id.
// Start and End are token offsets within the sentence, End exclusive.
type Span struct {
	Type string
	ID   string
	// RelTarget is the id of the Quantity span this entity is related to,
	// empty when the dataset records no relation for it.
	RelTarget string
	Start     int
	End       int
}

// Split names one of the three dataset partitions.
type Split string

const (
	SplitTrain Split = "train"
	SplitDev   Split = "dev"
	SplitTest  Split = "test"
)

// Splits lists the partitions in pipeline order.
var Splits = []Split{SplitTrain, SplitDev, SplitTest}
