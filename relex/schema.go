package relex

import (
	"context"

	"gorm.io/gorm"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/nn"
	"github.com/quantlink/quantlink/vocab"
)

// Config collects every knob of a pipeline run. All values are fixed before
// the run starts and treated as immutable by the stages; nothing reads
// ambient/global state.
type Config struct {
	TrainPath string
	DevPath   string
	TestPath  string

	// MaxLen is the fixed encoded sequence length. Marked sentences are
	// right-padded up to it and hard-truncated past it.
	MaxLen int

	Epochs       int
	BatchSize    int
	EmbeddingDim int
	Filters      int
	KernelSize   int
	HiddenDim    int
	Seed         int64

	// SampleFraction < 1 keeps a seeded-random fraction of whole sentences
	// per split, for faster iteration. 0 or 1 disables sampling.
	SampleFraction float64

	// Concurrency bounds the workers used for batched inference.
	Concurrency int

	// DB enables persisting candidates, predictions and metrics; nil
	// disables storage entirely.
	DB *gorm.DB

	// CacheDir enables gob checkpointing of the context between stages.
	CacheDir string

	// ReportPath, when set, receives an XLSX export of the test-split
	// candidate table with predictions.
	ReportPath string
}

// PipelineContext is the shared state threaded through every stage.
type PipelineContext struct {
	Id string
	// StageProgress counts completed stages, so an interrupted run resumes
	// from its checkpoint instead of starting over.
	StageProgress int

	Config *Config

	Sentences  map[corpus.Split][]*corpus.Sentence
	Vocabulary *vocab.Vocabulary
	Candidates map[corpus.Split][]*Candidate
	Encoded    map[corpus.Split]*EncodedSplit

	Model   *nn.Network
	Metrics *Metrics
}

// NewPipelineContext returns a context with all split maps initialized.
func NewPipelineContext() *PipelineContext {
	return &PipelineContext{
		Sentences:  make(map[corpus.Split][]*corpus.Sentence),
		Candidates: make(map[corpus.Split][]*Candidate),
		Encoded:    make(map[corpus.Split]*EncodedSplit),
	}
}

// Progress is one pipeline stage.
type Progress func(ctx context.Context, args *PipelineContext) error

// Candidate is one hypothesized HasQuantity link between a Quantity span
// and another entity span of the same sentence. Tokens is the sentence's
// lemma sequence with the pair's two spans wrapped in their type markers.
type Candidate struct {
	DocID      string
	SentID     int
	QuantityID string
	OtherID    string
	Tokens     []string
	Label      bool
	// Prediction is filled for the test split after inference.
	Prediction *bool
}

// EncodedSplit holds one split's model-ready arrays: X is count rows of
// exactly MaxLen vocabulary indices, Y the parallel 0/1 labels.
type EncodedSplit struct {
	X [][]int
	Y []int
}

// Metrics are the positive-class evaluation results of one run.
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}
