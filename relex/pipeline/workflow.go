package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/quantlink/quantlink/relex"
)

var (
	DefaultMaxLen       = 120
	DefaultEpochs       = 8
	DefaultBatchSize    = 32
	DefaultEmbeddingDim = 100
	DefaultFilters      = 128
	DefaultKernelSize   = 5
	DefaultHiddenDim    = 64
	DefaultConcurrency  = 4
)

type Workflow struct {
	nodes  []relex.Progress
	config *relex.Config
}

// NewWorkflow builds a pipeline run from an ordered stage list. A storage
// progress can be appended at the end to persist results to the database.
func NewWorkflow(nodes []relex.Progress, opts ...relex.Option) (*Workflow, error) {
	w := &Workflow{
		nodes:  nodes,
		config: &relex.Config{},
	}
	for _, opt := range opts {
		opt(w.config)
	}
	if w.config.TrainPath == "" || w.config.DevPath == "" || w.config.TestPath == "" {
		return nil, errors.New("train, dev and test paths are required")
	}
	if w.config.MaxLen <= 0 {
		w.config.MaxLen = DefaultMaxLen
	}
	if w.config.Epochs <= 0 {
		w.config.Epochs = DefaultEpochs
	}
	if w.config.BatchSize <= 0 {
		w.config.BatchSize = DefaultBatchSize
	}
	if w.config.EmbeddingDim <= 0 {
		w.config.EmbeddingDim = DefaultEmbeddingDim
	}
	if w.config.Filters <= 0 {
		w.config.Filters = DefaultFilters
	}
	if w.config.KernelSize <= 0 {
		w.config.KernelSize = DefaultKernelSize
	}
	if w.config.HiddenDim <= 0 {
		w.config.HiddenDim = DefaultHiddenDim
	}
	if w.config.Concurrency <= 0 {
		w.config.Concurrency = DefaultConcurrency
	}
	return w, nil
}

func DefaultNodes() []relex.Progress {
	return []relex.Progress{
		LoadCorpus,
		BuildVocabulary,
		GenerateCandidates,
		EncodeSplits,
		TrainClassifier,
		PredictTest,
		Evaluate,
		ExportReport,
		SaveToStorage,
	}
}

func (w *Workflow) Run(ctx context.Context, plCtx *relex.PipelineContext) error {
	plCtx.Config = w.config
	if plCtx.Id == "" {
		plCtx.Id = uuid.NewString()
	}

	err := Load(ctx, plCtx)
	if err != nil {
		return err
	}

	for i, process := range w.nodes {
		if i < plCtx.StageProgress {
			continue
		}

		err = process(ctx, plCtx)
		if err != nil {
			return err
		}

		err = Save(ctx, plCtx, i+1)
		if err != nil {
			return err
		}
	}
	return nil
}
