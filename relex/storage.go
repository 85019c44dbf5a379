package relex

import (
	"context"
)

type Storage interface {
	// Load loads the pipeline context from the storage
	Load(ctx context.Context, plCtx *PipelineContext) error
	// Save saves the pipeline context to the storage
	Save(ctx context.Context, plCtx *PipelineContext, stageProgress int) error
}
