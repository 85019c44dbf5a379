package pipeline

import (
	"context"

	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/relex/storage/db"
)

func Load(ctx context.Context, plCtx *relex.PipelineContext) error {
	if plCtx.Config.CacheDir == "" {
		return nil
	}

	storage := db.NewStorage(db.WithCacheDir(plCtx.Config.CacheDir))

	return storage.Load(ctx, plCtx)
}

func Save(ctx context.Context, plCtx *relex.PipelineContext, stageProgress int) error {
	if plCtx.Config.CacheDir == "" {
		plCtx.StageProgress = stageProgress
		return nil
	}

	storage := db.NewStorage(db.WithCacheDir(plCtx.Config.CacheDir))

	return storage.Save(ctx, plCtx, stageProgress)
}
