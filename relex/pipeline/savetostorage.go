package pipeline

import (
	"context"

	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/relex/storage/db"
)

// SaveToStorage persists the finished run, its candidate tables and
// metrics to the configured database. A no-op without one.
func SaveToStorage(ctx context.Context, plCtx *relex.PipelineContext) error {
	if plCtx.Config.DB == nil {
		return nil
	}

	storage := db.NewStorage(db.WithDB(plCtx.Config.DB))
	if err := storage.Migrate(); err != nil {
		return err
	}

	return storage.Save(ctx, plCtx, plCtx.StageProgress)
}
