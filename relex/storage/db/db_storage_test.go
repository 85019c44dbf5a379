package db

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/vocab"
)

func testContext() *relex.PipelineContext {
	plCtx := relex.NewPipelineContext()
	plCtx.Id = "run-1"
	plCtx.Vocabulary = vocab.New([]string{vocab.Pad, vocab.Unknown, "the", "500"})
	pred := true
	plCtx.Candidates[corpus.SplitTest] = []*relex.Candidate{
		{
			DocID:      "d1",
			SentID:     0,
			QuantityID: "T1-1",
			OtherID:    "T3-1",
			Tokens:     []string{"<Quantity>", "500", "</Quantity>", "the"},
			Label:      true,
			Prediction: &pred,
		},
		{
			DocID:      "d1",
			SentID:     0,
			QuantityID: "T1-1",
			OtherID:    "T4-1",
			Tokens:     []string{"the", "500"},
			Label:      false,
		},
	}
	plCtx.Metrics = &relex.Metrics{Accuracy: 0.5, Precision: 1, Recall: 0.5, F1: 2.0 / 3.0}
	return plCtx
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()
	storage := NewStorage(WithCacheDir(t.TempDir()))
	plCtx := testContext()

	assert.NoError(t, storage.Save(context.Background(), plCtx, 3))
	assert.Equal(t, 3, plCtx.StageProgress)

	restored := relex.NewPipelineContext()
	restored.Id = "run-1"
	assert.NoError(t, storage.Load(context.Background(), restored))

	assert.Equal(t, 3, restored.StageProgress)
	assert.Equal(t, plCtx.Metrics, restored.Metrics)
	assert.Len(t, restored.Candidates[corpus.SplitTest], 2)
	assert.Equal(t, plCtx.Candidates[corpus.SplitTest][0].Tokens,
		restored.Candidates[corpus.SplitTest][0].Tokens)
	idx, ok := restored.Vocabulary.Index("500")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestLoadMissingCheckpointRestarts(t *testing.T) {
	t.Parallel()
	storage := NewStorage(WithCacheDir(t.TempDir()))
	plCtx := relex.NewPipelineContext()
	plCtx.Id = "never-saved"
	plCtx.StageProgress = 5

	assert.NoError(t, storage.Load(context.Background(), plCtx))
	assert.Equal(t, 0, plCtx.StageProgress)
}

func TestSaveToDatabase(t *testing.T) {
	t.Parallel()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	storage := NewStorage(WithDB(gdb))
	assert.NoError(t, storage.Migrate())

	plCtx := testContext()
	assert.NoError(t, storage.Save(context.Background(), plCtx, 9))

	var run Run
	assert.NoError(t, gdb.Where("id = ?", "run-1").First(&run).Error)
	assert.Equal(t, 9, run.StageProgress)
	assert.InDelta(t, 2.0/3.0, run.F1, 1e-9)

	var count int64
	assert.NoError(t, gdb.Model(&Candidate{}).
		Where("run_id = ?", "run-1").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var scored Candidate
	assert.NoError(t, gdb.Where(
		"run_id = ? AND other_id = ?", "run-1", "T3-1").First(&scored).Error)
	assert.NotNil(t, scored.Prediction)
	assert.True(t, *scored.Prediction)

	// saving again replaces rather than duplicates
	assert.NoError(t, storage.Save(context.Background(), plCtx, 9))
	assert.NoError(t, gdb.Model(&Candidate{}).
		Where("run_id = ?", "run-1").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
