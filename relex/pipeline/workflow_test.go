package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
)

func sentenceTSV(sent *corpus.Sentence) string {
	var b strings.Builder
	for _, tok := range sent.Tokens {
		fmt.Fprintf(&b, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			sent.DocID, sent.SentID, tok.Word, tok.Lemma, tok.BIO,
			tok.EntityID, tok.RelTargetID)
	}
	return b.String()
}

func writeSplit(t *testing.T, dir, name string, sentences ...*corpus.Sentence) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("docId\tsentId\tword\tlemma\tbio\tentityId\trelTargetId\n")
	for _, sent := range sentences {
		b.WriteString(sentenceTSV(sent))
	}
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func plainSentence(docID string, sentID int, lemmas ...string) *corpus.Sentence {
	sent := &corpus.Sentence{DocID: docID, SentID: sentID}
	for _, lemma := range lemmas {
		sent.Tokens = append(sent.Tokens, tok(lemma, "O", "", ""))
	}
	return sent
}

func TestWorkflowEndToEnd(t *testing.T) {
	dir := t.TempDir()
	sent := annealingSentence()
	extra := plainSentence("d2", 0, "the", "sample", "be", "clean", ".")

	workflow, err := NewWorkflow(DefaultNodes(),
		relex.WithSplitPaths(
			writeSplit(t, dir, "train.tsv", sent, extra),
			writeSplit(t, dir, "dev.tsv", sent),
			writeSplit(t, dir, "test.tsv", sent)),
		relex.WithMaxLen(24),
		relex.WithEpochs(2),
		relex.WithBatchSize(4),
		relex.WithEmbeddingDim(8),
		relex.WithFilters(4),
		relex.WithKernelSize(3),
		relex.WithHiddenDim(4),
		relex.WithSeed(42),
		relex.WithConcurrency(2),
	)
	assert.NoError(t, err)

	plCtx := relex.NewPipelineContext()
	assert.NoError(t, workflow.Run(context.Background(), plCtx))

	// candidates: 6 per annealing sentence, none for the span-free one
	assert.Len(t, plCtx.Candidates[corpus.SplitTrain], 6)
	assert.Len(t, plCtx.Candidates[corpus.SplitTest], 6)

	// encoded shapes: (count, maxlen) and (count,)
	for _, split := range corpus.Splits {
		encoded := plCtx.Encoded[split]
		assert.Len(t, encoded.Y, len(encoded.X))
		for _, row := range encoded.X {
			assert.Len(t, row, 24)
		}
	}

	// every test candidate got a prediction, and metrics were computed
	for _, cand := range plCtx.Candidates[corpus.SplitTest] {
		assert.NotNil(t, cand.Prediction)
	}
	assert.NotNil(t, plCtx.Metrics)
	assert.NotNil(t, plCtx.Model)
}

func TestWorkflowResumeFromCheckpoint(t *testing.T) {
	dir := t.TempDir()
	cacheDir := t.TempDir()
	sent := annealingSentence()

	opts := []relex.Option{
		relex.WithSplitPaths(
			writeSplit(t, dir, "train.tsv", sent),
			writeSplit(t, dir, "dev.tsv", sent),
			writeSplit(t, dir, "test.tsv", sent)),
		relex.WithMaxLen(24),
		relex.WithEpochs(1),
		relex.WithBatchSize(4),
		relex.WithEmbeddingDim(8),
		relex.WithFilters(4),
		relex.WithKernelSize(3),
		relex.WithHiddenDim(4),
		relex.WithCacheDir(cacheDir),
	}

	workflow, err := NewWorkflow(DefaultNodes(), opts...)
	assert.NoError(t, err)
	plCtx := relex.NewPipelineContext()
	plCtx.Id = "resume-test"
	assert.NoError(t, workflow.Run(context.Background(), plCtx))
	assert.Equal(t, len(DefaultNodes()), plCtx.StageProgress)
	f1 := plCtx.Metrics.F1

	// a second run with the same id restores the finished checkpoint and
	// skips every stage
	workflow2, err := NewWorkflow(DefaultNodes(), opts...)
	assert.NoError(t, err)
	resumed := relex.NewPipelineContext()
	resumed.Id = "resume-test"
	assert.NoError(t, workflow2.Run(context.Background(), resumed))
	assert.NotNil(t, resumed.Metrics)
	assert.Equal(t, f1, resumed.Metrics.F1)
}

func TestNewWorkflowValidation(t *testing.T) {
	t.Parallel()
	_, err := NewWorkflow(DefaultNodes())
	assert.Error(t, err)

	workflow, err := NewWorkflow(DefaultNodes(),
		relex.WithSplitPaths("a", "b", "c"))
	assert.NoError(t, err)
	assert.NotNil(t, workflow)
}

// Full-corpus invariants: vocabulary and candidate-table sizes on the
// unshrunk MeasEval splits. Runs only when the dataset directory is
// supplied.
func TestFullDatasetInvariants(t *testing.T) {
	dir := os.Getenv("QUANTLINK_DATASET")
	if dir == "" {
		t.Skip("QUANTLINK_DATASET not set")
	}

	plCtx := relex.NewPipelineContext()
	plCtx.Config = &relex.Config{
		TrainPath: filepath.Join(dir, "train.tsv"),
		DevPath:   filepath.Join(dir, "dev.tsv"),
		TestPath:  filepath.Join(dir, "test.tsv"),
		MaxLen:    DefaultMaxLen,
	}
	assert.NoError(t, LoadCorpus(context.Background(), plCtx))
	assert.NoError(t, BuildVocabulary(context.Background(), plCtx))
	assert.NoError(t, GenerateCandidates(context.Background(), plCtx))

	assert.Equal(t, 5517, plCtx.Vocabulary.Size())
	assert.Len(t, plCtx.Candidates[corpus.SplitTrain], 2773)
	assert.Len(t, plCtx.Candidates[corpus.SplitDev], 797)
	assert.Len(t, plCtx.Candidates[corpus.SplitTest], 1445)
}
