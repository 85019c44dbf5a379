package db

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/nn"
	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/vocab"
)

type Storage struct {
	db       *gorm.DB
	cacheDir string
}

func NewStorage(opts ...DBStorageOption) *Storage {
	s := &Storage{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// serializableContext mirrors PipelineContext without its Config, which
// carries the live DB handle and is re-supplied by the workflow.
type serializableContext struct {
	Id            string
	StageProgress int
	Sentences     map[corpus.Split][]*corpus.Sentence
	VocabTokens   []string
	Candidates    map[corpus.Split][]*relex.Candidate
	Encoded       map[corpus.Split]*relex.EncodedSplit
	Model         *nn.Network
	Metrics       *relex.Metrics
}

func serialize(plCtx *relex.PipelineContext, filePath string) error {
	sc := &serializableContext{
		Id:            plCtx.Id,
		StageProgress: plCtx.StageProgress,
		Sentences:     plCtx.Sentences,
		Candidates:    plCtx.Candidates,
		Encoded:       plCtx.Encoded,
		Model:         plCtx.Model,
		Metrics:       plCtx.Metrics,
	}
	if plCtx.Vocabulary != nil {
		sc.VocabTokens = plCtx.Vocabulary.Tokens
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}

	encoder := gob.NewEncoder(file)
	if err = encoder.Encode(sc); err != nil {
		_ = file.Close()
		_ = os.Remove(filePath)
		return err
	}

	_ = file.Close()
	return nil
}

func deserialize(filePath string, plCtx *relex.PipelineContext) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}

	var sc serializableContext
	decoder := gob.NewDecoder(file)
	if err = decoder.Decode(&sc); err != nil {
		_ = file.Close()
		_ = os.Remove(filePath)
		return err
	}
	_ = file.Close()

	plCtx.Id = sc.Id
	plCtx.StageProgress = sc.StageProgress
	plCtx.Sentences = sc.Sentences
	plCtx.Candidates = sc.Candidates
	plCtx.Encoded = sc.Encoded
	plCtx.Model = sc.Model
	plCtx.Metrics = sc.Metrics
	if len(sc.VocabTokens) > 0 {
		plCtx.Vocabulary = vocab.New(sc.VocabTokens)
	}
	return nil
}

func (s *Storage) cachePath(id string) string {
	return fmt.Sprintf("%s/relex_cache_%s", s.cacheDir, id)
}

// Load restores an interrupted run from its gob checkpoint. Candidate and
// metric rows in the database are results, not a full context, so a
// missing or unreadable checkpoint restarts the run from stage zero.
func (s *Storage) Load(_ context.Context, plCtx *relex.PipelineContext) error {
	if s.cacheDir == "" {
		return nil
	}
	if err := deserialize(s.cachePath(plCtx.Id), plCtx); err != nil {
		plCtx.StageProgress = 0
	}
	return nil
}

// Save checkpoints the context and, when a database is attached, replaces
// the run's stored rows with the current candidates and metrics.
func (s *Storage) Save(ctx context.Context, plCtx *relex.PipelineContext, stageProgress int) error {
	plCtx.StageProgress = stageProgress
	if s.cacheDir != "" {
		if err := serialize(plCtx, s.cachePath(plCtx.Id)); err != nil {
			return err
		}
	}
	if s.db == nil {
		return nil
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	run := Run{
		ID:            plCtx.Id,
		StageProgress: stageProgress,
	}
	if plCtx.Config != nil {
		run.Seed = plCtx.Config.Seed
		run.MaxLen = plCtx.Config.MaxLen
		run.Epochs = plCtx.Config.Epochs
		run.BatchSize = plCtx.Config.BatchSize
	}
	if plCtx.Metrics != nil {
		run.Accuracy = plCtx.Metrics.Accuracy
		run.Precision = plCtx.Metrics.Precision
		run.Recall = plCtx.Metrics.Recall
		run.F1 = plCtx.Metrics.F1
	}

	if err := tx.Where("id = ?", plCtx.Id).Delete(&Run{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(&run).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("run_id = ?", plCtx.Id).Delete(&Candidate{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	rows := make([]Candidate, 0, 1024)
	for _, split := range corpus.Splits {
		for _, cand := range plCtx.Candidates[split] {
			rows = append(rows, Candidate{
				RunID:      plCtx.Id,
				Split:      string(split),
				DocID:      cand.DocID,
				SentID:     cand.SentID,
				QuantityID: cand.QuantityID,
				OtherID:    cand.OtherID,
				Sentence:   strings.Join(cand.Tokens, " "),
				Label:      cand.Label,
				Prediction: cand.Prediction,
			})
		}
	}
	if len(rows) > 0 {
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// Migrate creates the run and candidate tables.
func (s *Storage) Migrate() error {
	if s.db == nil {
		return nil
	}
	return s.db.AutoMigrate(&Run{}, &Candidate{})
}
