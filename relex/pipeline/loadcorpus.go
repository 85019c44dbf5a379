package pipeline

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/quantlink/quantlink/corpus"
	"github.com/quantlink/quantlink/relex"
)

func LoadCorpus(_ context.Context, args *relex.PipelineContext) error {
	cfg := args.Config
	paths := map[corpus.Split]string{
		corpus.SplitTrain: cfg.TrainPath,
		corpus.SplitDev:   cfg.DevPath,
		corpus.SplitTest:  cfg.TestPath,
	}
	for _, split := range corpus.Splits {
		sentences, err := corpus.Load(paths[split])
		if err != nil {
			return errors.Wrapf(err, "failed to load %s split", split)
		}
		if cfg.SampleFraction > 0 && cfg.SampleFraction < 1 {
			sentences = corpus.Sample(sentences, cfg.SampleFraction, cfg.Seed)
		}
		tokens := 0
		for _, sent := range sentences {
			tokens += len(sent.Tokens)
		}
		log.Printf("%s: %d sentences, %d tokens", split, len(sentences), tokens)
		args.Sentences[split] = sentences
	}
	return nil
}
