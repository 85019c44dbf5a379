package main

import (
	"context"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/quantlink/quantlink/relex"
	"github.com/quantlink/quantlink/relex/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: load, vocab, candidates, encode, train, predict, evaluate",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []relex.Option{
			relex.WithSplitPaths(
				viper.GetString("train"),
				viper.GetString("dev"),
				viper.GetString("test")),
			relex.WithMaxLen(viper.GetInt("maxlen")),
			relex.WithEpochs(viper.GetInt("epochs")),
			relex.WithBatchSize(viper.GetInt("batch-size")),
			relex.WithEmbeddingDim(viper.GetInt("embedding-dim")),
			relex.WithFilters(viper.GetInt("filters")),
			relex.WithKernelSize(viper.GetInt("kernel-size")),
			relex.WithHiddenDim(viper.GetInt("hidden-dim")),
			relex.WithSeed(viper.GetInt64("seed")),
			relex.WithSampleFraction(viper.GetFloat64("sample")),
			relex.WithConcurrency(viper.GetInt("concurrency")),
			relex.WithCacheDir(viper.GetString("cache-dir")),
			relex.WithReportPath(viper.GetString("report")),
		}

		if path := viper.GetString("db"); path != "" {
			gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
			if err != nil {
				return err
			}
			opts = append(opts, relex.WithDB(gdb))
		}

		workflow, err := pipeline.NewWorkflow(pipeline.DefaultNodes(), opts...)
		if err != nil {
			return err
		}
		return workflow.Run(context.Background(), relex.NewPipelineContext())
	},
}

func init() {
	flags := runCmd.Flags()
	flags.String("train", "", "training split TSV")
	flags.String("dev", "", "dev split TSV")
	flags.String("test", "", "test split TSV")
	flags.Int("maxlen", pipeline.DefaultMaxLen, "encoded sequence length")
	flags.Int("epochs", pipeline.DefaultEpochs, "training epochs")
	flags.Int("batch-size", pipeline.DefaultBatchSize, "minibatch size")
	flags.Int("embedding-dim", pipeline.DefaultEmbeddingDim, "embedding width")
	flags.Int("filters", pipeline.DefaultFilters, "convolution filter count")
	flags.Int("kernel-size", pipeline.DefaultKernelSize, "convolution window width")
	flags.Int("hidden-dim", pipeline.DefaultHiddenDim, "hidden layer width")
	flags.Int64("seed", 42, "reproducibility seed")
	flags.Float64("sample", 1.0, "fraction of whole sentences to keep per split")
	flags.Int("concurrency", pipeline.DefaultConcurrency, "inference worker count")
	flags.String("db", "", "SQLite database for runs, candidates and metrics")
	flags.String("cache-dir", "", "directory for stage checkpoints")
	flags.String("report", "", "XLSX report path for the scored test split")

	_ = viper.BindPFlags(flags)
}
