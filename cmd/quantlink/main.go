package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "quantlink",
	Short: "Quantity relation extraction over pre-tokenized scientific text",
	Long: `quantlink links Quantity entity spans to MeasuredProperty,
MeasuredEntity and Qualifier spans within single sentences, trains a small
1-D convolutional classifier over marked lemma sequences, and reports
positive-class F1 on the held-out test split.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.AddCommand(runCmd)

	cobra.OnInitialize(func() {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			return
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to read config %s: %v\n", path, err)
			os.Exit(1)
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
