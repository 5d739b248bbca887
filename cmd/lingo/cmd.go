package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lingokit/lingo/config"
	"github.com/lingokit/lingo/internal"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
)

var cmd = &cobra.Command{
	Use:   "lingo",
	Short: "lingo serves part-of-speech, entity, syntax, and translation analysis over HTTP",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze [sentence]",
	Short:   "Run the annotation pipeline on a sentence and print the result",
	Example: `lingo analyze "Apple is buying a startup in the U.K."`,
	Run: func(cmd *cobra.Command, args []string) {
		sentence := defaultSentence
		if len(args) > 0 {
			sentence = strings.Join(args, " ")
		}
		runAnalyze(sentence)
	},
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for lingo's configuration file",
	Example: "lingo json-schema > lingo_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(analyzeCmd)
	cmd.AddCommand(dumpJsonSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
