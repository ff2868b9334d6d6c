package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tessellated-io/workshop/config"
	"github.com/tessellated-io/workshop/log"
	"github.com/tessellated-io/workshop/runner"
	"gopkg.in/yaml.v2"
)

const datasetHeader = "map / filter / reduce workshop dataset"

func newRootCmd() *cobra.Command {
	var rawLogLevel string

	cmd := &cobra.Command{
		Use:          "workshop",
		Short:        "Run the map / filter / reduce exercises",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_, err := log.ParseLogLevelStrict(rawLogLevel)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&rawLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	newLogger := func(c *cobra.Command) *log.Logger {
		return log.NewLoggerWithWriter(rawLogLevel, c.ErrOrStderr(), []string{"[workshop]"})
	}
	cmd.AddCommand(newRunCmd(newLogger), newInitCmd(newLogger))

	return cmd
}

func newRunCmd(newLogger func(*cobra.Command) *log.Logger) *cobra.Command {
	var datasetPath string
	var only string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every exercise against a dataset and print the results",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			logger := newLogger(c)

			dataset := config.DefaultDataset()
			if datasetPath != "" {
				loaded, err := config.LoadDataset(datasetPath)
				if err != nil {
					return err
				}
				dataset = loaded
				logger.Debug("loaded dataset", "path", datasetPath)
			}

			r := runner.NewRunner(logger)

			var results []runner.Result
			if only != "" {
				result, err := r.RunOne(only, dataset)
				if err != nil {
					return err
				}
				results = []runner.Result{result}
			} else {
				results = r.Run(dataset)
			}

			return printResults(c.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "path to a YAML dataset (defaults to the built-in sample data)")
	cmd.Flags().StringVar(&only, "only", "", "run a single exercise by name")
	return cmd
}

func newInitCmd(newLogger func(*cobra.Command) *log.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the sample dataset to a file, without overwriting",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return config.WriteDatasetWithComments(config.DefaultDataset(), datasetHeader, out, newLogger(c))
		},
	}

	cmd.Flags().StringVar(&out, "out", "dataset.yaml", "where to write the dataset")
	return cmd
}

func printResults(w io.Writer, results []runner.Result) error {
	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", result.Name, result.Err)
			continue
		}

		encoded, err := yaml.Marshal(map[string]any{result.Name: result.Output})
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", result.Name, err)
		}
		if _, err := w.Write(encoded); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d exercises failed", failed, len(results))
	}
	return nil
}
