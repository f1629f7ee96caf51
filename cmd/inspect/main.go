package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scidata-tools/inspect"
	_ "github.com/scidata-tools/inspect/checks"
	"github.com/scidata-tools/inspect/config"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
	"github.com/scidata-tools/inspect/report"
	"github.com/scidata-tools/inspect/yamlgraph"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect PATH",
		Short: "Validate scientific data files against best-practice checks",
		Long: `inspect runs the registered best-practice checks against one data file,
or every data file in a directory, and reports findings ranked by
importance. The exit code is non-zero when any finding at or above the
best-practice-violation level is present.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runInspect,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("threshold", "t", message.ImportanceBestPracticeSuggestion.String(),
		"Keep only findings at or above this importance level")
	cmd.Flags().StringSliceP("select", "s", nil, "Run only the named checks")
	cmd.Flags().StringSliceP("ignore", "i", nil, "Skip the named checks")
	cmd.Flags().StringP("config", "c", "", "YAML file re-ranking or skipping named checks")
	cmd.Flags().StringP("json", "j", "", "Write JSON output to this path")
	cmd.Flags().StringP("report", "r", "", "Write the text report to this path")
	cmd.Flags().BoolP("overwrite", "o", false, "Overwrite an existing report file")
	cmd.Flags().IntP("workers", "w", 1, "Validate up to this many files concurrently")
	cmd.Flags().Bool("list-checks", false, "List registered checks and exit")
	cmd.Flags().BoolP("verbose", "v", false, "Log progress to stderr")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	reg := registry.Default
	if listChecks, _ := cmd.Flags().GetBool("list-checks"); listChecks {
		for _, r := range reg.Rules() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %-26s %s\n", r.Name, r.Importance, r.Summary)
		}
		return nil
	}

	thresholdName, _ := cmd.Flags().GetString("threshold")
	threshold, err := message.ParseImportance(thresholdName)
	if err != nil {
		return err
	}
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if reg, err = cfg.Apply(reg); err != nil {
			return err
		}
	}

	selected, _ := cmd.Flags().GetStringSlice("select")
	ignored, _ := cmd.Flags().GetStringSlice("ignore")
	workers, _ := cmd.Flags().GetInt("workers")
	opts := []inspect.Option{
		inspect.WithThreshold(threshold),
		inspect.WithSelect(selected...),
		inspect.WithIgnore(ignored...),
		inspect.WithWorkers(workers),
		inspect.WithExtensions(".yaml", ".yml"),
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, inspect.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))))
	}

	results, err := inspect.InspectAll(context.Background(), args[0], yamlgraph.New(), reg, opts...)
	if err != nil {
		return err
	}

	if jsonPath, _ := cmd.Flags().GetString("json"); jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		if err := report.WriteJSON(f, results...); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if err := report.Render(cmd.OutOrStdout(), results...); err != nil {
		return err
	}
	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		if err := report.Save(reportPath, overwrite, results...); err != nil {
			return err
		}
	}

	if code := report.ExitCode(results...); code != 0 {
		os.Exit(code)
	}
	return nil
}
