package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/affordable-sports-cars/catalog-indexer/internal/bootstrap"
	"github.com/affordable-sports-cars/catalog-indexer/internal/config"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
)

// commandContext carries the flags shared by every subcommand
type commandContext struct {
	configFile string
	envPath    string
	jsonOutput bool
}

func newRootCommand() *cobra.Command {
	cc := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "ingest",
		Short:         "Run and inspect catalog ingestion",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cc.configFile, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&cc.envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().BoolVar(&cc.jsonOutput, "json", false, "Print machine readable JSON")

	rootCmd.AddCommand(newStageCommand(cc, domain.StageCatalog, "Ingest makes, sporty models and trims of the hero makes"))
	rootCmd.AddCommand(newStageCommand(cc, domain.StageListings, "Fetch marketplace listings and link them to trims"))
	rootCmd.AddCommand(newRunsCommand(cc))

	return rootCmd
}

func newStageCommand(cc *commandContext, stage domain.Stage, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(stage),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(cmd.Context(), func(ctx context.Context, rt *bootstrap.Runtime) error {
				result, err := rt.Runner.Run(ctx, stage)
				if result != nil {
					if printErr := cc.print(cmd.OutOrStdout(), result, renderRunResult); printErr != nil {
						return printErr
					}
				}
				return err
			})
		},
	}
}

func newRunsCommand(cc *commandContext) *cobra.Command {
	var limit int
	var offset int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent ingestion runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.withRuntime(cmd.Context(), func(ctx context.Context, rt *bootstrap.Runtime) error {
				runs, total, err := rt.Store.ListIngestionRuns(ctx, limit, offset)
				if err != nil {
					return err
				}
				page := runsPage{Runs: runs, Total: total}
				return cc.print(cmd.OutOrStdout(), page, renderRuns)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of runs to skip")
	return cmd
}

// withRuntime loads configuration, wires the runtime and runs fn with a context canceled on SIGINT/SIGTERM
func (cc *commandContext) withRuntime(parent context.Context, fn func(ctx context.Context, rt *bootstrap.Runtime) error) error {
	if parent == nil {
		parent = context.Background()
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadIngestConfig(cc.configFile, cc.envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ingest-cli",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap.NewRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(ctx, rt)
}

// print writes v as JSON or through render
func (cc *commandContext) print(w io.Writer, v any, render func(any) string) error {
	if cc.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, render(v))
	return err
}
