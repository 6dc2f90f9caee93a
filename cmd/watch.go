package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/pulsar/internal/config"
	"github.com/papapumpkin/pulsar/internal/corpus"
	"github.com/papapumpkin/pulsar/internal/rank"
)

var watchCmd = &cobra.Command{
	Use:   "watch <corpus-dir>",
	Short: "Re-rank an HTML corpus whenever a page file changes",
	Long: "Watch monitors a corpus directory and, on every page change, re-crawls the\n" +
		"whole corpus and prints a fresh iterative PageRank distribution. Each pass\n" +
		"is a full recomputation, not an incremental update.",
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := args[0]
	if err := rerank(cmd, dir, cfg); err != nil {
		return err
	}

	w, err := corpus.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("starting corpus watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", dir)
	for {
		select {
		case change := <-w.Changes:
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "change: %s\n", change.File)
			}
			if err := rerank(cmd, dir, cfg); err != nil {
				// A half-saved corpus shouldn't kill the watch loop.
				fmt.Fprintf(os.Stderr, "re-rank failed: %v\n", err)
			}
		case <-sigCh:
			return nil
		}
	}
}

// rerank crawls the corpus directory from scratch and prints the iterative
// estimator's distribution.
func rerank(cmd *cobra.Command, dir string, cfg config.Config) error {
	g, err := corpus.Crawl(dir)
	if err != nil {
		return err
	}
	if g.Len() == 0 {
		return fmt.Errorf("corpus %s contains no pages", dir)
	}

	ranks, err := rank.IterateWith(g, rank.IterateOptions{
		Damping:       cfg.Damping,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "PageRank Results from Iteration")
	printRanks(cmd.OutOrStdout(), ranks, cfg.Precision)
	return nil
}
