package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/gusto/pkg/logging"
	"github.com/mchmarny/gusto/pkg/serializer"
)

const (
	name           = "gusto"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}

	datasetFlag = &cli.StringFlag{
		Name:    "dataset",
		Aliases: []string{"f"},
		Sources: cli.EnvVars("GUSTO_DATASET"),
		Usage:   "dataset file path (default: embedded sample dataset)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "restaurant recommendations from a flat-file dataset",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `gusto answers a single question: given a price tier and a set of desired
cuisines, which restaurants in the dataset match, sorted by rating?

The dataset is a plain text file of four-line records (name, rating, price
symbol, cuisine list) separated by blank lines. When no dataset is provided,
an embedded sample is used.`,
		Commands: []*cli.Command{
			recommendCmd(),
			cuisinesCmd(),
			tiersCmd(),
		},
	}
}

// Execute runs the root command. It is called by main.main() and only
// returns after the selected command completes.
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// closeSerializer closes the writer and logs instead of failing the command,
// output has already been produced at that point.
func closeSerializer(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}
