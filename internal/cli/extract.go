package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"funcscan/internal/config"
	"funcscan/internal/logging"
	"funcscan/internal/runner"
)

var (
	outputFlag    string
	workersFlag   int
	languagesFlag []string
	watchFlag     bool
	quietFlag     bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract function records from a source tree",
	Long: `Extract scans a directory for supported source files and emits one JSON
record per function, method, or constructor found.

Records are written as JSON Lines to stdout or, with --output, to a file.
Files with syntax errors or undecodable content are skipped with a warning.

Examples:
  # Extract the current directory to stdout
  funcscan extract

  # Extract a project into a file, eight files in flight
  funcscan extract --output records.jsonl --workers 8 /path/to/project

  # Only Python and Rust
  funcscan extract --languages python,rust

  # Keep watching for changes after the initial pass
  funcscan extract --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write records to this file instead of stdout")
	extractCmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "number of parallel workers (default: number of CPUs)")
	extractCmd.Flags().StringSliceVarP(&languagesFlag, "languages", "l", nil, "restrict to these languages (python,rust,go,java,c,cpp)")
	extractCmd.Flags().BoolVar(&watchFlag, "watch", false, "keep running and re-extract files on change")
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Stopping extraction...")
		cancel()
	}()

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.LoadConfigFromDir(root)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.Setup(level, cfg.Logging.File)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	} else {
		// Records on stdout leave no room for a progress bar.
		quietFlag = true
	}

	r := runner.New(root, runner.Options{
		Workers:        cfg.Processing.ParallelWorkers,
		Languages:      cfg.Processing.Languages,
		IgnoreFile:     cfg.Input.IgnoreFile,
		IgnorePatterns: cfg.Input.Ignore,
		Quiet:          quietFlag,
	}, logger)

	report, err := r.Run(ctx, out)
	if err != nil {
		return err
	}

	if !quietFlag {
		fmt.Fprintf(os.Stderr, "Extracted %d records from %d files (%d failed) in %dms\n",
			report.Records, report.Files, report.FilesFailed, report.DurationMS)
	}

	if watchFlag {
		if err := r.Watch(ctx, out); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// applyFlags lets command-line flags override the loaded configuration.
func applyFlags(cfg *config.Config) {
	if outputFlag != "" {
		cfg.Output.Path = outputFlag
	}
	if workersFlag > 0 {
		cfg.Processing.ParallelWorkers = workersFlag
	}
	if len(languagesFlag) > 0 {
		cfg.Processing.Languages = languagesFlag
	}
}
