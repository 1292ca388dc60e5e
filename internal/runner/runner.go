// Package runner drives extraction across a file set: it scans the source
// tree, fans files out to a pool of workers (one engine per worker, since
// parser state is not safe for concurrent use), and streams the resulting
// records as JSON Lines.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"funcscan/internal/extractor"
	"funcscan/internal/scanner"
)

// Options controls a runner invocation.
type Options struct {
	Workers        int      // 0 means GOMAXPROCS
	Languages      []string // empty means all supported
	IgnoreFile     string   // exclusion pattern file name in the root
	IgnorePatterns []string // extra exclusion patterns
	Quiet          bool     // disable the progress bar
}

// Report summarizes one extraction run.
type Report struct {
	RunID       string `json:"run_id"`
	Root        string `json:"root"`
	Files       int    `json:"files"`
	FilesFailed int    `json:"files_failed"`
	Records     int    `json:"records"`
	DurationMS  int64  `json:"duration_ms"`
}

// Runner scans a root directory and extracts function records from every
// candidate file.
type Runner struct {
	root   string
	opts   Options
	logger *slog.Logger
}

// New creates a Runner for the given root directory.
func New(root string, opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{root: root, opts: opts, logger: logger}
}

// fileResult carries one file's outcome from a worker.
type fileResult struct {
	path    string
	records []extractor.FunctionRecord
	err     error
}

// Run scans the tree and extracts all files, writing one JSON object per
// record to out. Records of a single file stay in source order; file order
// follows completion. Files that fail to extract are counted and logged,
// never fatal to the run.
func (r *Runner) Run(ctx context.Context, out io.Writer) (*Report, error) {
	start := time.Now()

	sc, err := scanner.New(r.root,
		scanner.WithLanguages(r.opts.Languages),
		scanner.WithIgnorePatterns(r.opts.IgnorePatterns),
		scanner.WithIgnoreFile(r.opts.IgnoreFile),
	)
	if err != nil {
		return nil, fmt.Errorf("configure scanner: %w", err)
	}

	files, err := sc.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.root, err)
	}

	report := &Report{
		RunID: uuid.NewString(),
		Root:  r.root,
		Files: len(files),
	}

	workers := r.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	paths := make(chan string)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns its engine so tree-sitter parser state is
			// never shared between goroutines.
			engine := extractor.NewEngine(r.logger)
			for path := range paths {
				records, err := engine.ExtractFile(path)
				select {
				case results <- fileResult{path: path, records: records, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(paths)
		for _, path := range files {
			select {
			case paths <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var bar *progressbar.ProgressBar
	if !r.opts.Quiet {
		bar = progressbar.Default(int64(len(files)), "extracting")
	}

	encoder := json.NewEncoder(out)
	for result := range results {
		if bar != nil {
			bar.Add(1)
		}
		if result.err != nil {
			report.FilesFailed++
			r.logger.Warn("extraction failed", "path", result.path, "error", result.err)
			continue
		}
		for _, rec := range result.records {
			if err := encoder.Encode(rec); err != nil {
				return nil, fmt.Errorf("write record: %w", err)
			}
			report.Records++
		}
	}
	if bar != nil {
		bar.Finish()
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	report.DurationMS = time.Since(start).Milliseconds()
	r.logger.Info("extraction run complete",
		"run_id", report.RunID,
		"files", report.Files,
		"failed", report.FilesFailed,
		"records", report.Records,
		"duration_ms", report.DurationMS)

	return report, nil
}
