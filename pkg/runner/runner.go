package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/mdast"
	"github.com/yaklabco/mdtree/pkg/parser"
)

// Runner orchestrates multi-file parsing with a parser.Parser.
type Runner struct {
	// Parser handles per-file parsing. It is safe for concurrent use.
	Parser *parser.Parser
}

// New creates a new Runner with the given parser.
func New(p *parser.Parser) *Runner {
	return &Runner{Parser: p}
}

// Run discovers files under opts.Paths and parses them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Parses files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("discovered files", logging.FieldFiles, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		result.Stats.Duration = time.Since(start)
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	// Fail-fast cancels this run without tainting the caller's ctx.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(runCtx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-runCtx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to maintain order since workers may complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
		if opts.FailFast && outcome.Error != nil {
			cancel()
		}
	}

	// Build result in deterministic order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	result.Stats.Duration = time.Since(start)

	// Only the caller's cancellation is an error; a fail-fast stop is a
	// normal result with FilesFailed set.
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker parses files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		doc, err := r.parseFile(ctx, path)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Document = doc
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// parseFile reads and parses a single file. The returned error carries
// no path; FileOutcome.Path already identifies the file.
func (r *Runner) parseFile(ctx context.Context, path string) (*mdast.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := r.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}
	return doc, nil
}
