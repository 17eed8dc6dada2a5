package runner

import (
	"time"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// FileOutcome is the per-file parse result with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Document is the parsed document. Nil when the file could not be
	// read or parsed.
	Document *mdast.Document

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files successfully parsed.
	FilesParsed int

	// FilesFailed is the number of files that encountered errors.
	FilesFailed int

	// NodesTotal is the total node count across all parsed trees,
	// inline leaves included.
	NodesTotal int

	// LinesTotal is the total line count across all parsed files.
	LinesTotal int

	// BytesTotal is the total content size across all parsed files.
	BytesTotal int

	// Duration is the wall-clock time of the run, discovery included.
	Duration time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to parse.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}

	if outcome.Document == nil {
		return
	}

	r.Stats.FilesParsed++
	r.Stats.LinesTotal += len(outcome.Document.Lines)
	r.Stats.BytesTotal += len(outcome.Document.Content)

	if outcome.Document.Tree != nil {
		r.Stats.NodesTotal += outcome.Document.Tree.Len()
	}
}
