package cli

import "github.com/yaklabco/mdtree/pkg/runner"

// Exit codes for mdtree.
const (
	// ExitSuccess indicates successful execution with every file parsed.
	ExitSuccess = 0

	// ExitParseFailures indicates the run completed but some files could
	// not be read or parsed.
	ExitParseFailures = 1
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitParseFailures
	}
	return ExitSuccess
}
