package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtree/pkg/mdast"
	"github.com/yaklabco/mdtree/pkg/parser"
	"github.com/yaklabco/mdtree/pkg/reporter"
	"github.com/yaklabco/mdtree/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSummary, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			}

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No Markdown files found")
}

func TestTextReporter_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := createTestResult(t)

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "document")
	assert.Contains(t, output, "heading")
	assert.Contains(t, output, "level=1")
	assert.Contains(t, output, "paragraph")
	assert.Contains(t, output, "code-fence")
	assert.Contains(t, output, "└── ")
	assert.Contains(t, output, "parsed 1 file")

	// A single file gets no per-file header.
	assert.NotContains(t, output, "test.md")
}

func TestTextReporter_ShowLeaves(t *testing.T) {
	result := createTestResult(t)

	var withLeaves bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:     &withLeaves,
		Color:      "never",
		ShowLeaves: true,
	})
	require.NoError(t, rep.Report(context.Background(), result))
	assert.Contains(t, withLeaves.String(), "plaintext")

	var withoutLeaves bytes.Buffer
	rep = reporter.NewTextReporter(reporter.Options{
		Writer: &withoutLeaves,
		Color:  "never",
	})
	require.NoError(t, rep.Report(context.Background(), result))
	assert.NotContains(t, withoutLeaves.String(), "plaintext")
}

func TestTextReporter_MultipleFiles(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	docA := parseTestDocument(t, "a.md", "# Alpha\n")
	docB := parseTestDocument(t, "b.md", "# Beta\n")
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "a.md", Document: docA},
			{Path: "b.md", Document: docB},
		},
		Stats: runner.Stats{FilesDiscovered: 2, FilesParsed: 2},
	}

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "a.md")
	assert.Contains(t, output, "b.md")
	assert.Contains(t, output, "nodes)")
}

func TestTextReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "broken.md", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesFailed: 1},
	}

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "broken.md")
	assert.Contains(t, output, "error: permission denied")
	assert.Contains(t, output, "1 file failed")
}

func TestSummaryReporter_SingleFile(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := createTestResult(t)

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "test.md")
	assert.Contains(t, output, "nodes)")
	assert.Contains(t, output, "Summary")
	assert.Contains(t, output, "Files parsed:")
	assert.Contains(t, output, "Parse succeeded")

	// No trees in summary output.
	assert.NotContains(t, output, "└── ")
	assert.NotContains(t, output, "document")
}

func TestSummaryReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "broken.md", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesFailed: 1},
	}

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "broken.md")
	assert.Contains(t, output, "error: permission denied")
	assert.Contains(t, output, "Parse completed with failures")
}

func TestSummaryReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No Markdown files found")
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	err := rep.Report(context.Background(), nil)
	require.NoError(t, err)

	// Should still produce valid JSON
	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_Tree(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := createTestResult(t)

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 1)

	file := output.Files[0]
	assert.Equal(t, "test.md", file.Path)
	assert.Empty(t, file.Error)
	require.NotNil(t, file.Tree)

	root := file.Tree
	assert.Equal(t, "document", root.Kind)
	assert.Equal(t, 0, root.StartOffset)
	assert.Equal(t, file.Bytes, root.EndOffset)
	assert.Equal(t, 1, root.StartLine)
	require.Len(t, root.Children, 3)

	heading := root.Children[0]
	assert.Equal(t, "heading", heading.Kind)
	assert.Equal(t, 1, heading.Level)
	assert.Equal(t, 1, heading.StartLine)
	assert.Equal(t, 1, heading.StartColumn)
	require.NotEmpty(t, heading.Children)
	assert.Equal(t, "plaintext", heading.Children[0].Kind)
	assert.Equal(t, "Title", heading.Children[0].Text)

	assert.Equal(t, "paragraph", root.Children[1].Kind)

	fence := root.Children[2]
	assert.Equal(t, "code-fence", fence.Kind)
	require.NotNil(t, fence.Fence)
	assert.Equal(t, 3, fence.Fence.Length)
	assert.Equal(t, "go", fence.Fence.Info)
	assert.Equal(t, "go", fence.Fence.Language)

	assert.Equal(t, 1, output.Summary.FilesParsed)
	assert.Positive(t, output.Summary.Nodes)
}

func TestJSONReporter_DetectsFenceLanguage(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	// No info string on the fence; the body names the language.
	doc := parseTestDocument(t, "bare.md", "```\npackage main\n```\n")
	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "bare.md", Document: doc}},
		Stats: runner.Stats{FilesDiscovered: 1, FilesParsed: 1},
	}

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 1)
	require.Len(t, output.Files[0].Tree.Children, 1)

	fence := output.Files[0].Tree.Children[0]
	require.NotNil(t, fence.Fence)
	assert.Empty(t, fence.Fence.Info)
	assert.Equal(t, "go", fence.Fence.Language)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Compact: true,
	})

	result := createTestResult(t)

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	// Compact output should be a single line
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestJSONReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "broken.md", Error: errors.New("read file: boom")},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesFailed: 1},
	}

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 1)
	assert.Equal(t, "read file: boom", output.Files[0].Error)
	assert.Nil(t, output.Files[0].Tree)
	assert.Equal(t, 1, output.Summary.FilesFailed)
}

func TestJSONReporter_RelativizesPaths(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:     &buf,
		Color:      "never",
		WorkingDir: "/work",
	})

	doc := parseTestDocument(t, "/work/docs/a.md", "# A\n")
	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "/work/docs/a.md", Document: doc}},
		Stats: runner.Stats{FilesDiscovered: 1, FilesParsed: 1},
	}

	err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Files, 1)
	assert.Equal(t, "docs/a.md", output.Files[0].Path)
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowSummary)
	assert.False(t, opts.ShowLeaves)
	assert.False(t, opts.Compact)
}

// parseTestDocument runs source through the real parse pipeline.
func parseTestDocument(t *testing.T, path, source string) *mdast.Document {
	t.Helper()

	doc, err := parser.New(parser.Options{}).Parse(context.Background(), path, []byte(source))
	require.NoError(t, err)
	return doc
}

// createTestResult builds a single-file result with a heading, a
// paragraph, and a fenced code block.
func createTestResult(t *testing.T) *runner.Result {
	t.Helper()

	doc := parseTestDocument(t, "test.md",
		"# Title\n\nSome body text.\n\n```go\npackage main\n```\n")

	return &runner.Result{
		Files: []runner.FileOutcome{{Path: "test.md", Document: doc}},
		Stats: runner.Stats{
			FilesDiscovered: 1,
			FilesParsed:     1,
			NodesTotal:      doc.Tree.Len(),
			LinesTotal:      len(doc.Lines),
			BytesTotal:      len(doc.Content),
		},
	}
}
