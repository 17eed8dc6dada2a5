package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdtree/pkg/mdast"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// jsonSchemaVersion identifies the output shape for downstream tooling.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Files   []JSONFile  `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile represents a single file's parse result.
type JSONFile struct {
	Path  string    `json:"path"`
	Lines int       `json:"lines,omitempty"`
	Bytes int       `json:"bytes,omitempty"`
	Tree  *JSONNode `json:"tree,omitempty"`
	Error string    `json:"error,omitempty"`
}

// JSONNode is one tree node. Offsets are byte offsets into the file;
// lines and columns are 1-based.
type JSONNode struct {
	Kind        string     `json:"kind"`
	StartOffset int        `json:"startOffset"`
	EndOffset   int        `json:"endOffset"`
	StartLine   int        `json:"startLine"`
	StartColumn int        `json:"startColumn"`
	EndLine     int        `json:"endLine"`
	EndColumn   int        `json:"endColumn"`
	Level       int        `json:"level,omitempty"`
	List        *JSONList  `json:"list,omitempty"`
	Fence       *JSONFence `json:"fence,omitempty"`
	Text        string     `json:"text,omitempty"`
	Children    []JSONNode `json:"children,omitempty"`
}

// JSONList carries list attributes.
type JSONList struct {
	Ordered   bool   `json:"ordered"`
	Marker    string `json:"marker,omitempty"`
	Start     int    `json:"start,omitempty"`
	Delimiter string `json:"delimiter,omitempty"`
}

// JSONFence carries fence attributes. Language is the info string
// normalized by langdetect, falling back to content detection when the
// info string is absent.
type JSONFence struct {
	Length   int    `json:"length"`
	Info     string `json:"info,omitempty"`
	Language string `json:"language"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesParsed     int `json:"filesParsed"`
	FilesFailed     int `json:"filesFailed"`
	Nodes           int `json:"nodes"`
	Lines           int `json:"lines"`
	Bytes           int `json:"bytes"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFile, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFile, 0, len(result.Files))
	}

	for _, file := range result.Files {
		jsonFile := JSONFile{
			Path: displayPath(file.Path, r.opts.WorkingDir),
		}

		if file.Error != nil {
			jsonFile.Error = file.Error.Error()
		}

		if file.Document != nil && file.Document.Tree != nil {
			jsonFile.Lines = len(file.Document.Lines)
			jsonFile.Bytes = len(file.Document.Content)
			tree := buildJSONNode(file.Document, file.Document.Tree.Root())
			jsonFile.Tree = &tree
		}

		output.Files = append(output.Files, jsonFile)
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesParsed:     result.Stats.FilesParsed,
		FilesFailed:     result.Stats.FilesFailed,
		Nodes:           result.Stats.NodesTotal,
		Lines:           result.Stats.LinesTotal,
		Bytes:           result.Stats.BytesTotal,
	}

	return output
}

// buildJSONNode converts a node and its subtree. The full tree is
// emitted, inline leaves included; JSON is the lossless format.
func buildJSONNode(doc *mdast.Document, id mdast.NodeID) JSONNode {
	n := doc.Tree.Node(id)
	pos := doc.PositionFor(doc.Tree.SourceRange(id))

	node := JSONNode{
		Kind:        n.Kind.String(),
		StartOffset: n.StartOffset,
		EndOffset:   n.EndOffset,
		StartLine:   pos.StartLine,
		StartColumn: pos.StartColumn,
		EndLine:     pos.EndLine,
		EndColumn:   pos.EndColumn,
		Level:       n.HeadingLevel,
	}

	if n.List != nil {
		node.List = &JSONList{
			Ordered: n.List.Ordered,
			Start:   n.List.StartNumber,
		}
		if n.List.BulletMarker != 0 {
			node.List.Marker = string(n.List.BulletMarker)
		}
		if n.List.Delimiter != 0 {
			node.List.Delimiter = string(n.List.Delimiter)
		}
	}

	if n.Fence != nil {
		node.Fence = &JSONFence{
			Length:   n.Fence.FenceLength,
			Info:     n.Fence.Info,
			Language: resolveLanguage(doc, id),
		}
	}

	if n.IsLeaf() {
		node.Text = string(doc.NodeText(id))
	}

	if len(n.Children) > 0 {
		node.Children = make([]JSONNode, 0, len(n.Children))
		for _, child := range n.Children {
			node.Children = append(node.Children, buildJSONNode(doc, child))
		}
	}

	return node
}
