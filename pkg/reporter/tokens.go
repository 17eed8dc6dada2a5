package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/mdtree/internal/ui/pretty"
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// TokensRenderer writes the raw token stream for a single file, as a
// styled table or as JSON. Token output is per file: a stream is only
// meaningful next to its own source bytes.
type TokensRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTokensRenderer creates a new token stream renderer.
func NewTokensRenderer(opts Options) *TokensRenderer {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TokensRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render writes the token stream for one file in the configured format.
func (r *TokensRenderer) Render(_ context.Context, path string, tokens []mdast.Token, content []byte) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if r.opts.Format == FormatJSON {
		return r.renderJSON(path, tokens, content)
	}
	return r.renderTable(path, tokens, content)
}

func (r *TokensRenderer) renderTable(path string, tokens []mdast.Token, content []byte) error {
	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(displayPath(path, r.opts.WorkingDir), 0))

	formatter := pretty.NewTableFormatter(r.styles, getTerminalWidth(r.opts.Writer))
	fmt.Fprint(r.bw, formatter.FormatTokenTable(tokens, content))
	return nil
}

// JSONTokens is the JSON shape for one file's token stream.
type JSONTokens struct {
	Path       string      `json:"path"`
	Bytes      int         `json:"bytes"`
	CoverageOK bool        `json:"coverageOk"`
	Tokens     []JSONToken `json:"tokens"`
}

// JSONToken is a single token. Text is the raw source slice.
type JSONToken struct {
	Kind        string `json:"kind"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	Text        string `json:"text"`
}

func (r *TokensRenderer) renderJSON(path string, tokens []mdast.Token, content []byte) error {
	out := JSONTokens{
		Path:       displayPath(path, r.opts.WorkingDir),
		Bytes:      len(content),
		CoverageOK: mdast.ValidateTokens(tokens, len(content)),
		Tokens:     make([]JSONToken, 0, len(tokens)),
	}
	for _, tok := range tokens {
		out.Tokens = append(out.Tokens, JSONToken{
			Kind:        tok.Kind.String(),
			StartOffset: tok.StartOffset,
			EndOffset:   tok.EndOffset,
			Text:        string(tok.Text(content)),
		})
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// getTerminalWidth attempts to get the terminal width from the writer.
// Zero means unknown; the table formatter falls back to its default.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return 0
}
