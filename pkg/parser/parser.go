// Package parser turns Markdown source into flat block trees.
//
// Parsing happens in two layers. A Tokenizer splits source bytes into
// contiguous structural tokens, one token per call. On top of it, a
// small set of block rules (blockquote, heading, fence, list, with
// paragraph as the fallback) consumes lines and grows an mdast.Tree.
// The driver in this file walks the source a line at a time, giving
// the open block first claim on each line before offering it to the
// remaining rules.
package parser

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// Options configures a Parser.
type Options struct {
	// DisabledRules names block rules to leave out of the rule set
	// (see Rule.Name). Lines those rules would have claimed fall
	// through to paragraphs.
	DisabledRules []string
}

// Parser builds block trees from Markdown source. A Parser is
// stateless and safe for concurrent use.
type Parser struct {
	opts Options
}

// New returns a Parser with the given options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse tokenizes and parses content into a Document carrying the
// finished tree. The document retains a private copy of content; all
// node offsets refer to that copy. The only error condition is
// cancellation of ctx, checked once per source line.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error) {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := mdast.NewDocument(path, copyContent(content))
	tree, err := p.parse(ctx, doc.Content)
	if err != nil {
		return nil, err
	}
	doc.Tree = tree
	return doc, nil
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

func (p *Parser) parse(ctx context.Context, content []byte) (*mdast.Tree, error) {
	t := mdast.NewTree()
	rules := p.ruleEntries(content)

	// tip is the deepest open block under the root, if any. tipFloor
	// is the furthest offset its rule has consumed, which may lie past
	// the last leaf (bare blockquote markers, fence openers).
	tip := mdast.NilNode
	var tipEntry ruleEntry
	var tipFloor int

	closeTip := func() {
		end := t.LastEnd(tip)
		if end < tipFloor {
			end = tipFloor
		}
		t.Close(tip, end)
		tip = mdast.NilNode
	}

	pos := 0
	for pos < len(content) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("parse cancelled: %w", err)
		}

		a, b, c := lookahead(content, pos)

		// Blank lines end the open block. Greedy blocks instead take
		// them as content, through their Consume below.
		if isBlankLine(a, b) && (tip == mdast.NilNode || !tipEntry.greedy) {
			if tip != mdast.NilNode {
				closeTip()
			}
			if a.Kind == mdast.TokWhitespace {
				pos = a.EndOffset
			}
			pos = skipNewline(content, pos)
			continue
		}

		// The open block gets first claim on the line. Paragraphs
		// wait until the other rules have had a chance to interrupt.
		if tip != mdast.NilNode && t.Node(tip).Kind != mdast.NodeParagraph {
			if next, ok := tipEntry.rule.Consume(t, tip, pos, content); ok {
				pos = next
				tipFloor = next
				if !t.IsOpen(tip) {
					tip = mdast.NilNode
				}
				pos = skipNewline(content, pos)
				continue
			}
			closeTip()
		}

		if entry, link, ok := openBlock(t, rules, a, b, c); ok {
			if tip != mdast.NilNode {
				closeTip()
			}
			t.Append(t.Root(), link.Node)
			pos = link.Pos
			if next, ok := entry.rule.Consume(t, link.Node, pos, content); ok {
				pos = next
			}
			if t.IsOpen(link.Node) {
				tip = link.Node
				tipEntry = entry
				tipFloor = pos
			}
			pos = skipNewline(content, pos)
			continue
		}

		// Paragraph fallback: continue the open one, else start fresh.
		if tip != mdast.NilNode {
			if next, ok := (paragraphRule{}).Consume(t, tip, pos, content); ok {
				tipFloor = next
				pos = skipNewline(content, next)
				continue
			}
			closeTip()
		}
		link, ok := (paragraphRule{}).Open(t, t.Root(), a, b, c)
		if !ok {
			// Unreachable on a non-blank line; advance regardless.
			pos = a.EndOffset
			continue
		}
		t.Append(t.Root(), link.Node)
		pos = link.Pos
		if next, ok := (paragraphRule{}).Consume(t, link.Node, pos, content); ok {
			pos = next
		}
		tip = link.Node
		tipEntry = ruleEntry{rule: paragraphRule{}}
		tipFloor = pos
		pos = skipNewline(content, pos)
	}

	if tip != mdast.NilNode {
		closeTip()
	}
	t.Close(t.Root(), len(content))
	return t, nil
}

// ruleEntries returns the block rules for one parse, in priority
// order, with disabled rules filtered out.
func (p *Parser) ruleEntries(source []byte) []ruleEntry {
	entries := defaultRuleEntries(source)
	if len(p.opts.DisabledRules) == 0 {
		return entries
	}
	disabled := make(map[string]bool, len(p.opts.DisabledRules))
	for _, name := range p.opts.DisabledRules {
		disabled[name] = true
	}
	kept := make([]ruleEntry, 0, len(entries))
	for _, entry := range entries {
		if !disabled[entry.rule.Name()] {
			kept = append(kept, entry)
		}
	}
	return kept
}

// openBlock offers the lookahead to each rule in priority order and
// returns the first match.
func openBlock(t *mdast.Tree, rules []ruleEntry, a, b, c mdast.Token) (ruleEntry, Link, bool) {
	for _, entry := range rules {
		if link, ok := entry.rule.Open(t, t.Root(), a, b, c); ok {
			return entry, link, true
		}
	}
	return ruleEntry{}, Link{}, false
}

// isBlankLine reports whether the lookahead begins a line holding no
// content before its newline or the end of input.
func isBlankLine(a, b mdast.Token) bool {
	if a.Kind == mdast.TokNewline {
		return true
	}
	return a.Kind == mdast.TokWhitespace && (b.IsNone() || b.Kind == mdast.TokNewline)
}

// skipNewline steps over a single newline byte at pos, if present.
func skipNewline(content []byte, pos int) int {
	if pos < len(content) && content[pos] == '\n' {
		return pos + 1
	}
	return pos
}
