package parser

import (
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// lexState enumerates the tokenizer's automaton states. Every token
// starts the automaton in lexUnset and runs it until lexDone; the states
// in between accumulate multi-character runs.
type lexState uint8

const (
	lexUnset lexState = iota
	lexWhitespace
	lexPlaintext
	lexNumber
	lexHash
	lexDone
)

// Tokenizer is a pull-based scanner over source bytes. Each Next call
// produces exactly one token and advances the cursor; the cursor is the
// only state carried between calls. Tokenizers are restartable: one may
// be constructed at any offset and scans independently of any other.
type Tokenizer struct {
	source []byte
	pos    int
}

// NewTokenizer creates a tokenizer reading source from the given start offset.
func NewTokenizer(start int, source []byte) *Tokenizer {
	return &Tokenizer{source: source, pos: start}
}

// Pos returns the offset the next token will start at.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// Next produces the next token. It reports false once the cursor has
// reached the end of the source; no empty token is ever produced.
//
// Classification is a small DFA. Single-character kinds close
// immediately; runs accumulate until a character outside the run
// appears. A digit run is disambiguated by the character that follows
// it: '.' or ')' close it as an ordered-list marker including that
// character, anything else reclassifies the run as plaintext before
// emission (the breaking character is swallowed into the plaintext run,
// never re-scanned).
func (t *Tokenizer) Next() (mdast.Token, bool) {
	start := t.pos
	p := t.pos
	state := lexUnset

	var kind mdast.TokenKind
	emitted := false

	for state != lexDone {
		var c byte
		eof := p >= len(t.source)
		if !eof {
			c = t.source[p]
		}

		switch state {
		case lexUnset:
			switch {
			case eof:
				state = lexDone
			case c == '-':
				kind, emitted = mdast.TokDash, true
				p++
				state = lexDone
			case c == '*':
				kind, emitted = mdast.TokAsterisk, true
				p++
				state = lexDone
			case c == '+':
				kind, emitted = mdast.TokPlus, true
				p++
				state = lexDone
			case isDigit(c):
				state = lexNumber
				p++
			case c == '#':
				state = lexHash
				p++
			case isSpaceOrTab(c):
				state = lexWhitespace
				p++
			case c == '\n':
				kind, emitted = mdast.TokNewline, true
				p++
				state = lexDone
			case c == '>':
				kind, emitted = mdast.TokRightCaret, true
				p++
				state = lexDone
			default:
				state = lexPlaintext
				p++
			}

		case lexWhitespace:
			if !eof && isSpaceOrTab(c) {
				p++
			} else {
				kind, emitted = mdast.TokWhitespace, true
				state = lexDone
			}

		case lexNumber:
			switch {
			case !eof && isDigit(c):
				p++
			case !eof && c == '.':
				p++
				kind, emitted = mdast.TokNumDot, true
				state = lexDone
			case !eof && c == ')':
				p++
				kind, emitted = mdast.TokNumParen, true
				state = lexDone
			case eof:
				// A bare digit run closes as plaintext.
				kind, emitted = mdast.TokPlaintext, true
				state = lexDone
			default:
				// Retroactive reclassification: the run becomes
				// plaintext and keeps accumulating, swallowing the
				// character that broke it.
				state = lexPlaintext
				p++
			}

		case lexHash:
			if !eof && c == '#' {
				p++
			} else {
				kind, emitted = mdast.TokHash, true
				state = lexDone
			}

		case lexPlaintext:
			if eof || isSpaceOrTab(c) || c == '\n' {
				kind, emitted = mdast.TokPlaintext, true
				state = lexDone
			} else {
				p++
			}
		}
	}

	t.pos = p
	if !emitted {
		return mdast.Token{}, false
	}
	return mdast.Token{Kind: kind, StartOffset: start, EndOffset: p}, true
}

// Tokenize scans content from offset 0 and collects the full token
// stream. The result is contiguous, non-overlapping, and covers
// [0, len(content)).
func Tokenize(content []byte) []mdast.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	tokens := make([]mdast.Token, 0, len(content)/initialCapacityDivisor+1)

	tz := NewTokenizer(0, content)
	for {
		tok, ok := tz.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// lookahead returns up to three tokens starting at offset. Slots past
// the end of input hold the zero token (TokNone).
func lookahead(source []byte, offset int) (a, b, c mdast.Token) {
	tz := NewTokenizer(offset, source)
	a, _ = tz.Next()
	b, _ = tz.Next()
	c, _ = tz.Next()
	return a, b, c
}

// isDigit returns true if the byte is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isSpaceOrTab returns true for the space and tab characters.
func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}
