package mdast

// TokenKind classifies the type of a token in the Markdown source.
// The zero value TokNone means "no token" and is what lookahead slots
// hold past the end of input.
type TokenKind uint8

// Token kinds cover every byte in the source. Marker kinds are recognized
// at line-start position; everything unclassified falls back to TokPlaintext.
const (
	TokNone TokenKind = iota

	TokRightCaret // '>'
	TokHash       // '#', '##', etc. (one token per run)
	TokDash       // '-'
	TokAsterisk   // '*'
	TokPlus       // '+'
	TokNumDot     // '1.', '23.', digits plus the dot
	TokNumParen   // '1)', '23)', digits plus the paren
	TokPlaintext
	TokWhitespace // spaces and tabs
	TokNewline    // exactly one '\n'
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokNone:
		return "none"
	case TokRightCaret:
		return "right-caret"
	case TokHash:
		return "hash"
	case TokDash:
		return "dash"
	case TokAsterisk:
		return "asterisk"
	case TokPlus:
		return "plus"
	case TokNumDot:
		return "num-dot"
	case TokNumParen:
		return "num-paren"
	case TokPlaintext:
		return "plaintext"
	case TokWhitespace:
		return "whitespace"
	case TokNewline:
		return "newline"
	default:
		return "unknown"
	}
}

// Token represents a classified span of bytes in the Markdown source.
// Tokens produced by one scan are contiguous and non-overlapping, covering
// the scanned region exactly once.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// IsNone returns true if this is the absent token (an exhausted lookahead slot).
func (t Token) IsNone() bool {
	return t.Kind == TokNone
}

// ValidateTokens checks that a token slice is valid:
// - Tokens are contiguous and non-overlapping.
// - Tokens cover the full content range [0, contentLen).
// Returns true if valid, false otherwise.
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	// First token must start at 0.
	if tokens[0].StartOffset != 0 {
		return false
	}

	// Last token must end at contentLen.
	if tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}

	// Check contiguity.
	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
