package parser

import (
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// Link is the product of a successful Open: a newly created node, not
// yet attached, paired with the offset consumed so far. The driver owns
// attachment into the parent tree.
type Link struct {
	Node mdast.NodeID
	Pos  int
}

// Rule is the capability interface implemented by every block kind.
// The driver tries rules in a fixed priority order at each candidate
// line start and takes the first match.
//
// A rule may close its node inside Consume (a heading always does, a
// fence does when it reaches its closing marker); blocks still open
// when their rule reports no continuation are closed by the driver at
// their last content offset.
type Rule interface {
	// Name identifies the rule for configuration.
	Name() string

	// Open inspects up to three lookahead tokens at a candidate line
	// start and decides whether this block kind opens there. On a
	// match it allocates an open, unattached node and returns it with
	// the offset consumed so far. Slots past the end of input hold the
	// zero token; slots beyond what the rule needs are ignored. A
	// false result is an ordinary negative, not an error.
	Open(t *mdast.Tree, parent mdast.NodeID, a, b, c mdast.Token) (Link, bool)

	// Consume advances the open block from start, attaching whatever
	// content it takes. A false result means the block closed without
	// advancing past start.
	Consume(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool)
}

// ruleEntry binds a rule to its driver-level behavior.
type ruleEntry struct {
	rule Rule

	// greedy blocks continue through blank lines (fenced code); all
	// others are closed by a blank line.
	greedy bool
}

// defaultRuleEntries returns the non-fallback block rules in priority
// order. Fence detection reads marker text, so the fence rule carries
// the source it scans.
func defaultRuleEntries(source []byte) []ruleEntry {
	return []ruleEntry{
		{rule: blockquoteRule{}},
		{rule: headingRule{}},
		{rule: fenceRule{source: source}, greedy: true},
		{rule: listRule{}},
	}
}

// RuleNames returns the names of the block rules that can be disabled
// through Options, in priority order. The paragraph fallback is not
// listed; it cannot be disabled.
func RuleNames() []string {
	entries := defaultRuleEntries(nil)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.rule.Name()
	}
	return names
}
