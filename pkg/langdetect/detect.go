// Package langdetect maps fenced code blocks to canonical language tags.
// Normalize canonicalizes the info string an author wrote on the fence
// opener; Detect inspects raw fence content when no info string is
// present, using go-enry plus a few fast structural checks.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// DefaultTag is returned when nothing more specific can be determined.
const DefaultTag = "text"

// aliases folds common info-string spellings into canonical tags.
var aliases = map[string]string{
	"golang":  "go",
	"py":      "python",
	"python3": "python",
	"js":      "javascript",
	"node":    "javascript",
	"ts":      "typescript",
	"sh":      "bash",
	"shell":   "bash",
	"zsh":     "bash",
	"yml":     "yaml",
	"docker":  "dockerfile",
	"rs":      "rust",
	"md":      "markdown",
	"c++":     "cpp",
}

// Normalize canonicalizes a fence info string to a language tag: the
// first field, lowercased, with common aliases folded. An empty info
// string normalizes to the empty string so callers can fall back to
// Detect.
func Normalize(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	tag := strings.ToLower(fields[0])
	if canonical, ok := aliases[tag]; ok {
		return canonical
	}
	return tag
}

// pattern pairs a tag with a cheap structural check decisive enough to
// skip the classifier.
type pattern struct {
	tag   string
	match func(content []byte) bool
}

// Ordered by specificity: earlier entries win.
var patterns = []pattern{
	{"go", isGo},
	{"python", isPython},
	{"html", isHTML},
	{"json", isJSON},
	{"dockerfile", isDockerfile},
	{"sql", isSQL},
	{"rust", isRust},
	{"javascript", isJavaScript},
	{"yaml", isYAML},
}

// classifierCandidates are the languages offered to the go-enry
// classifier when no structural check matched.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the language tag for raw fence content. It is meant
// for fences whose info string is empty. Returns DefaultTag when
// nothing matches with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return DefaultTag
	}

	// A shebang names the interpreter outright.
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return Normalize(lang)
	}

	for _, p := range patterns {
		if p.match(content) {
			return p.tag
		}
	}

	// Classifier pass; only a confident answer is trusted.
	if lang, ok := enry.GetLanguageByClassifier(content, classifierCandidates); ok && lang != "" {
		return Normalize(lang)
	}

	return DefaultTag
}

func isGo(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return bytes.HasPrefix(trimmed, []byte("package ")) ||
		bytes.Contains(content, []byte("func main()"))
}

func isPython(content []byte) bool {
	s := string(content)
	if strings.Contains(s, "def ") && strings.Contains(s, "):") {
		return true
	}
	if strings.Contains(s, "__name__") || strings.Contains(s, "__main__") {
		return true
	}
	// from-import without Go's grouped import form.
	return strings.Contains(s, "import ") && !strings.Contains(s, "import (") &&
		strings.Contains(s, "from ")
}

func isHTML(content []byte) bool {
	lower := bytes.ToLower(bytes.TrimSpace(content))
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func isJSON(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func isDockerfile(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("FROM ")) {
		return true
	}
	return bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))
}

func isSQL(content []byte) bool {
	upper := strings.TrimSpace(strings.ToUpper(string(content)))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

func isRust(content []byte) bool {
	s := string(content)
	return strings.Contains(s, "fn main()") ||
		strings.Contains(s, "println!") ||
		strings.Contains(s, "let mut ")
}

func isJavaScript(content []byte) bool {
	s := string(content)
	return strings.Contains(s, "=>") ||
		strings.Contains(s, "const ") ||
		strings.Contains(s, "console.log")
}

// isYAML counts key: value pairs and root-level list items; two or more
// yaml-shaped lines is taken as YAML.
func isYAML(content []byte) bool {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}
