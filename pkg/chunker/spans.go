package chunker

import (
	"regexp"
	"strings"
)

// span is a candidate chunk: a function, class, or declaration with its
// 1-based inclusive line range.
type span struct {
	nodeType  string
	name      string
	startLine int
	endLine   int
	text      string
}

var (
	// Indentation-delimited declarations (Python).
	indentDeclRe = regexp.MustCompile(`^(class|def|async def)\s+(\w+)`)

	// Brace-delimited declarations, keyed by language.
	braceDeclRes = map[string]*regexp.Regexp{
		"go":         regexp.MustCompile(`^(func)\s+(?:\([^)]*\)\s+)?(\w+)`),
		"javascript": regexp.MustCompile(`^(function|class|const|let|var)\s+(\w+)`),
		"typescript": regexp.MustCompile(`^(function|class|const|let|var|interface|enum)\s+(\w+)`),
		"java":       regexp.MustCompile(`^(?:public|private|protected|static|final|abstract)\s.*?\b(class|interface|enum|\w+)\s*[({]?`),
		"rust":       regexp.MustCompile(`^(?:pub\s+)?(fn|struct|enum|trait|impl)\s+(\w+)`),
		"c":          regexp.MustCompile(`^([A-Za-z_][\w*\s]+)\s+(\w+)\s*\([^;]*$`),
		"cpp":        regexp.MustCompile(`^([A-Za-z_][\w:*<>\s]+)\s+(\w+)\s*\([^;]*$`),
	}
)

// extractSpans pulls function/class/declaration spans out of a file using
// lightweight per-language heuristics: indent-scoped for indentation-
// delimited languages, brace-balanced for the rest. An empty result sends
// the caller to fixed-window fallback.
func extractSpans(content, language string) []span {
	lines := strings.Split(content, "\n")
	if isIndentDelimited(language) {
		return extractIndentSpans(lines)
	}
	if re, ok := braceDeclRes[language]; ok {
		return extractBraceSpans(lines, re, language)
	}
	return nil
}

// extractIndentSpans scopes each declaration to the lines more indented
// than it. The span ends just before the first non-comment line at or
// below the declaration's indent level.
func extractIndentSpans(lines []string) []span {
	var spans []span
	for i, line := range lines {
		m := indentDeclRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		// Nested declarations belong to their parent span.
		if indentOf(line) > 0 {
			continue
		}

		endIdx := len(lines)
		baseIndent := indentOf(line)
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			if indentOf(lines[j]) <= baseIndent {
				endIdx = j
				break
			}
		}

		nodeType := "function"
		if m[1] == "class" {
			nodeType = "class"
		}
		spans = append(spans, span{
			nodeType:  nodeType,
			name:      m[2],
			startLine: i + 1,
			endLine:   endIdx,
			text:      strings.Join(lines[i:endIdx], "\n"),
		})
	}
	return spans
}

// extractBraceSpans scopes each declaration by brace balancing from the
// declaration line to the line where the opening brace closes.
func extractBraceSpans(lines []string, re *regexp.Regexp, language string) []span {
	var spans []span
	i := 0
	for i < len(lines) {
		m := re.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil || indentOf(lines[i]) > 0 {
			i++
			continue
		}

		endIdx := balanceBraces(lines, i)
		spans = append(spans, span{
			nodeType:  braceNodeType(m[1], language),
			name:      m[len(m)-1],
			startLine: i + 1,
			endLine:   endIdx,
			text:      strings.Join(lines[i:endIdx], "\n"),
		})
		if endIdx > i {
			i = endIdx
		} else {
			i++
		}
	}
	return spans
}

// balanceBraces returns the 1-based inclusive end line of the block opened
// at startIdx. Declarations with no opening brace within two lines are
// treated as single-line spans.
func balanceBraces(lines []string, startIdx int) int {
	depth := 0
	opened := false
	for j := startIdx; j < len(lines); j++ {
		depth += strings.Count(lines[j], "{") - strings.Count(lines[j], "}")
		if strings.Contains(lines[j], "{") {
			opened = true
		}
		if opened && depth <= 0 {
			return j + 1
		}
		if !opened && j-startIdx >= 2 {
			return startIdx + 1
		}
	}
	return len(lines)
}

func braceNodeType(keyword, language string) string {
	switch keyword {
	case "func", "fn", "function":
		return "function"
	case "class", "struct", "interface", "enum", "trait", "impl":
		return "class"
	case "const", "let", "var":
		return "declaration"
	}
	if language == "c" || language == "cpp" {
		return "function"
	}
	return "declaration"
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
