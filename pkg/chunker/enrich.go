package chunker

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// semanticLexicon is the small tag vocabulary matched against file content.
var semanticLexicon = []string{"kyc", "storage", "upi", "auth", "payment", "compliance"}

var (
	callRe     = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	assignRe   = regexp.MustCompile(`^\s*(?:const\s+|let\s+|var\s+|final\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*(?::\s*[\w\[\]]+\s*)?=\s*(?:"[^"]*"|'[^']*'|-?\d[\d_.]*|true|false|True|False)`)
	keywordSet = map[string]bool{
		"if": true, "for": true, "while": true, "switch": true, "return": true,
		"func": true, "def": true, "catch": true, "print": true, "len": true,
		"range": true, "make": true, "new": true, "super": true,
	}
	thresholdRe = regexp.MustCompile(`(?i)limit|max|min|threshold`)
)

// callLinks extracts the distinct function names invoked within a chunk.
// Best effort; language keywords are filtered out and results are sorted
// for deterministic persistence.
func callLinks(text string) []string {
	seen := map[string]bool{}
	for _, m := range callRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if keywordSet[name] || seen[name] {
			continue
		}
		seen[name] = true
	}
	return sortedKeys(seen)
}

// variableNames extracts names assigned a literal value within a chunk.
func variableNames(text string) []string {
	seen := map[string]bool{}
	for _, line := range strings.Split(text, "\n") {
		if m := assignRe.FindStringSubmatch(line); m != nil {
			seen[m[1]] = true
		}
	}
	return sortedKeys(seen)
}

// thresholdKeys filters variableNames down to names that look like
// hardcoded limits or thresholds.
func thresholdKeys(text string) []string {
	var keys []string
	for _, name := range variableNames(text) {
		if thresholdRe.MatchString(name) {
			keys = append(keys, name)
		}
	}
	return keys
}

// semanticTags scans the whole file content for lexicon terms.
func semanticTags(content string) []string {
	lower := strings.ToLower(content)
	var tags []string
	for _, tag := range semanticLexicon {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseConfigKeys extracts top-level keys from JSON, YAML, and dotenv
// files. Parse failures return nil; enrichment never blocks the pipeline.
func ParseConfigKeys(path, content string) []string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var m map[string]any
		if err := json.Unmarshal([]byte(content), &m); err != nil {
			return nil
		}
		return sortedAnyKeys(m)
	case ".yaml", ".yml":
		var m map[string]any
		if err := yaml.Unmarshal([]byte(content), &m); err != nil {
			return nil
		}
		return sortedAnyKeys(m)
	case ".env":
		seen := map[string]bool{}
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if key, _, ok := strings.Cut(line, "="); ok {
				seen[strings.TrimSpace(key)] = true
			}
		}
		return sortedKeys(seen)
	}
	return nil
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAnyKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
