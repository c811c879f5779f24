package chunker

import (
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"
)

// languageIDs maps enry language names to the lowercase identifiers stored
// on code_map rows. Files outside this set yield zero chunks.
var languageIDs = map[string]string{
	"Python":     "python",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
	"TSX":        "typescript",
	"Java":       "java",
	"Go":         "go",
	"Rust":       "rust",
	"C":          "c",
	"C++":        "cpp",
}

// configLanguages maps config-file extensions to their identifiers. These
// are chunked as whole files and mined for config keys.
var configLanguages = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".env":  "dotenv",
}

// indentLanguages are indentation-delimited; everything else in the
// supported set is brace-delimited.
var indentLanguages = map[string]bool{
	"python": true,
}

// DetectLanguage returns the language identifier for a file, or "" when the
// file is unsupported. Config extensions are recognized first since enry
// reports them as data, then detection falls through to enry using both the
// file name and its content.
func DetectLanguage(path string, content []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := configLanguages[ext]; ok {
		return lang
	}

	detected := enry.GetLanguage(filepath.Base(path), content)
	return languageIDs[detected]
}

// IsVendorPath reports whether the path points into vendored or generated
// dependency trees that the indexer should skip.
func IsVendorPath(path string) bool {
	return enry.IsVendor(path)
}

// isIndentDelimited reports whether spans in this language are scoped by
// indentation rather than braces.
func isIndentDelimited(language string) bool {
	return indentLanguages[language]
}

// isConfigLanguage reports whether the identifier belongs to a config file.
func isConfigLanguage(language string) bool {
	for _, id := range configLanguages {
		if id == language {
			return true
		}
	}
	return false
}
