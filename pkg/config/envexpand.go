package config

import (
	"os"
	"strings"
)

// ExpandEnv expands ${VAR} and $VAR references in YAML content from the
// process environment. Missing variables expand to the empty string;
// validation catches required fields left empty. A literal dollar sign is
// written as $$, which matters for values like regex patterns and
// passwords.
func ExpandEnv(data []byte) []byte {
	const marker = "\x00dollar\x00"

	escaped := strings.ReplaceAll(string(data), "$$", marker)
	expanded := os.Expand(escaped, func(key string) string {
		return os.Getenv(key)
	})
	return []byte(strings.ReplaceAll(expanded, marker, "$"))
}
