package masking

import (
	"regexp"
	"strings"
)

// DotenvMasker masks values in dotenv-style KEY=value content, but only for
// keys that look credential-bearing. Indexed repositories routinely carry
// .env.example and docker-compose environment blocks whose values must not
// reach an external provider verbatim.
type DotenvMasker struct{}

var (
	dotenvLine      = regexp.MustCompile(`(?m)^(\s*(?:export\s+)?)([A-Z][A-Z0-9_]*)(\s*=\s*)(\S.*)$`)
	credentialKey   = regexp.MustCompile(`(?i)(password|passwd|secret|token|api_?key|credential|private_?key)`)
	placeholderVals = map[string]bool{"true": true, "false": true, "changeme": true, "": true}
)

// Name returns the unique identifier for this masker.
func (m *DotenvMasker) Name() string { return "dotenv" }

// AppliesTo reports whether the content has any dotenv-shaped assignment
// with a credential-looking key. String scan only, no parsing.
func (m *DotenvMasker) AppliesTo(data string) bool {
	if !strings.Contains(data, "=") {
		return false
	}
	return credentialKey.MatchString(data)
}

// Mask replaces values of credential-bearing dotenv keys. Values that are
// obvious placeholders are left alone so example files stay readable.
func (m *DotenvMasker) Mask(data string) string {
	return dotenvLine.ReplaceAllStringFunc(data, func(line string) string {
		parts := dotenvLine.FindStringSubmatch(line)
		if parts == nil || !credentialKey.MatchString(parts[2]) {
			return line
		}
		value := strings.Trim(strings.TrimSpace(parts[4]), `"'`)
		if placeholderVals[strings.ToLower(value)] {
			return line
		}
		return parts[1] + parts[2] + parts[3] + "[MASKED]"
	})
}
