package masking

import (
	"log/slog"
	"regexp"

	"github.com/fincomply/vigil/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns are the secret shapes redacted from every chunk before it
// reaches an external provider. Patterns favor precision over recall: a
// false positive mangles code the adjudicator has to reason about.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{
		name:        "api_key_assignment",
		pattern:     `(?i)((?:api[_-]?key|apikey|secret[_-]?key|access[_-]?key)\s*[:=]\s*["']?)[A-Za-z0-9+/_\-]{16,}(["']?)`,
		replacement: `${1}[MASKED_KEY]${2}`,
	},
	{
		name:        "password_assignment",
		pattern:     `(?i)((?:password|passwd|pwd)\s*[:=]\s*["']?)[^\s"']{4,}(["']?)`,
		replacement: `${1}[MASKED_PASSWORD]${2}`,
	},
	{
		name:        "bearer_token",
		pattern:     `(?i)(bearer\s+)[A-Za-z0-9+/._\-]{16,}`,
		replacement: `${1}[MASKED_TOKEN]`,
	},
	{
		name:        "private_key_block",
		pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		replacement: `[MASKED_PRIVATE_KEY]`,
	},
	{
		name:        "url_basic_auth",
		pattern:     `((?:https?|postgres(?:ql)?|redis|amqp)://[^:/\s]+:)[^@/\s]+(@)`,
		replacement: `${1}[MASKED_PASSWORD]${2}`,
	},
	{
		name:        "aws_access_key_id",
		pattern:     `\b(?:AKIA|ASIA)[A-Z0-9]{16}\b`,
		replacement: `[MASKED_AWS_KEY]`,
	},
}

// compileBuiltinPatterns compiles the built-in regex patterns. They are
// constants, so a failure here is a programming error worth surfacing loudly,
// but the service still degrades by skipping the broken pattern.
func (s *Service) compileBuiltinPatterns() {
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
		})
	}
}

// compileCustomPatterns compiles deployment-specific patterns from config.
// Invalid patterns are logged and skipped.
func (s *Service) compileCustomPatterns(custom []config.RedactionPattern) {
	for _, p := range custom {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		replacement := p.Replacement
		if replacement == "" {
			replacement = "[MASKED]"
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        "custom:" + p.Name,
			Regex:       compiled,
			Replacement: replacement,
		})
	}
}
