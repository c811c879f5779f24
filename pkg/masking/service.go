package masking

import (
	"log/slog"

	"github.com/fincomply/vigil/pkg/config"
)

// Service redacts credential material from code before it leaves the
// process for an external embedding or completion provider. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
	maskers  []Masker
}

// NewService creates a masking service with compiled patterns and registered
// structural maskers. All patterns are compiled eagerly at creation time;
// invalid custom patterns are logged and skipped.
func NewService(cfg *config.RedactionConfig) *Service {
	s := &Service{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return s
	}

	s.compileBuiltinPatterns()
	s.compileCustomPatterns(cfg.CustomPatterns)
	s.maskers = append(s.maskers, &DotenvMasker{})

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"structural_maskers", len(s.maskers))
	return s
}

// Redact applies structural maskers then regex patterns to content bound
// for an external provider. Returns content unchanged when redaction is
// disabled or content is empty.
func (s *Service) Redact(content string) string {
	if !s.enabled || content == "" {
		return content
	}

	masked := content
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
