// Package adjudicator issues the per-chunk compliance verdict: one LLM
// call per (rule, chunk) pair, parsed into a structured result with strict
// normalization. Malformed provider output never fails a case; it is
// coerced to an unclear verdict with the raw payload preserved.
package adjudicator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/provider"
)

const verdictSystemPrompt = `You are a compliance auditor. Given a regulation rule and a code chunk, decide whether the code complies with the rule. Respond with ONLY a JSON object:
{
  "verdict": "compliant" | "non_compliant" | "partial" | "unclear",
  "severity": "low" | "medium" | "high" | "critical",
  "severity_score": <number 0-10 consistent with severity>,
  "confidence": <number 0-1>,
  "explanation": "<one paragraph>",
  "evidence": "<the specific code lines or behavior supporting the verdict>",
  "remediation": "<what to change, if non-compliant or partial>"
}
Judge only the code shown. Do not invent file paths or line numbers.`

// Adjudicator produces verdicts for rule/chunk pairs.
type Adjudicator struct {
	llm    provider.LLMProvider
	logger *slog.Logger
}

// NewAdjudicator creates an adjudicator on the given completion provider.
func NewAdjudicator(llm provider.LLMProvider) *Adjudicator {
	return &Adjudicator{
		llm:    llm,
		logger: slog.With("component", "adjudicator"),
	}
}

// Adjudicate asks the provider for a verdict on one rule/chunk pair. The
// returned result always has a verdict from the fixed set, a severity
// score inside the band its severity level implies, and line numbers are
// never invented here; the caller copies them from the chunk.
func (a *Adjudicator) Adjudicate(ctx context.Context, ruleText string, chunk models.CodeChunk) (models.VerdictResult, error) {
	raw, err := a.llm.Complete(ctx, verdictSystemPrompt, verdictPrompt(ruleText, chunk))
	if errors.Is(err, provider.ErrEmptyResponse) {
		// An empty completion is semantic, not transient; coerce like any
		// other unparseable payload instead of sending the job into retry.
		a.logger.Warn("Empty verdict output, coerced to unclear",
			"file", chunk.FilePath, "chunk_hash", chunk.ChunkHash)
		return coerced(""), nil
	}
	if err != nil {
		return models.VerdictResult{}, fmt.Errorf("adjudication call failed: %w", err)
	}

	result, ok := ParseVerdict(raw)
	if !ok {
		a.logger.Warn("Malformed verdict output, coerced to unclear",
			"file", chunk.FilePath, "chunk_hash", chunk.ChunkHash)
	}
	return result, nil
}

func verdictPrompt(ruleText string, chunk models.CodeChunk) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Regulation rule:\n%s\n\n", ruleText)
	fmt.Fprintf(&b, "Code (%s, %s, lines %d-%d):\n%s\n",
		chunk.Language, chunk.FilePath, chunk.StartLine, chunk.EndLine, chunk.ChunkText)
	if chunk.NLSummary != nil {
		fmt.Fprintf(&b, "\nSummary of the code: %s\n", *chunk.NLSummary)
	}
	return b.String()
}

// ParseVerdict parses and normalizes a provider payload. ok=false means
// the payload was malformed and the result is the coerced unclear verdict
// carrying the raw output.
func ParseVerdict(raw string) (models.VerdictResult, bool) {
	var result models.VerdictResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		return coerced(raw), false
	}

	result.Verdict = normalizeVerdict(result.Verdict)
	if result.Verdict == "" {
		return coerced(raw), false
	}

	result.Severity = normalizeSeverity(result.Severity)
	result.SeverityScore = clampToBand(result.Severity, result.SeverityScore)
	result.Confidence = clamp(result.Confidence, 0, 1)

	// Adverse verdicts must carry evidence; fall back to the explanation
	// rather than dropping the finding.
	if result.Evidence == "" && (result.Verdict == "non_compliant" || result.Verdict == "partial") {
		result.Evidence = result.Explanation
	}
	return result, true
}

// coerced is the fixed fallback for malformed provider output. The raw
// payload is preserved for audit.
func coerced(raw string) models.VerdictResult {
	return models.VerdictResult{
		Verdict:       "unclear",
		Severity:      "medium",
		SeverityScore: 5.0,
		Explanation:   raw,
		RawOutput:     raw,
	}
}

func normalizeVerdict(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.ReplaceAll(v, "-", "_")
	v = strings.ReplaceAll(v, " ", "_")
	switch v {
	case "compliant", "non_compliant", "partial", "unclear":
		return v
	case "noncompliant", "not_compliant":
		return "non_compliant"
	case "partially_compliant", "partial_compliance":
		return "partial"
	}
	return ""
}

func normalizeSeverity(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "medium", "high", "critical":
		return strings.ToLower(strings.TrimSpace(s))
	}
	return "medium"
}

// severity bands: critical [8,10], high [6,8), medium [3,6), low [0,3).
func clampToBand(severity string, score float64) float64 {
	switch severity {
	case "critical":
		return clamp(score, 8, 10)
	case "high":
		return clamp(score, 6, 7.9)
	case "medium":
		return clamp(score, 3, 5.9)
	default:
		return clamp(score, 0, 2.9)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models add even when told not to.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// StatusFor maps a verdict to the implementation status used by the
// investigator. Only a non_compliant verdict counts as missing; unclear
// blocks a compliant case verdict without forcing a non-compliant one.
func StatusFor(verdict string) models.ImplementationStatus {
	switch verdict {
	case "compliant":
		return models.StatusImplemented
	case "non_compliant":
		return models.StatusMissing
	default:
		return models.StatusPartial
	}
}
