package adjudicator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.reply, s.err
}

func validReply(t *testing.T, v models.VerdictResult) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestAdjudicateParsesWellFormedVerdict(t *testing.T) {
	reply := validReply(t, models.VerdictResult{
		Verdict:       "non_compliant",
		Severity:      "high",
		SeverityScore: 7.2,
		Confidence:    0.9,
		Explanation:   "retention period is 90 days, rule requires five years",
		Evidence:      "RETENTION_DAYS = 90",
	})
	a := NewAdjudicator(&scriptedLLM{reply: reply})

	result, err := a.Adjudicate(context.Background(), "retain records for five years", models.CodeChunk{
		FilePath: "storage/records.py", StartLine: 10, EndLine: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "non_compliant", result.Verdict)
	assert.Equal(t, "high", result.Severity)
	assert.Equal(t, 7.2, result.SeverityScore)
	assert.Equal(t, "RETENTION_DAYS = 90", result.Evidence)
	assert.Empty(t, result.RawOutput)
}

func TestAdjudicateCoercesMalformedOutput(t *testing.T) {
	a := NewAdjudicator(&scriptedLLM{reply: "I cannot answer in JSON, sorry."})

	result, err := a.Adjudicate(context.Background(), "rule", models.CodeChunk{})
	require.NoError(t, err)

	assert.Equal(t, "unclear", result.Verdict)
	assert.Equal(t, "medium", result.Severity)
	assert.Equal(t, 5.0, result.SeverityScore)
	assert.Equal(t, "I cannot answer in JSON, sorry.", result.RawOutput)
	assert.Equal(t, "I cannot answer in JSON, sorry.", result.Explanation)
}

func TestAdjudicateCoercesEmptyResponse(t *testing.T) {
	a := NewAdjudicator(&scriptedLLM{err: provider.ErrEmptyResponse})

	result, err := a.Adjudicate(context.Background(), "rule", models.CodeChunk{})
	require.NoError(t, err, "an empty completion must not fail the step")

	assert.Equal(t, "unclear", result.Verdict)
	assert.Equal(t, "medium", result.Severity)
	assert.Equal(t, 5.0, result.SeverityScore)
}

func TestAdjudicateSurfacesTransportErrors(t *testing.T) {
	a := NewAdjudicator(&scriptedLLM{err: errors.New("dial tcp: connection refused")})

	_, err := a.Adjudicate(context.Background(), "rule", models.CodeChunk{})
	require.Error(t, err)
}

func TestParseVerdictStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"verdict\": \"compliant\", \"severity\": \"low\", \"severity_score\": 1}\n```"

	result, ok := ParseVerdict(raw)
	require.True(t, ok)
	assert.Equal(t, "compliant", result.Verdict)
}

func TestParseVerdictNormalizesVariants(t *testing.T) {
	for in, want := range map[string]string{
		"Non-Compliant":       "non_compliant",
		"noncompliant":        "non_compliant",
		"PARTIAL":             "partial",
		"partially_compliant": "partial",
		" compliant ":         "compliant",
		"unclear":             "unclear",
	} {
		raw := `{"verdict": "` + in + `", "severity": "medium", "severity_score": 4}`
		result, ok := ParseVerdict(raw)
		require.True(t, ok, "verdict %q", in)
		assert.Equal(t, want, result.Verdict, "verdict %q", in)
	}
}

func TestParseVerdictUnknownVerdictIsCoerced(t *testing.T) {
	result, ok := ParseVerdict(`{"verdict": "maybe", "severity": "low"}`)
	assert.False(t, ok)
	assert.Equal(t, "unclear", result.Verdict)
	assert.Equal(t, 5.0, result.SeverityScore)
}

func TestParseVerdictClampsScoreIntoSeverityBand(t *testing.T) {
	cases := []struct {
		severity string
		score    float64
		min, max float64
	}{
		{"critical", 2, 8, 10},
		{"critical", 11, 8, 10},
		{"high", 9.5, 6, 8},
		{"medium", 0, 3, 6},
		{"low", 8, 0, 3},
	}
	for _, tc := range cases {
		raw := validReply(t, models.VerdictResult{Verdict: "partial", Severity: tc.severity, SeverityScore: tc.score})
		result, ok := ParseVerdict(raw)
		require.True(t, ok)
		assert.GreaterOrEqual(t, result.SeverityScore, tc.min, "%s/%v", tc.severity, tc.score)
		assert.Less(t, result.SeverityScore, tc.max+0.01, "%s/%v", tc.severity, tc.score)
	}
}

func TestParseVerdictAdverseVerdictGetsEvidenceFallback(t *testing.T) {
	raw := validReply(t, models.VerdictResult{
		Verdict:     "non_compliant",
		Severity:    "high",
		Explanation: "no encryption at rest",
	})
	result, ok := ParseVerdict(raw)
	require.True(t, ok)
	assert.Equal(t, "no encryption at rest", result.Evidence)
}

func TestParseVerdictClampsConfidence(t *testing.T) {
	raw := `{"verdict": "compliant", "severity": "low", "severity_score": 1, "confidence": 3.5}`
	result, ok := ParseVerdict(raw)
	require.True(t, ok)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, models.StatusImplemented, StatusFor("compliant"))
	assert.Equal(t, models.StatusMissing, StatusFor("non_compliant"))
	assert.Equal(t, models.StatusPartial, StatusFor("partial"))
	assert.Equal(t, models.StatusPartial, StatusFor("unclear"))
}
