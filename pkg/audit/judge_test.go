package audit

import (
	"testing"

	"github.com/fincomply/vigil/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inv(status models.ImplementationStatus, confidence float64) models.Investigation {
	return models.Investigation{
		RuleID:     "r1",
		ChunkID:    "c1",
		FilePath:   "a.py",
		StartLine:  1,
		EndLine:    10,
		Status:     status,
		Confidence: confidence,
		Verdict: models.VerdictResult{
			Verdict:       verdictFor(status),
			Severity:      "medium",
			SeverityScore: 4,
			Confidence:    confidence,
			Explanation:   "because",
			Evidence:      "code",
		},
	}
}

func verdictFor(status models.ImplementationStatus) string {
	switch status {
	case models.StatusImplemented:
		return "compliant"
	case models.StatusMissing:
		return "non_compliant"
	default:
		return "partial"
	}
}

func TestJudgeRuleAllImplemented(t *testing.T) {
	j := judgeRule("r1", []models.Investigation{
		inv(models.StatusImplemented, 0.8),
		inv(models.StatusImplemented, 0.6),
	})
	assert.Equal(t, "compliant", j.Verdict)
	assert.InDelta(t, 0.7, j.Confidence, 1e-9)
	assert.Equal(t, 2, j.EvidenceCount)
}

func TestJudgeRuleAnyMissingWins(t *testing.T) {
	j := judgeRule("r1", []models.Investigation{
		inv(models.StatusImplemented, 0.9),
		inv(models.StatusMissing, 0.9),
	})
	assert.Equal(t, "non_compliant", j.Verdict)
}

func TestJudgeRuleMixedIsPartial(t *testing.T) {
	j := judgeRule("r1", []models.Investigation{
		inv(models.StatusImplemented, 0.9),
		inv(models.StatusPartial, 0.5),
	})
	assert.Equal(t, "partial", j.Verdict)
}

func TestJudgeRuleNoInvestigationsIsNonCompliant(t *testing.T) {
	j := judgeRule("r1", nil)
	assert.Equal(t, "non_compliant", j.Verdict)
	assert.Zero(t, j.Confidence)
	assert.Zero(t, j.EvidenceCount)
}

func TestOverallVerdict(t *testing.T) {
	v, _ := overallVerdict([]models.JudgeResult{{Verdict: "compliant"}, {Verdict: "compliant"}})
	assert.Equal(t, "compliant", v)

	v, _ = overallVerdict([]models.JudgeResult{{Verdict: "compliant"}, {Verdict: "non_compliant"}})
	assert.Equal(t, "non_compliant", v)

	v, _ = overallVerdict([]models.JudgeResult{{Verdict: "compliant"}, {Verdict: "partial"}})
	assert.Equal(t, "partial", v)
}

func TestFindingDraftsCopyLineNumbersVerbatim(t *testing.T) {
	i := inv(models.StatusPartial, 0.5)
	i.StartLine, i.EndLine = 42, 77

	drafts := findingDrafts(
		[]models.JudgeResult{{RuleID: "r1", Verdict: "partial"}},
		map[string][]models.Investigation{"r1": {i}},
	)
	require.Len(t, drafts, 1)
	assert.Equal(t, 42, drafts[0].StartLine)
	assert.Equal(t, 77, drafts[0].EndLine)
	assert.Equal(t, "partial", drafts[0].Verdict)
	assert.Equal(t, "code", drafts[0].Evidence)
}

func TestFindingDraftsSynthesizeRuleLevelFindingWhenNoCodeFound(t *testing.T) {
	drafts := findingDrafts(
		[]models.JudgeResult{{RuleID: "r1", Verdict: "non_compliant", Reason: "no implementing code located in the repository"}},
		map[string][]models.Investigation{},
	)
	require.Len(t, drafts, 1)
	assert.Equal(t, "non_compliant", drafts[0].Verdict)
	assert.Equal(t, "high", drafts[0].Severity)
	assert.NotEmpty(t, drafts[0].Evidence)
	assert.Empty(t, drafts[0].FilePath)
}
