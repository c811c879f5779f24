package audit

import (
	"testing"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemediationTasksOnePerActionableFinding(t *testing.T) {
	remediation := "add MFA middleware"
	findings := []*ent.Finding{
		{ID: "f1", RuleID: "r1", FilePath: "auth.py", StartLine: 1, EndLine: 20,
			Verdict: finding.VerdictNonCompliant, Severity: finding.SeverityHigh, SeverityScore: 7,
			Evidence: "no MFA check", Reasoning: "admin routes unprotected", Remediation: &remediation},
		{ID: "f2", RuleID: "r1", FilePath: "log.py", StartLine: 5, EndLine: 15,
			Verdict: finding.VerdictPartial, Severity: finding.SeverityMedium, SeverityScore: 4,
			Evidence: "partial logging"},
		{ID: "f3", RuleID: "r2", FilePath: "store.py", StartLine: 1, EndLine: 9,
			Verdict: finding.VerdictCompliant, Severity: finding.SeverityLow, SeverityScore: 1},
		{ID: "f4", RuleID: "r2", FilePath: "util.py", StartLine: 1, EndLine: 9,
			Verdict: finding.VerdictUnclear, Severity: finding.SeverityMedium, SeverityScore: 5},
	}

	tasks := remediationTasks(findings)
	require.Len(t, tasks, 2)

	assert.Equal(t, "f1", tasks[0].FindingID)
	assert.Equal(t, "high", tasks[0].Priority)
	assert.Contains(t, tasks[0].Title, "r1")
	assert.Contains(t, tasks[0].Title, "auth.py")
	assert.Contains(t, tasks[0].Body, "no MFA check")
	assert.Contains(t, tasks[0].Body, "add MFA middleware")

	assert.Equal(t, "f2", tasks[1].FindingID)
	assert.Equal(t, "medium", tasks[1].Priority)
}

func TestRemediationTasksRuleLevelFindingWithoutFile(t *testing.T) {
	findings := []*ent.Finding{
		{ID: "f1", RuleID: "r1", Verdict: finding.VerdictNonCompliant,
			Severity: finding.SeverityHigh, SeverityScore: 7, Evidence: "nothing found"},
	}

	tasks := remediationTasks(findings)
	require.Len(t, tasks, 1)
	assert.Contains(t, tasks[0].Title, "repository")
	assert.Equal(t, "high", tasks[0].Priority)
}

func TestRemediationTasksEmptyForCompliantCase(t *testing.T) {
	tasks := remediationTasks([]*ent.Finding{
		{ID: "f1", RuleID: "r1", Verdict: finding.VerdictCompliant,
			Severity: finding.SeverityLow, SeverityScore: 1},
	})
	assert.Empty(t, tasks)
}
