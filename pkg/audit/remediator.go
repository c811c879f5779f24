package audit

import (
	"fmt"
	"strings"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/pkg/models"
)

// remediationTasks composes exactly one ticket-ready task per actionable
// finding. Missing implementations rank high, partial ones medium.
func remediationTasks(findings []*ent.Finding) []models.RemediationTask {
	var tasks []models.RemediationTask
	for _, f := range findings {
		if f.Verdict != finding.VerdictNonCompliant && f.Verdict != finding.VerdictPartial {
			continue
		}
		priority := "medium"
		if f.Verdict == finding.VerdictNonCompliant {
			priority = "high"
		}
		tasks = append(tasks, models.RemediationTask{
			FindingID: f.ID,
			Title:     taskTitle(f),
			Body:      taskBody(f),
			RuleID:    f.RuleID,
			FilePath:  f.FilePath,
			Priority:  priority,
		})
	}
	return tasks
}

func taskTitle(f *ent.Finding) string {
	location := f.FilePath
	if location == "" {
		location = "repository"
	}
	action := "Complete partial implementation"
	if f.Verdict == finding.VerdictNonCompliant {
		action = "Fix compliance gap"
	}
	return fmt.Sprintf("[%s] %s in %s", f.RuleID, action, location)
}

func taskBody(f *ent.Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rule: %s\n", f.RuleID)
	if f.FilePath != "" {
		fmt.Fprintf(&b, "Location: %s:%d-%d\n", f.FilePath, f.StartLine, f.EndLine)
	}
	fmt.Fprintf(&b, "Verdict: %s (severity %s, score %.1f)\n", f.Verdict, f.Severity, f.SeverityScore)
	if f.Evidence != "" {
		fmt.Fprintf(&b, "\nEvidence:\n%s\n", f.Evidence)
	}
	if f.Reasoning != "" {
		fmt.Fprintf(&b, "\nAssessment:\n%s\n", f.Reasoning)
	}
	if f.Remediation != nil && *f.Remediation != "" {
		fmt.Fprintf(&b, "\nSuggested remediation:\n%s\n", *f.Remediation)
	}
	return b.String()
}
