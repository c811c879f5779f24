package audit

import (
	"fmt"

	"github.com/fincomply/vigil/pkg/models"
)

// judgeRule aggregates one rule's investigations to a rule-level verdict.
// Every hit weighs equally: any missing implementation makes the rule
// non_compliant, a full set of implemented hits makes it compliant, and
// everything in between is partial. A rule with no investigations at all
// means no implementing code was found, which is also non_compliant.
func judgeRule(ruleID string, invs []models.Investigation) models.JudgeResult {
	if len(invs) == 0 {
		return models.JudgeResult{
			RuleID:  ruleID,
			Verdict: "non_compliant",
			Reason:  "no implementing code located in the repository",
		}
	}

	var implemented, missing, partial, unknown int
	var confidenceSum float64
	for _, inv := range invs {
		confidenceSum += inv.Confidence
		switch inv.Status {
		case models.StatusImplemented:
			implemented++
		case models.StatusMissing:
			missing++
		case models.StatusPartial:
			partial++
		default:
			unknown++
		}
	}

	verdict := "partial"
	switch {
	case missing > 0:
		verdict = "non_compliant"
	case implemented == len(invs):
		verdict = "compliant"
	}

	return models.JudgeResult{
		RuleID:     ruleID,
		Verdict:    verdict,
		Confidence: confidenceSum / float64(len(invs)),
		Reason: fmt.Sprintf("%d implemented, %d partial, %d missing across %d examined chunks",
			implemented, partial, missing, len(invs)),
		EvidenceCount: len(invs),
	}
}

// overallVerdict rolls rule-level verdicts up to the case level under the
// same rule.
func overallVerdict(judgements []models.JudgeResult) (string, float64) {
	if len(judgements) == 0 {
		return "non_compliant", 0
	}

	var compliant int
	var nonCompliant int
	var confidenceSum float64
	for _, j := range judgements {
		confidenceSum += j.Confidence
		switch j.Verdict {
		case "compliant":
			compliant++
		case "non_compliant":
			nonCompliant++
		}
	}

	verdict := "partial"
	switch {
	case nonCompliant > 0:
		verdict = "non_compliant"
	case compliant == len(judgements):
		verdict = "compliant"
	}
	return verdict, confidenceSum / float64(len(judgements))
}

// findingDraft is one finding row to be persisted by the judge step.
type findingDraft struct {
	RuleID        string
	FilePath      string
	StartLine     int
	EndLine       int
	Verdict       string
	Severity      string
	SeverityScore float64
	Confidence    float64
	Evidence      string
	Reasoning     string
	Remediation   string
}

// findingDrafts turns investigations into finding rows. Line numbers come
// verbatim from the investigated chunk. A rule judged non_compliant without
// any investigation gets one rule-level finding so the remediator has
// something to act on.
func findingDrafts(judgements []models.JudgeResult, invsByRule map[string][]models.Investigation) []findingDraft {
	var drafts []findingDraft
	for _, j := range judgements {
		invs := invsByRule[j.RuleID]
		if len(invs) == 0 {
			if j.Verdict == "non_compliant" {
				drafts = append(drafts, findingDraft{
					RuleID:        j.RuleID,
					Verdict:       "non_compliant",
					Severity:      "high",
					SeverityScore: 7.0,
					Evidence:      "No code matching this rule was found in the repository.",
					Reasoning:     j.Reason,
				})
			}
			continue
		}
		for _, inv := range invs {
			drafts = append(drafts, findingDraft{
				RuleID:        inv.RuleID,
				FilePath:      inv.FilePath,
				StartLine:     inv.StartLine,
				EndLine:       inv.EndLine,
				Verdict:       inv.Verdict.Verdict,
				Severity:      inv.Verdict.Severity,
				SeverityScore: inv.Verdict.SeverityScore,
				Confidence:    inv.Verdict.Confidence,
				Evidence:      inv.Verdict.Evidence,
				Reasoning:     inv.Verdict.Explanation,
				Remediation:   inv.Verdict.Remediation,
			})
		}
	}
	return drafts
}
