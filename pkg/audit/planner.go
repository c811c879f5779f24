package audit

import (
	"encoding/json"
	"strings"

	"github.com/fincomply/vigil/pkg/models"
)

const plannerSystemPrompt = `You are a compliance audit planner. Given the text of a regulation rule, produce an investigation plan for locating the code that implements (or fails to implement) the rule.

Respond with JSON only, no prose, matching this schema:
{
  "intent": "<one sentence stating what the rule requires>",
  "compliance_dimensions": ["<dimension>", ...],
  "tasks": [
    {"description": "<what code to look for, phrased as a code search query>", "dimension": "<dimension>"}
  ]
}

Produce between one and five tasks. Each task description must be concrete enough to match against source code.`

// parsePlan extracts a plan from raw provider output. The second return is
// false when the output was malformed and a fallback plan should be used.
func parsePlan(ruleID, raw string) (models.PlanResult, bool) {
	cleaned := stripCodeFence(raw)

	var plan models.PlanResult
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return models.PlanResult{}, false
	}

	tasks := plan.Tasks[:0:0]
	for _, t := range plan.Tasks {
		if strings.TrimSpace(t.Description) != "" {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return models.PlanResult{}, false
	}

	plan.RuleID = ruleID
	plan.Tasks = tasks
	return plan, true
}

// fallbackPlan is the single generic task used when the planner output
// could not be parsed. The audit still proceeds; retrieval quality is just
// lower.
func fallbackPlan(ruleID, ruleText string) models.PlanResult {
	return models.PlanResult{
		RuleID:   ruleID,
		Intent:   headline(ruleText, 200),
		Tasks:    []models.PlanTask{{Description: "Code implementing: " + headline(ruleText, 200)}},
		Fallback: true,
	}
}

// headline returns the first n characters of s with collapsed whitespace.
func headline(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
