package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanWellFormed(t *testing.T) {
	raw := `{
		"intent": "audit logs retained five years",
		"compliance_dimensions": ["data_retention"],
		"tasks": [
			{"description": "retention period constants", "dimension": "data_retention"},
			{"description": "log archival functions"}
		]
	}`

	plan, ok := parsePlan("RBI-2.1", raw)
	require.True(t, ok)
	assert.Equal(t, "RBI-2.1", plan.RuleID)
	assert.Equal(t, "audit logs retained five years", plan.Intent)
	assert.Len(t, plan.Tasks, 2)
	assert.False(t, plan.Fallback)
}

func TestParsePlanStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"intent\": \"x\", \"tasks\": [{\"description\": \"find auth checks\"}]}\n```"

	plan, ok := parsePlan("r1", raw)
	require.True(t, ok)
	assert.Equal(t, "find auth checks", plan.Tasks[0].Description)
}

func TestParsePlanDropsBlankTasks(t *testing.T) {
	raw := `{"intent": "x", "tasks": [{"description": "  "}, {"description": "real task"}]}`

	plan, ok := parsePlan("r1", raw)
	require.True(t, ok)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "real task", plan.Tasks[0].Description)
}

func TestParsePlanMalformed(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`{"intent": "x", "tasks": []}`,
		`{"intent": "x", "tasks": [{"description": ""}]}`,
		"",
	} {
		_, ok := parsePlan("r1", raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestFallbackPlan(t *testing.T) {
	plan := fallbackPlan("r1", "Multi-factor   authentication\nrequired for admin actions")

	assert.Equal(t, "r1", plan.RuleID)
	assert.True(t, plan.Fallback)
	require.Len(t, plan.Tasks, 1)
	assert.Contains(t, plan.Tasks[0].Description, "Multi-factor authentication required")
}

func TestHeadlineTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "regulation "
	}
	assert.Len(t, headline(long, 200), 200)
	assert.Equal(t, "short text", headline("short   text", 200))
}
