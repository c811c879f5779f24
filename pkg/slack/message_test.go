package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApprovalMessage(t *testing.T) {
	blocks := BuildApprovalMessage(CaseApprovalInput{
		CaseID:       "case-123",
		RepoName:     "fincomply/payments-api",
		RuleIDs:      []string{"PCI-8.4", "GDPR-32"},
		FindingCount: 3,
		TaskCount:    2,
	}, "https://vigil.example.com")

	require.Len(t, blocks, 3)

	header, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, ":raised_hand:")
	assert.Contains(t, header.Text.Text, "Audit Awaiting Approval")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "fincomply/payments-api")
	assert.Contains(t, body.Text.Text, "PCI-8.4, GDPR-32")
	assert.Contains(t, body.Text.Text, "3 finding(s)")
	assert.Contains(t, body.Text.Text, "2 remediation task(s)")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "Review & Approve", btn.Text.Text)
	assert.Equal(t, "https://vigil.example.com/cases/case-123", btn.URL)
}

func TestBuildClosedMessage_ApprovedWithTickets(t *testing.T) {
	blocks := BuildClosedMessage(CaseClosedInput{
		CaseID:     "case-1",
		Status:     "completed",
		Decision:   "approved",
		TicketKeys: []string{"COMP-1", "COMP-2"},
	}, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Audit Complete")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "Filed 2 ticket(s): COMP-1, COMP-2")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Case", btn.Text.Text)
	assert.Contains(t, btn.URL, "/cases/case-1")
}

func TestBuildClosedMessage_Declined(t *testing.T) {
	blocks := BuildClosedMessage(CaseClosedInput{
		CaseID:   "case-2",
		Status:   "completed",
		Decision: "declined",
	}, "https://dash.example.com")

	require.Len(t, blocks, 3)
	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "declined")
	assert.Contains(t, body.Text.Text, "no tickets filed")
}

func TestBuildClosedMessage_CompliantNoTickets(t *testing.T) {
	blocks := BuildClosedMessage(CaseClosedInput{
		CaseID:   "case-3",
		Status:   "completed",
		Decision: "approved",
	}, "https://dash.example.com")

	require.Len(t, blocks, 3)
	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "No remediation tickets required")
}

func TestBuildClosedMessage_Failed(t *testing.T) {
	blocks := BuildClosedMessage(CaseClosedInput{
		CaseID:       "case-4",
		Status:       "failed",
		ErrorMessage: "step judge failed: provider timeout",
	}, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Audit Failed")

	body := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, body.Text.Text, "provider timeout")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
