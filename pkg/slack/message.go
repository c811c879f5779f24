package slack

import (
	"fmt"
	"strings"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"waiting_approval": ":raised_hand:",
	"completed":        ":white_check_mark:",
	"failed":           ":x:",
}

var statusLabel = map[string]string{
	"waiting_approval": "Audit Awaiting Approval",
	"completed":        "Audit Complete",
	"failed":           "Audit Failed",
}

func caseURL(caseID, dashboardURL string) string {
	return fmt.Sprintf("%s/cases/%s", dashboardURL, caseID)
}

func headerBlock(status string) goslack.Block {
	emoji := statusEmoji[status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[status]
	if label == "" {
		label = "Audit " + status
	}
	return goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("%s *%s*", emoji, label), false, false),
		nil, nil,
	)
}

func linkButton(text, url string) goslack.Block {
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, text, false, false))
	btn.URL = url
	return goslack.NewActionBlock("", btn)
}

// BuildApprovalMessage creates Block Kit blocks for a case paused at the
// approval gate, the one notification a human must act on.
func BuildApprovalMessage(input CaseApprovalInput, dashboardURL string) []goslack.Block {
	body := fmt.Sprintf("Repository `%s` audited against %s.\n%d finding(s), %d remediation task(s) proposed.",
		input.RepoName, strings.Join(input.RuleIDs, ", "), input.FindingCount, input.TaskCount)

	return []goslack.Block{
		headerBlock("waiting_approval"),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
			nil, nil,
		),
		linkButton("Review & Approve", caseURL(input.CaseID, dashboardURL)),
	}
}

// BuildClosedMessage creates Block Kit blocks for a terminal case notification.
func BuildClosedMessage(input CaseClosedInput, dashboardURL string) []goslack.Block {
	blocks := []goslack.Block{headerBlock(input.Status)}

	var body string
	switch {
	case input.Status == "failed":
		if input.ErrorMessage != "" {
			body = fmt.Sprintf("*Error:*\n%s", input.ErrorMessage)
		}
	case input.Decision == "declined":
		body = "Remediation declined, no tickets filed."
	case len(input.TicketKeys) > 0:
		body = fmt.Sprintf("Filed %d ticket(s): %s", len(input.TicketKeys), strings.Join(input.TicketKeys, ", "))
	default:
		body = "No remediation tickets required."
	}
	if body != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(body), false, false),
			nil, nil,
		))
	}

	buttonText := "View Case"
	if input.Status == "failed" {
		buttonText = "View Details"
	}
	return append(blocks, linkButton(buttonText, caseURL(input.CaseID, dashboardURL)))
}

// truncateForSlack caps text at maxBlockTextLength runes without splitting a
// multi-byte rune.
func truncateForSlack(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBlockTextLength {
		return text
	}
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view the full case in the dashboard)_"
}
