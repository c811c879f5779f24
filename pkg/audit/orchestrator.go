// Package audit runs the staged audit workflow: Planner, Navigator,
// Investigator, Judge, Remediator. The case row is the durable state
// machine; every step commits its result and the step bookkeeping in one
// transaction, so a crashed or retried run re-executes the in-flight step
// and continues from there.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/auditcase"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/pkg/adjudicator"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/events"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/provider"
	"github.com/fincomply/vigil/pkg/retriever"
	"github.com/fincomply/vigil/pkg/slack"
	"github.com/google/uuid"
)

// ErrNotAwaitingApproval is returned by Resume when the case is not at the
// approval gate.
var ErrNotAwaitingApproval = errors.New("case is not awaiting approval")

// ErrCaseTerminal is returned when an operation targets a completed or
// failed case.
var ErrCaseTerminal = errors.New("case is in a terminal state")

// taskRetriever is the navigator's view of the retrieval path.
type taskRetriever interface {
	Retrieve(ctx context.Context, queryText, repoID string, topK int) ([]models.RetrievalHit, error)
}

// verdictProvider is the investigator's view of the adjudicator.
type verdictProvider interface {
	Adjudicate(ctx context.Context, ruleText string, chunk models.CodeChunk) (models.VerdictResult, error)
}

// regulationReader loads pre-chunked regulation text.
type regulationReader interface {
	ChunksByRules(ctx context.Context, ruleIDs []string) ([]models.RegulationChunk, error)
}

// logAppender records per-agent progress on the case timeline.
type logAppender interface {
	Append(ctx context.Context, caseID, agent, message string) (*ent.CaseLog, error)
}

// ticketFiler files remediation tickets, idempotent per finding.
type ticketFiler interface {
	CreateForCase(ctx context.Context, caseID string, tasks []models.RemediationTask) ([]string, error)
}

// logExpirer stamps a terminal case's log entries for cleanup.
type logExpirer interface {
	ExpireAfter(ctx context.Context, caseID string, expiresAt time.Time) error
}

// Deps bundles the orchestrator's collaborators.
type Deps struct {
	Regulations regulationReader
	Retriever   taskRetriever
	Adjudicator verdictProvider
	LLM         provider.LLMProvider
	Logs        logAppender
	LogExpiry   logExpirer
	Tickets     ticketFiler
	Publisher   *events.Publisher

	// Notifier pushes human-facing case notifications; nil disables them.
	Notifier *slack.Service
}

// Orchestrator drives audit cases through the workflow.
type Orchestrator struct {
	client    *ent.Client
	deps      Deps
	retrieval *config.RetrievalConfig
	retention *config.RetentionConfig
	podID     string
	logger    *slog.Logger
}

// NewOrchestrator wires the audit workflow.
func NewOrchestrator(client *ent.Client, deps Deps, retrieval *config.RetrievalConfig, retention *config.RetentionConfig, podID string) *Orchestrator {
	return &Orchestrator{
		client:    client,
		deps:      deps,
		retrieval: retrieval,
		retention: retention,
		podID:     podID,
		logger:    slog.With("component", "audit"),
	}
}

// Execute runs one audit job. Satisfies the queue executor contract: a
// returned error sends the job through queue retry, and the case's
// persisted step bookkeeping makes the retry resume instead of restart.
func (o *Orchestrator) Execute(ctx context.Context, j *ent.Job) (map[string]any, error) {
	var payload models.AuditJobPayload
	if err := models.PayloadFromMap(j.Payload, &payload); err != nil {
		return nil, err
	}
	if payload.CaseID == "" {
		return nil, fmt.Errorf("audit job %s has no case_id", j.ID)
	}

	lastAttempt := j.Retries >= j.MaxRetries
	status, err := o.run(ctx, payload.CaseID, lastAttempt)
	if err != nil {
		return nil, err
	}
	return map[string]any{"case_id": payload.CaseID, "status": status}, nil
}

// run advances a case until it pauses, completes or fails. Returns the
// case status at exit.
func (o *Orchestrator) run(ctx context.Context, caseID string, lastAttempt bool) (string, error) {
	c, err := o.client.AuditCase.Get(ctx, caseID)
	if err != nil {
		return "", fmt.Errorf("failed to load case %s: %w", caseID, err)
	}

	switch c.Status {
	case auditcase.StatusCompleted, auditcase.StatusFailed:
		// A reclaimed lease can re-deliver a finished case; nothing to do.
		return string(c.Status), nil
	case auditcase.StatusWaitingApproval:
		return string(c.Status), nil
	}

	if c, err = o.markRunning(ctx, c); err != nil {
		return "", err
	}
	o.publishStatus(ctx, c.ID, string(auditcase.StatusRunning), "")

	for c.CurrentStep != nil || len(c.StepsPending) > 0 {
		if c.CancelRequested {
			c, err = o.failCase(ctx, c, "cancelled")
			return string(auditcase.StatusFailed), err
		}

		var step string
		if c.CurrentStep != nil {
			// A previous attempt crashed mid-step; run that step again.
			step = *c.CurrentStep
			o.publishStatus(ctx, c.ID, string(auditcase.StatusRunning), step)
		} else {
			step = c.StepsPending[0]
			if c, err = o.startStep(ctx, c, step); err != nil {
				return "", err
			}
		}

		if err := o.executeStep(ctx, c, step); err != nil {
			if lastAttempt {
				if _, failErr := o.failCase(ctx, c, err.Error()); failErr != nil {
					o.logger.Error("Failed to mark case failed", "case_id", c.ID, "error", failErr)
				}
			}
			return "", fmt.Errorf("step %s failed for case %s: %w", step, c.ID, err)
		}

		if c, err = o.client.AuditCase.Get(ctx, c.ID); err != nil {
			return "", fmt.Errorf("failed to reload case %s: %w", c.ID, err)
		}
	}

	if c.CancelRequested {
		_, err = o.failCase(ctx, c, "cancelled")
		return string(auditcase.StatusFailed), err
	}

	if !c.RequiresApproval {
		// Auto-approval: file tickets straight away.
		if _, err := o.approve(ctx, c, nil); err != nil {
			return "", err
		}
		return string(auditcase.StatusCompleted), nil
	}

	if _, err := o.transitionWaitingApproval(ctx, c); err != nil {
		return "", err
	}
	return string(auditcase.StatusWaitingApproval), nil
}

func (o *Orchestrator) markRunning(ctx context.Context, c *ent.AuditCase) (*ent.AuditCase, error) {
	now := time.Now()
	upd := o.client.AuditCase.UpdateOneID(c.ID).
		SetStatus(auditcase.StatusRunning).
		SetPodID(o.podID).
		SetLastActivityAt(now)
	if c.StartedAt == nil {
		upd.SetStartedAt(now)
	}
	if len(c.StepsCompleted) == 0 && len(c.StepsPending) == 0 {
		upd.SetStepsPending(models.WorkflowSteps)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark case %s running: %w", c.ID, err)
	}
	return updated, nil
}

// startStep claims the next pending step. current_step and the pending
// list move in the same update so current_step is never simultaneously a
// member of steps_pending in the stored row.
func (o *Orchestrator) startStep(ctx context.Context, c *ent.AuditCase, step string) (*ent.AuditCase, error) {
	updated, err := o.client.AuditCase.UpdateOneID(c.ID).
		SetCurrentStep(step).
		SetStepsPending(slices.Clone(c.StepsPending[1:])).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start step %s on case %s: %w", step, c.ID, err)
	}
	o.publishStatus(ctx, c.ID, string(auditcase.StatusRunning), step)
	return updated, nil
}

func (o *Orchestrator) executeStep(ctx context.Context, c *ent.AuditCase, step string) error {
	switch step {
	case models.StepPlanner:
		return o.runPlanner(ctx, c)
	case models.StepNavigator:
		return o.runNavigator(ctx, c)
	case models.StepInvestigator:
		return o.runInvestigator(ctx, c)
	case models.StepJudge:
		return o.runJudge(ctx, c)
	case models.StepRemediator:
		return o.runRemediator(ctx, c)
	default:
		return fmt.Errorf("unknown workflow step %q", step)
	}
}

// persistStep commits a step's result blob together with the step
// bookkeeping. extra, when non-nil, runs in the same transaction; the judge
// uses it to write findings atomically with its blob.
func (o *Orchestrator) persistStep(ctx context.Context, c *ent.AuditCase, step string, setBlob func(*ent.AuditCaseUpdateOne), extra func(tx *ent.Tx) error) error {
	if c.CurrentStep == nil || *c.CurrentStep != step {
		return fmt.Errorf("step %s is not in flight for case %s", step, c.ID)
	}

	tx, err := o.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if extra != nil {
		if err = extra(tx); err != nil {
			return err
		}
	}

	upd := tx.AuditCase.UpdateOneID(c.ID).
		SetStepsCompleted(append(slices.Clone(c.StepsCompleted), step)).
		ClearCurrentStep().
		SetLastActivityAt(time.Now())
	setBlob(upd)
	if _, err = upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to persist step %s: %w", step, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit step %s: %w", step, err)
	}
	return nil
}

// ruleTexts loads and concatenates each rule's regulation chunks in index
// order. A rule with no chunks fails the case; it cannot be audited.
func (o *Orchestrator) ruleTexts(ctx context.Context, ruleIDs []string) (map[string]string, error) {
	chunks, err := o.deps.Regulations.ChunksByRules(ctx, ruleIDs)
	if err != nil {
		return nil, err
	}

	parts := make(map[string][]string, len(ruleIDs))
	for _, ch := range chunks {
		parts[ch.RuleID] = append(parts[ch.RuleID], ch.ChunkText)
	}

	texts := make(map[string]string, len(parts))
	for _, ruleID := range ruleIDs {
		if len(parts[ruleID]) == 0 {
			return nil, fmt.Errorf("no regulation chunks found for rule %s", ruleID)
		}
		texts[ruleID] = strings.Join(parts[ruleID], "\n\n")
	}
	return texts, nil
}

func (o *Orchestrator) runPlanner(ctx context.Context, c *ent.AuditCase) error {
	texts, err := o.ruleTexts(ctx, c.RegulationIds)
	if err != nil {
		return err
	}
	o.appendLog(ctx, c.ID, models.AgentPlanner,
		fmt.Sprintf("Planning investigation for %d regulation rule(s)", len(c.RegulationIds)))

	var blob planBlob
	for _, ruleID := range c.RegulationIds {
		raw, err := o.deps.LLM.Complete(ctx, plannerSystemPrompt, texts[ruleID])
		if err != nil {
			return fmt.Errorf("planner call failed for rule %s: %w", ruleID, err)
		}
		plan, ok := parsePlan(ruleID, raw)
		if !ok {
			o.logger.Warn("Planner output malformed, using fallback plan", "case_id", c.ID, "rule_id", ruleID)
			plan = fallbackPlan(ruleID, texts[ruleID])
		}
		o.appendLog(ctx, c.ID, models.AgentPlanner,
			fmt.Sprintf("Rule %s: %d task(s) planned", ruleID, len(plan.Tasks)))
		blob.Plans = append(blob.Plans, plan)
	}

	m, err := encodeBlob(blob)
	if err != nil {
		return err
	}
	return o.persistStep(ctx, c, models.StepPlanner, func(u *ent.AuditCaseUpdateOne) {
		u.SetPlanResult(m)
	}, nil)
}

func (o *Orchestrator) runNavigator(ctx context.Context, c *ent.AuditCase) error {
	var plans planBlob
	if err := decodeBlob(c.PlanResult, &plans); err != nil {
		return err
	}

	var blob navigationBlob
	for _, plan := range plans.Plans {
		nav := models.NavigationResult{RuleID: plan.RuleID}
		total := 0
		for _, task := range plan.Tasks {
			hits, err := o.deps.Retriever.Retrieve(ctx, task.Description, c.RepoID, o.retrieval.TopK)
			if err != nil {
				return fmt.Errorf("retrieval failed for rule %s: %w", plan.RuleID, err)
			}
			for i := range hits {
				hits[i].Snippet = retriever.Snippet(hits[i].Chunk.ChunkText, o.retrieval.SnippetLength)
			}
			total += len(hits)
			nav.Matches = append(nav.Matches, models.TaskMatch{Task: task, Hits: hits})
		}
		o.appendLog(ctx, c.ID, models.AgentNavigator,
			fmt.Sprintf("Rule %s: %d code match(es) above similarity threshold", plan.RuleID, total))
		blob.Navigations = append(blob.Navigations, nav)
	}

	m, err := encodeBlob(blob)
	if err != nil {
		return err
	}
	return o.persistStep(ctx, c, models.StepNavigator, func(u *ent.AuditCaseUpdateOne) {
		u.SetNavigationResult(m)
	}, nil)
}

func (o *Orchestrator) runInvestigator(ctx context.Context, c *ent.AuditCase) error {
	var navs navigationBlob
	if err := decodeBlob(c.NavigationResult, &navs); err != nil {
		return err
	}
	texts, err := o.ruleTexts(ctx, c.RegulationIds)
	if err != nil {
		return err
	}

	var blob investigationBlob
	for _, nav := range navs.Navigations {
		result := models.InvestigationResult{RuleID: nav.RuleID}
		seen := make(map[string]bool)
		for _, match := range nav.Matches {
			examined := 0
			for _, hit := range match.Hits {
				if examined >= o.retrieval.MaxHitsPerTask {
					break
				}
				examined++
				if seen[hit.Chunk.ChunkID] {
					continue
				}
				seen[hit.Chunk.ChunkID] = true

				verdict, err := o.deps.Adjudicator.Adjudicate(ctx, texts[nav.RuleID], hit.Chunk)
				if err != nil {
					return fmt.Errorf("adjudication failed for rule %s: %w", nav.RuleID, err)
				}
				result.Investigations = append(result.Investigations, models.Investigation{
					RuleID:     nav.RuleID,
					ChunkID:    hit.Chunk.ChunkID,
					FilePath:   hit.Chunk.FilePath,
					StartLine:  hit.Chunk.StartLine,
					EndLine:    hit.Chunk.EndLine,
					Status:     adjudicator.StatusFor(verdict.Verdict),
					Confidence: verdict.Confidence,
					Verdict:    verdict,
				})
			}
		}
		o.appendLog(ctx, c.ID, models.AgentInvestigator,
			fmt.Sprintf("Rule %s: %d chunk(s) adjudicated", nav.RuleID, len(result.Investigations)))
		blob.Investigations = append(blob.Investigations, result)
	}

	m, err := encodeBlob(blob)
	if err != nil {
		return err
	}
	return o.persistStep(ctx, c, models.StepInvestigator, func(u *ent.AuditCaseUpdateOne) {
		u.SetInvestigationResult(m)
	}, nil)
}

func (o *Orchestrator) runJudge(ctx context.Context, c *ent.AuditCase) error {
	var invBlob investigationBlob
	if err := decodeBlob(c.InvestigationResult, &invBlob); err != nil {
		return err
	}

	invsByRule := make(map[string][]models.Investigation, len(invBlob.Investigations))
	for _, r := range invBlob.Investigations {
		invsByRule[r.RuleID] = r.Investigations
	}

	var blob judgeBlob
	for _, ruleID := range c.RegulationIds {
		j := judgeRule(ruleID, invsByRule[ruleID])
		o.appendLog(ctx, c.ID, models.AgentJudge,
			fmt.Sprintf("Rule %s: %s (%s)", ruleID, j.Verdict, j.Reason))
		blob.Judgements = append(blob.Judgements, j)
	}
	blob.OverallVerdict, blob.Confidence = overallVerdict(blob.Judgements)

	drafts := findingDrafts(blob.Judgements, invsByRule)

	m, err := encodeBlob(blob)
	if err != nil {
		return err
	}
	// Findings commit atomically with the step so a crashed judge run never
	// leaves a half-written finding set; the rerun replaces it wholesale.
	return o.persistStep(ctx, c, models.StepJudge, func(u *ent.AuditCaseUpdateOne) {
		u.SetJudgeResult(m)
	}, func(tx *ent.Tx) error {
		if _, err := tx.Finding.Delete().Where(finding.CaseIDEQ(c.ID)).Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear prior findings: %w", err)
		}
		for _, d := range drafts {
			create := tx.Finding.Create().
				SetID(uuid.NewString()).
				SetCaseID(c.ID).
				SetRuleID(d.RuleID).
				SetFilePath(d.FilePath).
				SetStartLine(d.StartLine).
				SetEndLine(d.EndLine).
				SetVerdict(finding.Verdict(d.Verdict)).
				SetSeverity(finding.Severity(d.Severity)).
				SetSeverityScore(d.SeverityScore).
				SetConfidence(d.Confidence).
				SetEvidence(d.Evidence).
				SetReasoning(d.Reasoning)
			if d.Remediation != "" {
				create.SetRemediation(d.Remediation)
			}
			if _, err := create.Save(ctx); err != nil {
				return fmt.Errorf("failed to persist finding for rule %s: %w", d.RuleID, err)
			}
		}
		return nil
	})
}

func (o *Orchestrator) runRemediator(ctx context.Context, c *ent.AuditCase) error {
	findings, err := o.client.Finding.Query().
		Where(finding.CaseIDEQ(c.ID)).
		Order(ent.Asc(finding.FieldCreatedAt), ent.Asc(finding.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load findings for case %s: %w", c.ID, err)
	}

	tasks := remediationTasks(findings)
	o.appendLog(ctx, c.ID, models.AgentRemediator,
		fmt.Sprintf("%d remediation task(s) proposed, awaiting approval", len(tasks)))

	m, err := encodeBlob(remediationBlob{Tasks: tasks})
	if err != nil {
		return err
	}
	return o.persistStep(ctx, c, models.StepRemediator, func(u *ent.AuditCaseUpdateOne) {
		u.SetRemediationResult(m)
	}, nil)
}

func (o *Orchestrator) transitionWaitingApproval(ctx context.Context, c *ent.AuditCase) (*ent.AuditCase, error) {
	updated, err := o.client.AuditCase.UpdateOneID(c.ID).
		SetStatus(auditcase.StatusWaitingApproval).
		ClearCurrentStep().
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause case %s for approval: %w", c.ID, err)
	}
	o.publishStatus(ctx, c.ID, string(auditcase.StatusWaitingApproval), "")
	o.notifyApproval(ctx, updated)
	return updated, nil
}

// Resume resolves the approval gate. decision is "approve" or "decline";
// editedTasks, when present, replace the remediator's proposals (each must
// reference a finding of this case). Resuming an already completed case is
// a no-op so repeated approval calls stay idempotent.
func (o *Orchestrator) Resume(ctx context.Context, caseID, decision string, editedTasks []models.RemediationTask) (*ent.AuditCase, error) {
	c, err := o.client.AuditCase.Get(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load case %s: %w", caseID, err)
	}

	if c.Status == auditcase.StatusCompleted {
		return c, nil
	}
	if c.Status != auditcase.StatusWaitingApproval {
		return nil, fmt.Errorf("%w: case %s is %s", ErrNotAwaitingApproval, caseID, c.Status)
	}

	switch decision {
	case "approve":
		return o.approve(ctx, c, editedTasks)
	case "decline":
		o.appendLog(ctx, c.ID, models.AgentRemediator, "Remediation declined, no tickets filed")
		return o.complete(ctx, c, "declined", []string{})
	default:
		return nil, fmt.Errorf("invalid resume decision %q", decision)
	}
}

func (o *Orchestrator) approve(ctx context.Context, c *ent.AuditCase, editedTasks []models.RemediationTask) (*ent.AuditCase, error) {
	tasks := editedTasks
	if len(tasks) == 0 {
		var blob remediationBlob
		if err := decodeBlob(c.RemediationResult, &blob); err != nil {
			return nil, err
		}
		tasks = blob.Tasks
	}

	ticketIDs, err := o.deps.Tickets.CreateForCase(ctx, c.ID, tasks)
	if err != nil {
		// Keep the case at the gate; filed ticket keys are recorded so a
		// retried approval picks up where this one stopped.
		if len(ticketIDs) > 0 {
			if _, saveErr := o.client.AuditCase.UpdateOneID(c.ID).
				SetJiraTicketIds(ticketIDs).
				Save(ctx); saveErr != nil {
				o.logger.Error("Failed to record partial ticket ids", "case_id", c.ID, "error", saveErr)
			}
		}
		return nil, fmt.Errorf("ticket creation failed for case %s: %w", c.ID, err)
	}
	if ticketIDs == nil {
		ticketIDs = []string{}
	}

	if len(ticketIDs) > 0 {
		o.appendLog(ctx, c.ID, models.AgentRemediator,
			fmt.Sprintf("Filed %d ticket(s): %s", len(ticketIDs), strings.Join(ticketIDs, ", ")))
	}
	return o.complete(ctx, c, "approved", ticketIDs)
}

func (o *Orchestrator) complete(ctx context.Context, c *ent.AuditCase, decision string, ticketIDs []string) (*ent.AuditCase, error) {
	now := time.Now()
	updated, err := o.client.AuditCase.UpdateOneID(c.ID).
		SetStatus(auditcase.StatusCompleted).
		SetUserDecision(decision).
		SetJiraTicketIds(ticketIDs).
		SetCompletedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete case %s: %w", c.ID, err)
	}

	o.publishStatus(ctx, c.ID, string(auditcase.StatusCompleted), "")
	o.expireLogs(ctx, c.ID, now)
	if o.deps.Notifier != nil {
		o.deps.Notifier.NotifyCaseClosed(ctx, slack.CaseClosedInput{
			CaseID:     c.ID,
			Status:     string(auditcase.StatusCompleted),
			Decision:   decision,
			TicketKeys: ticketIDs,
		})
	}
	o.logger.Info("Audit case completed", "case_id", c.ID, "decision", decision, "tickets", len(ticketIDs))
	return updated, nil
}

func (o *Orchestrator) failCase(ctx context.Context, c *ent.AuditCase, message string) (*ent.AuditCase, error) {
	now := time.Now()
	updated, err := o.client.AuditCase.UpdateOneID(c.ID).
		SetStatus(auditcase.StatusFailed).
		SetErrorMessage(message).
		ClearCurrentStep().
		SetCompletedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark case %s failed: %w", c.ID, err)
	}

	o.publishStatus(ctx, c.ID, string(auditcase.StatusFailed), "")
	o.expireLogs(ctx, c.ID, now)
	if o.deps.Notifier != nil {
		o.deps.Notifier.NotifyCaseClosed(ctx, slack.CaseClosedInput{
			CaseID:       c.ID,
			Status:       string(auditcase.StatusFailed),
			ErrorMessage: message,
		})
	}
	o.logger.Warn("Audit case failed", "case_id", c.ID, "error", message)
	return updated, nil
}

// Cancel requests cancellation. A running case observes the flag at the
// next step boundary; a case that is not mid-step fails immediately.
func (o *Orchestrator) Cancel(ctx context.Context, caseID string) (*ent.AuditCase, error) {
	c, err := o.client.AuditCase.Get(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load case %s: %w", caseID, err)
	}

	switch c.Status {
	case auditcase.StatusCompleted, auditcase.StatusFailed:
		return nil, fmt.Errorf("%w: case %s is %s", ErrCaseTerminal, caseID, c.Status)
	case auditcase.StatusRunning:
		updated, err := o.client.AuditCase.UpdateOneID(c.ID).
			SetCancelRequested(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to request cancel for case %s: %w", caseID, err)
		}
		return updated, nil
	default:
		// pending, waiting_approval, paused: no step is in flight.
		return o.failCase(ctx, c, "cancelled")
	}
}

func (o *Orchestrator) appendLog(ctx context.Context, caseID, agent, message string) {
	if o.deps.Logs == nil {
		return
	}
	if _, err := o.deps.Logs.Append(ctx, caseID, agent, message); err != nil {
		o.logger.Warn("Failed to append case log", "case_id", caseID, "agent", agent, "error", err)
	}
}

func (o *Orchestrator) expireLogs(ctx context.Context, caseID string, from time.Time) {
	if o.deps.LogExpiry == nil {
		return
	}
	if err := o.deps.LogExpiry.ExpireAfter(ctx, caseID, from.Add(o.retention.CaseLogTTL)); err != nil {
		o.logger.Warn("Failed to set log expiry", "case_id", caseID, "error", err)
	}
}

// notifyApproval announces the approval gate to Slack. Best effort: a
// notification failure never blocks the case.
func (o *Orchestrator) notifyApproval(ctx context.Context, c *ent.AuditCase) {
	if o.deps.Notifier == nil {
		return
	}

	repoName := c.RepoID
	if repo, err := o.client.Repository.Get(ctx, c.RepoID); err == nil {
		repoName = repo.FullName
	}

	findingCount, err := o.client.Finding.Query().Where(finding.CaseIDEQ(c.ID)).Count(ctx)
	if err != nil {
		o.logger.Warn("Failed to count findings for notification", "case_id", c.ID, "error", err)
	}

	taskCount := 0
	var blob remediationBlob
	if err := decodeBlob(c.RemediationResult, &blob); err == nil {
		taskCount = len(blob.Tasks)
	}

	o.deps.Notifier.NotifyCaseAwaitingApproval(ctx, slack.CaseApprovalInput{
		CaseID:       c.ID,
		RepoName:     repoName,
		RuleIDs:      c.RegulationIds,
		FindingCount: findingCount,
		TaskCount:    taskCount,
	})
}

func (o *Orchestrator) publishStatus(ctx context.Context, caseID, status, step string) {
	if o.deps.Publisher == nil {
		return
	}
	o.deps.Publisher.PublishCaseStatus(ctx, events.CaseStatusPayload{
		CaseID:      caseID,
		Status:      status,
		CurrentStep: step,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
