package integration

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/audit"
	"github.com/fincomply/vigil/pkg/caselog"
	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/events"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/tickets"
	"github.com/fincomply/vigil/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestOrchestrator fills unset collaborators with real services over the
// test database.
func newTestOrchestrator(t *testing.T, client *ent.Client, db *stdsql.DB, deps audit.Deps) *audit.Orchestrator {
	t.Helper()
	if deps.Regulations == nil {
		deps.Regulations = codemap.NewRegulationStore(db)
	}
	if deps.Logs == nil {
		logs := caselog.NewService(client, events.NewPublisher(db))
		deps.Logs = logs
		deps.LogExpiry = logs
	}
	if deps.Tickets == nil {
		deps.Tickets = tickets.NewService(client, nil)
	}
	return audit.NewOrchestrator(client, deps,
		config.DefaultRetrievalConfig(), config.DefaultRetentionConfig(), "pod-test")
}

func newCase(t *testing.T, client *ent.Client, repoID string, rules []string, requiresApproval bool) *ent.AuditCase {
	t.Helper()
	c, err := client.AuditCase.Create().
		SetID(uuid.NewString()).
		SetRepoID(repoID).
		SetRegulationIds(rules).
		SetRequiresApproval(requiresApproval).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func newAuditJob(t *testing.T, client *ent.Client, caseID string) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetType(job.TypeAudit).
		SetPayload(map[string]any{"case_id": caseID}).
		SetMaxRetries(3).
		SetTimeoutSeconds(600).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

func compliantVerdict() models.VerdictResult {
	return models.VerdictResult{
		Verdict: "compliant", Severity: "low", SeverityScore: 1,
		Confidence: 0.9, Explanation: "TOTP enforced on login", Evidence: "VerifyTOTP call",
	}
}

func nonCompliantVerdict() models.VerdictResult {
	return models.VerdictResult{
		Verdict: "non_compliant", Severity: "high", SeverityScore: 7,
		Confidence: 0.8, Explanation: "password-only login", Evidence: "no second factor checked",
		Remediation: "require a TOTP check after password verification",
	}
}

func TestAuditCompliantCaseAutoApproves(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, false)

	creator := &recordingCreator{}
	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return plannerOutput, nil }},
		Retriever:   &stubRetriever{hits: []models.RetrievalHit{codeHit("ch1", "auth/mfa.go", 10, 42, "func VerifyTOTP() {}", 0.95)}},
		Adjudicator: &stubAdjudicator{verdict: compliantVerdict()},
		Tickets:     tickets.NewService(client, creator),
	})

	result, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)
	assert.Equal(t, "completed", result["status"])

	got, err := client.AuditCase.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, "completed", got.Status)
	require.NotNil(t, got.UserDecision)
	assert.Equal(t, "approved", *got.UserDecision)
	assert.Equal(t, models.WorkflowSteps, got.StepsCompleted)
	assert.Empty(t, got.StepsPending)
	assert.Nil(t, got.CurrentStep)
	assert.Empty(t, got.JiraTicketIds)
	assert.NotNil(t, got.CompletedAt)

	findings, err := client.Finding.Query().Where(finding.CaseIDEQ(c.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.VerdictCompliant, findings[0].Verdict)
	assert.Equal(t, "auth/mfa.go", findings[0].FilePath)
	assert.Equal(t, 10, findings[0].StartLine)
	assert.Equal(t, 42, findings[0].EndLine)

	// No adverse findings, so no tickets get filed.
	assert.Equal(t, 0, creator.count())

	// Case logs recorded progress for every agent.
	logs := caselog.NewService(client, events.NewPublisher(db))
	entries, err := logs.Read(ctx, c.ID, 0)
	require.NoError(t, err)
	agents := map[string]bool{}
	for _, e := range entries {
		agents[e.Agent] = true
	}
	for _, a := range []string{"PLANNER", "NAVIGATOR", "INVESTIGATOR", "JUDGE", "REMEDIATOR"} {
		assert.True(t, agents[a], "missing log entries from %s", a)
	}
}

func TestAuditNonCompliantApprovalFlow(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)

	creator := &recordingCreator{}
	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return plannerOutput, nil }},
		Retriever:   &stubRetriever{hits: []models.RetrievalHit{codeHit("ch1", "auth/login.go", 5, 30, "func Login() {}", 0.91)}},
		Adjudicator: &stubAdjudicator{verdict: nonCompliantVerdict()},
		Tickets:     tickets.NewService(client, creator),
	})

	result, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)
	assert.Equal(t, "waiting_approval", result["status"])

	findings, err := client.Finding.Query().Where(finding.CaseIDEQ(c.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.VerdictNonCompliant, findings[0].Verdict)
	assert.Equal(t, finding.SeverityHigh, findings[0].Severity)

	// Approve with an edited task referencing the real finding.
	edited := []models.RemediationTask{{
		FindingID: findings[0].ID,
		Title:     "[PCI-8.4] Add TOTP verification to login",
		Body:      "Engineer-reviewed description",
		RuleID:    "PCI-8.4",
		FilePath:  "auth/login.go",
		Priority:  "high",
	}}
	resumed, err := o.Resume(ctx, c.ID, "approve", edited)
	require.NoError(t, err)
	assert.EqualValues(t, "completed", resumed.Status)
	require.NotNil(t, resumed.UserDecision)
	assert.Equal(t, "approved", *resumed.UserDecision)
	assert.Equal(t, []string{"COMP-1"}, resumed.JiraTicketIds)
	assert.Equal(t, 1, creator.count())

	updated, err := client.Finding.Get(ctx, findings[0].ID)
	require.NoError(t, err)
	require.NotNil(t, updated.TicketID)
	assert.Equal(t, "COMP-1", *updated.TicketID)

	// Repeated approval is a no-op: same ticket ids, nothing filed twice.
	again, err := o.Resume(ctx, c.ID, "approve", nil)
	require.NoError(t, err)
	assert.EqualValues(t, "completed", again.Status)
	assert.Equal(t, []string{"COMP-1"}, again.JiraTicketIds)
	assert.Equal(t, 1, creator.count())
}

func TestAuditDeclineFilesNoTickets(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/ledger")
	seedRegulation(t, db, "SOX-404", "Changes to financial records must be logged.")
	c := newCase(t, client, repo.ID, []string{"SOX-404"}, true)

	creator := &recordingCreator{}
	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return plannerOutput, nil }},
		Retriever:   &stubRetriever{hits: []models.RetrievalHit{codeHit("ch1", "ledger/write.go", 1, 20, "func Write() {}", 0.9)}},
		Adjudicator: &stubAdjudicator{verdict: nonCompliantVerdict()},
		Tickets:     tickets.NewService(client, creator),
	})

	_, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)

	resumed, err := o.Resume(ctx, c.ID, "decline", nil)
	require.NoError(t, err)
	assert.EqualValues(t, "completed", resumed.Status)
	require.NotNil(t, resumed.UserDecision)
	assert.Equal(t, "declined", *resumed.UserDecision)
	assert.Empty(t, resumed.JiraTicketIds)
	assert.Equal(t, 0, creator.count())

	// Findings survive the decline for later review.
	n, err := client.Finding.Query().Where(finding.CaseIDEQ(c.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAuditNoMatchesYieldsNonCompliant(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)

	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return plannerOutput, nil }},
		Retriever:   &stubRetriever{}, // nothing above the similarity gate
		Adjudicator: &stubAdjudicator{err: errors.New("must not be called")},
	})

	result, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)
	assert.Equal(t, "waiting_approval", result["status"])

	// Absence of implementing code is itself an adverse finding.
	findings, err := client.Finding.Query().Where(finding.CaseIDEQ(c.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.VerdictNonCompliant, findings[0].Verdict)
	assert.Equal(t, finding.SeverityHigh, findings[0].Severity)
	assert.NotEmpty(t, findings[0].Evidence)

	got, err := client.AuditCase.Get(ctx, c.ID)
	require.NoError(t, err)
	var blob struct {
		Tasks []models.RemediationTask `json:"tasks"`
	}
	require.NoError(t, models.PayloadFromMap(got.RemediationResult, &blob))
	require.Len(t, blob.Tasks, 1)
	assert.Equal(t, "high", blob.Tasks[0].Priority)
}

func TestAuditResumesFromPersistedSteps(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)

	// The case crashed after the investigator committed: three steps done,
	// blobs persisted, two steps pending.
	invBlob, err := models.PayloadToMap(struct {
		Investigations []models.InvestigationResult `json:"investigations"`
	}{Investigations: []models.InvestigationResult{{
		RuleID: "PCI-8.4",
		Investigations: []models.Investigation{{
			RuleID: "PCI-8.4", ChunkID: "ch1", FilePath: "auth/login.go",
			StartLine: 5, EndLine: 30, Status: models.StatusMissing,
			Confidence: 0.8, Verdict: nonCompliantVerdict(),
		}},
	}}})
	require.NoError(t, err)

	_, err = client.AuditCase.UpdateOneID(c.ID).
		SetStepsCompleted([]string{"planner", "navigator", "investigator"}).
		SetStepsPending([]string{"judge", "remediator"}).
		SetInvestigationResult(invBlob).
		Save(ctx)
	require.NoError(t, err)

	// Completed steps must not re-run: every early-stage collaborator fails
	// loudly if touched.
	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return "", errors.New("planner must not re-run") }},
		Retriever:   &stubRetriever{err: errors.New("navigator must not re-run")},
		Adjudicator: &stubAdjudicator{err: errors.New("investigator must not re-run")},
	})

	result, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)
	assert.Equal(t, "waiting_approval", result["status"])

	got, err := client.AuditCase.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowSteps, got.StepsCompleted)
	assert.NotNil(t, got.JudgeResult)
	assert.NotNil(t, got.RemediationResult)

	findings, err := client.Finding.Query().Where(finding.CaseIDEQ(c.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, finding.VerdictNonCompliant, findings[0].Verdict)
}

// checkedRetriever runs a hook before delegating, used to observe the
// persisted case row from inside the navigator step.
type checkedRetriever struct {
	inner *stubRetriever
	check func()
}

func (r *checkedRetriever) Retrieve(ctx context.Context, queryText, repoID string, topK int) ([]models.RetrievalHit, error) {
	r.check()
	return r.inner.Retrieve(ctx, queryText, repoID, topK)
}

// assertStepSetsDisjoint reloads the case and verifies that current_step,
// steps_completed and steps_pending never share a step. This is the row any
// concurrent API read observes.
func assertStepSetsDisjoint(t *testing.T, client *ent.Client, caseID string) {
	t.Helper()
	c, err := client.AuditCase.Get(context.Background(), caseID)
	require.NoError(t, err)

	seen := map[string]string{}
	if c.CurrentStep != nil {
		seen[*c.CurrentStep] = "current_step"
	}
	for _, s := range c.StepsCompleted {
		if where, dup := seen[s]; dup {
			t.Errorf("step %q is in both %s and steps_completed", s, where)
		}
		seen[s] = "steps_completed"
	}
	for _, s := range c.StepsPending {
		if where, dup := seen[s]; dup {
			t.Errorf("step %q is in both %s and steps_pending", s, where)
		}
		seen[s] = "steps_pending"
	}
}

func TestAuditStepBookkeepingStaysDisjoint(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, false)

	// Hooks fire while the planner and navigator steps are in flight, so
	// the snapshots cover the window between claiming a step and committing
	// its result.
	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM: &stubLLM{fn: func(_, _ string) (string, error) {
			assertStepSetsDisjoint(t, client, c.ID)
			return plannerOutput, nil
		}},
		Retriever: &checkedRetriever{
			inner: &stubRetriever{hits: []models.RetrievalHit{codeHit("ch1", "auth/mfa.go", 10, 42, "func VerifyTOTP() {}", 0.95)}},
			check: func() { assertStepSetsDisjoint(t, client, c.ID) },
		},
		Adjudicator: &stubAdjudicator{verdict: compliantVerdict()},
	})

	_, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)
	assertStepSetsDisjoint(t, client, c.ID)
}

func TestAuditReexecutesCrashedStep(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)

	// The case crashed with the navigator claimed but uncommitted: planner
	// done, navigator in current_step, the rest pending.
	planMap, err := models.PayloadToMap(struct {
		Plans []models.PlanResult `json:"plans"`
	}{Plans: []models.PlanResult{{
		RuleID: "PCI-8.4",
		Tasks:  []models.PlanTask{{Description: "locate second-factor checks on login"}},
	}}})
	require.NoError(t, err)

	_, err = client.AuditCase.UpdateOneID(c.ID).
		SetStepsCompleted([]string{"planner"}).
		SetCurrentStep("navigator").
		SetStepsPending([]string{"investigator", "judge", "remediator"}).
		SetPlanResult(planMap).
		Save(ctx)
	require.NoError(t, err)

	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return "", errors.New("planner must not re-run") }},
		Retriever:   &stubRetriever{hits: []models.RetrievalHit{codeHit("ch1", "auth/login.go", 5, 30, "func Login() {}", 0.91)}},
		Adjudicator: &stubAdjudicator{verdict: nonCompliantVerdict()},
	})

	result, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)
	assert.Equal(t, "waiting_approval", result["status"])

	got, err := client.AuditCase.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowSteps, got.StepsCompleted)
	assert.Empty(t, got.StepsPending)
	assert.Nil(t, got.CurrentStep)
	assert.NotNil(t, got.NavigationResult)
}

func TestAuditTicketFailureKeepsApprovalGate(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")
	c := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)

	creator := &recordingCreator{failAt: 2}
	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM: &stubLLM{fn: func(_, _ string) (string, error) { return plannerOutput, nil }},
		Retriever: &stubRetriever{hits: []models.RetrievalHit{
			codeHit("ch1", "auth/login.go", 5, 30, "func Login() {}", 0.91),
			codeHit("ch2", "auth/session.go", 1, 40, "func NewSession() {}", 0.88),
		}},
		Adjudicator: &stubAdjudicator{verdict: nonCompliantVerdict()},
		Tickets:     tickets.NewService(client, creator),
	})

	_, err := o.Execute(ctx, newAuditJob(t, client, c.ID))
	require.NoError(t, err)

	// First approval files one ticket then hits the backend outage; the
	// case stays at the gate with the filed key recorded.
	_, err = o.Resume(ctx, c.ID, "approve", nil)
	require.Error(t, err)

	got, err := client.AuditCase.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, "waiting_approval", got.Status)
	assert.Equal(t, []string{"COMP-1"}, got.JiraTicketIds)

	// Retried approval skips the already-ticketed finding and completes.
	creator.failAt = 0
	resumed, err := o.Resume(ctx, c.ID, "approve", nil)
	require.NoError(t, err)
	assert.EqualValues(t, "completed", resumed.Status)
	assert.Equal(t, []string{"COMP-1", "COMP-2"}, resumed.JiraTicketIds)
	assert.Equal(t, 2, creator.count())
}

func TestAuditCancellation(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "PCI-8.4", "Multi-factor authentication is required for all access.")

	o := newTestOrchestrator(t, client, db, audit.Deps{
		LLM:         &stubLLM{fn: func(_, _ string) (string, error) { return plannerOutput, nil }},
		Retriever:   &stubRetriever{},
		Adjudicator: &stubAdjudicator{verdict: compliantVerdict()},
	})

	// A case not mid-step fails immediately on cancel.
	pending := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)
	cancelled, err := o.Cancel(ctx, pending.ID)
	require.NoError(t, err)
	assert.EqualValues(t, "failed", cancelled.Status)
	require.NotNil(t, cancelled.ErrorMessage)
	assert.Equal(t, "cancelled", *cancelled.ErrorMessage)

	// Terminal cases reject cancellation.
	_, err = o.Cancel(ctx, cancelled.ID)
	assert.ErrorIs(t, err, audit.ErrCaseTerminal)

	// A pre-set cancel flag is observed at the first step boundary.
	flagged := newCase(t, client, repo.ID, []string{"PCI-8.4"}, true)
	_, err = client.AuditCase.UpdateOneID(flagged.ID).SetCancelRequested(true).Save(ctx)
	require.NoError(t, err)

	result, err := o.Execute(ctx, newAuditJob(t, client, flagged.ID))
	require.NoError(t, err)
	assert.Equal(t, "failed", result["status"])

	got, err := client.AuditCase.Get(ctx, flagged.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "cancelled", *got.ErrorMessage)
	assert.Empty(t, got.StepsCompleted)
}
