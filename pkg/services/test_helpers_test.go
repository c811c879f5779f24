package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/queue"
	"github.com/fincomply/vigil/test/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*ent.Client, *stdsql.DB, *queue.Service) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	return client, db, queue.NewService(client, config.DefaultQueueConfig())
}

func seedRepo(t *testing.T, client *ent.Client, fullName string) *ent.Repository {
	t.Helper()
	repo, err := client.Repository.Create().
		SetID(uuid.NewString()).
		SetFullName(fullName).
		Save(context.Background())
	require.NoError(t, err)
	return repo
}

func seedRegulation(t *testing.T, db *stdsql.DB, ruleID string, texts ...string) {
	t.Helper()
	for i, text := range texts {
		_, err := db.ExecContext(context.Background(),
			`INSERT INTO regulation_chunks (chunk_id, rule_id, chunk_text, chunk_index, chunk_hash)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), ruleID, text, i, fmt.Sprintf("%s-%d", ruleID, i))
		require.NoError(t, err)
	}
}

func seedCase(t *testing.T, client *ent.Client, repoID string, ruleIDs ...string) *ent.AuditCase {
	t.Helper()
	c, err := client.AuditCase.Create().
		SetID(uuid.NewString()).
		SetRepoID(repoID).
		SetRegulationIds(ruleIDs).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func seedFinding(t *testing.T, client *ent.Client, caseID, ruleID, filePath string) *ent.Finding {
	t.Helper()
	f, err := client.Finding.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetRuleID(ruleID).
		SetFilePath(filePath).
		SetStartLine(10).
		SetEndLine(24).
		SetVerdict(finding.VerdictNonCompliant).
		SetSeverity(finding.SeverityHigh).
		SetSeverityScore(7.5).
		SetEvidence("card number logged in plaintext").
		Save(context.Background())
	require.NoError(t, err)
	return f
}
