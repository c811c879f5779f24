// Package caselog manages the append-only agent log of an audit case.
// The table is the durable record; NOTIFY events built from appended
// entries are advisory.
package caselog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/caselog"
	"github.com/fincomply/vigil/pkg/events"
	"github.com/google/uuid"
)

// appendRetries bounds the sequence-collision retry loop. Collisions only
// happen when two writers append to the same case concurrently, which the
// orchestrator avoids, so one retry is almost always enough.
const appendRetries = 3

// Service appends and reads case log entries.
type Service struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewService creates a case log service. The publisher may be nil; appends
// are then stored without broadcasting.
func NewService(client *ent.Client, publisher *events.Publisher) *Service {
	return &Service{client: client, publisher: publisher}
}

// Append stores a new log entry with the next per-case sequence number and
// broadcasts it. The write is the operation; the broadcast is best-effort.
func (s *Service) Append(ctx context.Context, caseID, agent, message string) (*ent.CaseLog, error) {
	var entry *ent.CaseLog
	var err error
	for attempt := 0; attempt < appendRetries; attempt++ {
		entry, err = s.appendOnce(ctx, caseID, agent, message)
		if err == nil {
			break
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		// Another writer took our sequence number; re-read and retry.
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append case log for %s: %w", caseID, err)
	}

	if s.publisher != nil {
		s.publisher.PublishCaseLog(ctx, events.CaseLogPayload{
			CaseID:    caseID,
			Agent:     entry.Agent,
			Message:   entry.Message,
			Sequence:  entry.Sequence,
			Timestamp: entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return entry, nil
}

func (s *Service) appendOnce(ctx context.Context, caseID, agent, message string) (*ent.CaseLog, error) {
	next, err := s.nextSequence(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return s.client.CaseLog.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetAgent(agent).
		SetMessage(message).
		SetSequence(next).
		SetCreatedAt(time.Now()).
		Save(ctx)
}

func (s *Service) nextSequence(ctx context.Context, caseID string) (int, error) {
	var rows []struct {
		Max *int `json:"max"`
	}
	err := s.client.CaseLog.Query().
		Where(caselog.CaseIDEQ(caseID)).
		Aggregate(ent.Max(caselog.FieldSequence)).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to read log sequence for %s: %w", caseID, err)
	}
	if len(rows) == 0 || rows[0].Max == nil {
		return 1, nil
	}
	return *rows[0].Max + 1, nil
}

// Read returns entries for a case with sequence > fromSeq, in sequence
// order. fromSeq 0 reads the whole log.
func (s *Service) Read(ctx context.Context, caseID string, fromSeq int) ([]*ent.CaseLog, error) {
	entries, err := s.client.CaseLog.Query().
		Where(
			caselog.CaseIDEQ(caseID),
			caselog.SequenceGT(fromSeq),
		).
		Order(ent.Asc(caselog.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read case log for %s: %w", caseID, err)
	}
	return entries, nil
}

// ExpireAfter stamps every entry of a case with an expiry time. Called when
// the case reaches a terminal state; the cleanup sweep deletes expired rows.
func (s *Service) ExpireAfter(ctx context.Context, caseID string, expiresAt time.Time) error {
	n, err := s.client.CaseLog.Update().
		Where(caselog.CaseIDEQ(caseID)).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set log expiry for %s: %w", caseID, err)
	}
	slog.Debug("Case log expiry set", "case_id", caseID, "entries", n, "expires_at", expiresAt)
	return nil
}

// DeleteExpired removes entries whose expiry has passed. Returns the number
// of rows deleted.
func (s *Service) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	n, err := s.client.CaseLog.Delete().
		Where(
			caselog.ExpiresAtNotNil(),
			caselog.ExpiresAtLT(now),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired case logs: %w", err)
	}
	return n, nil
}
