package models

import (
	"encoding/json"
	"fmt"
)

// IndexJobPayload parameterizes an index job. A zero CommitSHA with no
// ChangedFiles means a full pass over the default branch.
type IndexJobPayload struct {
	RepoID       string   `json:"repo_id"`
	CommitSHA    string   `json:"commit_sha,omitempty"`
	ChangedFiles []string `json:"changed_files,omitempty"`
}

// Delta reports whether this payload requests a delta pass.
func (p IndexJobPayload) Delta() bool {
	return len(p.ChangedFiles) > 0
}

// AuditJobPayload parameterizes an audit job.
type AuditJobPayload struct {
	CaseID string `json:"case_id"`
}

// PayloadToMap converts a typed job payload to the map form stored on the
// job row.
func PayloadToMap(payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return m, nil
}

// PayloadFromMap converts the stored map form back into a typed payload.
func PayloadFromMap(m map[string]any, target any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal payload map: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return nil
}
