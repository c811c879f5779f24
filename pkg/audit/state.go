package audit

import (
	"fmt"

	"github.com/fincomply/vigil/pkg/models"
)

// Step result blobs persisted on the case row. Each step writes exactly one
// blob; a resumed case re-reads the blobs of completed steps instead of
// recomputing them.

type planBlob struct {
	Plans []models.PlanResult `json:"plans"`
}

type navigationBlob struct {
	Navigations []models.NavigationResult `json:"navigations"`
}

type investigationBlob struct {
	Investigations []models.InvestigationResult `json:"investigations"`
}

type judgeBlob struct {
	Judgements     []models.JudgeResult `json:"judgements"`
	OverallVerdict string               `json:"overall_verdict"`
	Confidence     float64              `json:"confidence"`
}

type remediationBlob struct {
	Tasks []models.RemediationTask `json:"tasks"`
}

func encodeBlob(blob any) (map[string]any, error) {
	m, err := models.PayloadToMap(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to encode step result: %w", err)
	}
	return m, nil
}

func decodeBlob(m map[string]any, target any) error {
	if m == nil {
		return fmt.Errorf("step result missing")
	}
	if err := models.PayloadFromMap(m, target); err != nil {
		return fmt.Errorf("failed to decode step result: %w", err)
	}
	return nil
}
