// Code generated by ent, DO NOT EDIT.

package finding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fincomply/vigil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCaseID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldRuleID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldFilePath, v))
}

// StartLine applies equality check predicate on the "start_line" field. It's identical to StartLineEQ.
func StartLine(v int) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldStartLine, v))
}

// EndLine applies equality check predicate on the "end_line" field. It's identical to EndLineEQ.
func EndLine(v int) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldEndLine, v))
}

// SeverityScore applies equality check predicate on the "severity_score" field. It's identical to SeverityScoreEQ.
func SeverityScore(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldSeverityScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldConfidence, v))
}

// Evidence applies equality check predicate on the "evidence" field. It's identical to EvidenceEQ.
func Evidence(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldEvidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldReasoning, v))
}

// Remediation applies equality check predicate on the "remediation" field. It's identical to RemediationEQ.
func Remediation(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldRemediation, v))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldTicketID, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldCaseID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldRuleID, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldFilePath, v))
}

// StartLineEQ applies the EQ predicate on the "start_line" field.
func StartLineEQ(v int) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldStartLine, v))
}

// StartLineNEQ applies the NEQ predicate on the "start_line" field.
func StartLineNEQ(v int) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldStartLine, v))
}

// StartLineIn applies the In predicate on the "start_line" field.
func StartLineIn(vs ...int) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldStartLine, vs...))
}

// StartLineNotIn applies the NotIn predicate on the "start_line" field.
func StartLineNotIn(vs ...int) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldStartLine, vs...))
}

// StartLineGT applies the GT predicate on the "start_line" field.
func StartLineGT(v int) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldStartLine, v))
}

// StartLineGTE applies the GTE predicate on the "start_line" field.
func StartLineGTE(v int) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldStartLine, v))
}

// StartLineLT applies the LT predicate on the "start_line" field.
func StartLineLT(v int) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldStartLine, v))
}

// StartLineLTE applies the LTE predicate on the "start_line" field.
func StartLineLTE(v int) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldStartLine, v))
}

// EndLineEQ applies the EQ predicate on the "end_line" field.
func EndLineEQ(v int) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldEndLine, v))
}

// EndLineNEQ applies the NEQ predicate on the "end_line" field.
func EndLineNEQ(v int) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldEndLine, v))
}

// EndLineIn applies the In predicate on the "end_line" field.
func EndLineIn(vs ...int) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldEndLine, vs...))
}

// EndLineNotIn applies the NotIn predicate on the "end_line" field.
func EndLineNotIn(vs ...int) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldEndLine, vs...))
}

// EndLineGT applies the GT predicate on the "end_line" field.
func EndLineGT(v int) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldEndLine, v))
}

// EndLineGTE applies the GTE predicate on the "end_line" field.
func EndLineGTE(v int) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldEndLine, v))
}

// EndLineLT applies the LT predicate on the "end_line" field.
func EndLineLT(v int) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldEndLine, v))
}

// EndLineLTE applies the LTE predicate on the "end_line" field.
func EndLineLTE(v int) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldEndLine, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldVerdict, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityScoreEQ applies the EQ predicate on the "severity_score" field.
func SeverityScoreEQ(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldSeverityScore, v))
}

// SeverityScoreNEQ applies the NEQ predicate on the "severity_score" field.
func SeverityScoreNEQ(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldSeverityScore, v))
}

// SeverityScoreIn applies the In predicate on the "severity_score" field.
func SeverityScoreIn(vs ...float64) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldSeverityScore, vs...))
}

// SeverityScoreNotIn applies the NotIn predicate on the "severity_score" field.
func SeverityScoreNotIn(vs ...float64) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldSeverityScore, vs...))
}

// SeverityScoreGT applies the GT predicate on the "severity_score" field.
func SeverityScoreGT(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldSeverityScore, v))
}

// SeverityScoreGTE applies the GTE predicate on the "severity_score" field.
func SeverityScoreGTE(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldSeverityScore, v))
}

// SeverityScoreLT applies the LT predicate on the "severity_score" field.
func SeverityScoreLT(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldSeverityScore, v))
}

// SeverityScoreLTE applies the LTE predicate on the "severity_score" field.
func SeverityScoreLTE(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldSeverityScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldConfidence, v))
}

// EvidenceEQ applies the EQ predicate on the "evidence" field.
func EvidenceEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldEvidence, v))
}

// EvidenceNEQ applies the NEQ predicate on the "evidence" field.
func EvidenceNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldEvidence, v))
}

// EvidenceIn applies the In predicate on the "evidence" field.
func EvidenceIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldEvidence, vs...))
}

// EvidenceNotIn applies the NotIn predicate on the "evidence" field.
func EvidenceNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldEvidence, vs...))
}

// EvidenceGT applies the GT predicate on the "evidence" field.
func EvidenceGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldEvidence, v))
}

// EvidenceGTE applies the GTE predicate on the "evidence" field.
func EvidenceGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldEvidence, v))
}

// EvidenceLT applies the LT predicate on the "evidence" field.
func EvidenceLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldEvidence, v))
}

// EvidenceLTE applies the LTE predicate on the "evidence" field.
func EvidenceLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldEvidence, v))
}

// EvidenceContains applies the Contains predicate on the "evidence" field.
func EvidenceContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldEvidence, v))
}

// EvidenceHasPrefix applies the HasPrefix predicate on the "evidence" field.
func EvidenceHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldEvidence, v))
}

// EvidenceHasSuffix applies the HasSuffix predicate on the "evidence" field.
func EvidenceHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldEvidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldEvidence))
}

// EvidenceEqualFold applies the EqualFold predicate on the "evidence" field.
func EvidenceEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldEvidence, v))
}

// EvidenceContainsFold applies the ContainsFold predicate on the "evidence" field.
func EvidenceContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldEvidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldReasoning, v))
}

// RemediationEQ applies the EQ predicate on the "remediation" field.
func RemediationEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldRemediation, v))
}

// RemediationNEQ applies the NEQ predicate on the "remediation" field.
func RemediationNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldRemediation, v))
}

// RemediationIn applies the In predicate on the "remediation" field.
func RemediationIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldRemediation, vs...))
}

// RemediationNotIn applies the NotIn predicate on the "remediation" field.
func RemediationNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldRemediation, vs...))
}

// RemediationGT applies the GT predicate on the "remediation" field.
func RemediationGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldRemediation, v))
}

// RemediationGTE applies the GTE predicate on the "remediation" field.
func RemediationGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldRemediation, v))
}

// RemediationLT applies the LT predicate on the "remediation" field.
func RemediationLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldRemediation, v))
}

// RemediationLTE applies the LTE predicate on the "remediation" field.
func RemediationLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldRemediation, v))
}

// RemediationContains applies the Contains predicate on the "remediation" field.
func RemediationContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldRemediation, v))
}

// RemediationHasPrefix applies the HasPrefix predicate on the "remediation" field.
func RemediationHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldRemediation, v))
}

// RemediationHasSuffix applies the HasSuffix predicate on the "remediation" field.
func RemediationHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldRemediation, v))
}

// RemediationIsNil applies the IsNil predicate on the "remediation" field.
func RemediationIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldRemediation))
}

// RemediationNotNil applies the NotNil predicate on the "remediation" field.
func RemediationNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldRemediation))
}

// RemediationEqualFold applies the EqualFold predicate on the "remediation" field.
func RemediationEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldRemediation, v))
}

// RemediationContainsFold applies the ContainsFold predicate on the "remediation" field.
func RemediationContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldRemediation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldStatus, vs...))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDIsNil applies the IsNil predicate on the "ticket_id" field.
func TicketIDIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldTicketID))
}

// TicketIDNotNil applies the NotNil predicate on the "ticket_id" field.
func TicketIDNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldTicketID))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldTicketID, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.Finding {
	return predicate.Finding(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.Finding {
	return predicate.Finding(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Finding {
	return predicate.Finding(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Finding {
	return predicate.Finding(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Finding {
	return predicate.Finding(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Finding) predicate.Finding {
	return predicate.Finding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Finding) predicate.Finding {
	return predicate.Finding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Finding) predicate.Finding {
	return predicate.Finding(sql.NotPredicates(p))
}
