// Code generated by ent, DO NOT EDIT.

package repository

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fincomply/vigil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldID, id))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldFullName, v))
}

// GithubID applies equality check predicate on the "github_id" field. It's identical to GithubIDEQ.
func GithubID(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldGithubID, v))
}

// InstallationID applies equality check predicate on the "installation_id" field. It's identical to InstallationIDEQ.
func InstallationID(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldInstallationID, v))
}

// DefaultBranch applies equality check predicate on the "default_branch" field. It's identical to DefaultBranchEQ.
func DefaultBranch(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldDefaultBranch, v))
}

// LastCommitSha applies equality check predicate on the "last_commit_sha" field. It's identical to LastCommitShaEQ.
func LastCommitSha(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldLastCommitSha, v))
}

// IndexedFileCount applies equality check predicate on the "indexed_file_count" field. It's identical to IndexedFileCountEQ.
func IndexedFileCount(v int) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldIndexedFileCount, v))
}

// TotalChunks applies equality check predicate on the "total_chunks" field. It's identical to TotalChunksEQ.
func TotalChunks(v int) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldTotalChunks, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastIndexedAt applies equality check predicate on the "last_indexed_at" field. It's identical to LastIndexedAtEQ.
func LastIndexedAt(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldLastIndexedAt, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldFullName, v))
}

// GithubIDEQ applies the EQ predicate on the "github_id" field.
func GithubIDEQ(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldGithubID, v))
}

// GithubIDNEQ applies the NEQ predicate on the "github_id" field.
func GithubIDNEQ(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldGithubID, v))
}

// GithubIDIn applies the In predicate on the "github_id" field.
func GithubIDIn(vs ...int64) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldGithubID, vs...))
}

// GithubIDNotIn applies the NotIn predicate on the "github_id" field.
func GithubIDNotIn(vs ...int64) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldGithubID, vs...))
}

// GithubIDGT applies the GT predicate on the "github_id" field.
func GithubIDGT(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldGithubID, v))
}

// GithubIDGTE applies the GTE predicate on the "github_id" field.
func GithubIDGTE(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldGithubID, v))
}

// GithubIDLT applies the LT predicate on the "github_id" field.
func GithubIDLT(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldGithubID, v))
}

// GithubIDLTE applies the LTE predicate on the "github_id" field.
func GithubIDLTE(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldGithubID, v))
}

// GithubIDIsNil applies the IsNil predicate on the "github_id" field.
func GithubIDIsNil() predicate.Repository {
	return predicate.Repository(sql.FieldIsNull(FieldGithubID))
}

// GithubIDNotNil applies the NotNil predicate on the "github_id" field.
func GithubIDNotNil() predicate.Repository {
	return predicate.Repository(sql.FieldNotNull(FieldGithubID))
}

// InstallationIDEQ applies the EQ predicate on the "installation_id" field.
func InstallationIDEQ(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldInstallationID, v))
}

// InstallationIDNEQ applies the NEQ predicate on the "installation_id" field.
func InstallationIDNEQ(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldInstallationID, v))
}

// InstallationIDIn applies the In predicate on the "installation_id" field.
func InstallationIDIn(vs ...int64) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldInstallationID, vs...))
}

// InstallationIDNotIn applies the NotIn predicate on the "installation_id" field.
func InstallationIDNotIn(vs ...int64) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldInstallationID, vs...))
}

// InstallationIDGT applies the GT predicate on the "installation_id" field.
func InstallationIDGT(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldInstallationID, v))
}

// InstallationIDGTE applies the GTE predicate on the "installation_id" field.
func InstallationIDGTE(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldInstallationID, v))
}

// InstallationIDLT applies the LT predicate on the "installation_id" field.
func InstallationIDLT(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldInstallationID, v))
}

// InstallationIDLTE applies the LTE predicate on the "installation_id" field.
func InstallationIDLTE(v int64) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldInstallationID, v))
}

// DefaultBranchEQ applies the EQ predicate on the "default_branch" field.
func DefaultBranchEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldDefaultBranch, v))
}

// DefaultBranchNEQ applies the NEQ predicate on the "default_branch" field.
func DefaultBranchNEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldDefaultBranch, v))
}

// DefaultBranchIn applies the In predicate on the "default_branch" field.
func DefaultBranchIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldDefaultBranch, vs...))
}

// DefaultBranchNotIn applies the NotIn predicate on the "default_branch" field.
func DefaultBranchNotIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldDefaultBranch, vs...))
}

// DefaultBranchGT applies the GT predicate on the "default_branch" field.
func DefaultBranchGT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldDefaultBranch, v))
}

// DefaultBranchGTE applies the GTE predicate on the "default_branch" field.
func DefaultBranchGTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldDefaultBranch, v))
}

// DefaultBranchLT applies the LT predicate on the "default_branch" field.
func DefaultBranchLT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldDefaultBranch, v))
}

// DefaultBranchLTE applies the LTE predicate on the "default_branch" field.
func DefaultBranchLTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldDefaultBranch, v))
}

// DefaultBranchContains applies the Contains predicate on the "default_branch" field.
func DefaultBranchContains(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContains(FieldDefaultBranch, v))
}

// DefaultBranchHasPrefix applies the HasPrefix predicate on the "default_branch" field.
func DefaultBranchHasPrefix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasPrefix(FieldDefaultBranch, v))
}

// DefaultBranchHasSuffix applies the HasSuffix predicate on the "default_branch" field.
func DefaultBranchHasSuffix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasSuffix(FieldDefaultBranch, v))
}

// DefaultBranchEqualFold applies the EqualFold predicate on the "default_branch" field.
func DefaultBranchEqualFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldDefaultBranch, v))
}

// DefaultBranchContainsFold applies the ContainsFold predicate on the "default_branch" field.
func DefaultBranchContainsFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldDefaultBranch, v))
}

// LastCommitShaEQ applies the EQ predicate on the "last_commit_sha" field.
func LastCommitShaEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldLastCommitSha, v))
}

// LastCommitShaNEQ applies the NEQ predicate on the "last_commit_sha" field.
func LastCommitShaNEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldLastCommitSha, v))
}

// LastCommitShaIn applies the In predicate on the "last_commit_sha" field.
func LastCommitShaIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldLastCommitSha, vs...))
}

// LastCommitShaNotIn applies the NotIn predicate on the "last_commit_sha" field.
func LastCommitShaNotIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldLastCommitSha, vs...))
}

// LastCommitShaGT applies the GT predicate on the "last_commit_sha" field.
func LastCommitShaGT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldLastCommitSha, v))
}

// LastCommitShaGTE applies the GTE predicate on the "last_commit_sha" field.
func LastCommitShaGTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldLastCommitSha, v))
}

// LastCommitShaLT applies the LT predicate on the "last_commit_sha" field.
func LastCommitShaLT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldLastCommitSha, v))
}

// LastCommitShaLTE applies the LTE predicate on the "last_commit_sha" field.
func LastCommitShaLTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldLastCommitSha, v))
}

// LastCommitShaContains applies the Contains predicate on the "last_commit_sha" field.
func LastCommitShaContains(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContains(FieldLastCommitSha, v))
}

// LastCommitShaHasPrefix applies the HasPrefix predicate on the "last_commit_sha" field.
func LastCommitShaHasPrefix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasPrefix(FieldLastCommitSha, v))
}

// LastCommitShaHasSuffix applies the HasSuffix predicate on the "last_commit_sha" field.
func LastCommitShaHasSuffix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasSuffix(FieldLastCommitSha, v))
}

// LastCommitShaIsNil applies the IsNil predicate on the "last_commit_sha" field.
func LastCommitShaIsNil() predicate.Repository {
	return predicate.Repository(sql.FieldIsNull(FieldLastCommitSha))
}

// LastCommitShaNotNil applies the NotNil predicate on the "last_commit_sha" field.
func LastCommitShaNotNil() predicate.Repository {
	return predicate.Repository(sql.FieldNotNull(FieldLastCommitSha))
}

// LastCommitShaEqualFold applies the EqualFold predicate on the "last_commit_sha" field.
func LastCommitShaEqualFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldLastCommitSha, v))
}

// LastCommitShaContainsFold applies the ContainsFold predicate on the "last_commit_sha" field.
func LastCommitShaContainsFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldLastCommitSha, v))
}

// IndexedFileCountEQ applies the EQ predicate on the "indexed_file_count" field.
func IndexedFileCountEQ(v int) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldIndexedFileCount, v))
}

// IndexedFileCountNEQ applies the NEQ predicate on the "indexed_file_count" field.
func IndexedFileCountNEQ(v int) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldIndexedFileCount, v))
}

// IndexedFileCountIn applies the In predicate on the "indexed_file_count" field.
func IndexedFileCountIn(vs ...int) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldIndexedFileCount, vs...))
}

// IndexedFileCountNotIn applies the NotIn predicate on the "indexed_file_count" field.
func IndexedFileCountNotIn(vs ...int) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldIndexedFileCount, vs...))
}

// IndexedFileCountGT applies the GT predicate on the "indexed_file_count" field.
func IndexedFileCountGT(v int) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldIndexedFileCount, v))
}

// IndexedFileCountGTE applies the GTE predicate on the "indexed_file_count" field.
func IndexedFileCountGTE(v int) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldIndexedFileCount, v))
}

// IndexedFileCountLT applies the LT predicate on the "indexed_file_count" field.
func IndexedFileCountLT(v int) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldIndexedFileCount, v))
}

// IndexedFileCountLTE applies the LTE predicate on the "indexed_file_count" field.
func IndexedFileCountLTE(v int) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldIndexedFileCount, v))
}

// TotalChunksEQ applies the EQ predicate on the "total_chunks" field.
func TotalChunksEQ(v int) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldTotalChunks, v))
}

// TotalChunksNEQ applies the NEQ predicate on the "total_chunks" field.
func TotalChunksNEQ(v int) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldTotalChunks, v))
}

// TotalChunksIn applies the In predicate on the "total_chunks" field.
func TotalChunksIn(vs ...int) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldTotalChunks, vs...))
}

// TotalChunksNotIn applies the NotIn predicate on the "total_chunks" field.
func TotalChunksNotIn(vs ...int) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldTotalChunks, vs...))
}

// TotalChunksGT applies the GT predicate on the "total_chunks" field.
func TotalChunksGT(v int) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldTotalChunks, v))
}

// TotalChunksGTE applies the GTE predicate on the "total_chunks" field.
func TotalChunksGTE(v int) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldTotalChunks, v))
}

// TotalChunksLT applies the LT predicate on the "total_chunks" field.
func TotalChunksLT(v int) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldTotalChunks, v))
}

// TotalChunksLTE applies the LTE predicate on the "total_chunks" field.
func TotalChunksLTE(v int) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldTotalChunks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldUpdatedAt, v))
}

// LastIndexedAtEQ applies the EQ predicate on the "last_indexed_at" field.
func LastIndexedAtEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldLastIndexedAt, v))
}

// LastIndexedAtNEQ applies the NEQ predicate on the "last_indexed_at" field.
func LastIndexedAtNEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldLastIndexedAt, v))
}

// LastIndexedAtIn applies the In predicate on the "last_indexed_at" field.
func LastIndexedAtIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldLastIndexedAt, vs...))
}

// LastIndexedAtNotIn applies the NotIn predicate on the "last_indexed_at" field.
func LastIndexedAtNotIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldLastIndexedAt, vs...))
}

// LastIndexedAtGT applies the GT predicate on the "last_indexed_at" field.
func LastIndexedAtGT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldLastIndexedAt, v))
}

// LastIndexedAtGTE applies the GTE predicate on the "last_indexed_at" field.
func LastIndexedAtGTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldLastIndexedAt, v))
}

// LastIndexedAtLT applies the LT predicate on the "last_indexed_at" field.
func LastIndexedAtLT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldLastIndexedAt, v))
}

// LastIndexedAtLTE applies the LTE predicate on the "last_indexed_at" field.
func LastIndexedAtLTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldLastIndexedAt, v))
}

// LastIndexedAtIsNil applies the IsNil predicate on the "last_indexed_at" field.
func LastIndexedAtIsNil() predicate.Repository {
	return predicate.Repository(sql.FieldIsNull(FieldLastIndexedAt))
}

// LastIndexedAtNotNil applies the NotNil predicate on the "last_indexed_at" field.
func LastIndexedAtNotNil() predicate.Repository {
	return predicate.Repository(sql.FieldNotNull(FieldLastIndexedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Repository) predicate.Repository {
	return predicate.Repository(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Repository) predicate.Repository {
	return predicate.Repository(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Repository) predicate.Repository {
	return predicate.Repository(sql.NotPredicates(p))
}
