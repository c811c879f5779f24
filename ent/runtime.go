// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fincomply/vigil/ent/auditcase"
	"github.com/fincomply/vigil/ent/caselog"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/ent/repository"
	"github.com/fincomply/vigil/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditcaseFields := schema.AuditCase{}.Fields()
	_ = auditcaseFields
	// auditcaseDescRequiresApproval is the schema descriptor for requires_approval field.
	auditcaseDescRequiresApproval := auditcaseFields[12].Descriptor()
	// auditcase.DefaultRequiresApproval holds the default value on creation for the requires_approval field.
	auditcase.DefaultRequiresApproval = auditcaseDescRequiresApproval.Default.(bool)
	// auditcaseDescCancelRequested is the schema descriptor for cancel_requested field.
	auditcaseDescCancelRequested := auditcaseFields[16].Descriptor()
	// auditcase.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	auditcase.DefaultCancelRequested = auditcaseDescCancelRequested.Default.(bool)
	// auditcaseDescCreatedAt is the schema descriptor for created_at field.
	auditcaseDescCreatedAt := auditcaseFields[18].Descriptor()
	// auditcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditcase.DefaultCreatedAt = auditcaseDescCreatedAt.Default.(func() time.Time)
	caselogFields := schema.CaseLog{}.Fields()
	_ = caselogFields
	// caselogDescCreatedAt is the schema descriptor for created_at field.
	caselogDescCreatedAt := caselogFields[5].Descriptor()
	// caselog.DefaultCreatedAt holds the default value on creation for the created_at field.
	caselog.DefaultCreatedAt = caselogDescCreatedAt.Default.(func() time.Time)
	findingFields := schema.Finding{}.Fields()
	_ = findingFields
	// findingDescConfidence is the schema descriptor for confidence field.
	findingDescConfidence := findingFields[9].Descriptor()
	// finding.DefaultConfidence holds the default value on creation for the confidence field.
	finding.DefaultConfidence = findingDescConfidence.Default.(float64)
	// findingDescCreatedAt is the schema descriptor for created_at field.
	findingDescCreatedAt := findingFields[17].Descriptor()
	// finding.DefaultCreatedAt holds the default value on creation for the created_at field.
	finding.DefaultCreatedAt = findingDescCreatedAt.Default.(func() time.Time)
	// findingDescUpdatedAt is the schema descriptor for updated_at field.
	findingDescUpdatedAt := findingFields[18].Descriptor()
	// finding.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	finding.DefaultUpdatedAt = findingDescUpdatedAt.Default.(func() time.Time)
	// finding.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	finding.UpdateDefaultUpdatedAt = findingDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescRetries is the schema descriptor for retries field.
	jobDescRetries := jobFields[4].Descriptor()
	// job.DefaultRetries holds the default value on creation for the retries field.
	job.DefaultRetries = jobDescRetries.Default.(int)
	// jobDescMaxRetries is the schema descriptor for max_retries field.
	jobDescMaxRetries := jobFields[5].Descriptor()
	// job.DefaultMaxRetries holds the default value on creation for the max_retries field.
	job.DefaultMaxRetries = jobDescMaxRetries.Default.(int)
	// jobDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	jobDescTimeoutSeconds := jobFields[6].Descriptor()
	// job.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	job.DefaultTimeoutSeconds = jobDescTimeoutSeconds.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[11].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	repositoryFields := schema.Repository{}.Fields()
	_ = repositoryFields
	// repositoryDescInstallationID is the schema descriptor for installation_id field.
	repositoryDescInstallationID := repositoryFields[3].Descriptor()
	// repository.DefaultInstallationID holds the default value on creation for the installation_id field.
	repository.DefaultInstallationID = repositoryDescInstallationID.Default.(int64)
	// repositoryDescDefaultBranch is the schema descriptor for default_branch field.
	repositoryDescDefaultBranch := repositoryFields[4].Descriptor()
	// repository.DefaultDefaultBranch holds the default value on creation for the default_branch field.
	repository.DefaultDefaultBranch = repositoryDescDefaultBranch.Default.(string)
	// repositoryDescIndexedFileCount is the schema descriptor for indexed_file_count field.
	repositoryDescIndexedFileCount := repositoryFields[6].Descriptor()
	// repository.DefaultIndexedFileCount holds the default value on creation for the indexed_file_count field.
	repository.DefaultIndexedFileCount = repositoryDescIndexedFileCount.Default.(int)
	// repositoryDescTotalChunks is the schema descriptor for total_chunks field.
	repositoryDescTotalChunks := repositoryFields[7].Descriptor()
	// repository.DefaultTotalChunks holds the default value on creation for the total_chunks field.
	repository.DefaultTotalChunks = repositoryDescTotalChunks.Default.(int)
	// repositoryDescCreatedAt is the schema descriptor for created_at field.
	repositoryDescCreatedAt := repositoryFields[8].Descriptor()
	// repository.DefaultCreatedAt holds the default value on creation for the created_at field.
	repository.DefaultCreatedAt = repositoryDescCreatedAt.Default.(func() time.Time)
	// repositoryDescUpdatedAt is the schema descriptor for updated_at field.
	repositoryDescUpdatedAt := repositoryFields[9].Descriptor()
	// repository.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	repository.DefaultUpdatedAt = repositoryDescUpdatedAt.Default.(func() time.Time)
	// repository.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	repository.UpdateDefaultUpdatedAt = repositoryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
