// Code generated by ent, DO NOT EDIT.

package repository

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the repository type in the database.
	Label = "repository"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "repo_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldGithubID holds the string denoting the github_id field in the database.
	FieldGithubID = "github_id"
	// FieldInstallationID holds the string denoting the installation_id field in the database.
	FieldInstallationID = "installation_id"
	// FieldDefaultBranch holds the string denoting the default_branch field in the database.
	FieldDefaultBranch = "default_branch"
	// FieldLastCommitSha holds the string denoting the last_commit_sha field in the database.
	FieldLastCommitSha = "last_commit_sha"
	// FieldIndexedFileCount holds the string denoting the indexed_file_count field in the database.
	FieldIndexedFileCount = "indexed_file_count"
	// FieldTotalChunks holds the string denoting the total_chunks field in the database.
	FieldTotalChunks = "total_chunks"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLastIndexedAt holds the string denoting the last_indexed_at field in the database.
	FieldLastIndexedAt = "last_indexed_at"
	// Table holds the table name of the repository in the database.
	Table = "repos"
)

// Columns holds all SQL columns for repository fields.
var Columns = []string{
	FieldID,
	FieldFullName,
	FieldGithubID,
	FieldInstallationID,
	FieldDefaultBranch,
	FieldLastCommitSha,
	FieldIndexedFileCount,
	FieldTotalChunks,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLastIndexedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultInstallationID holds the default value on creation for the "installation_id" field.
	DefaultInstallationID int64
	// DefaultDefaultBranch holds the default value on creation for the "default_branch" field.
	DefaultDefaultBranch string
	// DefaultIndexedFileCount holds the default value on creation for the "indexed_file_count" field.
	DefaultIndexedFileCount int
	// DefaultTotalChunks holds the default value on creation for the "total_chunks" field.
	DefaultTotalChunks int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Repository queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByGithubID orders the results by the github_id field.
func ByGithubID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGithubID, opts...).ToFunc()
}

// ByInstallationID orders the results by the installation_id field.
func ByInstallationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallationID, opts...).ToFunc()
}

// ByDefaultBranch orders the results by the default_branch field.
func ByDefaultBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultBranch, opts...).ToFunc()
}

// ByLastCommitSha orders the results by the last_commit_sha field.
func ByLastCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCommitSha, opts...).ToFunc()
}

// ByIndexedFileCount orders the results by the indexed_file_count field.
func ByIndexedFileCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexedFileCount, opts...).ToFunc()
}

// ByTotalChunks orders the results by the total_chunks field.
func ByTotalChunks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChunks, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLastIndexedAt orders the results by the last_indexed_at field.
func ByLastIndexedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastIndexedAt, opts...).ToFunc()
}
