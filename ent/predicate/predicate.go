// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditCase is the predicate function for auditcase builders.
type AuditCase func(*sql.Selector)

// CaseLog is the predicate function for caselog builders.
type CaseLog func(*sql.Selector)

// Finding is the predicate function for finding builders.
type Finding func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Repository is the predicate function for repository builders.
type Repository func(*sql.Selector)
