// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CasesColumns holds the columns for the "cases" table.
	CasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "repo_id", Type: field.TypeString},
		{Name: "regulation_ids", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting_approval", "completed", "failed", "paused"}, Default: "pending"},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "steps_completed", Type: field.TypeJSON, Nullable: true},
		{Name: "steps_pending", Type: field.TypeJSON, Nullable: true},
		{Name: "plan_result", Type: field.TypeJSON, Nullable: true},
		{Name: "navigation_result", Type: field.TypeJSON, Nullable: true},
		{Name: "investigation_result", Type: field.TypeJSON, Nullable: true},
		{Name: "judge_result", Type: field.TypeJSON, Nullable: true},
		{Name: "remediation_result", Type: field.TypeJSON, Nullable: true},
		{Name: "requires_approval", Type: field.TypeBool, Default: true},
		{Name: "user_decision", Type: field.TypeString, Nullable: true},
		{Name: "jira_ticket_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
	}
	// CasesTable holds the schema information for the "cases" table.
	CasesTable = &schema.Table{
		Name:       "cases",
		Columns:    CasesColumns,
		PrimaryKey: []*schema.Column{CasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditcase_repo_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[1], CasesColumns[18]},
			},
			{
				Name:    "auditcase_status",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[3]},
			},
			{
				Name:    "auditcase_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[3], CasesColumns[20]},
			},
		},
	}
	// CaseLogsColumns holds the columns for the "case_logs" table.
	CaseLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// CaseLogsTable holds the schema information for the "case_logs" table.
	CaseLogsTable = &schema.Table{
		Name:       "case_logs",
		Columns:    CaseLogsColumns,
		PrimaryKey: []*schema.Column{CaseLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caselog_case_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{CaseLogsColumns[1], CaseLogsColumns[4]},
			},
			{
				Name:    "caselog_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CaseLogsColumns[6]},
			},
		},
	}
	// FindingsColumns holds the columns for the "findings" table.
	FindingsColumns = []*schema.Column{
		{Name: "finding_id", Type: field.TypeString, Unique: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "start_line", Type: field.TypeInt},
		{Name: "end_line", Type: field.TypeInt},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"compliant", "non_compliant", "partial", "unclear"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "severity_score", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "evidence", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "remediation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "ignored"}, Default: "pending"},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FindingsTable holds the schema information for the "findings" table.
	FindingsTable = &schema.Table{
		Name:       "findings",
		Columns:    FindingsColumns,
		PrimaryKey: []*schema.Column{FindingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "finding_case_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[1], FindingsColumns[17]},
			},
			{
				Name:    "finding_case_id_verdict",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[1], FindingsColumns[6]},
			},
			{
				Name:    "finding_rule_id",
				Unique:  false,
				Columns: []*schema.Column{FindingsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"index", "audit"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed"}, Default: "queued"},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[11]},
			},
			{
				Name:    "job_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[8]},
			},
			{
				Name:    "job_type_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3]},
			},
			{
				Name:    "job_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[13]},
			},
		},
	}
	// ReposColumns holds the columns for the "repos" table.
	ReposColumns = []*schema.Column{
		{Name: "repo_id", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "github_id", Type: field.TypeInt64, Nullable: true},
		{Name: "installation_id", Type: field.TypeInt64, Default: 0},
		{Name: "default_branch", Type: field.TypeString, Default: "main"},
		{Name: "last_commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "indexed_file_count", Type: field.TypeInt, Default: 0},
		{Name: "total_chunks", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_indexed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReposTable holds the schema information for the "repos" table.
	ReposTable = &schema.Table{
		Name:       "repos",
		Columns:    ReposColumns,
		PrimaryKey: []*schema.Column{ReposColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "repository_full_name",
				Unique:  true,
				Columns: []*schema.Column{ReposColumns[1]},
			},
			{
				Name:    "repository_installation_id",
				Unique:  false,
				Columns: []*schema.Column{ReposColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CasesTable,
		CaseLogsTable,
		FindingsTable,
		JobsTable,
		ReposTable,
	}
)

func init() {
	CasesTable.Annotation = &entsql.Annotation{
		Table: "cases",
	}
	CaseLogsTable.Annotation = &entsql.Annotation{
		Table: "case_logs",
	}
	FindingsTable.Annotation = &entsql.Annotation{
		Table: "findings",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	ReposTable.Annotation = &entsql.Annotation{
		Table: "repos",
	}
}
