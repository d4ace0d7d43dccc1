// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentRulesColumns holds the columns for the "assignment_rules" table.
	AssignmentRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "car_interest", Type: field.TypeString, Nullable: true},
		{Name: "assign_to_team", Type: field.TypeString},
		{Name: "round_robin", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssignmentRulesTable holds the schema information for the "assignment_rules" table.
	AssignmentRulesTable = &schema.Table{
		Name:       "assignment_rules",
		Columns:    AssignmentRulesColumns,
		PrimaryKey: []*schema.Column{AssignmentRulesColumns[0]},
	}
	// DeletedLeadsColumns holds the columns for the "deleted_leads" table.
	DeletedLeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "lead_name", Type: field.TypeString},
		{Name: "lead_source", Type: field.TypeString},
		{Name: "lead_status", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "deleted_at", Type: field.TypeTime},
	}
	// DeletedLeadsTable holds the schema information for the "deleted_leads" table.
	DeletedLeadsTable = &schema.Table{
		Name:       "deleted_leads",
		Columns:    DeletedLeadsColumns,
		PrimaryKey: []*schema.Column{DeletedLeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deletedlead_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{DeletedLeadsColumns[6]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"facebook", "google", "twitter", "website", "offline"}, Default: "offline"},
		{Name: "car_interest", Type: field.TypeEnum, Enums: []string{"suv", "sedan", "hatchback", "ev", "luxury", "muv"}, Default: "suv"},
		{Name: "car_model", Type: field.TypeString, Default: ""},
		{Name: "budget", Type: field.TypeString, Default: ""},
		{Name: "campaign_name", Type: field.TypeString, Nullable: true},
		{Name: "test_drive_date", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "not_interested", "closed_won", "closed_lost"}, Default: "new"},
		{Name: "assigned_to", Type: field.TypeInt, Default: 0},
		{Name: "assigned_to_name", Type: field.TypeString, Default: ""},
		{Name: "activities", Type: field.TypeJSON},
		{Name: "call_logs", Type: field.TypeJSON},
		{Name: "notes", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[10]},
			},
			{
				Name:    "lead_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[4]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[16]},
			},
			{
				Name:    "lead_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11]},
			},
		},
	}
	// SalesExecutivesColumns holds the columns for the "sales_executives" table.
	SalesExecutivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "avatar", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "team", Type: field.TypeString, Nullable: true},
		{Name: "leads_assigned", Type: field.TypeInt, Default: 0},
	}
	// SalesExecutivesTable holds the schema information for the "sales_executives" table.
	SalesExecutivesTable = &schema.Table{
		Name:       "sales_executives",
		Columns:    SalesExecutivesColumns,
		PrimaryKey: []*schema.Column{SalesExecutivesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentRulesTable,
		DeletedLeadsTable,
		LeadsTable,
		SalesExecutivesTable,
	}
)

func init() {
}
