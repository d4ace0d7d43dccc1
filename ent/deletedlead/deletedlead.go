// Code generated by ent, DO NOT EDIT.

package deletedlead

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deletedlead type in the database.
	Label = "deleted_lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldLeadName holds the string denoting the lead_name field in the database.
	FieldLeadName = "lead_name"
	// FieldLeadSource holds the string denoting the lead_source field in the database.
	FieldLeadSource = "lead_source"
	// FieldLeadStatus holds the string denoting the lead_status field in the database.
	FieldLeadStatus = "lead_status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the deletedlead in the database.
	Table = "deleted_leads"
)

// Columns holds all SQL columns for deletedlead fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldLeadName,
	FieldLeadSource,
	FieldLeadStatus,
	FieldReason,
	FieldDeletedAt,
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
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// DefaultDeletedAt holds the default value on creation for the "deleted_at" field.
	DefaultDeletedAt func() time.Time
)

// OrderOption defines the ordering options for the DeletedLead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByLeadName orders the results by the lead_name field.
func ByLeadName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadName, opts...).ToFunc()
}

// ByLeadSource orders the results by the lead_source field.
func ByLeadSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadSource, opts...).ToFunc()
}

// ByLeadStatus orders the results by the lead_status field.
func ByLeadStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
