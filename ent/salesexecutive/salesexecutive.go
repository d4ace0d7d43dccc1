// Code generated by ent, DO NOT EDIT.

package salesexecutive

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the salesexecutive type in the database.
	Label = "sales_executive"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAvatar holds the string denoting the avatar field in the database.
	FieldAvatar = "avatar"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldTeam holds the string denoting the team field in the database.
	FieldTeam = "team"
	// FieldLeadsAssigned holds the string denoting the leads_assigned field in the database.
	FieldLeadsAssigned = "leads_assigned"
	// Table holds the table name of the salesexecutive in the database.
	Table = "sales_executives"
)

// Columns holds all SQL columns for salesexecutive fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAvatar,
	FieldEmail,
	FieldPhone,
	FieldTeam,
	FieldLeadsAssigned,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultAvatar holds the default value on creation for the "avatar" field.
	DefaultAvatar string
	// DefaultPhone holds the default value on creation for the "phone" field.
	DefaultPhone string
	// DefaultLeadsAssigned holds the default value on creation for the "leads_assigned" field.
	DefaultLeadsAssigned int
	// LeadsAssignedValidator is a validator for the "leads_assigned" field. It is called by the builders before save.
	LeadsAssignedValidator func(int) error
)

// OrderOption defines the ordering options for the SalesExecutive queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAvatar orders the results by the avatar field.
func ByAvatar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatar, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByTeam orders the results by the team field.
func ByTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeam, opts...).ToFunc()
}

// ByLeadsAssigned orders the results by the leads_assigned field.
func ByLeadsAssigned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadsAssigned, opts...).ToFunc()
}
