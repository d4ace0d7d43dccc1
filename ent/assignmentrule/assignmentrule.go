// Code generated by ent, DO NOT EDIT.

package assignmentrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assignmentrule type in the database.
	Label = "assignment_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCarInterest holds the string denoting the car_interest field in the database.
	FieldCarInterest = "car_interest"
	// FieldAssignToTeam holds the string denoting the assign_to_team field in the database.
	FieldAssignToTeam = "assign_to_team"
	// FieldRoundRobin holds the string denoting the round_robin field in the database.
	FieldRoundRobin = "round_robin"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the assignmentrule in the database.
	Table = "assignment_rules"
)

// Columns holds all SQL columns for assignmentrule fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldCarInterest,
	FieldAssignToTeam,
	FieldRoundRobin,
	FieldCreatedAt,
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
	// AssignToTeamValidator is a validator for the "assign_to_team" field. It is called by the builders before save.
	AssignToTeamValidator func(string) error
	// DefaultRoundRobin holds the default value on creation for the "round_robin" field.
	DefaultRoundRobin bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AssignmentRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCarInterest orders the results by the car_interest field.
func ByCarInterest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarInterest, opts...).ToFunc()
}

// ByAssignToTeam orders the results by the assign_to_team field.
func ByAssignToTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignToTeam, opts...).ToFunc()
}

// ByRoundRobin orders the results by the round_robin field.
func ByRoundRobin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundRobin, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
