// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssignmentRule is the predicate function for assignmentrule builders.
type AssignmentRule func(*sql.Selector)

// DeletedLead is the predicate function for deletedlead builders.
type DeletedLead func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// SalesExecutive is the predicate function for salesexecutive builders.
type SalesExecutive func(*sql.Selector)
