// Code generated by ent, DO NOT EDIT.

package assignmentrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldSource, v))
}

// CarInterest applies equality check predicate on the "car_interest" field. It's identical to CarInterestEQ.
func CarInterest(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldCarInterest, v))
}

// AssignToTeam applies equality check predicate on the "assign_to_team" field. It's identical to AssignToTeamEQ.
func AssignToTeam(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssignToTeam, v))
}

// RoundRobin applies equality check predicate on the "round_robin" field. It's identical to RoundRobinEQ.
func RoundRobin(v bool) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldRoundRobin, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContainsFold(FieldSource, v))
}

// CarInterestEQ applies the EQ predicate on the "car_interest" field.
func CarInterestEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldCarInterest, v))
}

// CarInterestNEQ applies the NEQ predicate on the "car_interest" field.
func CarInterestNEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldCarInterest, v))
}

// CarInterestIn applies the In predicate on the "car_interest" field.
func CarInterestIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldCarInterest, vs...))
}

// CarInterestNotIn applies the NotIn predicate on the "car_interest" field.
func CarInterestNotIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldCarInterest, vs...))
}

// CarInterestGT applies the GT predicate on the "car_interest" field.
func CarInterestGT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldCarInterest, v))
}

// CarInterestGTE applies the GTE predicate on the "car_interest" field.
func CarInterestGTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldCarInterest, v))
}

// CarInterestLT applies the LT predicate on the "car_interest" field.
func CarInterestLT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldCarInterest, v))
}

// CarInterestLTE applies the LTE predicate on the "car_interest" field.
func CarInterestLTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldCarInterest, v))
}

// CarInterestContains applies the Contains predicate on the "car_interest" field.
func CarInterestContains(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContains(FieldCarInterest, v))
}

// CarInterestHasPrefix applies the HasPrefix predicate on the "car_interest" field.
func CarInterestHasPrefix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasPrefix(FieldCarInterest, v))
}

// CarInterestHasSuffix applies the HasSuffix predicate on the "car_interest" field.
func CarInterestHasSuffix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasSuffix(FieldCarInterest, v))
}

// CarInterestIsNil applies the IsNil predicate on the "car_interest" field.
func CarInterestIsNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIsNull(FieldCarInterest))
}

// CarInterestNotNil applies the NotNil predicate on the "car_interest" field.
func CarInterestNotNil() predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotNull(FieldCarInterest))
}

// CarInterestEqualFold applies the EqualFold predicate on the "car_interest" field.
func CarInterestEqualFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEqualFold(FieldCarInterest, v))
}

// CarInterestContainsFold applies the ContainsFold predicate on the "car_interest" field.
func CarInterestContainsFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContainsFold(FieldCarInterest, v))
}

// AssignToTeamEQ applies the EQ predicate on the "assign_to_team" field.
func AssignToTeamEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldAssignToTeam, v))
}

// AssignToTeamNEQ applies the NEQ predicate on the "assign_to_team" field.
func AssignToTeamNEQ(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldAssignToTeam, v))
}

// AssignToTeamIn applies the In predicate on the "assign_to_team" field.
func AssignToTeamIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldAssignToTeam, vs...))
}

// AssignToTeamNotIn applies the NotIn predicate on the "assign_to_team" field.
func AssignToTeamNotIn(vs ...string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldAssignToTeam, vs...))
}

// AssignToTeamGT applies the GT predicate on the "assign_to_team" field.
func AssignToTeamGT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldAssignToTeam, v))
}

// AssignToTeamGTE applies the GTE predicate on the "assign_to_team" field.
func AssignToTeamGTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldAssignToTeam, v))
}

// AssignToTeamLT applies the LT predicate on the "assign_to_team" field.
func AssignToTeamLT(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldAssignToTeam, v))
}

// AssignToTeamLTE applies the LTE predicate on the "assign_to_team" field.
func AssignToTeamLTE(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldAssignToTeam, v))
}

// AssignToTeamContains applies the Contains predicate on the "assign_to_team" field.
func AssignToTeamContains(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContains(FieldAssignToTeam, v))
}

// AssignToTeamHasPrefix applies the HasPrefix predicate on the "assign_to_team" field.
func AssignToTeamHasPrefix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasPrefix(FieldAssignToTeam, v))
}

// AssignToTeamHasSuffix applies the HasSuffix predicate on the "assign_to_team" field.
func AssignToTeamHasSuffix(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldHasSuffix(FieldAssignToTeam, v))
}

// AssignToTeamEqualFold applies the EqualFold predicate on the "assign_to_team" field.
func AssignToTeamEqualFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEqualFold(FieldAssignToTeam, v))
}

// AssignToTeamContainsFold applies the ContainsFold predicate on the "assign_to_team" field.
func AssignToTeamContainsFold(v string) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldContainsFold(FieldAssignToTeam, v))
}

// RoundRobinEQ applies the EQ predicate on the "round_robin" field.
func RoundRobinEQ(v bool) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldRoundRobin, v))
}

// RoundRobinNEQ applies the NEQ predicate on the "round_robin" field.
func RoundRobinNEQ(v bool) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldRoundRobin, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssignmentRule) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssignmentRule) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssignmentRule) predicate.AssignmentRule {
	return predicate.AssignmentRule(sql.NotPredicates(p))
}
