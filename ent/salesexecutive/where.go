// Code generated by ent, DO NOT EDIT.

package salesexecutive

import (
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldName, v))
}

// Avatar applies equality check predicate on the "avatar" field. It's identical to AvatarEQ.
func Avatar(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldAvatar, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldPhone, v))
}

// Team applies equality check predicate on the "team" field. It's identical to TeamEQ.
func Team(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldTeam, v))
}

// LeadsAssigned applies equality check predicate on the "leads_assigned" field. It's identical to LeadsAssignedEQ.
func LeadsAssigned(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldLeadsAssigned, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContainsFold(FieldName, v))
}

// AvatarEQ applies the EQ predicate on the "avatar" field.
func AvatarEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldAvatar, v))
}

// AvatarNEQ applies the NEQ predicate on the "avatar" field.
func AvatarNEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldAvatar, v))
}

// AvatarIn applies the In predicate on the "avatar" field.
func AvatarIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldAvatar, vs...))
}

// AvatarNotIn applies the NotIn predicate on the "avatar" field.
func AvatarNotIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldAvatar, vs...))
}

// AvatarGT applies the GT predicate on the "avatar" field.
func AvatarGT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldAvatar, v))
}

// AvatarGTE applies the GTE predicate on the "avatar" field.
func AvatarGTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldAvatar, v))
}

// AvatarLT applies the LT predicate on the "avatar" field.
func AvatarLT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldAvatar, v))
}

// AvatarLTE applies the LTE predicate on the "avatar" field.
func AvatarLTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldAvatar, v))
}

// AvatarContains applies the Contains predicate on the "avatar" field.
func AvatarContains(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContains(FieldAvatar, v))
}

// AvatarHasPrefix applies the HasPrefix predicate on the "avatar" field.
func AvatarHasPrefix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasPrefix(FieldAvatar, v))
}

// AvatarHasSuffix applies the HasSuffix predicate on the "avatar" field.
func AvatarHasSuffix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasSuffix(FieldAvatar, v))
}

// AvatarEqualFold applies the EqualFold predicate on the "avatar" field.
func AvatarEqualFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEqualFold(FieldAvatar, v))
}

// AvatarContainsFold applies the ContainsFold predicate on the "avatar" field.
func AvatarContainsFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContainsFold(FieldAvatar, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContainsFold(FieldPhone, v))
}

// TeamEQ applies the EQ predicate on the "team" field.
func TeamEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldTeam, v))
}

// TeamNEQ applies the NEQ predicate on the "team" field.
func TeamNEQ(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldTeam, v))
}

// TeamIn applies the In predicate on the "team" field.
func TeamIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldTeam, vs...))
}

// TeamNotIn applies the NotIn predicate on the "team" field.
func TeamNotIn(vs ...string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldTeam, vs...))
}

// TeamGT applies the GT predicate on the "team" field.
func TeamGT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldTeam, v))
}

// TeamGTE applies the GTE predicate on the "team" field.
func TeamGTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldTeam, v))
}

// TeamLT applies the LT predicate on the "team" field.
func TeamLT(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldTeam, v))
}

// TeamLTE applies the LTE predicate on the "team" field.
func TeamLTE(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldTeam, v))
}

// TeamContains applies the Contains predicate on the "team" field.
func TeamContains(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContains(FieldTeam, v))
}

// TeamHasPrefix applies the HasPrefix predicate on the "team" field.
func TeamHasPrefix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasPrefix(FieldTeam, v))
}

// TeamHasSuffix applies the HasSuffix predicate on the "team" field.
func TeamHasSuffix(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldHasSuffix(FieldTeam, v))
}

// TeamIsNil applies the IsNil predicate on the "team" field.
func TeamIsNil() predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIsNull(FieldTeam))
}

// TeamNotNil applies the NotNil predicate on the "team" field.
func TeamNotNil() predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotNull(FieldTeam))
}

// TeamEqualFold applies the EqualFold predicate on the "team" field.
func TeamEqualFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEqualFold(FieldTeam, v))
}

// TeamContainsFold applies the ContainsFold predicate on the "team" field.
func TeamContainsFold(v string) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldContainsFold(FieldTeam, v))
}

// LeadsAssignedEQ applies the EQ predicate on the "leads_assigned" field.
func LeadsAssignedEQ(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldEQ(FieldLeadsAssigned, v))
}

// LeadsAssignedNEQ applies the NEQ predicate on the "leads_assigned" field.
func LeadsAssignedNEQ(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNEQ(FieldLeadsAssigned, v))
}

// LeadsAssignedIn applies the In predicate on the "leads_assigned" field.
func LeadsAssignedIn(vs ...int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldIn(FieldLeadsAssigned, vs...))
}

// LeadsAssignedNotIn applies the NotIn predicate on the "leads_assigned" field.
func LeadsAssignedNotIn(vs ...int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldNotIn(FieldLeadsAssigned, vs...))
}

// LeadsAssignedGT applies the GT predicate on the "leads_assigned" field.
func LeadsAssignedGT(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGT(FieldLeadsAssigned, v))
}

// LeadsAssignedGTE applies the GTE predicate on the "leads_assigned" field.
func LeadsAssignedGTE(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldGTE(FieldLeadsAssigned, v))
}

// LeadsAssignedLT applies the LT predicate on the "leads_assigned" field.
func LeadsAssignedLT(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLT(FieldLeadsAssigned, v))
}

// LeadsAssignedLTE applies the LTE predicate on the "leads_assigned" field.
func LeadsAssignedLTE(v int) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.FieldLTE(FieldLeadsAssigned, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SalesExecutive) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SalesExecutive) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SalesExecutive) predicate.SalesExecutive {
	return predicate.SalesExecutive(sql.NotPredicates(p))
}
