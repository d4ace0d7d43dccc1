// Code generated by ent, DO NOT EDIT.

package deletedlead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadID, v))
}

// LeadName applies equality check predicate on the "lead_name" field. It's identical to LeadNameEQ.
func LeadName(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadName, v))
}

// LeadSource applies equality check predicate on the "lead_source" field. It's identical to LeadSourceEQ.
func LeadSource(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadSource, v))
}

// LeadStatus applies equality check predicate on the "lead_status" field. It's identical to LeadStatusEQ.
func LeadStatus(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadStatus, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldReason, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldDeletedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v int) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldLeadID, v))
}

// LeadNameEQ applies the EQ predicate on the "lead_name" field.
func LeadNameEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadName, v))
}

// LeadNameNEQ applies the NEQ predicate on the "lead_name" field.
func LeadNameNEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldLeadName, v))
}

// LeadNameIn applies the In predicate on the "lead_name" field.
func LeadNameIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldLeadName, vs...))
}

// LeadNameNotIn applies the NotIn predicate on the "lead_name" field.
func LeadNameNotIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldLeadName, vs...))
}

// LeadNameGT applies the GT predicate on the "lead_name" field.
func LeadNameGT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldLeadName, v))
}

// LeadNameGTE applies the GTE predicate on the "lead_name" field.
func LeadNameGTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldLeadName, v))
}

// LeadNameLT applies the LT predicate on the "lead_name" field.
func LeadNameLT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldLeadName, v))
}

// LeadNameLTE applies the LTE predicate on the "lead_name" field.
func LeadNameLTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldLeadName, v))
}

// LeadNameContains applies the Contains predicate on the "lead_name" field.
func LeadNameContains(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContains(FieldLeadName, v))
}

// LeadNameHasPrefix applies the HasPrefix predicate on the "lead_name" field.
func LeadNameHasPrefix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasPrefix(FieldLeadName, v))
}

// LeadNameHasSuffix applies the HasSuffix predicate on the "lead_name" field.
func LeadNameHasSuffix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasSuffix(FieldLeadName, v))
}

// LeadNameEqualFold applies the EqualFold predicate on the "lead_name" field.
func LeadNameEqualFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEqualFold(FieldLeadName, v))
}

// LeadNameContainsFold applies the ContainsFold predicate on the "lead_name" field.
func LeadNameContainsFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContainsFold(FieldLeadName, v))
}

// LeadSourceEQ applies the EQ predicate on the "lead_source" field.
func LeadSourceEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadSource, v))
}

// LeadSourceNEQ applies the NEQ predicate on the "lead_source" field.
func LeadSourceNEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldLeadSource, v))
}

// LeadSourceIn applies the In predicate on the "lead_source" field.
func LeadSourceIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldLeadSource, vs...))
}

// LeadSourceNotIn applies the NotIn predicate on the "lead_source" field.
func LeadSourceNotIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldLeadSource, vs...))
}

// LeadSourceGT applies the GT predicate on the "lead_source" field.
func LeadSourceGT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldLeadSource, v))
}

// LeadSourceGTE applies the GTE predicate on the "lead_source" field.
func LeadSourceGTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldLeadSource, v))
}

// LeadSourceLT applies the LT predicate on the "lead_source" field.
func LeadSourceLT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldLeadSource, v))
}

// LeadSourceLTE applies the LTE predicate on the "lead_source" field.
func LeadSourceLTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldLeadSource, v))
}

// LeadSourceContains applies the Contains predicate on the "lead_source" field.
func LeadSourceContains(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContains(FieldLeadSource, v))
}

// LeadSourceHasPrefix applies the HasPrefix predicate on the "lead_source" field.
func LeadSourceHasPrefix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasPrefix(FieldLeadSource, v))
}

// LeadSourceHasSuffix applies the HasSuffix predicate on the "lead_source" field.
func LeadSourceHasSuffix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasSuffix(FieldLeadSource, v))
}

// LeadSourceEqualFold applies the EqualFold predicate on the "lead_source" field.
func LeadSourceEqualFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEqualFold(FieldLeadSource, v))
}

// LeadSourceContainsFold applies the ContainsFold predicate on the "lead_source" field.
func LeadSourceContainsFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContainsFold(FieldLeadSource, v))
}

// LeadStatusEQ applies the EQ predicate on the "lead_status" field.
func LeadStatusEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldLeadStatus, v))
}

// LeadStatusNEQ applies the NEQ predicate on the "lead_status" field.
func LeadStatusNEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldLeadStatus, v))
}

// LeadStatusIn applies the In predicate on the "lead_status" field.
func LeadStatusIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldLeadStatus, vs...))
}

// LeadStatusNotIn applies the NotIn predicate on the "lead_status" field.
func LeadStatusNotIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldLeadStatus, vs...))
}

// LeadStatusGT applies the GT predicate on the "lead_status" field.
func LeadStatusGT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldLeadStatus, v))
}

// LeadStatusGTE applies the GTE predicate on the "lead_status" field.
func LeadStatusGTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldLeadStatus, v))
}

// LeadStatusLT applies the LT predicate on the "lead_status" field.
func LeadStatusLT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldLeadStatus, v))
}

// LeadStatusLTE applies the LTE predicate on the "lead_status" field.
func LeadStatusLTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldLeadStatus, v))
}

// LeadStatusContains applies the Contains predicate on the "lead_status" field.
func LeadStatusContains(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContains(FieldLeadStatus, v))
}

// LeadStatusHasPrefix applies the HasPrefix predicate on the "lead_status" field.
func LeadStatusHasPrefix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasPrefix(FieldLeadStatus, v))
}

// LeadStatusHasSuffix applies the HasSuffix predicate on the "lead_status" field.
func LeadStatusHasSuffix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasSuffix(FieldLeadStatus, v))
}

// LeadStatusEqualFold applies the EqualFold predicate on the "lead_status" field.
func LeadStatusEqualFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEqualFold(FieldLeadStatus, v))
}

// LeadStatusContainsFold applies the ContainsFold predicate on the "lead_status" field.
func LeadStatusContainsFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContainsFold(FieldLeadStatus, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldContainsFold(FieldReason, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.DeletedLead {
	return predicate.DeletedLead(sql.FieldLTE(FieldDeletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeletedLead) predicate.DeletedLead {
	return predicate.DeletedLead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeletedLead) predicate.DeletedLead {
	return predicate.DeletedLead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeletedLead) predicate.DeletedLead {
	return predicate.DeletedLead(sql.NotPredicates(p))
}
