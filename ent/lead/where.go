// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// CarModel applies equality check predicate on the "car_model" field. It's identical to CarModelEQ.
func CarModel(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCarModel, v))
}

// Budget applies equality check predicate on the "budget" field. It's identical to BudgetEQ.
func Budget(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldBudget, v))
}

// CampaignName applies equality check predicate on the "campaign_name" field. It's identical to CampaignNameEQ.
func CampaignName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCampaignName, v))
}

// TestDriveDate applies equality check predicate on the "test_drive_date" field. It's identical to TestDriveDateEQ.
func TestDriveDate(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTestDriveDate, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToName applies equality check predicate on the "assigned_to_name" field. It's identical to AssignedToNameEQ.
func AssignedToName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAssignedToName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastActivity, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSource, vs...))
}

// CarInterestEQ applies the EQ predicate on the "car_interest" field.
func CarInterestEQ(v CarInterest) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCarInterest, v))
}

// CarInterestNEQ applies the NEQ predicate on the "car_interest" field.
func CarInterestNEQ(v CarInterest) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCarInterest, v))
}

// CarInterestIn applies the In predicate on the "car_interest" field.
func CarInterestIn(vs ...CarInterest) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCarInterest, vs...))
}

// CarInterestNotIn applies the NotIn predicate on the "car_interest" field.
func CarInterestNotIn(vs ...CarInterest) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCarInterest, vs...))
}

// CarModelEQ applies the EQ predicate on the "car_model" field.
func CarModelEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCarModel, v))
}

// CarModelNEQ applies the NEQ predicate on the "car_model" field.
func CarModelNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCarModel, v))
}

// CarModelIn applies the In predicate on the "car_model" field.
func CarModelIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCarModel, vs...))
}

// CarModelNotIn applies the NotIn predicate on the "car_model" field.
func CarModelNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCarModel, vs...))
}

// CarModelGT applies the GT predicate on the "car_model" field.
func CarModelGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCarModel, v))
}

// CarModelGTE applies the GTE predicate on the "car_model" field.
func CarModelGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCarModel, v))
}

// CarModelLT applies the LT predicate on the "car_model" field.
func CarModelLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCarModel, v))
}

// CarModelLTE applies the LTE predicate on the "car_model" field.
func CarModelLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCarModel, v))
}

// CarModelContains applies the Contains predicate on the "car_model" field.
func CarModelContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCarModel, v))
}

// CarModelHasPrefix applies the HasPrefix predicate on the "car_model" field.
func CarModelHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCarModel, v))
}

// CarModelHasSuffix applies the HasSuffix predicate on the "car_model" field.
func CarModelHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCarModel, v))
}

// CarModelEqualFold applies the EqualFold predicate on the "car_model" field.
func CarModelEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCarModel, v))
}

// CarModelContainsFold applies the ContainsFold predicate on the "car_model" field.
func CarModelContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCarModel, v))
}

// BudgetEQ applies the EQ predicate on the "budget" field.
func BudgetEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldBudget, v))
}

// BudgetNEQ applies the NEQ predicate on the "budget" field.
func BudgetNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldBudget, v))
}

// BudgetIn applies the In predicate on the "budget" field.
func BudgetIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldBudget, vs...))
}

// BudgetNotIn applies the NotIn predicate on the "budget" field.
func BudgetNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldBudget, vs...))
}

// BudgetGT applies the GT predicate on the "budget" field.
func BudgetGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldBudget, v))
}

// BudgetGTE applies the GTE predicate on the "budget" field.
func BudgetGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldBudget, v))
}

// BudgetLT applies the LT predicate on the "budget" field.
func BudgetLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldBudget, v))
}

// BudgetLTE applies the LTE predicate on the "budget" field.
func BudgetLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldBudget, v))
}

// BudgetContains applies the Contains predicate on the "budget" field.
func BudgetContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldBudget, v))
}

// BudgetHasPrefix applies the HasPrefix predicate on the "budget" field.
func BudgetHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldBudget, v))
}

// BudgetHasSuffix applies the HasSuffix predicate on the "budget" field.
func BudgetHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldBudget, v))
}

// BudgetEqualFold applies the EqualFold predicate on the "budget" field.
func BudgetEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldBudget, v))
}

// BudgetContainsFold applies the ContainsFold predicate on the "budget" field.
func BudgetContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldBudget, v))
}

// CampaignNameEQ applies the EQ predicate on the "campaign_name" field.
func CampaignNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCampaignName, v))
}

// CampaignNameNEQ applies the NEQ predicate on the "campaign_name" field.
func CampaignNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCampaignName, v))
}

// CampaignNameIn applies the In predicate on the "campaign_name" field.
func CampaignNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCampaignName, vs...))
}

// CampaignNameNotIn applies the NotIn predicate on the "campaign_name" field.
func CampaignNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCampaignName, vs...))
}

// CampaignNameGT applies the GT predicate on the "campaign_name" field.
func CampaignNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCampaignName, v))
}

// CampaignNameGTE applies the GTE predicate on the "campaign_name" field.
func CampaignNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCampaignName, v))
}

// CampaignNameLT applies the LT predicate on the "campaign_name" field.
func CampaignNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCampaignName, v))
}

// CampaignNameLTE applies the LTE predicate on the "campaign_name" field.
func CampaignNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCampaignName, v))
}

// CampaignNameContains applies the Contains predicate on the "campaign_name" field.
func CampaignNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCampaignName, v))
}

// CampaignNameHasPrefix applies the HasPrefix predicate on the "campaign_name" field.
func CampaignNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCampaignName, v))
}

// CampaignNameHasSuffix applies the HasSuffix predicate on the "campaign_name" field.
func CampaignNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCampaignName, v))
}

// CampaignNameIsNil applies the IsNil predicate on the "campaign_name" field.
func CampaignNameIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCampaignName))
}

// CampaignNameNotNil applies the NotNil predicate on the "campaign_name" field.
func CampaignNameNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCampaignName))
}

// CampaignNameEqualFold applies the EqualFold predicate on the "campaign_name" field.
func CampaignNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCampaignName, v))
}

// CampaignNameContainsFold applies the ContainsFold predicate on the "campaign_name" field.
func CampaignNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCampaignName, v))
}

// TestDriveDateEQ applies the EQ predicate on the "test_drive_date" field.
func TestDriveDateEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTestDriveDate, v))
}

// TestDriveDateNEQ applies the NEQ predicate on the "test_drive_date" field.
func TestDriveDateNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldTestDriveDate, v))
}

// TestDriveDateIn applies the In predicate on the "test_drive_date" field.
func TestDriveDateIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldTestDriveDate, vs...))
}

// TestDriveDateNotIn applies the NotIn predicate on the "test_drive_date" field.
func TestDriveDateNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldTestDriveDate, vs...))
}

// TestDriveDateGT applies the GT predicate on the "test_drive_date" field.
func TestDriveDateGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldTestDriveDate, v))
}

// TestDriveDateGTE applies the GTE predicate on the "test_drive_date" field.
func TestDriveDateGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldTestDriveDate, v))
}

// TestDriveDateLT applies the LT predicate on the "test_drive_date" field.
func TestDriveDateLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldTestDriveDate, v))
}

// TestDriveDateLTE applies the LTE predicate on the "test_drive_date" field.
func TestDriveDateLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldTestDriveDate, v))
}

// TestDriveDateContains applies the Contains predicate on the "test_drive_date" field.
func TestDriveDateContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldTestDriveDate, v))
}

// TestDriveDateHasPrefix applies the HasPrefix predicate on the "test_drive_date" field.
func TestDriveDateHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldTestDriveDate, v))
}

// TestDriveDateHasSuffix applies the HasSuffix predicate on the "test_drive_date" field.
func TestDriveDateHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldTestDriveDate, v))
}

// TestDriveDateIsNil applies the IsNil predicate on the "test_drive_date" field.
func TestDriveDateIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldTestDriveDate))
}

// TestDriveDateNotNil applies the NotNil predicate on the "test_drive_date" field.
func TestDriveDateNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldTestDriveDate))
}

// TestDriveDateEqualFold applies the EqualFold predicate on the "test_drive_date" field.
func TestDriveDateEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldTestDriveDate, v))
}

// TestDriveDateContainsFold applies the ContainsFold predicate on the "test_drive_date" field.
func TestDriveDateContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldTestDriveDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldStatus, vs...))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToNameEQ applies the EQ predicate on the "assigned_to_name" field.
func AssignedToNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAssignedToName, v))
}

// AssignedToNameNEQ applies the NEQ predicate on the "assigned_to_name" field.
func AssignedToNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAssignedToName, v))
}

// AssignedToNameIn applies the In predicate on the "assigned_to_name" field.
func AssignedToNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAssignedToName, vs...))
}

// AssignedToNameNotIn applies the NotIn predicate on the "assigned_to_name" field.
func AssignedToNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAssignedToName, vs...))
}

// AssignedToNameGT applies the GT predicate on the "assigned_to_name" field.
func AssignedToNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAssignedToName, v))
}

// AssignedToNameGTE applies the GTE predicate on the "assigned_to_name" field.
func AssignedToNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAssignedToName, v))
}

// AssignedToNameLT applies the LT predicate on the "assigned_to_name" field.
func AssignedToNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAssignedToName, v))
}

// AssignedToNameLTE applies the LTE predicate on the "assigned_to_name" field.
func AssignedToNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAssignedToName, v))
}

// AssignedToNameContains applies the Contains predicate on the "assigned_to_name" field.
func AssignedToNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldAssignedToName, v))
}

// AssignedToNameHasPrefix applies the HasPrefix predicate on the "assigned_to_name" field.
func AssignedToNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldAssignedToName, v))
}

// AssignedToNameHasSuffix applies the HasSuffix predicate on the "assigned_to_name" field.
func AssignedToNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldAssignedToName, v))
}

// AssignedToNameEqualFold applies the EqualFold predicate on the "assigned_to_name" field.
func AssignedToNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldAssignedToName, v))
}

// AssignedToNameContainsFold applies the ContainsFold predicate on the "assigned_to_name" field.
func AssignedToNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldAssignedToName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLastActivity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
