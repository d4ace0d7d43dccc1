// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
	"github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
	"github.com/hsrmotors/leadpulse/ent/schema"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentruleFields := schema.AssignmentRule{}.Fields()
	_ = assignmentruleFields
	// assignmentruleDescAssignToTeam is the schema descriptor for assign_to_team field.
	assignmentruleDescAssignToTeam := assignmentruleFields[2].Descriptor()
	// assignmentrule.AssignToTeamValidator is a validator for the "assign_to_team" field. It is called by the builders before save.
	assignmentrule.AssignToTeamValidator = assignmentruleDescAssignToTeam.Validators[0].(func(string) error)
	// assignmentruleDescRoundRobin is the schema descriptor for round_robin field.
	assignmentruleDescRoundRobin := assignmentruleFields[3].Descriptor()
	// assignmentrule.DefaultRoundRobin holds the default value on creation for the round_robin field.
	assignmentrule.DefaultRoundRobin = assignmentruleDescRoundRobin.Default.(bool)
	// assignmentruleDescCreatedAt is the schema descriptor for created_at field.
	assignmentruleDescCreatedAt := assignmentruleFields[4].Descriptor()
	// assignmentrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignmentrule.DefaultCreatedAt = assignmentruleDescCreatedAt.Default.(func() time.Time)
	deletedleadFields := schema.DeletedLead{}.Fields()
	_ = deletedleadFields
	// deletedleadDescReason is the schema descriptor for reason field.
	deletedleadDescReason := deletedleadFields[4].Descriptor()
	// deletedlead.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	deletedlead.ReasonValidator = deletedleadDescReason.Validators[0].(func(string) error)
	// deletedleadDescDeletedAt is the schema descriptor for deleted_at field.
	deletedleadDescDeletedAt := deletedleadFields[5].Descriptor()
	// deletedlead.DefaultDeletedAt holds the default value on creation for the deleted_at field.
	deletedlead.DefaultDeletedAt = deletedleadDescDeletedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescPhone is the schema descriptor for phone field.
	leadDescPhone := leadFields[1].Descriptor()
	// lead.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	lead.PhoneValidator = leadDescPhone.Validators[0].(func(string) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[2].Descriptor()
	// lead.DefaultEmail holds the default value on creation for the email field.
	lead.DefaultEmail = leadDescEmail.Default.(string)
	// leadDescCarModel is the schema descriptor for car_model field.
	leadDescCarModel := leadFields[5].Descriptor()
	// lead.DefaultCarModel holds the default value on creation for the car_model field.
	lead.DefaultCarModel = leadDescCarModel.Default.(string)
	// leadDescBudget is the schema descriptor for budget field.
	leadDescBudget := leadFields[6].Descriptor()
	// lead.DefaultBudget holds the default value on creation for the budget field.
	lead.DefaultBudget = leadDescBudget.Default.(string)
	// leadDescAssignedTo is the schema descriptor for assigned_to field.
	leadDescAssignedTo := leadFields[10].Descriptor()
	// lead.DefaultAssignedTo holds the default value on creation for the assigned_to field.
	lead.DefaultAssignedTo = leadDescAssignedTo.Default.(int)
	// leadDescAssignedToName is the schema descriptor for assigned_to_name field.
	leadDescAssignedToName := leadFields[11].Descriptor()
	// lead.DefaultAssignedToName holds the default value on creation for the assigned_to_name field.
	lead.DefaultAssignedToName = leadDescAssignedToName.Default.(string)
	// leadDescActivities is the schema descriptor for activities field.
	leadDescActivities := leadFields[12].Descriptor()
	// lead.DefaultActivities holds the default value on creation for the activities field.
	lead.DefaultActivities = leadDescActivities.Default.([]models.ActivityLog)
	// leadDescCallLogs is the schema descriptor for call_logs field.
	leadDescCallLogs := leadFields[13].Descriptor()
	// lead.DefaultCallLogs holds the default value on creation for the call_logs field.
	lead.DefaultCallLogs = leadDescCallLogs.Default.([]models.CallLog)
	// leadDescNotes is the schema descriptor for notes field.
	leadDescNotes := leadFields[14].Descriptor()
	// lead.DefaultNotes holds the default value on creation for the notes field.
	lead.DefaultNotes = leadDescNotes.Default.([]string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[15].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescLastActivity is the schema descriptor for last_activity field.
	leadDescLastActivity := leadFields[16].Descriptor()
	// lead.DefaultLastActivity holds the default value on creation for the last_activity field.
	lead.DefaultLastActivity = leadDescLastActivity.Default.(func() time.Time)
	salesexecutiveFields := schema.SalesExecutive{}.Fields()
	_ = salesexecutiveFields
	// salesexecutiveDescName is the schema descriptor for name field.
	salesexecutiveDescName := salesexecutiveFields[0].Descriptor()
	// salesexecutive.NameValidator is a validator for the "name" field. It is called by the builders before save.
	salesexecutive.NameValidator = salesexecutiveDescName.Validators[0].(func(string) error)
	// salesexecutiveDescAvatar is the schema descriptor for avatar field.
	salesexecutiveDescAvatar := salesexecutiveFields[1].Descriptor()
	// salesexecutive.DefaultAvatar holds the default value on creation for the avatar field.
	salesexecutive.DefaultAvatar = salesexecutiveDescAvatar.Default.(string)
	// salesexecutiveDescPhone is the schema descriptor for phone field.
	salesexecutiveDescPhone := salesexecutiveFields[3].Descriptor()
	// salesexecutive.DefaultPhone holds the default value on creation for the phone field.
	salesexecutive.DefaultPhone = salesexecutiveDescPhone.Default.(string)
	// salesexecutiveDescLeadsAssigned is the schema descriptor for leads_assigned field.
	salesexecutiveDescLeadsAssigned := salesexecutiveFields[5].Descriptor()
	// salesexecutive.DefaultLeadsAssigned holds the default value on creation for the leads_assigned field.
	salesexecutive.DefaultLeadsAssigned = salesexecutiveDescLeadsAssigned.Default.(int)
	// salesexecutive.LeadsAssignedValidator is a validator for the "leads_assigned" field. It is called by the builders before save.
	salesexecutive.LeadsAssignedValidator = salesexecutiveDescLeadsAssigned.Validators[0].(func(int) error)
}
