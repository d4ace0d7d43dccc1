// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCarInterest holds the string denoting the car_interest field in the database.
	FieldCarInterest = "car_interest"
	// FieldCarModel holds the string denoting the car_model field in the database.
	FieldCarModel = "car_model"
	// FieldBudget holds the string denoting the budget field in the database.
	FieldBudget = "budget"
	// FieldCampaignName holds the string denoting the campaign_name field in the database.
	FieldCampaignName = "campaign_name"
	// FieldTestDriveDate holds the string denoting the test_drive_date field in the database.
	FieldTestDriveDate = "test_drive_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldAssignedToName holds the string denoting the assigned_to_name field in the database.
	FieldAssignedToName = "assigned_to_name"
	// FieldActivities holds the string denoting the activities field in the database.
	FieldActivities = "activities"
	// FieldCallLogs holds the string denoting the call_logs field in the database.
	FieldCallLogs = "call_logs"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// Table holds the table name of the lead in the database.
	Table = "leads"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPhone,
	FieldEmail,
	FieldSource,
	FieldCarInterest,
	FieldCarModel,
	FieldBudget,
	FieldCampaignName,
	FieldTestDriveDate,
	FieldStatus,
	FieldAssignedTo,
	FieldAssignedToName,
	FieldActivities,
	FieldCallLogs,
	FieldNotes,
	FieldCreatedAt,
	FieldLastActivity,
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
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// DefaultEmail holds the default value on creation for the "email" field.
	DefaultEmail string
	// DefaultCarModel holds the default value on creation for the "car_model" field.
	DefaultCarModel string
	// DefaultBudget holds the default value on creation for the "budget" field.
	DefaultBudget string
	// DefaultAssignedTo holds the default value on creation for the "assigned_to" field.
	DefaultAssignedTo int
	// DefaultAssignedToName holds the default value on creation for the "assigned_to_name" field.
	DefaultAssignedToName string
	// DefaultActivities holds the default value on creation for the "activities" field.
	DefaultActivities []models.ActivityLog
	// DefaultCallLogs holds the default value on creation for the "call_logs" field.
	DefaultCallLogs []models.CallLog
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes []string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceOffline is the default value of the Source enum.
const DefaultSource = SourceOffline

// Source values.
const (
	SourceFacebook Source = "facebook"
	SourceGoogle   Source = "google"
	SourceTwitter  Source = "twitter"
	SourceWebsite  Source = "website"
	SourceOffline  Source = "offline"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceFacebook, SourceGoogle, SourceTwitter, SourceWebsite, SourceOffline:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for source field: %q", s)
	}
}

// CarInterest defines the type for the "car_interest" enum field.
type CarInterest string

// CarInterestSuv is the default value of the CarInterest enum.
const DefaultCarInterest = CarInterestSuv

// CarInterest values.
const (
	CarInterestSuv       CarInterest = "suv"
	CarInterestSedan     CarInterest = "sedan"
	CarInterestHatchback CarInterest = "hatchback"
	CarInterestEv        CarInterest = "ev"
	CarInterestLuxury    CarInterest = "luxury"
	CarInterestMuv       CarInterest = "muv"
)

func (ci CarInterest) String() string {
	return string(ci)
}

// CarInterestValidator is a validator for the "car_interest" field enum values. It is called by the builders before save.
func CarInterestValidator(ci CarInterest) error {
	switch ci {
	case CarInterestSuv, CarInterestSedan, CarInterestHatchback, CarInterestEv, CarInterestLuxury, CarInterestMuv:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for car_interest field: %q", ci)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew           Status = "new"
	StatusContacted     Status = "contacted"
	StatusQualified     Status = "qualified"
	StatusNotInterested Status = "not_interested"
	StatusClosedWon     Status = "closed_won"
	StatusClosedLost    Status = "closed_lost"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusNotInterested, StatusClosedWon, StatusClosedLost:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCarInterest orders the results by the car_interest field.
func ByCarInterest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarInterest, opts...).ToFunc()
}

// ByCarModel orders the results by the car_model field.
func ByCarModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarModel, opts...).ToFunc()
}

// ByBudget orders the results by the budget field.
func ByBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudget, opts...).ToFunc()
}

// ByCampaignName orders the results by the campaign_name field.
func ByCampaignName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignName, opts...).ToFunc()
}

// ByTestDriveDate orders the results by the test_drive_date field.
func ByTestDriveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestDriveDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByAssignedToName orders the results by the assigned_to_name field.
func ByAssignedToName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedToName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}
