// Package catalog holds the dealership's fixed domain vocabulary: lead
// sources, pipeline statuses, car categories and their showroom models,
// budget bands and campaign names. Storage uses the snake_case values,
// the API and dashboard use the display labels.
package catalog

import "strings"

// Lead source storage values.
const (
	SourceFacebook = "facebook"
	SourceGoogle   = "google"
	SourceTwitter  = "twitter"
	SourceWebsite  = "website"
	SourceOffline  = "offline"
)

// Pipeline status storage values.
const (
	StatusNew           = "new"
	StatusContacted     = "contacted"
	StatusQualified     = "qualified"
	StatusNotInterested = "not_interested"
	StatusClosedWon     = "closed_won"
	StatusClosedLost    = "closed_lost"
)

// Car interest storage values.
const (
	InterestSUV       = "suv"
	InterestSedan     = "sedan"
	InterestHatchback = "hatchback"
	InterestEV        = "ev"
	InterestLuxury    = "luxury"
	InterestMUV       = "muv"
)

// Sources in display order.
var Sources = []string{SourceFacebook, SourceGoogle, SourceTwitter, SourceWebsite, SourceOffline}

// Statuses in pipeline order.
var Statuses = []string{StatusNew, StatusContacted, StatusQualified, StatusNotInterested, StatusClosedWon, StatusClosedLost}

// CarInterests in display order.
var CarInterests = []string{InterestSUV, InterestSedan, InterestHatchback, InterestEV, InterestLuxury, InterestMUV}

var sourceLabels = map[string]string{
	SourceFacebook: "Facebook",
	SourceGoogle:   "Google",
	SourceTwitter:  "Twitter",
	SourceWebsite:  "Website",
	SourceOffline:  "Offline",
}

var statusLabels = map[string]string{
	StatusNew:           "New",
	StatusContacted:     "Contacted",
	StatusQualified:     "Qualified",
	StatusNotInterested: "Not Interested",
	StatusClosedWon:     "Closed Won",
	StatusClosedLost:    "Closed Lost",
}

var interestLabels = map[string]string{
	InterestSUV:       "SUV",
	InterestSedan:     "Sedan",
	InterestHatchback: "Hatchback",
	InterestEV:        "EV",
	InterestLuxury:    "Luxury",
	InterestMUV:       "MUV",
}

// SourceColors are the dashboard chart colors keyed by storage value.
var SourceColors = map[string]string{
	SourceFacebook: "#1877F2",
	SourceGoogle:   "#EA4335",
	SourceTwitter:  "#1DA1F2",
	SourceWebsite:  "#6366F1",
	SourceOffline:  "#10B981",
}

// StatusColors are the funnel chart colors keyed by storage value.
var StatusColors = map[string]string{
	StatusNew:           "#3B82F6",
	StatusContacted:     "#F59E0B",
	StatusQualified:     "#10B981",
	StatusNotInterested: "#EF4444",
	StatusClosedWon:     "#8B5CF6",
	StatusClosedLost:    "#6B7280",
}

// CarModels maps each car interest to the models currently on the floor.
var CarModels = map[string][]string{
	InterestSUV:       {"Toyota Fortuner", "Hyundai Creta", "Mahindra XUV700", "Kia Seltos", "MG Hector"},
	InterestSedan:     {"Honda City", "Hyundai Verna", "Skoda Slavia", "Volkswagen Virtus", "Maruti Ciaz"},
	InterestHatchback: {"Maruti Swift", "Hyundai i20", "Tata Altroz", "Toyota Glanza", "Maruti Baleno"},
	InterestEV:        {"Tata Nexon EV", "MG ZS EV", "Hyundai Ioniq 5", "Kia EV6", "BYD Atto 3"},
	InterestLuxury:    {"BMW 3 Series", "Mercedes C-Class", "Audi A4", "Volvo S60", "Lexus ES"},
	InterestMUV:       {"Toyota Innova Crysta", "Maruti Ertiga", "Kia Carens", "Mahindra Marazzo", "Renault Triber"},
}

// Budgets are the fixed budget bands quoted at the showroom.
var Budgets = []string{
	"₹5L – ₹8L",
	"₹8L – ₹12L",
	"₹12L – ₹18L",
	"₹18L – ₹25L",
	"₹25L – ₹40L",
	"₹40L – ₹60L",
	"₹60L+",
}

// Campaigns are the running marketing campaign names.
var Campaigns = []string{
	"Diwali Offer",
	"Year End Sale",
	"Monsoon Magic",
	"Summer Bonanza",
	"Exchange Mela",
	"Festive First",
}

// SourceLabel returns the display label for a source storage value.
func SourceLabel(v string) string {
	if l, ok := sourceLabels[v]; ok {
		return l
	}
	return v
}

// StatusLabel returns the display label for a status storage value.
func StatusLabel(v string) string {
	if l, ok := statusLabels[v]; ok {
		return l
	}
	return v
}

// InterestLabel returns the display label for a car interest storage value.
func InterestLabel(v string) string {
	if l, ok := interestLabels[v]; ok {
		return l
	}
	return v
}

// ValidSource reports whether v is a known source storage value.
func ValidSource(v string) bool {
	_, ok := sourceLabels[v]
	return ok
}

// ValidStatus reports whether v is a known status storage value.
func ValidStatus(v string) bool {
	_, ok := statusLabels[v]
	return ok
}

// ValidInterest reports whether v is a known car interest storage value.
func ValidInterest(v string) bool {
	_, ok := interestLabels[v]
	return ok
}

// TerminalNegative reports whether v is a status that allows deletion.
func TerminalNegative(v string) bool {
	return v == StatusNotInterested || v == StatusClosedLost
}

func normalize(v string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "_")
}

// SourceValue maps a display label or storage value to the storage value.
func SourceValue(v string) (string, bool) {
	n := normalize(v)
	if _, ok := sourceLabels[n]; ok {
		return n, true
	}
	return "", false
}

// StatusValue maps a display label or storage value to the storage value.
func StatusValue(v string) (string, bool) {
	n := normalize(v)
	if _, ok := statusLabels[n]; ok {
		return n, true
	}
	return "", false
}

// InterestValue maps a display label or storage value to the storage value.
func InterestValue(v string) (string, bool) {
	n := normalize(v)
	if _, ok := interestLabels[n]; ok {
		return n, true
	}
	return "", false
}
