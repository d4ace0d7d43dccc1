package models

// SourceCount is one slice of the per-source distribution.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

// FunnelEntry is one stage of the status funnel.
type FunnelEntry struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

// DayEntry is one day of the trailing 30-day arrival series.
type DayEntry struct {
	Date     string         `json:"date"`
	Total    int            `json:"total"`
	BySource map[string]int `json:"by_source"`
}

// TeamPerformance summarizes one executive's currently assigned book.
type TeamPerformance struct {
	ExecutiveID     int     `json:"executive_id"`
	Name            string  `json:"name"`
	Avatar          string  `json:"avatar"`
	LeadsAssigned   int     `json:"leads_assigned"`
	Contacted       int     `json:"contacted"`
	Qualified       int     `json:"qualified"`
	ClosedWon       int     `json:"closed_won"`
	ConversionRate  float64 `json:"conversion_rate"`
	AvgResponseHrs  float64 `json:"avg_response_hrs"`
}

// RecentActivity is one entry of the dashboard's recent-activity feed.
type RecentActivity struct {
	LeadID   int         `json:"lead_id"`
	LeadName string      `json:"lead_name"`
	Activity ActivityLog `json:"activity"`
}

// DashboardStats is the full aggregate served to the dashboard.
type DashboardStats struct {
	TotalLeads          int               `json:"total_leads"`
	TotalLeadsThisMonth int               `json:"total_leads_this_month"`
	TotalLeadsLastMonth int               `json:"total_leads_last_month"`
	QualifiedThisMonth  int               `json:"qualified_this_month"`
	QualifiedLastMonth  int               `json:"qualified_last_month"`
	ClosedWonThisMonth  int               `json:"closed_won_this_month"`
	ClosedWonLastMonth  int               `json:"closed_won_last_month"`
	ClosedLostThisMonth int               `json:"closed_lost_this_month"`
	StaleLeads          int               `json:"stale_leads"`
	ConversionRate      float64           `json:"conversion_rate"`
	AvgResponseTimeHrs  float64           `json:"avg_response_time_hrs"`
	LeadsBySource       []SourceCount     `json:"leads_by_source"`
	LeadsOverTime       []DayEntry        `json:"leads_over_time"`
	Funnel              []FunnelEntry     `json:"funnel"`
	TeamPerformance     []TeamPerformance `json:"team_performance"`
	RecentActivity      []RecentActivity  `json:"recent_activity"`
}

// ExecutiveResponse is the API shape of a sales executive.
type ExecutiveResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Team          string `json:"team,omitempty"`
	LeadsAssigned int    `json:"leads_assigned"`
}
