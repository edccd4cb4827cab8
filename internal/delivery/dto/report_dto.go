package dto

// ReportSummaryResponse aggregates the counts the admin reports page and
// the triage dashboard header display.
type ReportSummaryResponse struct {
	Referrals  ReferralCounts `json:"referrals"`
	Users      UserCounts     `json:"users"`
	Facilities FacilityCounts `json:"facilities"`
}

type ReferralCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	// EmergencyOpen counts emergency-priority referrals not yet completed.
	EmergencyOpen int `json:"emergencyOpen"`
}

type UserCounts struct {
	Total int `json:"total"`
	Staff int `json:"staff"`
	Admin int `json:"admin"`
}

type FacilityCounts struct {
	Total     int `json:"total"`
	BHS       int `json:"bhs"`
	Hospitals int `json:"hospitals"`
}
