package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralStatus represents the lifecycle status of a referral
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusAccepted  ReferralStatus = "accepted"
	ReferralStatusCompleted ReferralStatus = "completed"
	ReferralStatusCancelled ReferralStatus = "cancelled"
)

// ReferralPriority represents the urgency chosen at creation, immutable after
type ReferralPriority string

const (
	ReferralPriorityRoutine   ReferralPriority = "routine"
	ReferralPriorityUrgent    ReferralPriority = "urgent"
	ReferralPriorityEmergency ReferralPriority = "emergency"
)

// Referral represents a request to move a patient from one facility to
// another. Status starts at pending and only moves along the transition
// table below; priority never changes after creation.
type Referral struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientName    string           `gorm:"column:patientName;type:varchar(255);not null" json:"patientName"`
	PatientAge     int              `gorm:"column:patientAge;not null" json:"patientAge"`
	PatientGender  string           `gorm:"column:patientGender;type:varchar(20);not null" json:"patientGender"`
	ChiefComplaint string           `gorm:"column:chiefComplaint;type:text;not null" json:"chiefComplaint"`
	Notes          string           `gorm:"column:notes;type:text" json:"notes,omitempty"`
	FromFacility   string           `gorm:"column:fromFacility;type:varchar(255);not null" json:"fromFacility"`
	ToFacility     string           `gorm:"column:toFacility;type:varchar(255);not null" json:"toFacility"`
	Priority       ReferralPriority `gorm:"column:priority;type:varchar(20);not null;index" json:"priority"`
	Status         ReferralStatus   `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedBy      string           `gorm:"column:createdBy;type:varchar(100);not null;index" json:"createdBy"`
	CreatedByName  string           `gorm:"column:createdByName;type:varchar(255);not null" json:"createdByName"`
	CreatedAt      time.Time        `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time        `gorm:"column:updatedAt;autoUpdateTime" json:"updatedAt"`
}

func (Referral) TableName() string {
	return "referralsBHRMS"
}

// statusTransitions is the full transition table. Completed and cancelled
// are terminal; the target status is always caller-selected, never computed.
var statusTransitions = map[ReferralStatus][]ReferralStatus{
	ReferralStatusPending:   {ReferralStatusAccepted, ReferralStatusCancelled},
	ReferralStatusAccepted:  {ReferralStatusCompleted, ReferralStatusCancelled},
	ReferralStatusCompleted: {},
	ReferralStatusCancelled: {},
}

// CanTransitionTo reports whether the referral may move to target from its
// current status.
func (r *Referral) CanTransitionTo(target ReferralStatus) bool {
	for _, allowed := range statusTransitions[r.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsPending checks if the referral is still awaiting triage
func (r *Referral) IsPending() bool {
	return r.Status == ReferralStatusPending
}

// IsTerminal checks if the referral reached a final status
func (r *Referral) IsTerminal() bool {
	return len(statusTransitions[r.Status]) == 0
}

// IsValidStatus reports whether s is one of the persisted status values.
func IsValidStatus(s ReferralStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsValidPriority reports whether p is one of the accepted priority values.
func IsValidPriority(p ReferralPriority) bool {
	switch p {
	case ReferralPriorityRoutine, ReferralPriorityUrgent, ReferralPriorityEmergency:
		return true
	}
	return false
}

// ReferralFilter is a domain-level filter for querying referrals.
// Used by repository layer to avoid coupling with delivery DTOs.
type ReferralFilter struct {
	Status      ReferralStatus   // empty = all statuses
	Priority    ReferralPriority // empty = all priorities
	CreatedBy   string           // filter by creating credential
	PatientName string           // substring match on patient name (ILIKE)
}
