package entity

import (
	"time"

	"github.com/google/uuid"
)

// HotlineCategory groups hotlines for the resources directory
type HotlineCategory string

const (
	HotlineCategoryAmbulance  HotlineCategory = "ambulance"
	HotlineCategoryHospital   HotlineCategory = "hospital"
	HotlineCategoryEmergency  HotlineCategory = "emergency"
	HotlineCategoryGovernment HotlineCategory = "government"
	HotlineCategoryOther      HotlineCategory = "other"
)

// Hotline represents an emergency or service phone number shown on the
// health-hotlines directory.
type Hotline struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Category     HotlineCategory `gorm:"column:category;type:varchar(20);not null;index" json:"category"`
	Number       string          `gorm:"column:number;type:varchar(50);not null" json:"number"`
	Description  string          `gorm:"column:description;type:text" json:"description,omitempty"`
	Available24h bool            `gorm:"column:available24h;not null;default:false" json:"available24h"`
	CreatedAt    time.Time       `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

func (Hotline) TableName() string {
	return "hotlinesBHRMS"
}

// IsValidHotlineCategory reports whether c is an accepted hotline category.
func IsValidHotlineCategory(c HotlineCategory) bool {
	switch c {
	case HotlineCategoryAmbulance, HotlineCategoryHospital, HotlineCategoryEmergency,
		HotlineCategoryGovernment, HotlineCategoryOther:
		return true
	}
	return false
}
