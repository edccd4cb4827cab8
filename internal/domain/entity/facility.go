package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FacilityType distinguishes barangay health stations from hospitals
type FacilityType string

const (
	FacilityTypeBHS      FacilityType = "BHS"
	FacilityTypeHospital FacilityType = "Hospital"
)

// Facility represents a location that can originate or receive referrals.
// Name uniqueness is by convention only, not enforced.
type Facility struct {
	ID            uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string       `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Type          FacilityType `gorm:"column:type;type:varchar(20);not null;index" json:"type"`
	Address       string       `gorm:"column:address;type:text" json:"address"`
	ContactNumber string       `gorm:"column:contactNumber;type:varchar(50)" json:"contactNumber"`
	Services      ServiceList  `gorm:"column:services;type:jsonb" json:"services"`
	Capacity      int          `gorm:"column:capacity;not null" json:"capacity"`
	CreatedAt     time.Time    `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

func (Facility) TableName() string {
	return "facilitiesBHRMS"
}

// ServiceList holds the offered services as a JSONB string array
type ServiceList []string

// Value returns json value, implements driver.Valuer interface
func (s ServiceList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan scans a JSONB value into the list, implements sql.Scanner interface
func (s *ServiceList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*s = ServiceList(result)
	return err
}

// IsValidFacilityType reports whether t is an accepted facility type.
func IsValidFacilityType(t FacilityType) bool {
	return t == FacilityTypeBHS || t == FacilityTypeHospital
}
