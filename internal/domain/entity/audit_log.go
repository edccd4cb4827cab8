package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry. Credential is a loose
// reference, not a foreign key: users are deletable and entries attributed
// to a removed credential are kept as-is.
type AuditLog struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Credential *string   `gorm:"column:credential;type:varchar(100);index" json:"credential,omitempty"`
	Action     string    `gorm:"column:action;type:varchar(100);not null;index" json:"action"`
	Metadata   JSON      `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"column:createdAt;autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "auditLogsBHRMS"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
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

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionUserLogin      = "user.login"
	AuditActionUserLogout     = "user.logout"
	AuditActionUserCreate     = "user.create"
	AuditActionUserDelete     = "user.delete"
	AuditActionReferralCreate = "referral.create"
	AuditActionReferralStatus = "referral.status"
	AuditActionFacilityCreate = "facility.create"
	AuditActionFacilityDelete = "facility.delete"
	AuditActionHotlineCreate  = "hotline.create"
	AuditActionHotlineDelete  = "hotline.delete"
)
