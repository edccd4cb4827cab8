package dto

import "time"

// Response DTOs

type AuditLogResponse struct {
	ID         int64                  `json:"id"`
	Credential string                 `json:"credential,omitempty"`
	Action     string                 `json:"action"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
