package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records journal mutations per user. Changes holds the fields
// that matter for the action, or NULL when there is nothing to record.
type AuditLog struct {
	ID           string            `gorm:"primaryKey" json:"id"`
	UserID       string            `gorm:"not null;index" json:"user_id"`
	Action       string            `gorm:"not null" json:"action"`
	ResourceType string            `gorm:"not null" json:"resource_type"`
	ResourceID   string            `gorm:"not null;default:''" json:"resource_id"`
	IPAddress    string            `gorm:"not null;default:''" json:"ip_address"`
	Changes      datatypes.JSONMap `json:"changes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
