package models

import (
	"time"

	"gorm.io/datatypes"
)

// ScheduleAuditLog records one write against the placement-level schedules of a placement group
type ScheduleAuditLog struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	PlacementGroupID uint           `gorm:"not null;index:idx_schedule_audit_placement_group_id" json:"placement_group_id"`
	ScheduleID       *uint          `json:"schedule_id,omitempty"`
	Action           string         `gorm:"type:varchar(40);not null;index:idx_schedule_audit_action" json:"action"`
	Description      *string        `gorm:"type:text" json:"description,omitempty"`
	IPAddress        *string        `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent        *string        `gorm:"type:text" json:"user_agent,omitempty"`
	RequestID        *string        `gorm:"size:255;index:idx_schedule_audit_request_id" json:"request_id,omitempty"`
	Metadata         datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	Success          *bool          `gorm:"default:true" json:"success"`
	ErrorMessage     *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP;index:idx_schedule_audit_created_at" json:"created_at"`
}

func (ScheduleAuditLog) TableName() string {
	return "schedule_audit_log"
}

// Schedule audit actions
const (
	AuditActionScheduleCreated   = "schedule_created"
	AuditActionScheduleUpdated   = "schedule_updated"
	AuditActionScheduleDeleted   = "schedule_deleted"
	AuditActionSchedulesReplaced = "schedules_replaced"
)

func (a *ScheduleAuditLog) IsFailed() bool {
	return a.Success != nil && !*a.Success
}
