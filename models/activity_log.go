package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records one admin moderation action on a catalog item. The
// action itself is simulated; the log entry is the only thing persisted.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      string         `json:"admin_id" gorm:"not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // approved_item, rejected_item, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // catalog kind
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Reason       string         `json:"reason"`
	Changes      datatypes.JSON `json:"changes"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityChanges is the before/after snapshot of the fields an action
// would have touched.
type ActivityChanges struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

type ActivityLogResponse struct {
	ID           uuid.UUID      `json:"id"`
	AdminID      string         `json:"admin_id"`
	AdminEmail   string         `json:"admin_email"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	ResourceName string         `json:"resource_name"`
	Reason       string         `json:"reason,omitempty"`
	Changes      map[string]any `json:"changes"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (al *ActivityLog) ToResponse() ActivityLogResponse {
	changes := make(map[string]any)
	if al.Changes != nil {
		_ = json.Unmarshal(al.Changes, &changes)
	}

	return ActivityLogResponse{
		ID:           al.ID,
		AdminID:      al.AdminID,
		AdminEmail:   al.AdminEmail,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Reason:       al.Reason,
		Changes:      changes,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		UserAgent:    al.UserAgent,
		CreatedAt:    al.CreatedAt,
	}
}

// ════════════════════════════════════════════════════════════
// Moderation
// ════════════════════════════════════════════════════════════

const (
	ActionApproveItem        = "approved_item"
	ActionRejectItem         = "rejected_item"
	ActionSuspendItem        = "suspended_item"
	ActionDeleteItem         = "deleted_item"
	ActionEditItem           = "edited_item"
	ActionRequestItemChanges = "requested_item_changes"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ModerationRequest is the body of reject / suspend / request-changes.
type ModerationRequest struct {
	Reason string `json:"reason"`
}

// EditItemRequest lists the fields an admin wants to change.
type EditItemRequest struct {
	Changes map[string]any `json:"changes" binding:"required"`
}

// ModerationResult reports what an action would have done. Simulated is
// always true: the catalog itself is never mutated.
type ModerationResult struct {
	ItemID          string         `json:"item_id"`
	Kind            CatalogKind    `json:"kind"`
	Action          string         `json:"action"`
	PreviousStatus  string         `json:"previous_status"`
	ResultingStatus string         `json:"resulting_status,omitempty"`
	Reason          string         `json:"reason,omitempty"`
	Changes         map[string]any `json:"changes,omitempty"`
	Simulated       bool           `json:"simulated"`
	LogID           *uuid.UUID     `json:"log_id,omitempty"`
}
