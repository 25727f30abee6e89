package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// memoryLogLimit caps the fallback log kept when no database is configured.
const memoryLogLimit = 500

// Actor is the admin performing an action, plus request metadata.
type Actor struct {
	AdminID   string
	Email     string
	IPAddress string
	UserAgent string
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	Actor        Actor
	Action       string // ActionApproveItem, ActionRejectItem, ...
	ResourceType string // catalog kind
	ResourceID   string
	ResourceName string
	Reason       string
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string         // StatusSuccess or StatusFailed
	ErrorMessage string
}

// ActivityFilter narrows ListActivity. Zero fields match everything.
type ActivityFilter struct {
	AdminID      string
	ResourceType string
	ResourceID   string
	Action       string
	Page         int
	Limit        int
}

// ActivityLogService persists moderation log entries to the database, or to
// a bounded in-memory list when no database is configured.
type ActivityLogService struct {
	db  *gorm.DB
	log *zap.Logger

	mu     sync.Mutex
	memory []models.ActivityLog // newest last
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{
		db:  db,
		log: zap.L().Named("activity-log"),
	}
}

// Migrate creates the activity log table when a database is configured.
func (s *ActivityLogService) Migrate() error {
	if s.db == nil {
		return nil
	}
	return s.db.AutoMigrate(&models.ActivityLog{})
}

// LogActivity records one admin action and returns the stored entry.
func (s *ActivityLogService) LogActivity(ctx context.Context, req LogActivityRequest) (*models.ActivityLog, error) {
	var changesJSON []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			s.log.Warn("failed to marshal changes", zap.Error(err))
			data = []byte("{}")
		}
		changesJSON = data
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		AdminID:      req.Actor.AdminID,
		AdminEmail:   req.Actor.Email,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Reason:       req.Reason,
		Changes:      changesJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    req.Actor.IPAddress,
		UserAgent:    req.Actor.UserAgent,
	}

	if s.db != nil {
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("create activity log: %w", err)
		}
	} else {
		entry.CreatedAt = time.Now().UTC()
		s.mu.Lock()
		s.memory = append(s.memory, entry)
		if len(s.memory) > memoryLogLimit {
			s.memory = s.memory[len(s.memory)-memoryLogLimit:]
		}
		s.mu.Unlock()
	}

	s.log.Info("admin action",
		zap.String("action", req.Action),
		zap.String("resource", req.ResourceType+"/"+req.ResourceID),
		zap.String("name", req.ResourceName),
		zap.String("admin", req.Actor.Email),
		zap.String("status", req.Status),
	)
	return &entry, nil
}

// ListActivity returns matching entries newest first, with the total count.
func (s *ActivityLogService) ListActivity(ctx context.Context, f ActivityFilter) ([]models.ActivityLog, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	offset := (f.Page - 1) * f.Limit

	if s.db == nil {
		return s.listMemory(f, offset)
	}

	query := s.db.WithContext(ctx).Model(&models.ActivityLog{})
	if f.AdminID != "" {
		query = query.Where("admin_id = ?", f.AdminID)
	}
	if f.ResourceType != "" {
		query = query.Where("resource_type = ?", f.ResourceType)
	}
	if f.ResourceID != "" {
		query = query.Where("resource_id = ?", f.ResourceID)
	}
	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count activity logs: %w", err)
	}

	logs := make([]models.ActivityLog, 0)
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("fetch activity logs: %w", err)
	}
	return logs, total, nil
}

func (s *ActivityLogService) listMemory(f ActivityFilter, offset int) ([]models.ActivityLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.ActivityLog, 0)
	for i := len(s.memory) - 1; i >= 0; i-- {
		e := s.memory[i]
		if f.AdminID != "" && e.AdminID != f.AdminID {
			continue
		}
		if f.ResourceType != "" && e.ResourceType != f.ResourceType {
			continue
		}
		if f.ResourceID != "" && e.ResourceID != f.ResourceID {
			continue
		}
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return make([]models.ActivityLog, 0), total, nil
	}
	end := offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// CreateChanges builds the before/after changes map.
func CreateChanges(before, after map[string]any) map[string]any {
	return map[string]any{
		"before": before,
		"after":  after,
	}
}

// Global instance
var (
	activityLogService     *ActivityLogService
	activityLogServiceOnce sync.Once
)

func InitActivityLogService(s *ActivityLogService) {
	activityLogService = s
	activityLogServiceOnce = sync.Once{}
}

// GetActivityLogService returns the global activity log service
func GetActivityLogService() *ActivityLogService {
	activityLogServiceOnce.Do(func() {
		if activityLogService == nil {
			activityLogService = NewActivityLogService(nil)
		}
	})
	return activityLogService
}
