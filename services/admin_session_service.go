package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrSessionRevoked = errors.New("admin session is no longer active")

// AdminSessionService tracks issued admin tokens so logout can revoke them.
// Without a database sessions are not tracked and every valid JWT is
// accepted until it expires.
type AdminSessionService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewAdminSessionService(db *gorm.DB) *AdminSessionService {
	return &AdminSessionService{
		db:  db,
		log: zap.L().Named("session"),
		now: time.Now,
	}
}

func (s *AdminSessionService) Migrate() error {
	if s.db == nil {
		return nil
	}
	return s.db.AutoMigrate(&models.AdminSession{})
}

// CreateSession creates a new admin session
func (s *AdminSessionService) CreateSession(ctx context.Context, adminID uuid.UUID, token, ipAddress, userAgent string) (*models.AdminSession, error) {
	if s.db == nil {
		return nil, nil
	}
	now := s.now()
	session := &models.AdminSession{
		AdminID:        adminID,
		TokenHash:      GetAdminAuthService().HashToken(token),
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(AdminTokenTTL),
		IsActive:       true,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.log.Info("created session", zap.String("session", session.ID.String()), zap.String("admin", adminID.String()))
	return session, nil
}

// Touch checks the token's session is still active and bumps its last
// activity time. Returns ErrSessionRevoked after logout or expiry.
func (s *AdminSessionService) Touch(ctx context.Context, token string) error {
	if s.db == nil {
		return nil
	}
	now := s.now()
	result := s.db.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ? AND expires_at > ?", GetAdminAuthService().HashToken(token), true, now).
		Update("last_activity_at", now)
	if result.Error != nil {
		return fmt.Errorf("update session activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionRevoked
	}
	return nil
}

// Revoke marks the token's session inactive (logout).
func (s *AdminSessionService) Revoke(ctx context.Context, token string) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ?", GetAdminAuthService().HashToken(token), true).
		Update("is_active", false).Error; err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions and inactive ones older
// than a week.
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, nil
	}
	now := s.now()
	result := s.db.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)",
			now,
			false,
			now.Add(-7*24*time.Hour),
		).
		Delete(&models.AdminSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("cleanup sessions: %w", result.Error)
	}
	s.log.Info("cleaned up expired sessions", zap.Int64("count", result.RowsAffected))
	return result.RowsAffected, nil
}

// Global instance
var (
	adminSessionService     *AdminSessionService
	adminSessionServiceOnce sync.Once
)

func InitAdminSessionService(s *AdminSessionService) {
	adminSessionService = s
	adminSessionServiceOnce = sync.Once{}
}

func GetAdminSessionService() *AdminSessionService {
	adminSessionServiceOnce.Do(func() {
		if adminSessionService == nil {
			adminSessionService = NewAdminSessionService(nil)
		}
	})
	return adminSessionService
}
