package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminSuspended     = errors.New("admin account is suspended")
)

// AdminDirectory finds admins by email.
type AdminDirectory interface {
	FindByEmail(ctx context.Context, email string) (models.Lookup[models.Admin], error)
	RecordLogin(ctx context.Context, admin *models.Admin, at time.Time) error
}

// ════════════════════════════════════════════════════════════
// Database directory
// ════════════════════════════════════════════════════════════

type GormAdminDirectory struct {
	db *gorm.DB
}

func NewGormAdminDirectory(db *gorm.DB) *GormAdminDirectory {
	return &GormAdminDirectory{db: db}
}

func (d *GormAdminDirectory) Migrate() error {
	return d.db.AutoMigrate(&models.Admin{})
}

func (d *GormAdminDirectory) FindByEmail(ctx context.Context, email string) (models.Lookup[models.Admin], error) {
	var admin models.Admin
	err := d.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotFound[models.Admin](), nil
	}
	if err != nil {
		return models.NotFound[models.Admin](), fmt.Errorf("find admin: %w", err)
	}
	return models.Found(admin), nil
}

func (d *GormAdminDirectory) RecordLogin(ctx context.Context, admin *models.Admin, at time.Time) error {
	if err := d.db.WithContext(ctx).
		Model(admin).
		Update("last_login_at", at).Error; err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	admin.LastLoginAt = &at
	return nil
}

// Create inserts a new admin, hashing the password.
func (d *GormAdminDirectory) Create(ctx context.Context, email, name, password, role string) (*models.Admin, error) {
	hash, err := GetAdminAuthService().HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.Admin{
		Email:        normalizeEmail(email),
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Status:       models.AdminStatusActive,
	}
	if err := d.db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// ════════════════════════════════════════════════════════════
// Single admin from configuration
// ════════════════════════════════════════════════════════════

// StaticAdminDirectory serves one super admin configured through
// ADMIN_EMAIL / ADMIN_PASSWORD_HASH, for deployments without a database.
type StaticAdminDirectory struct {
	admin models.Admin
}

func NewStaticAdminDirectory(email, passwordHash string) *StaticAdminDirectory {
	email = normalizeEmail(email)
	return &StaticAdminDirectory{admin: models.Admin{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+email)),
		Email:        email,
		Name:         "Administrator",
		PasswordHash: passwordHash,
		Role:         models.RoleSuperAdmin,
		Status:       models.AdminStatusActive,
	}}
}

func (d *StaticAdminDirectory) FindByEmail(_ context.Context, email string) (models.Lookup[models.Admin], error) {
	if d.admin.Email == "" || d.admin.PasswordHash == "" || normalizeEmail(email) != d.admin.Email {
		return models.NotFound[models.Admin](), nil
	}
	return models.Found(d.admin), nil
}

func (d *StaticAdminDirectory) RecordLogin(_ context.Context, admin *models.Admin, at time.Time) error {
	admin.LastLoginAt = &at
	return nil
}

// ════════════════════════════════════════════════════════════
// Auth service
// ════════════════════════════════════════════════════════════

// AdminAuthService handles admin authentication operations
type AdminAuthService struct {
	directory AdminDirectory
	now       func() time.Time
}

func NewAdminAuthService(directory AdminDirectory) *AdminAuthService {
	return &AdminAuthService{directory: directory, now: time.Now}
}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks the minimum length of 8 characters.
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// HashToken hashes a token using SHA256 for storage in database
func (s *AdminAuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// Authenticate checks credentials and stamps the login time. Unknown emails
// and wrong passwords both return ErrInvalidCredentials.
func (s *AdminAuthService) Authenticate(ctx context.Context, email, password string) (*models.Admin, error) {
	if s.directory == nil {
		return nil, ErrInvalidCredentials
	}
	found, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	admin, ok := found.Get()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if admin.Status == models.AdminStatusSuspended {
		return nil, ErrAdminSuspended
	}
	if !s.VerifyPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if err := s.directory.RecordLogin(ctx, &admin, s.now().UTC()); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Profile loads the admin behind a verified token.
func (s *AdminAuthService) Profile(ctx context.Context, email string) (models.Lookup[models.Admin], error) {
	if s.directory == nil {
		return models.NotFound[models.Admin](), nil
	}
	return s.directory.FindByEmail(ctx, email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	adminAuthService     *AdminAuthService
	adminAuthServiceOnce sync.Once
)

func InitAdminAuthService(s *AdminAuthService) {
	adminAuthService = s
	adminAuthServiceOnce = sync.Once{}
}

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	adminAuthServiceOnce.Do(func() {
		if adminAuthService == nil {
			adminAuthService = NewAdminAuthService(nil)
		}
	})
	return adminAuthService
}
