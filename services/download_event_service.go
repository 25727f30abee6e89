package services

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DownloadRecorder stores store redirects from the download page and
// aggregates them per device for the admin analytics page.
type DownloadRecorder interface {
	Record(ctx context.Context, event models.DownloadEvent) error
	DeviceBreakdown(ctx context.Context) ([]models.DeviceAnalytics, error)
}

// ════════════════════════════════════════════════════════════
// pgx recorder (postgres)
// ════════════════════════════════════════════════════════════

type PgxDownloadRecorder struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPgxDownloadRecorder(pool *pgxpool.Pool) *PgxDownloadRecorder {
	return &PgxDownloadRecorder{pool: pool, log: zap.L().Named("download")}
}

// Migrate creates the download_events table.
func (r *PgxDownloadRecorder) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS download_events (
			id            UUID PRIMARY KEY,
			session_id    TEXT,
			device_type   TEXT NOT NULL,
			trigger       TEXT NOT NULL,
			store_url     TEXT,
			ip_address    TEXT,
			user_agent    TEXT,
			redirected_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_download_events_device ON download_events (device_type);
	`
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("migrate download_events: %w", err)
	}
	return nil
}

func (r *PgxDownloadRecorder) Record(ctx context.Context, e models.DownloadEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}

	query := `
		INSERT INTO download_events (
			id, session_id, device_type, trigger, store_url, ip_address, user_agent, redirected_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		e.ID.String(),
		e.SessionID,
		e.DeviceType,
		e.Trigger,
		e.StoreURL,
		e.IPAddress,
		e.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("record download event: %w", err)
	}
	r.log.Info("download event recorded", zap.String("device", e.DeviceType), zap.String("trigger", e.Trigger))
	return nil
}

func (r *PgxDownloadRecorder) DeviceBreakdown(ctx context.Context) ([]models.DeviceAnalytics, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT device_type, COUNT(*)
		FROM download_events
		GROUP BY device_type
		ORDER BY COUNT(*) DESC, device_type
	`)
	if err != nil {
		return nil, fmt.Errorf("query device breakdown: %w", err)
	}
	defer rows.Close()

	out := make([]models.DeviceAnalytics, 0)
	for rows.Next() {
		var row models.DeviceAnalytics
		if err := rows.Scan(&row.DeviceType, &row.DownloadCount); err != nil {
			return nil, fmt.Errorf("scan device breakdown: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return withPercentages(out), nil
}

// ════════════════════════════════════════════════════════════
// GORM recorder (sqlite and tests)
// ════════════════════════════════════════════════════════════

type GormDownloadRecorder struct {
	db *gorm.DB
}

func NewGormDownloadRecorder(db *gorm.DB) *GormDownloadRecorder {
	return &GormDownloadRecorder{db: db}
}

func (r *GormDownloadRecorder) Migrate() error {
	return r.db.AutoMigrate(&models.DownloadEvent{})
}

func (r *GormDownloadRecorder) Record(ctx context.Context, e models.DownloadEvent) error {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return fmt.Errorf("record download event: %w", err)
	}
	return nil
}

func (r *GormDownloadRecorder) DeviceBreakdown(ctx context.Context) ([]models.DeviceAnalytics, error) {
	out := make([]models.DeviceAnalytics, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.DownloadEvent{}).
		Select("device_type, COUNT(*) AS download_count").
		Group("device_type").
		Order("download_count DESC, device_type").
		Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("query device breakdown: %w", err)
	}
	return withPercentages(out), nil
}

// ════════════════════════════════════════════════════════════
// No database
// ════════════════════════════════════════════════════════════

// LogDownloadRecorder only logs; the breakdown is always empty.
type LogDownloadRecorder struct {
	log *zap.Logger
}

func NewLogDownloadRecorder() *LogDownloadRecorder {
	return &LogDownloadRecorder{log: zap.L().Named("download")}
}

func (r *LogDownloadRecorder) Record(_ context.Context, e models.DownloadEvent) error {
	r.log.Info("store redirect", zap.String("device", e.DeviceType), zap.String("trigger", e.Trigger))
	return nil
}

func (r *LogDownloadRecorder) DeviceBreakdown(context.Context) ([]models.DeviceAnalytics, error) {
	return make([]models.DeviceAnalytics, 0), nil
}

func withPercentages(rows []models.DeviceAnalytics) []models.DeviceAnalytics {
	total := 0
	for _, r := range rows {
		total += r.DownloadCount
	}
	if total == 0 {
		return rows
	}
	for i := range rows {
		pct := float64(rows[i].DownloadCount) / float64(total) * 100
		rows[i].Percentage = math.Round(pct*100) / 100
	}
	return rows
}

// Global instance
var (
	downloadRecorder     DownloadRecorder
	downloadRecorderOnce sync.Once
)

func InitDownloadRecorder(r DownloadRecorder) {
	downloadRecorder = r
	downloadRecorderOnce = sync.Once{}
}

func GetDownloadRecorder() DownloadRecorder {
	downloadRecorderOnce.Do(func() {
		if downloadRecorder == nil {
			downloadRecorder = NewLogDownloadRecorder()
		}
	})
	return downloadRecorder
}
