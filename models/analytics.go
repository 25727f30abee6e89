package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Download trigger sources
const (
	DownloadTriggerCountdown = "countdown"
	DownloadTriggerManual    = "manual"
)

// DownloadEvent is one store redirect from the download page.
type DownloadEvent struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID    string    `json:"session_id" gorm:"index"`
	DeviceType   string    `json:"device_type" gorm:"not null;index"` // ios, android, desktop
	Trigger      string    `json:"trigger" gorm:"not null"`           // countdown, manual
	StoreURL     string    `json:"store_url"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent" gorm:"type:text"`
	RedirectedAt time.Time `json:"redirected_at" gorm:"autoCreateTime;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *DownloadEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (DownloadEvent) TableName() string {
	return "download_events"
}

type DeviceAnalytics struct {
	DeviceType    string  `json:"device_type"`    // ios, android, desktop
	DownloadCount int     `json:"download_count"` // redirects recorded from this device type
	Percentage    float64 `json:"percentage"`     // share of all recorded redirects
}

// DownloadInfo is what the download page renders before any redirect.
type DownloadInfo struct {
	Device           string `json:"device"`
	StoreURL         string `json:"store_url,omitempty"`
	IOSStoreURL      string `json:"ios_store_url"`
	AndroidStoreURL  string `json:"android_store_url"`
	AutoRedirect     bool   `json:"auto_redirect"`
	CountdownSeconds int    `json:"countdown_seconds"`
}

// AnalyticsOverview is the admin dashboard summary across catalogs.
type AnalyticsOverview struct {
	Catalogs       []CatalogStats    `json:"catalogs"`
	TotalItems     int               `json:"total_items"`
	PendingItems   int               `json:"pending_items"`
	TotalDownloads int               `json:"total_downloads"`
	Devices        []DeviceAnalytics `json:"devices"`
}
