package download_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/capoeira360/Craft-Art-Market-sub000/metrics"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func downloadInfo(class device.Class, cfg *config.AppConfig) models.DownloadInfo {
	return models.DownloadInfo{
		Device:           string(class),
		StoreURL:         cfg.StoreURLs.For(class),
		IOSStoreURL:      cfg.StoreURLs.IOS,
		AndroidStoreURL:  cfg.StoreURLs.Android,
		AutoRedirect:     class.IsMobile(),
		CountdownSeconds: cfg.CountdownSeconds,
	}
}

// recordRedirect stores a download event. Failures are logged only; the
// visitor is redirected either way.
func recordRedirect(c *gin.Context, class device.Class, trigger, storeURL string) {
	metrics.StoreRedirects.WithLabelValues(string(class), trigger).Inc()

	sessionID, _ := middleware.GetSessionID(c)
	event := models.DownloadEvent{
		SessionID:  sessionID,
		DeviceType: string(class),
		Trigger:    trigger,
		StoreURL:   storeURL,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetDownloadRecorder().Record(ctx, event); err != nil {
		zap.L().Named("store.download").Warn("failed to record download event",
			zap.String("device", string(class)),
			zap.String("trigger", trigger),
			zap.Error(err),
		)
	}
}
