package download_controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// countdownInterval is one countdown step.
var countdownInterval = time.Second

// StreamCountdown godoc
// @Summary Stream the redirect countdown
// @Description Server-sent events for the download page: one event per state change (detecting, counting-down, redirecting). The redirecting event carries the store URL. A "Download Now" from the same session ends the stream early. Desktop visitors get a single unsupported event.
// @Tags store
// @Produce text/event-stream
// @Success 200 {object} device.Snapshot
// @Router /store/download/countdown [get]
func StreamCountdown(c *gin.Context) {
	cfg := config.Current()
	class := device.Classify(c.Request.UserAgent())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	var countdown *device.Countdown
	countdown = device.NewCountdown(class, cfg.StoreURLs, cfg.CountdownSeconds, func(storeURL string) {
		trigger := models.DownloadTriggerCountdown
		if countdown.Snapshot().Manual {
			trigger = models.DownloadTriggerManual
		}
		recordRedirect(c, class, trigger, storeURL)
	})

	if sessionID, ok := middleware.GetSessionID(c); ok && class.IsMobile() {
		release := services.GetCountdownRegistry().Register(sessionID, countdown)
		defer release()
	}

	emit := func(s device.Snapshot) {
		c.SSEvent(string(s.State), s)
		c.Writer.Flush()
	}

	emit(countdown.Snapshot())
	err := countdown.RunEvery(c.Request.Context(), countdownInterval, emit)
	switch {
	case err == nil:
	case errors.Is(err, device.ErrNoAutoRedirect):
		c.SSEvent("unsupported", downloadInfo(class, cfg))
		c.Writer.Flush()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// visitor left the page before the redirect
	default:
		zap.L().Named("store.download").Error("countdown failed", zap.Error(err))
	}
}
