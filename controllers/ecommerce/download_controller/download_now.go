package download_controller

import (
	"net/http"
	"strings"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/capoeira360/Craft-Art-Market-sub000/middleware"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
)

// DownloadNow godoc
// @Summary Download the app now
// @Description Manual "Download Now": skips the countdown and redirects to the store. A countdown already streaming for the session is ended rather than duplicated. Desktop visitors must pick a platform.
// @Tags store
// @Param platform query string false "Store to open" Enums(ios, android)
// @Success 302
// @Failure 400 {object} models.ApiResponse
// @Router /store/download/now [get]
func DownloadNow(c *gin.Context) {
	cfg := config.Current()
	class := device.Classify(c.Request.UserAgent())

	switch platform := device.Class(strings.ToLower(c.Query("platform"))); platform {
	case "":
	case device.IOS, device.Android:
		class = platform
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Platform must be ios or android"))
		return
	}

	if !class.IsMobile() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Choose a platform to download the app"))
		return
	}

	if live, ok := liveCountdown(c, class); ok {
		// the streaming page records the redirect when it fires; a repeat
		// click after that only sends the visitor on
		live.Trigger()
		c.Redirect(http.StatusFound, live.Snapshot().StoreURL)
		return
	}

	var target string
	countdown := device.NewCountdown(class, cfg.StoreURLs, cfg.CountdownSeconds, func(storeURL string) {
		target = storeURL
		recordRedirect(c, class, models.DownloadTriggerManual, storeURL)
	})
	countdown.Trigger()

	c.Redirect(http.StatusFound, target)
}

// liveCountdown finds the countdown this visitor's download page is
// streaming for the same device.
func liveCountdown(c *gin.Context, class device.Class) (*device.Countdown, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return nil, false
	}
	live, ok := services.GetCountdownRegistry().Live(sessionID)
	if !ok || live.Snapshot().Device != class {
		return nil, false
	}
	return live, true
}
