package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@craftart.example"
	adminPassword = "karibu-sana"
)

type envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{
		AppEnv:      "test",
		CORSOrigins: []string{"http://localhost:3000"},
		RateLimit:   100,
		StoreURLs: device.StoreURLs{
			IOS:     "https://apps.apple.com/app/craft-art-market",
			Android: "https://play.google.com/store/apps/details?id=market.craftart",
		},
		CountdownSeconds: 3,
	}
	config.SetCurrent(cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	services.InitAdminAuthService(services.NewAdminAuthService(services.NewStaticAdminDirectory(adminEmail, string(hash))))
	services.InitFavoritesStore(services.NewMemoryFavoritesStore())
	logs := services.NewActivityLogService(nil)
	services.InitActivityLogService(logs)
	services.InitCatalogAdminService(services.NewSimulatedAdminService(services.GetCatalogService(), logs))

	t.Cleanup(func() {
		config.SetCurrent(nil)
		services.InitAdminAuthService(nil)
		services.InitFavoritesStore(nil)
		services.InitActivityLogService(nil)
		services.InitCatalogAdminService(nil)
	})

	return NewRouter(cfg, nil)
}

func do(t *testing.T, router *gin.Engine, method, target string, body any, mutate ...func(*http.Request)) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decodeItems(t *testing.T, raw json.RawMessage) []models.CatalogItem {
	t.Helper()
	var items []models.CatalogItem
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

// ════════════════════════════════════════════════════════════
// Storefront
// ════════════════════════════════════════════════════════════

func TestCatalogListing(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/catalog/crafts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeItems(t, env.Data), 6)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 6, env.Meta.Total)
	assert.Equal(t, 12, env.Meta.Limit)

	w, env = do(t, router, http.MethodGet, "/api/v1/store/catalog/crafts?category=Jewellery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeItems(t, env.Data)
	require.Len(t, items, 1)
	assert.Equal(t, "Beaded Jewelry Set", items[0].Name)
	assert.Equal(t, 1, env.Meta.Total)
	assert.Equal(t, 6, env.Meta.TotalItems)

	w, env = do(t, router, http.MethodGet, "/api/v1/store/catalog/crafts?sortBy=price-asc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	prices := make([]int64, 0)
	for _, item := range decodeItems(t, env.Data) {
		require.NotNil(t, item.Price)
		prices = append(prices, *item.Price)
	}
	assert.Equal(t, []int64{35000, 45000, 65000, 85000, 95000, 125000}, prices)

	w, env = do(t, router, http.MethodGet, "/api/v1/store/catalog/crafts?limit=4&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeItems(t, env.Data), 2)
	assert.Equal(t, 2, env.Meta.TotalPages)
}

func TestCatalogErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target string
		status int
	}{
		{"/api/v1/store/catalog/paintings", http.StatusNotFound},
		{"/api/v1/store/catalog/paintings/filters", http.StatusNotFound},
		{"/api/v1/store/catalog/crafts?sortBy=cheapest", http.StatusBadRequest},
		{"/api/v1/store/catalog/crafts?featured=often", http.StatusBadRequest},
		{"/api/v1/store/catalog/crafts/craft-999", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w, env := do(t, router, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, w.Code)
			assert.True(t, env.Error)
		})
	}
}

func TestCatalogItemAndFilters(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/catalog/craft/craft-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item models.CatalogItem
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, "Makonde Ebony Carving", item.Name)

	w, env = do(t, router, http.MethodGet, "/api/v1/store/catalog/crafts/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filters models.CatalogFilters
	require.NoError(t, json.Unmarshal(env.Data, &filters))
	assert.Equal(t, models.CategoryAll, filters.Categories[0].Value)
	require.NotNil(t, filters.PriceRange)
	assert.Equal(t, int64(35000), filters.PriceRange.Min)
}

func TestFavoritesFollowSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/store/favorites/craft-002/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled models.ToggleFavoriteResponse
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.True(t, toggled.Favorited)
	assert.Equal(t, 1, toggled.Count)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			session = c
		}
	}
	require.NotNil(t, session)
	withSession := func(r *http.Request) { r.AddCookie(&http.Cookie{Name: session.Name, Value: session.Value}) }

	_, env = do(t, router, http.MethodGet, "/api/v1/store/favorites", nil, withSession)
	var favorites models.FavoritesResponse
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	assert.Equal(t, []string{"craft-002"}, favorites.IDs)

	_, env = do(t, router, http.MethodPost, "/api/v1/store/favorites/craft-002/toggle", nil, withSession)
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.False(t, toggled.Favorited)
	assert.Zero(t, toggled.Count)

	// A fresh visitor starts with nothing.
	_, env = do(t, router, http.MethodGet, "/api/v1/store/favorites", nil)
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	assert.Empty(t, favorites.IDs)
}

func TestDownloadRedirect(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, http.MethodGet, "/api/v1/store/download/now", nil, func(r *http.Request) {
		r.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://apps.apple.com/app/craft-art-market", w.Header().Get("Location"))
}

func TestContentPages(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, http.MethodGet, "/api/v1/store/legal/terms-of-service", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/store/legal/refund-policy", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/blog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []models.ContentPage
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 2)

	w, _ = do(t, router, http.MethodGet, "/api/v1/store/announcements/mobile-app-launch", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ════════════════════════════════════════════════════════════
// Admin
// ════════════════════════════════════════════════════════════

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, env := do(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{"email": adminEmail, "password": adminPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.AdminLoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleSuperAdmin, resp.Admin.Role)
	return resp.Token
}

func TestAdminLogin(t *testing.T) {
	router := newTestRouter(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{"email": adminEmail, "password": "wrong-password"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := login(t, router)

	w, _ = do(t, router, http.MethodGet, "/api/v1/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := do(t, router, http.MethodGet, "/api/v1/admin/me", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), adminEmail)
}

func TestAdminModerationFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w, env := do(t, router, http.MethodGet, "/api/v1/admin/products?status=approved", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, env.Meta.Limit)
	assert.Equal(t, 6, env.Meta.Total)

	w, env = do(t, router, http.MethodPost, "/api/v1/admin/products/craft-001/approve", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	var result models.ModerationResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Simulated)
	assert.Equal(t, models.ItemStatusApproved, result.ResultingStatus)

	w, _ = do(t, router, http.MethodPost, "/api/v1/admin/products/craft-002/reject", nil, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code, "reject needs a reason")

	w, _ = do(t, router, http.MethodPost, "/api/v1/admin/products/craft-002/reject", gin.H{"reason": "Photos are blurry"}, bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/admin/products/artisan-001/suspend?kind=artisans", gin.H{"reason": "Identity check"}, bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/admin/products/craft-404/approve", nil, bearer(token))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/admin/products/craft-001/approve?kind=sculptures", nil, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodPatch, "/api/v1/admin/products/craft-001", gin.H{"changes": gin.H{"price": 130000}}, bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodPatch, "/api/v1/admin/products/craft-001", gin.H{"changes": gin.H{"likes": 1}}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodDelete, "/api/v1/admin/products/craft-006", nil, bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)

	// The catalog is unchanged by simulated actions.
	w, env = do(t, router, http.MethodGet, "/api/v1/store/catalog/crafts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeItems(t, env.Data), 6)

	w, env = do(t, router, http.MethodGet, "/api/v1/admin/activity-logs", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, env.Meta.Total)

	w, env = do(t, router, http.MethodGet, "/api/v1/admin/products/craft-001/activity", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.Meta.Total)
}

func TestAdminReportAndAnalytics(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w, _ := do(t, router, http.MethodGet, "/api/v1/admin/products/report", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "catalog-crafts-")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w, env := do(t, router, http.MethodGet, "/api/v1/admin/products/stats", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.CatalogStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 6, stats.TotalItems)

	w, env = do(t, router, http.MethodGet, "/api/v1/admin/analytics/overview", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	var overview models.AnalyticsOverview
	require.NoError(t, json.Unmarshal(env.Data, &overview))
	assert.Len(t, overview.Catalogs, len(models.CatalogKinds))
	assert.Positive(t, overview.TotalItems)
}

func TestHealthAndDocs(t *testing.T) {
	router := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"database":"disabled"`)

	w, _ = do(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
