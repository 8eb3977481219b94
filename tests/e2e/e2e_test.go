package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mobileexperts/internal/database"
	"mobileexperts/internal/domain"
	"mobileexperts/internal/middleware"
	"mobileexperts/internal/modules/admin"
	"mobileexperts/internal/modules/catalog"
	"mobileexperts/internal/modules/chat"
	"mobileexperts/internal/modules/notification"
	"mobileexperts/internal/modules/schedule"
	jwtsvc "mobileexperts/internal/pkg/jwt"
	"mobileexperts/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bookingDate is a Monday well in the future; the shop is open 9:00-21:00.
const bookingDate = "2027-03-01"

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	db, err := database.Connect(fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, repository.AutoMigrate(db, &notification.Notification{}))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	notificationRepo := notification.NewRepository(db)

	// Seed an admin and a service the way cmd/seed does
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, userRepo.Create(ctx, &domain.User{
		Email:        "admin@mobileexperts.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Admin User",
	}))
	require.NoError(t, serviceRepo.Create(ctx, &domain.RepairService{
		Name:            "Screen Replacement",
		Slug:            "screen-replacement",
		PriceMin:        89.99,
		PriceMax:        149.99,
		DurationMinutes: 30,
		DeviceType:      domain.DevicePhone,
		IssueType:       domain.IssueScreen,
		IsActive:        true,
	}))

	// Empty hours table falls back to the standing default schedule
	week, err := calendarRepo.LoadWeek(ctx)
	require.NoError(t, err)
	blackouts, err := calendarRepo.LoadBlackouts(ctx)
	require.NoError(t, err)
	calendar, err := schedule.NewCalendar(week, blackouts)
	require.NoError(t, err)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	notificationService := notification.NewService(
		notificationRepo,
		notification.LogSMSSender{},
		notification.LogEmailSender{},
		notification.DefaultBusinessInfo(),
	)
	notificationHandler := notification.NewHandler(notificationService)

	scheduleService := schedule.NewService(calendar, bookingRepo, serviceRepo, notificationService, 2, 30)
	scheduleHandler := schedule.NewHandler(scheduleService)

	catalogHandler := catalog.NewHandler(catalog.NewService(serviceRepo))
	chatHandler := chat.NewHandler(chat.NewService(calendar))

	adminService := admin.NewService(userRepo, calendarRepo, jwtService)
	adminHandler := admin.NewHandler(adminService, scheduleService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	scheduleHandler.RegisterRoutes(v1)
	catalogHandler.RegisterRoutes(v1)
	chatHandler.RegisterRoutes(v1)
	adminHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(jwtService), middleware.AdminOnly())
	{
		adminHandler.RegisterRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
	}

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Logf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
		t.FailNow()
	}
	return &resp
}

func (s *E2ETestSuite) loginAdmin(t *testing.T) string {
	t.Helper()
	w := s.makeRequest("POST", "/api/v1/admin/login", map[string]interface{}{
		"email":    "admin@mobileexperts.com",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "admin login failed: %s", w.Body.String())
	resp := parseResponse(t, w)
	return resp.Data["token"].(string)
}

func (s *E2ETestSuite) book(t *testing.T, startMinute int) *TestResponse {
	t.Helper()
	w := s.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
		"date":           bookingDate,
		"start_minute":   startMinute,
		"service_slug":   "screen-replacement",
		"device_model":   "iPhone 14 Pro",
		"issue_type":     "screen",
		"customer_name":  "Jane Doe",
		"customer_phone": "(718) 555-0142",
		"customer_email": "jane@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "booking failed: %s", w.Body.String())
	return parseResponse(t, w)
}

// =============================================================================
// Flow 1: Customer booking journey
// =============================================================================

func TestFlow1_CustomerBookingJourney(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("GET /services", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/services", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "screen-replacement")
	})

	t.Run("GET /quote", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/quote?device=phone&issue=screen", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("GET /availability before booking", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/availability?date="+bookingDate, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, true, resp.Data["open"])
		assert.Len(t, resp.Data["slots"], 24)
	})

	var trackingCode string
	t.Run("POST /bookings", func(t *testing.T) {
		resp := suite.book(t, 600)
		booking := resp.Data["booking"].(map[string]interface{})

		assert.Equal(t, "confirmed", booking["status"])
		assert.Equal(t, "10:00 AM", booking["time"])
		trackingCode = booking["tracking_code"].(string)
		assert.Len(t, trackingCode, 8)
	})

	t.Run("availability reflects the booking", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/availability?date="+bookingDate, nil, "")
		resp := parseResponse(t, w)

		for _, raw := range resp.Data["slots"].([]interface{}) {
			slot := raw.(map[string]interface{})
			if slot["start_minute"].(float64) == 600 {
				assert.Equal(t, float64(1), slot["remaining_capacity"])
				assert.Equal(t, true, slot["available"])
			}
		}
	})

	t.Run("GET /bookings/track/:code", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/bookings/track/"+trackingCode, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, "confirmed", resp.Data["status"])
		assert.Equal(t, "iPhone 14 Pro", resp.Data["device_model"])
	})

	t.Run("cancel frees the slot", func(t *testing.T) {
		var b struct{ ID int64 }
		require.NoError(t, suite.db.Table("bookings").Select("id").Where("tracking_code = ?", trackingCode).Scan(&b).Error)

		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", b.ID),
			map[string]interface{}{"reason": "found a closer shop"}, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", "/api/v1/availability?date="+bookingDate, nil, "")
		resp := parseResponse(t, w)
		for _, raw := range resp.Data["slots"].([]interface{}) {
			slot := raw.(map[string]interface{})
			if slot["start_minute"].(float64) == 600 {
				assert.Equal(t, float64(2), slot["remaining_capacity"])
			}
		}
	})
}

// =============================================================================
// Flow 2: Capacity enforcement through the API
// =============================================================================

func TestFlow2_CapacityEnforcement(t *testing.T) {
	suite := setupTestSuite(t)

	suite.book(t, 600)
	suite.book(t, 600)

	w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
		"date":           bookingDate,
		"start_minute":   600,
		"customer_name":  "Late Customer",
		"customer_phone": "(718) 555-0199",
		"customer_email": "late@example.com",
	}, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := parseResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SLOT_FULL", resp.Error.Code)

	// An adjacent non-overlapping slot still books fine
	suite.book(t, 720)
}

// =============================================================================
// Flow 3: Admin dashboard
// =============================================================================

func TestFlow3_AdminDashboard(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("protected routes reject anonymous access", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/admin/bookings?date="+bookingDate, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/admin/login", map[string]interface{}{
			"email":    "admin@mobileexperts.com",
			"password": "nope",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	token := suite.loginAdmin(t)
	resp := suite.book(t, 600)
	booking := resp.Data["booking"].(map[string]interface{})
	bookingID := int64(booking["id"].(float64))

	t.Run("GET /admin/bookings", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/admin/bookings?date="+bookingDate, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Jane Doe")
	})

	t.Run("GET /admin/bookings/:id", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/admin/bookings/%d", bookingID), nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", "/api/v1/admin/bookings/99999", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PATCH /admin/bookings/:id/status completes", func(t *testing.T) {
		w := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/admin/bookings/%d/status", bookingID),
			map[string]interface{}{"status": "completed"}, token)
		assert.Equal(t, http.StatusOK, w.Code)

		// Completing twice is an invalid transition
		w = suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/admin/bookings/%d/status", bookingID),
			map[string]interface{}{"status": "completed"}, token)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GET /admin/hours", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/admin/hours", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "opens_at")
	})

	t.Run("POST /admin/blackouts", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/admin/blackouts", map[string]interface{}{
			"date":     "2027-12-25",
			"full_day": true,
			"reason":   "Christmas",
		}, token)
		assert.Equal(t, http.StatusCreated, w.Code)

		var count int64
		suite.db.Table("blackout_dates").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("GET /notifications shows dispatched messages", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/notifications", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "booking_confirmed")
	})
}

// =============================================================================
// Flow 4: Chat assistant
// =============================================================================

func TestFlow4_ChatAssistant(t *testing.T) {
	suite := setupTestSuite(t)

	w := suite.makeRequest("POST", "/api/v1/chat", map[string]interface{}{
		"message": "I'd like to book a repair",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	reply := resp.Data["reply"].(map[string]interface{})
	actions := reply["actions"].([]interface{})
	require.Len(t, actions, 1)
	assert.Equal(t, "start_booking", actions[0].(map[string]interface{})["type"])
}
