package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tradelog/internal/handlers"
	"tradelog/internal/logger"
	"tradelog/internal/middleware"
	"tradelog/internal/models"
	"tradelog/internal/services"
	"tradelog/internal/uuid"
	"tradelog/internal/validator"
)

const (
	testSecret = "integration-secret"
	testIssuer = "tradelog-test"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.MonthRecord{},
		&models.Trade{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	monthService := services.NewMonthRecordService(db)
	tradeService := services.NewTradeService(db)
	statsService := services.NewStatsService(monthService, tradeService)
	backupService := services.NewBackupService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	monthHandler := handlers.NewMonthHandler(monthService, auditService)
	tradeHandler := handlers.NewTradeHandler(tradeService, auditService)
	statsHandler := handlers.NewStatsHandler(statsService)
	backupHandler := handlers.NewBackupHandler(backupService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware([]byte(testSecret), testIssuer))

	months := v1.Group("/months")
	months.POST("", monthHandler.CreateMonth)
	months.GET("", monthHandler.GetMonths)
	months.GET("/:id", monthHandler.GetMonthByID)
	months.PUT("/:id", monthHandler.UpdateMonth)
	months.DELETE("/:id", monthHandler.DeleteMonth)

	trades := v1.Group("/trades")
	trades.POST("", tradeHandler.CreateTrade)
	trades.GET("", tradeHandler.GetTrades)
	trades.GET("/:id", tradeHandler.GetTradeByID)
	trades.PUT("/:id", tradeHandler.UpdateTrade)
	trades.DELETE("/:id", tradeHandler.DeleteTrade)

	stats := v1.Group("/stats")
	stats.GET("/overall", statsHandler.GetOverallStats)
	stats.GET("/combined", statsHandler.GetCombinedStats)
	stats.GET("/trades", statsHandler.GetTradeStats)
	stats.GET("/yearly", statsHandler.GetYearlyStats)
	stats.GET("/calendar", statsHandler.GetCalendar)
	stats.GET("/equity", statsHandler.GetEquityCurve)
	stats.GET("/symbols", statsHandler.GetSymbolBreakdown)

	v1.GET("/backup", backupHandler.ExportBackup)
	v1.PUT("/backup", backupHandler.ReplaceBackup)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// newUser returns a fresh user id and a bearer token for it.
func newUser(t *testing.T) (userID, token string) {
	t.Helper()
	userID = uuid.New()
	token, err := middleware.GenerateAccessToken(userID, []byte(testSecret), testIssuer, time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return userID, token
}

// createMonth posts a month and returns its id.
func (app *testApp) createMonth(t *testing.T, token, body string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/months", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create month failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["month"].(map[string]interface{})["id"].(string)
}

// createTrade posts a trade and returns its id.
func (app *testApp) createTrade(t *testing.T, token, body string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/trades", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["trade"].(map[string]interface{})["id"].(string)
}

// getStats fetches one of the stats views and returns its "stats" object.
func (app *testApp) getStats(t *testing.T, token, view string) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/stats/"+view, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats %s failed: %d %s", view, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["stats"].(map[string]interface{})
}
