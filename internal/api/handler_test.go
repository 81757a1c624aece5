package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"easypark-backend/config"
	"easypark-backend/internal/lot"
	"easypark-backend/internal/model"
	"easypark-backend/internal/notification"
	"easypark-backend/internal/store"
)

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.EventRecord{}))

	journal := store.NewGormStore(gormDB)
	engine := lot.New()
	engine.AttachObserver(store.NewRecorder(journal))

	h := NewHandler(engine, journal, notification.NewRegistry(), &webpush.Options{VAPIDPublicKey: "test-public-key"})
	return NewRouter(h, testServerConfig()), h
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createLot(t *testing.T, router *gin.Engine, regular, ev, level int) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/lot", gin.H{
		"regular_capacity": regular,
		"ev_capacity":      ev,
		"level":            level,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func parkVehicle(t *testing.T, router *gin.Engine, registration, color string, electric bool) int {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/vehicles", gin.H{
		"registration": registration,
		"make":         "Make",
		"model":        "Model",
		"color":        color,
		"electric":     electric,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		SlotNumber int `json:"slot_number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.SlotNumber
}
