package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lacak-next/internal/constants"
	"github.com/lacak-next/internal/models"
	"github.com/lacak-next/internal/provider"
	"github.com/lacak-next/internal/queue"
	"github.com/lacak-next/internal/repository"
	"github.com/lacak-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTrackTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Shipment{}, &models.StatusLog{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	repo := repository.NewShipmentRepository(db)
	logRepo := repository.NewStatusLogRepository(db)
	queueClient, _ := queue.NewClient(nil)
	shipmentSvc := service.NewShipmentService(repo, logRepo, nil, queueClient, nil)

	seed := []models.Shipment{
		{OrderID: "240901001", CustomerName: "Budi Santoso", ProductName: "Kulkas", Branch: "Jakarta", Status: constants.ShipmentStatusInTransit},
		{OrderID: "240901002", CustomerName: "Siti Aminah", ProductName: "AC", Branch: "Bandung", Status: constants.ShipmentStatusDelivered},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	handler := New(&provider.Container{ShipmentService: shipmentSvc})
	r := gin.New()
	r.GET("/api/v1/public/track", handler.Track)
	return r, db
}

func doTrack(t *testing.T, r *gin.Engine, rawQuery string) TrackResult {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/track?"+rawQuery, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int         `json:"status_code"`
		Data       TrackResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	return resp.Data
}

func TestTrackByOrderID(t *testing.T) {
	r, _ := setupTrackTest(t)

	result := doTrack(t, r, "oid=240901001")
	if len(result.Shipments) != 1 || result.Shipments[0].OrderID != "240901001" {
		t.Fatalf("unexpected result %+v", result)
	}

	result = doTrack(t, r, "oid=999999999")
	if len(result.Shipments) != 0 {
		t.Fatalf("missing order should return empty, got %+v", result.Shipments)
	}
}

func TestTrackByName(t *testing.T) {
	r, _ := setupTrackTest(t)

	result := doTrack(t, r, "q=siti")
	if len(result.Shipments) != 1 || result.Shipments[0].OrderID != "240901002" {
		t.Fatalf("unexpected result %+v", result)
	}

	result = doTrack(t, r, "")
	if len(result.Shipments) != 0 {
		t.Fatalf("empty query should return empty, got %+v", result.Shipments)
	}
}

func TestTrackDegradesToEmptyOnStorageFailure(t *testing.T) {
	r, db := setupTrackTest(t)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db failed: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db failed: %v", err)
	}

	result := doTrack(t, r, "q=budi")
	if len(result.Shipments) != 0 {
		t.Fatalf("degraded track should return empty, got %+v", result.Shipments)
	}
}
