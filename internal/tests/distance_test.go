package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taxi/internal/handler"
	"taxi/internal/service"
)

func distanceRouter(lookup service.DistanceLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fareService := service.NewFareService(NewMockPricingRepository(), lookup)
	fareHandler := handler.NewFareHandler(fareService, lookup)

	router := gin.New()
	router.POST("/api/distance", fareHandler.GetDistance)
	return router
}

func postDistance(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/distance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestDistanceEndpoint_Success(t *testing.T) {
	router := distanceRouter(&MockDistanceLookup{Km: 347.8, Text: "348 km"})

	w := postDistance(t, router, `{"pickup":"Chennai","drop":"Bangalore"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp handler.DistanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Distance != 347.8 || resp.Text != "348 km" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDistanceEndpoint_MissingLocations(t *testing.T) {
	router := distanceRouter(&MockDistanceLookup{Km: 100})

	w := postDistance(t, router, `{"pickup":"Chennai"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDistanceEndpoint_NotConfigured(t *testing.T) {
	router := distanceRouter(nil)

	w := postDistance(t, router, `{"pickup":"Chennai","drop":"Bangalore"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

// A wrapped transport error must surface as the bare sentinel message;
// hosts, addresses, and driver detail never reach the caller.
func TestDistanceEndpoint_HidesTransportDetail(t *testing.T) {
	lookup := &MockDistanceLookup{
		Err: fmt.Errorf("%w: dial tcp 10.0.0.1:443: connect: connection timed out", service.ErrDistanceUnavailable),
	}
	router := distanceRouter(lookup)

	w := postDistance(t, router, `{"pickup":"Chennai","drop":"Bangalore"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var resp handler.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != service.ErrDistanceUnavailable.Error() {
		t.Errorf("expected bare sentinel message, got %q", resp.Error)
	}
	if strings.Contains(resp.Error, "dial tcp") {
		t.Errorf("transport detail leaked: %q", resp.Error)
	}
}
