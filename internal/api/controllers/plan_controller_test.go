package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/middleware"
	"wayfarer/pkg/utils"
)

type stubPlanner struct {
	plan *response_models.PlanResponse
	err  error
}

func (s *stubPlanner) GeneratePlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResponse, error) {
	return s.plan, s.err
}

var _ services.PlannerServiceInterface = (*stubPlanner)(nil)

type stubGeocoder struct {
	point *response_models.GeoPoint
	err   error
}

func (s *stubGeocoder) Locate(ctx context.Context, destination string) (*response_models.GeoPoint, error) {
	return s.point, s.err
}

var _ services.GeocodeServiceInterface = (*stubGeocoder)(nil)

func newPlanRouter(planner services.PlannerServiceInterface, geocoder services.GeocodeServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	ctrl := controllers.NewPlanController(planner, geocoder)
	r.POST("/plans", ctrl.GeneratePlanHandler)
	r.GET("/plans/geocode", ctrl.GeocodeHandler)
	return r
}

func TestGeneratePlanHandler(t *testing.T) {
	planner := &stubPlanner{plan: &response_models.PlanResponse{
		Markdown:    "Day 1: Arrival",
		GeneratedAt: time.Now(),
	}}
	router := newPlanRouter(planner, &stubGeocoder{})

	body := `{"destination":"Goa","days":5,"travelers":2,"hotel_stars":3}`
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
	assert.Equal(t, w.Header().Get("X-Trace-ID"), resp.TraceID)
}

func TestGeneratePlanHandler_badJSON(t *testing.T) {
	router := newPlanRouter(&stubPlanner{}, &stubGeocoder{})

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

// TestGeneratePlanHandler_errors verifies the service error taxonomy maps
// to the right HTTP statuses.
func TestGeneratePlanHandler_errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("%w: days must be between 1 and 30", utils.ErrInvalidInput), http.StatusBadRequest},
		{"backend failure", fmt.Errorf("%w: status 503", utils.ErrBackendRequest), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPlanRouter(&stubPlanner{err: tt.err}, &stubGeocoder{})

			req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"days":5,"travelers":2,"hotel_stars":3}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
		})
	}
}

func TestGeocodeHandler(t *testing.T) {
	geocoder := &stubGeocoder{point: &response_models.GeoPoint{Lat: 15.2993, Lon: 74.1240}}
	router := newPlanRouter(&stubPlanner{}, geocoder)

	req := httptest.NewRequest(http.MethodGet, "/plans/geocode?destination=Goa", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "15.2993")
}

func TestGeocodeHandler_missingDestination(t *testing.T) {
	router := newPlanRouter(&stubPlanner{}, &stubGeocoder{})

	req := httptest.NewRequest(http.MethodGet, "/plans/geocode", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeocodeHandler_notFound(t *testing.T) {
	geocoder := &stubGeocoder{err: fmt.Errorf("%w: %q", utils.ErrLocationNotFound, "Atlantis")}
	router := newPlanRouter(&stubPlanner{}, geocoder)

	req := httptest.NewRequest(http.MethodGet, "/plans/geocode?destination=Atlantis", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
