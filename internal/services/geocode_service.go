package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

type GeocodeServiceInterface interface {
	Locate(ctx context.Context, destination string) (*response_models.GeoPoint, error)
}

// GeocodeService resolves a destination to coordinates through a public
// geocoding endpoint. Lookups are best-effort; a failure degrades only the
// map section, never the plan.
type GeocodeService struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewGeocodeService(baseURL, userAgent string) GeocodeServiceInterface {
	return &GeocodeService{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GeocodeService) Locate(ctx context.Context, destination string) (*response_models.GeoPoint, error) {
	if destination == "" {
		return nil, fmt.Errorf("%w: empty destination", utils.ErrLocationNotFound)
	}

	q := url.Values{}
	q.Set("q", destination)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLocationNotFound, err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLocationNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geocoder status %d", utils.ErrLocationNotFound, resp.StatusCode)
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLocationNotFound, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", utils.ErrLocationNotFound, destination)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", utils.ErrLocationNotFound, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", utils.ErrLocationNotFound, results[0].Lon)
	}

	return &response_models.GeoPoint{Lat: lat, Lon: lon, DisplayName: results[0].DisplayName}, nil
}
