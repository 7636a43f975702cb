package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

func TestGeocodeLocate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Goa, India", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "wayfarer", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"15.2993","lon":"74.1240","display_name":"Goa, India"}]`))
	}))
	defer srv.Close()

	g := services.NewGeocodeService(srv.URL, "wayfarer")

	point, err := g.Locate(context.Background(), "Goa, India")

	require.NoError(t, err)
	assert.InDelta(t, 15.2993, point.Lat, 1e-9)
	assert.InDelta(t, 74.1240, point.Lon, 1e-9)
	assert.Equal(t, "Goa, India", point.DisplayName)
}

func TestGeocodeLocate_noResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := services.NewGeocodeService(srv.URL, "wayfarer")

	_, err := g.Locate(context.Background(), "Nowhereville")
	require.ErrorIs(t, err, utils.ErrLocationNotFound)
}

func TestGeocodeLocate_emptyDestination(t *testing.T) {
	g := services.NewGeocodeService("http://unused", "wayfarer")

	_, err := g.Locate(context.Background(), "")
	require.ErrorIs(t, err, utils.ErrLocationNotFound)
}

func TestGeocodeLocate_serverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := services.NewGeocodeService(srv.URL, "wayfarer")

	_, err := g.Locate(context.Background(), "Goa")
	require.ErrorIs(t, err, utils.ErrLocationNotFound)
}
