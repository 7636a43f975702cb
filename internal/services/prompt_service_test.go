package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
)

func tripFixture() request_models.TripRequest {
	return request_models.TripRequest{
		Destination: "Goa, India",
		StartDate:   "2026-01-10",
		Days:        5,
		Travelers:   2,
		BudgetLevel: "Moderate",
		Vibe:        "Relaxed",
		HotelStars:  3,
		Language:    "English",
	}
}

func TestBuildPrompt_structuredFields(t *testing.T) {
	svc := services.NewPromptService()

	prompt := svc.BuildPrompt(tripFixture())

	require.Contains(t, prompt, "Plan a 5-day trip to Goa, India starting 2026-01-10.")
	require.Contains(t, prompt, "Travelers: 2. Budget: Moderate. Preferred hotel stars: 3.")
	require.Contains(t, prompt, "Vibe: Relaxed.")
	require.Contains(t, prompt, "Return a markdown itinerary with day-by-day sections")
	require.Contains(t, prompt, "Write in English.")
}

// TestBuildPrompt_optionalClauses verifies the must-include and avoid
// clauses appear exactly when their fields are non-empty.
func TestBuildPrompt_optionalClauses(t *testing.T) {
	svc := services.NewPromptService()

	req := tripFixture()
	prompt := svc.BuildPrompt(req)
	require.NotContains(t, prompt, "Must include:")
	require.NotContains(t, prompt, "Avoid:")

	req.MustInclude = "beaches, street food"
	req.Avoid = "crowded places"
	prompt = svc.BuildPrompt(req)
	require.Contains(t, prompt, " Must include: beaches, street food.")
	require.Contains(t, prompt, " Avoid: crowded places.")
}

func TestBuildPrompt_emptyDestination(t *testing.T) {
	svc := services.NewPromptService()

	req := tripFixture()
	req.Destination = ""

	require.Contains(t, svc.BuildPrompt(req), "trip to the selected city starting")
}

// TestBuildPrompt_freeTextOverride verifies a non-empty free text supersedes
// structured composition entirely.
func TestBuildPrompt_freeTextOverride(t *testing.T) {
	svc := services.NewPromptService()

	req := tripFixture()
	req.FreeText = "  Plan a trip to Goa for 5 days  "

	prompt := svc.BuildPrompt(req)
	require.Equal(t, "Plan a trip to Goa for 5 days", prompt)
	require.NotContains(t, prompt, "Travelers:")
}

func TestTripRequest_validateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request_models.TripRequest)
		valid  bool
	}{
		{"valid", func(r *request_models.TripRequest) {}, true},
		{"zero days", func(r *request_models.TripRequest) { r.Days = 0 }, false},
		{"too many days", func(r *request_models.TripRequest) { r.Days = 31 }, false},
		{"zero travelers", func(r *request_models.TripRequest) { r.Travelers = 0 }, false},
		{"too many travelers", func(r *request_models.TripRequest) { r.Travelers = 16 }, false},
		{"bad stars", func(r *request_models.TripRequest) { r.HotelStars = 6 }, false},
		{"bad budget", func(r *request_models.TripRequest) { r.BudgetLevel = "Lavish" }, false},
		{"bad vibe", func(r *request_models.TripRequest) { r.Vibe = "Chaotic" }, false},
		{"bad date", func(r *request_models.TripRequest) { r.StartDate = "10/01/2026" }, false},
		{"free text bypasses bounds", func(r *request_models.TripRequest) { r.Days = 0; r.FreeText = "plan something" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tripFixture()
			tt.mutate(&req)
			err := req.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestTripRequest_validateDefaults(t *testing.T) {
	req := request_models.TripRequest{Days: 3, Travelers: 1, HotelStars: 3}

	require.NoError(t, req.Validate())
	require.Equal(t, "Moderate", req.BudgetLevel)
	require.Equal(t, "Relaxed", req.Vibe)
	require.Equal(t, "English", req.Language)
	require.NotEmpty(t, req.StartDate)
}
