package request_models

import (
	"fmt"
	"strings"
	"time"

	"wayfarer/pkg/utils"
)

// Ordered budget tiers, cheapest first.
var BudgetLevels = []string{"Shoestring", "Moderate", "Comfort", "Luxury"}

var Vibes = []string{"Relaxed", "Family-friendly", "Adventure", "Romantic", "Culture-focused", "Nightlife"}

type TripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	Days        int    `json:"days"`
	Travelers   int    `json:"travelers"`
	BudgetLevel string `json:"budget_level"`
	Vibe        string `json:"vibe"`
	HotelStars  int    `json:"hotel_stars"`
	MustInclude string `json:"must_include"`
	Avoid       string `json:"avoid"`
	Language    string `json:"language"`
	// FreeText, when non-empty, supersedes the structured fields entirely.
	FreeText string `json:"free_text"`
}

// Validate checks field bounds and fills defaults. A non-empty FreeText
// bypasses the structured-field checks since those fields are not used.
func (r *TripRequest) Validate() error {
	if strings.TrimSpace(r.FreeText) != "" {
		return nil
	}

	if r.Days < 1 || r.Days > 30 {
		return fmt.Errorf("%w: days must be between 1 and 30", utils.ErrInvalidInput)
	}
	if r.Travelers < 1 || r.Travelers > 15 {
		return fmt.Errorf("%w: travelers must be between 1 and 15", utils.ErrInvalidInput)
	}
	if r.HotelStars < 1 || r.HotelStars > 5 {
		return fmt.Errorf("%w: hotel_stars must be between 1 and 5", utils.ErrInvalidInput)
	}
	if r.BudgetLevel == "" {
		r.BudgetLevel = "Moderate"
	} else if !contains(BudgetLevels, r.BudgetLevel) {
		return fmt.Errorf("%w: unknown budget_level %q", utils.ErrInvalidInput, r.BudgetLevel)
	}
	if r.Vibe == "" {
		r.Vibe = "Relaxed"
	} else if !contains(Vibes, r.Vibe) {
		return fmt.Errorf("%w: unknown vibe %q", utils.ErrInvalidInput, r.Vibe)
	}
	if r.StartDate == "" {
		r.StartDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		return fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	if r.Language == "" {
		r.Language = "English"
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
