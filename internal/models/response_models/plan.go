package response_models

import (
	"time"

	"wayfarer/internal/models/request_models"
)

// BudgetLine is one heuristically parsed (category, amount, currency) triple.
// Repeated categories stay as separate entries.
type BudgetLine struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

type BudgetSummary struct {
	Total      float64      `json:"total"`
	Lines      []BudgetLine `json:"lines"`
	Highlights []string     `json:"highlights,omitempty"`
}

// DaySection is one "Day N:" span of the generated markdown.
type DaySection struct {
	Header string `json:"header"`
	Body   string `json:"body"`
}

type GeoPoint struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name,omitempty"`
}

// PlanResponse carries everything the client tabs render. It is derived
// fresh per request and never persisted.
type PlanResponse struct {
	Markdown    string                     `json:"markdown"`
	HTML        string                     `json:"html,omitempty"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Request     request_models.TripRequest `json:"request"`

	Days       []DaySection `json:"days"`
	DaysNotice string       `json:"days_notice,omitempty"`

	Budget       *BudgetSummary `json:"budget,omitempty"`
	BudgetNotice string         `json:"budget_notice,omitempty"`

	Weather       string `json:"weather,omitempty"`
	WeatherNotice string `json:"weather_notice,omitempty"`
}

type QueryResponse struct {
	Answer string `json:"answer"`
}
