package services

import (
	"fmt"
	"strings"

	"wayfarer/internal/models/request_models"
)

type PromptServiceInterface interface {
	BuildPrompt(req request_models.TripRequest) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// BuildPrompt turns a trip request into one natural-language instruction.
// Clause order is fixed: base sentence, preferences, tone, optional
// must-include/avoid, then the required-output suffix. A non-empty FreeText
// supersedes everything else.
func (p *PromptService) BuildPrompt(req request_models.TripRequest) string {
	if free := strings.TrimSpace(req.FreeText); free != "" {
		return free
	}

	destination := req.Destination
	if destination == "" {
		destination = "the selected city"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s starting %s.", req.Days, destination, req.StartDate)
	fmt.Fprintf(&b, " Travelers: %d. Budget: %s. Preferred hotel stars: %d.", req.Travelers, req.BudgetLevel, req.HotelStars)
	fmt.Fprintf(&b, " Vibe: %s.", req.Vibe)
	if req.MustInclude != "" {
		fmt.Fprintf(&b, " Must include: %s.", req.MustInclude)
	}
	if req.Avoid != "" {
		fmt.Fprintf(&b, " Avoid: %s.", req.Avoid)
	}
	b.WriteString(" Return a markdown itinerary with day-by-day sections, activities (morning/afternoon/evening), " +
		"reasonable commuting hints, estimated costs per day with a final budget summary, must-try food places, " +
		"and quick safety tips. Include a short paragraph 'Why this plan is unique' and a 3-line teaser at top.")
	fmt.Fprintf(&b, " Write in %s.", req.Language)

	return b.String()
}
