package services

import (
	"context"
	"log"
	"time"

	"wayfarer/internal/infra"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
)

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResponse, error)
}

type PlannerService struct {
	prompts  PromptServiceInterface
	backend  infra.BackendClientInterface
	analyzer AnalyzerServiceInterface
	exports  ExportServiceInterface
}

func NewPlannerService(
	prompts PromptServiceInterface,
	backend infra.BackendClientInterface,
	analyzer AnalyzerServiceInterface,
	exports ExportServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		prompts:  prompts,
		backend:  backend,
		analyzer: analyzer,
		exports:  exports,
	}
}

// GeneratePlan runs the whole pipeline: validate, build the prompt, call the
// backend, then derive the tab views from the returned markdown. A backend
// failure aborts the request; parsing ambiguities only become notices on the
// response.
func (s *PlannerService) GeneratePlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := s.prompts.BuildPrompt(req)
	answer, err := s.backend.Ask(ctx, prompt)
	if err != nil {
		return nil, err
	}

	resp := &response_models.PlanResponse{
		Markdown:    answer,
		GeneratedAt: time.Now(),
		Request:     req,
	}

	if html, err := s.exports.HTML(answer); err == nil {
		resp.HTML = html
	} else {
		log.Printf("[WARN] markdown rendering failed: %v", err)
	}

	sections, found := s.analyzer.SplitDaySections(answer)
	resp.Days = sections
	if !found {
		resp.DaysNotice = "Couldn't detect day sections reliably. Showing the full plan as one section."
	}

	if budget, ok := s.analyzer.SummarizeBudget(answer); ok {
		resp.Budget = budget
	} else {
		resp.BudgetNotice = "No budget lines detected in the AI response. Try 'Include budget estimates' in the prompt."
	}

	if weather, ok := s.analyzer.ExtractWeatherBlock(answer); ok {
		resp.Weather = weather
	} else {
		resp.WeatherNotice = "No explicit weather block found in the AI output."
	}

	return resp, nil
}
