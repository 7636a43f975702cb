package services

import (
	"regexp"
	"strconv"
	"strings"

	"wayfarer/internal/models/response_models"
)

// The analyzer is best-effort pattern matching over model-generated prose,
// not a parser for a defined grammar. Each scan is read-only, deterministic,
// and independent of the others.
type AnalyzerServiceInterface interface {
	ExtractBudgetLines(md string) []string
	SummarizeBudget(md string) (*response_models.BudgetSummary, bool)
	SplitDaySections(md string) ([]response_models.DaySection, bool)
	ExtractWeatherBlock(md string) (string, bool)
}

type AnalyzerService struct{}

func NewAnalyzerService() AnalyzerServiceInterface {
	return &AnalyzerService{}
}

const maxBudgetLines = 20

var (
	budgetTokenRe = regexp.MustCompile(`(?i)(budget|cost|₹|\$|INR|USD)`)
	categoryRe    = regexp.MustCompile(`([A-Za-z ]+):\s*([₹$])?\s*([\d,]+)`)
	dayHeaderRe   = regexp.MustCompile(`(?i)\n\s*(Day\s*\d+[:：])`)
	weatherRe     = regexp.MustCompile(`(?i)^\s*Weather`)
)

// ExtractBudgetLines returns the lines that look budget-related, capped at
// the first 20 in document order.
func (a *AnalyzerService) ExtractBudgetLines(md string) []string {
	var hits []string
	for _, ln := range strings.Split(md, "\n") {
		if budgetTokenRe.MatchString(ln) {
			hits = append(hits, ln)
			if len(hits) == maxBudgetLines {
				break
			}
		}
	}
	return hits
}

// SummarizeBudget parses (category, amount) pairs out of the budget-line
// candidates, plus any other line whose match carries an explicit currency
// symbol. The second return value is false when no pairs were found; that is
// a distinct outcome from a summary whose total happens to be zero.
func (a *AnalyzerService) SummarizeBudget(md string) (*response_models.BudgetSummary, bool) {
	candidates := a.ExtractBudgetLines(md)
	isCandidate := make(map[string]bool, len(candidates))
	for _, ln := range candidates {
		isCandidate[ln] = true
	}

	summary := &response_models.BudgetSummary{Highlights: candidates}
	for _, ln := range strings.Split(md, "\n") {
		m := categoryRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		if !isCandidate[ln] && m[2] == "" {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[3], ",", ""), 64)
		if err != nil {
			continue
		}
		summary.Lines = append(summary.Lines, response_models.BudgetLine{
			Category: strings.TrimSpace(m[1]),
			Amount:   amount,
			Currency: m[2],
		})
		summary.Total += amount
	}

	if len(summary.Lines) == 0 {
		return nil, false
	}
	return summary, true
}

// SplitDaySections splits the markdown at every "Day N:" header (ASCII or
// full-width colon, case-insensitive) and pairs each header with the text up
// to the next header. When no headers exist the whole document comes back as
// one undivided section and the second return value is false.
func (a *AnalyzerService) SplitDaySections(md string) ([]response_models.DaySection, bool) {
	// The header pattern anchors on a preceding newline, so scan "\n"+md to
	// also catch a header on the very first line.
	text := "\n" + md
	matches := dayHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []response_models.DaySection{{Body: md}}, false
	}

	var sections []response_models.DaySection
	for i, m := range matches {
		header := strings.TrimSpace(text[m[2]:m[3]])
		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		sections = append(sections, response_models.DaySection{
			Header: header,
			Body:   strings.TrimSpace(text[bodyStart:bodyEnd]),
		})
	}
	return sections, true
}

// ExtractWeatherBlock returns the contiguous block starting at the first
// line beginning with "Weather" through the next blank line, exclusive. The
// second return value is false when no such line exists.
func (a *AnalyzerService) ExtractWeatherBlock(md string) (string, bool) {
	var block []string
	inWeather := false
	for _, ln := range strings.Split(md, "\n") {
		if !inWeather {
			if weatherRe.MatchString(ln) {
				inWeather = true
				block = append(block, ln)
			}
			continue
		}
		if strings.TrimSpace(ln) == "" {
			break
		}
		block = append(block, ln)
	}
	if !inWeather {
		return "", false
	}
	return strings.TrimSpace(strings.Join(block, "\n")), true
}
