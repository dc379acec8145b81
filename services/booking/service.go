package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"panditseva/models"
	"panditseva/services/extract"
	"panditseva/utils"
)

// DefaultCity is assumed when a request names no location.
const DefaultCity = "Kolkata"

// SearchService runs one search invocation end to end: extraction,
// allocation, session snapshot.
type SearchService interface {
	Search(ctx context.Context, rawText, forcedWindow string) (models.SearchResult, error)
}

// DefaultSearchService implements SearchService.
type DefaultSearchService struct {
	Extractor         extract.Extractor
	Engine            *MatchingEngine
	Sessions          SessionStore
	RequireTimeStrict bool
}

func (s *DefaultSearchService) Search(ctx context.Context, rawText, forcedWindow string) (models.SearchResult, error) {
	req, conf, err := s.Extractor.Extract(ctx, rawText)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("extraction failed: %w", err)
	}
	utils.GetLogger().Debug("extracted request", zap.Any("request", req), zap.Any("confidence", conf))

	samagri := samagriBlock(req.PujaType)
	guide := guideBlock(req.PujaType)

	if forcedWindow != "" && models.IsWindowLabel(forcedWindow) {
		w := forcedWindow
		req.TimeWindow = &w
	}
	if req.TimeWindow == nil && s.RequireTimeStrict {
		return models.SearchResult{
			Status:  models.SearchStatusNeedTimeWindow,
			Message: "Please select a time window (morning / afternoon / evening / night) to continue.",
			Request: req,
			Samagri: samagri,
			Guide:   guide,
		}, nil
	}
	if req.City == nil {
		city := DefaultCity
		req.City = &city
	}

	ranked, diag := s.Engine.Match(req)
	if diag != nil {
		return models.SearchResult{
			Status:      models.SearchStatusNoMatch,
			Message:     noMatchMessage(diag),
			Request:     req,
			Samagri:     samagri,
			Guide:       guide,
			Diagnostics: diag,
		}, nil
	}

	session := models.SearchSession{
		SessionID: uuid.New().String(),
		Request:   req,
		Ranked:    ranked,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return models.SearchResult{}, err
	}

	return models.SearchResult{
		Status:       models.SearchStatusOK,
		Message:      "Ranked by specialization, proximity, time fit, weekday availability, then budget/rating/experience.",
		Request:      req,
		Results:      ranked,
		Explanations: explanations(ranked),
		SessionID:    session.SessionID,
		Samagri:      samagri,
		Guide:        guide,
	}, nil
}

func noMatchMessage(d *models.NoMatchDiagnostics) string {
	puja := d.PujaType
	if puja == "" {
		puja = "the requested puja"
	}
	window := d.TimeWindow
	if window == "" {
		window = "N/A"
	}
	msg := fmt.Sprintf("No options for %s in %s (%s)", puja, d.City, window)
	if d.Weekday != "" {
		msg += fmt.Sprintf(" on %s", d.Weekday)
	}
	return msg
}

// explanations builds the short per-candidate rationale lines shown with the
// top of the ranking.
func explanations(ranked []models.RankedPandit) []string {
	limit := 6
	if len(ranked) < limit {
		limit = len(ranked)
	}
	out := make([]string, 0, limit)
	for _, p := range ranked[:limit] {
		out = append(out, fmt.Sprintf("%s: %s, %s, tier %d, %.1f km, Δ %d min, ₹%d, %.1f★",
			p.Name, p.City, strings.Join(p.Days, ","), p.Tier, p.DistanceKm, p.TimeDeltaMins, p.Fee, p.Rating))
	}
	return out
}
