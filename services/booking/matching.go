package booking

import (
	"sort"

	"panditseva/models"
	"panditseva/services/availability"
	"panditseva/services/geo"
)

// candidate pairs a roster entry with its derived ranking scalars. Built per
// search, discarded after ranking.
type candidate struct {
	pandit    models.Pandit
	tier      int
	distKm    float64
	timeDelta int
}

// MatchingEngine filters the roster by hard constraints and totally orders
// the survivors.
type MatchingEngine struct {
	Roster            []models.Pandit
	RequireTimeStrict bool
	MaxResults        int
}

// Match applies the eligibility filters and ranks whoever survives. An empty
// result is legitimate and comes with diagnostics naming the constraints that
// were in play; it is not an error.
func (e *MatchingEngine) Match(req models.PujaRequest) ([]models.RankedPandit, *models.NoMatchDiagnostics) {
	city := ""
	if req.City != nil {
		city = *req.City
	}
	window := ""
	if req.TimeWindow != nil {
		window = *req.TimeWindow
	}
	weekday := ""
	if req.WhenDate != nil {
		weekday = availability.WeekdayToken(*req.WhenDate)
	}

	var candidates []candidate
	for _, p := range e.Roster {
		if req.PujaType != nil && !hasSpecialization(p, *req.PujaType) {
			continue
		}
		if e.RequireTimeStrict && window != "" && !availability.HasWindow(p, window) {
			continue
		}
		if weekday != "" && !availability.AvailableOn(p, weekday) {
			continue
		}
		dist := geo.DistanceKm(city, p.City)
		candidates = append(candidates, candidate{
			pandit:    p,
			tier:      geo.ProximityTier(dist),
			distKm:    dist,
			timeDelta: availability.TimeDelta(p, window, req.TimeSpecificMins),
		})
	}

	if len(candidates) == 0 {
		diag := &models.NoMatchDiagnostics{City: city, TimeWindow: window, Weekday: weekday}
		if req.PujaType != nil {
			diag.PujaType = *req.PujaType
		}
		return nil, diag
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidateLess(candidates[i], candidates[j], req.BudgetINR)
	})

	limit := e.MaxResults
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}
	ranked := make([]models.RankedPandit, 0, limit)
	for _, c := range candidates[:limit] {
		ranked = append(ranked, summarize(c))
	}
	return ranked, nil
}

// candidateLess is the ranking comparator. Field order and direction:
//
//	proximity tier        ascending
//	distance km           ascending
//	time delta minutes    ascending
//	|fee - budget|        ascending (no budget: gap is zero for everyone)
//	rating                descending
//	experience years      descending
//	base fee              ascending
//
// Together with a stable sort over the fixed roster order this makes the
// ranking fully deterministic.
func candidateLess(a, b candidate, budget *int) bool {
	if a.tier != b.tier {
		return a.tier < b.tier
	}
	if a.distKm != b.distKm {
		return a.distKm < b.distKm
	}
	if a.timeDelta != b.timeDelta {
		return a.timeDelta < b.timeDelta
	}
	gapA, gapB := budgetGap(a.pandit.BaseFee, budget), budgetGap(b.pandit.BaseFee, budget)
	if gapA != gapB {
		return gapA < gapB
	}
	if a.pandit.Rating != b.pandit.Rating {
		return a.pandit.Rating > b.pandit.Rating
	}
	if a.pandit.ExperienceYears != b.pandit.ExperienceYears {
		return a.pandit.ExperienceYears > b.pandit.ExperienceYears
	}
	return a.pandit.BaseFee < b.pandit.BaseFee
}

func budgetGap(fee int, budget *int) int {
	if budget == nil {
		return 0
	}
	gap := fee - *budget
	if gap < 0 {
		gap = -gap
	}
	return gap
}

func hasSpecialization(p models.Pandit, puja string) bool {
	for _, s := range p.Specializations {
		if s == puja {
			return true
		}
	}
	return false
}

func summarize(c candidate) models.RankedPandit {
	return models.RankedPandit{
		ID:            c.pandit.ID,
		Name:          c.pandit.Name,
		City:          c.pandit.City,
		Fee:           c.pandit.BaseFee,
		Phone:         c.pandit.Phone,
		Rating:        c.pandit.Rating,
		ExperienceYrs: c.pandit.ExperienceYears,
		Languages:     c.pandit.Languages,
		ServiceMode:   c.pandit.ServiceMode,
		TimeWindows:   c.pandit.TimeWindows,
		Days:          c.pandit.Days,
		Tier:          c.tier,
		DistanceKm:    c.distKm,
		TimeDeltaMins: c.timeDelta,
	}
}
