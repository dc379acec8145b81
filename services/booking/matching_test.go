package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panditseva/catalog"
	"panditseva/models"
	"panditseva/services/availability"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func rosterEngine() *MatchingEngine {
	return &MatchingEngine{
		Roster:            catalog.Pandits(),
		RequireTimeStrict: true,
		MaxResults:        12,
	}
}

func TestMatchFiltersBySpecialization(t *testing.T) {
	e := rosterEngine()
	req := models.PujaRequest{
		PujaType: strPtr("Ganesh Puja"),
		City:     strPtr("Kolkata"),
	}

	ranked, diag := e.Match(req)
	require.Nil(t, diag)
	require.NotEmpty(t, ranked)
	for _, r := range ranked {
		p := panditByID(t, r.ID)
		assert.Contains(t, p.Specializations, "Ganesh Puja")
	}
}

func TestMatchStrictWindowFilter(t *testing.T) {
	e := rosterEngine()
	req := models.PujaRequest{
		PujaType:   strPtr("Ganesh Puja"),
		City:       strPtr("Kolkata"),
		TimeWindow: strPtr(models.WindowMorning),
	}

	ranked, diag := e.Match(req)
	require.Nil(t, diag)
	for _, r := range ranked {
		p := panditByID(t, r.ID)
		assert.True(t, availability.HasWindow(p, models.WindowMorning),
			"pandit %d lacks the requested window", r.ID)
	}
}

func TestMatchRelaxedWindowKeepsEveryone(t *testing.T) {
	strict := rosterEngine()
	relaxed := &MatchingEngine{Roster: catalog.Pandits(), RequireTimeStrict: false, MaxResults: 0}

	req := models.PujaRequest{
		PujaType:   strPtr("Ganesh Puja"),
		City:       strPtr("Kolkata"),
		TimeWindow: strPtr(models.WindowNight),
	}

	strictRanked, _ := strict.Match(req)
	relaxedRanked, relaxedDiag := relaxed.Match(req)
	require.Nil(t, relaxedDiag)
	assert.GreaterOrEqual(t, len(relaxedRanked), len(strictRanked),
		"relaxing the window filter can only widen the candidate set")
}

func TestMatchWeekdayFilter(t *testing.T) {
	e := rosterEngine()
	// 2025-06-08 is a Sunday.
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	req := models.PujaRequest{
		PujaType: strPtr("Satyanarayan Katha"),
		City:     strPtr("Kolkata"),
		WhenDate: &sunday,
	}

	ranked, diag := e.Match(req)
	require.Nil(t, diag)
	for _, r := range ranked {
		p := panditByID(t, r.ID)
		assert.Contains(t, p.Days, "Sun")
	}
}

func TestMatchOrderedByTierAndDistance(t *testing.T) {
	e := rosterEngine()
	req := models.PujaRequest{
		PujaType: strPtr("Ganesh Puja"),
		City:     strPtr("Kolkata"),
	}

	ranked, diag := e.Match(req)
	require.Nil(t, diag)
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		assert.LessOrEqual(t, prev.Tier, cur.Tier)
		if prev.Tier == cur.Tier {
			assert.LessOrEqual(t, prev.DistanceKm, cur.DistanceKm)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	e := rosterEngine()
	req := models.PujaRequest{
		PujaType:   strPtr("Lakshmi Puja"),
		City:       strPtr("Howrah"),
		TimeWindow: strPtr(models.WindowMorning),
		BudgetINR:  intPtr(800),
	}

	first, _ := e.Match(req)
	for i := 0; i < 5; i++ {
		again, _ := e.Match(req)
		assert.Equal(t, first, again, "identical requests must rank identically")
	}
}

func TestMatchCapsResults(t *testing.T) {
	e := &MatchingEngine{Roster: catalog.Pandits(), MaxResults: 12}
	// No filters beyond a common specialization keeps the pool large.
	ranked, diag := e.Match(models.PujaRequest{City: strPtr("Kolkata")})
	require.Nil(t, diag)
	assert.Len(t, ranked, 12)
}

func TestMatchNoMatchDiagnostics(t *testing.T) {
	e := rosterEngine()
	// Nobody in the roster pairs this specialization with a night window.
	req := models.PujaRequest{
		PujaType:   strPtr("Mundan"),
		City:       strPtr("Kolkata"),
		TimeWindow: strPtr(models.WindowNight),
	}

	ranked, diag := e.Match(req)
	assert.Nil(t, ranked)
	require.NotNil(t, diag)
	assert.Equal(t, "Mundan", diag.PujaType)
	assert.Equal(t, "Kolkata", diag.City)
	assert.Equal(t, models.WindowNight, diag.TimeWindow)
	assert.Empty(t, diag.Weekday)
}

func TestCandidateLess(t *testing.T) {
	base := func(id int) models.Pandit {
		return models.Pandit{ID: id, BaseFee: 700, Rating: 4.5, ExperienceYears: 10}
	}

	a := candidate{pandit: base(1), tier: 1, distKm: 10, timeDelta: 30}
	b := candidate{pandit: base(2), tier: 2, distKm: 5, timeDelta: 0}
	assert.True(t, candidateLess(a, b, nil), "lower tier wins regardless of distance")

	b = candidate{pandit: base(2), tier: 1, distKm: 12, timeDelta: 0}
	assert.True(t, candidateLess(a, b, nil), "same tier, shorter distance wins")

	b = candidate{pandit: base(2), tier: 1, distKm: 10, timeDelta: 20}
	assert.False(t, candidateLess(a, b, nil), "same tier and distance, smaller time delta wins")

	// Budget gap only matters when a budget exists.
	cheap := candidate{pandit: models.Pandit{ID: 3, BaseFee: 500, Rating: 4.0, ExperienceYears: 5}, tier: 1, distKm: 10, timeDelta: 30}
	dear := candidate{pandit: models.Pandit{ID: 4, BaseFee: 1000, Rating: 4.0, ExperienceYears: 5}, tier: 1, distKm: 10, timeDelta: 30}
	budget := 550
	assert.True(t, candidateLess(cheap, dear, &budget))
	assert.False(t, candidateLess(dear, cheap, &budget))

	// With no budget the gap collapses and rating breaks the tie.
	rated := candidate{pandit: models.Pandit{ID: 5, BaseFee: 700, Rating: 4.9, ExperienceYears: 5}, tier: 1, distKm: 10, timeDelta: 30}
	plain := candidate{pandit: models.Pandit{ID: 6, BaseFee: 700, Rating: 4.1, ExperienceYears: 15}, tier: 1, distKm: 10, timeDelta: 30}
	assert.True(t, candidateLess(rated, plain, nil))

	// Rating equal, more experience wins.
	veteran := candidate{pandit: models.Pandit{ID: 7, BaseFee: 700, Rating: 4.5, ExperienceYears: 20}, tier: 1, distKm: 10, timeDelta: 30}
	junior := candidate{pandit: models.Pandit{ID: 8, BaseFee: 700, Rating: 4.5, ExperienceYears: 5}, tier: 1, distKm: 10, timeDelta: 30}
	assert.True(t, candidateLess(veteran, junior, nil))

	// Everything equal, cheaper fee wins.
	lowFee := candidate{pandit: models.Pandit{ID: 9, BaseFee: 500, Rating: 4.5, ExperienceYears: 10}, tier: 1, distKm: 10, timeDelta: 30}
	highFee := candidate{pandit: models.Pandit{ID: 10, BaseFee: 900, Rating: 4.5, ExperienceYears: 10}, tier: 1, distKm: 10, timeDelta: 30}
	assert.True(t, candidateLess(lowFee, highFee, nil))
}

func TestMatchHowrahEveningMonday(t *testing.T) {
	e := rosterEngine()
	// 2025-06-09 is a Monday. Pandit 70 is a Howrah Satyanarayan Katha
	// specialist with an evening window who works Mondays.
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	req := models.PujaRequest{
		PujaType:   strPtr("Satyanarayan Katha"),
		City:       strPtr("Howrah"),
		TimeWindow: strPtr(models.WindowEvening),
		WhenDate:   &monday,
	}

	ranked, diag := e.Match(req)
	require.Nil(t, diag)
	found := false
	for _, r := range ranked {
		if r.ID == 70 {
			found = true
			assert.Equal(t, 0, r.Tier, "same-city candidate must land in tier 0")
		}
	}
	assert.True(t, found, "pandit 70 satisfies every filter and must appear")
}

func TestMatchUnknownSpecializationDiagnostic(t *testing.T) {
	e := rosterEngine()
	req := models.PujaRequest{
		PujaType: strPtr("Nonexistent Puja"),
		City:     strPtr("Kolkata"),
	}

	ranked, diag := e.Match(req)
	assert.Nil(t, ranked)
	require.NotNil(t, diag)
	assert.Equal(t, "Nonexistent Puja", diag.PujaType)
}

func TestMatchHomeCityRanksFirst(t *testing.T) {
	e := rosterEngine()
	req := models.PujaRequest{
		PujaType: strPtr("Satyanarayan Katha"),
		City:     strPtr("Kolkata"),
	}

	ranked, diag := e.Match(req)
	require.Nil(t, diag)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "Kolkata", ranked[0].City, "a same-city specialist should top the ranking")
	assert.Equal(t, 0, ranked[0].Tier)
}

func panditByID(t *testing.T, id int) models.Pandit {
	t.Helper()
	for _, p := range catalog.Pandits() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("pandit %d not in roster", id)
	return models.Pandit{}
}
