package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"panditseva/catalog"
	"panditseva/models"
)

// cityAcceptThreshold is the minimum fuzzy similarity for accepting a city
// guess; weaker matches yield no city rather than a wrong one.
const cityAcceptThreshold = 0.8

// knownLanguages is the fixed language vocabulary requests may mention.
var knownLanguages = []string{"Sanskrit", "Hindi", "English", "Bengali"}

var languageRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(knownLanguages))
	for _, l := range knownLanguages {
		res[l] = regexp.MustCompile(`\b` + strings.ToLower(l) + `\b`)
	}
	return res
}()

var (
	budgetCueRe  = regexp.MustCompile(`(?:budget|under|upto|up to|around|~)\s*₹?\s*([0-9]{3,7})`)
	budgetBareRe = regexp.MustCompile(`₹\s*([0-9]{3,7})`)
)

// RuleExtractor is the deterministic, network-free extractor. It is also
// reused by the probabilistic path for post-hoc repair.
type RuleExtractor struct {
	Now func() time.Time
	Loc *time.Location

	fuzzy *metrics.SmithWatermanGotoh
}

// NewRuleExtractor builds a rule extractor anchored to the given timezone.
func NewRuleExtractor(loc *time.Location) *RuleExtractor {
	return &RuleExtractor{
		Now:   time.Now,
		Loc:   loc,
		fuzzy: metrics.NewSmithWatermanGotoh(),
	}
}

// Extract parses raw text using only local computation. It never fails; weak
// guesses are reported through the confidence map instead.
func (r *RuleExtractor) Extract(_ context.Context, text string) (models.PujaRequest, models.Confidence, error) {
	conf := models.Confidence{}

	puja, pujaScore := r.MatchPuja(text)
	conf["puja_type"] = pujaScore

	date := r.ParseDate(text)
	conf["when_date"] = 0.0
	if date != nil {
		conf["when_date"] = 0.9
	}

	window, specificMins := DetectWindowAndTime(text)
	conf["time_window"] = 0.0
	if window != nil {
		conf["time_window"] = 0.9
	}

	city := r.DetectCity(text)
	conf["city"] = 0.2
	if city != nil {
		conf["city"] = 0.9
	}

	budget := detectBudget(text)
	conf["budget_inr"] = 0.0
	if budget != nil {
		conf["budget_inr"] = 0.9
	}

	langs := detectLanguages(text)
	conf["language_pref"] = 0.2
	if len(langs) > 0 {
		conf["language_pref"] = 0.8
	}

	return models.PujaRequest{
		PujaType:         &puja,
		WhenDate:         date,
		TimeWindow:       window,
		TimeSpecificMins: specificMins,
		City:             city,
		BudgetINR:        budget,
		LanguagePref:     langs,
	}, conf, nil
}

// MatchPuja fuzzy-matches the text against the puja catalog and returns the
// best entry with its similarity in [0,1], even when weak. Acceptance is the
// caller's call.
func (r *RuleExtractor) MatchPuja(text string) (string, float64) {
	lower := strings.ToLower(text)
	best, bestScore := catalog.PujaCatalog[0], -1.0
	for _, p := range catalog.PujaCatalog {
		score := strutil.Similarity(strings.ToLower(p), lower, r.fuzzy)
		if score > bestScore {
			best, bestScore = p, score
		}
	}
	return best, bestScore
}

// DetectCity finds a known city mentioned in the text: containment first,
// then synonym/fuzzy normalization of the whole input.
func (r *RuleExtractor) DetectCity(text string) *string {
	lower := strings.ToLower(text)
	for _, c := range catalog.Cities() {
		if strings.Contains(lower, strings.ToLower(c)) {
			city := c
			return &city
		}
	}
	return r.NormalizeCity(text)
}

// NormalizeCity resolves a free-form city mention to a canonical name, or nil
// when nothing clears the acceptance threshold.
func (r *RuleExtractor) NormalizeCity(name string) *string {
	if name == "" {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := catalog.CitySynonyms[s]; ok {
		return &canon
	}
	for _, c := range catalog.Cities() {
		if strings.ToLower(c) == s {
			city := c
			return &city
		}
	}

	var bestCity string
	bestScore := 0.0
	for _, c := range catalog.Cities() {
		score := strutil.Similarity(strings.ToLower(c), s, r.fuzzy)
		if score > bestScore {
			bestCity, bestScore = c, score
		}
	}
	if bestScore < cityAcceptThreshold {
		return nil
	}
	return &bestCity
}

func detectBudget(text string) *int {
	lower := strings.ToLower(text)
	m := budgetCueRe.FindStringSubmatch(lower)
	if m == nil {
		m = budgetBareRe.FindStringSubmatch(text)
	}
	if m == nil {
		return nil
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil || amount <= 0 {
		return nil
	}
	return &amount
}

func detectLanguages(text string) []string {
	lower := strings.ToLower(text)
	var langs []string
	for _, l := range knownLanguages {
		if languageRes[l].MatchString(lower) {
			langs = append(langs, l)
		}
	}
	return langs
}
