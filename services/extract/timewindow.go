package extract

import (
	"regexp"
	"strconv"
	"strings"

	"panditseva/models"
)

// windowBounds are the canonical minute ranges behind the four labels.
var windowBounds = map[string][2]int{
	models.WindowMorning:   {8 * 60, 11 * 60},
	models.WindowAfternoon: {12 * 60, 16 * 60},
	models.WindowEvening:   {17 * 60, 20 * 60},
	models.WindowNight:     {20 * 60, 22 * 60},
}

// windowAliases are whole-word synonyms, including transliterated
// colloquialisms, that map straight to a label.
var windowAliases = map[string][]string{
	models.WindowMorning:   {"morning", "subah", "early", "am"},
	models.WindowAfternoon: {"afternoon", "dopahar"},
	models.WindowEvening:   {"evening", "shaam", "eve", "pm"},
	models.WindowNight:     {"night", "raat", "late night"},
}

var clockTimeRe = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

var aliasRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, aliases := range windowAliases {
		for _, a := range aliases {
			res[a] = regexp.MustCompile(`\b` + regexp.QuoteMeta(a) + `\b`)
		}
	}
	return res
}()

// DetectWindowAndTime finds a time mention. An explicit clock time wins and
// yields both the nearest window label and the exact minute of day; a window
// synonym yields the label only.
func DetectWindowAndTime(text string) (*string, *int) {
	t := strings.ToLower(text)

	if m := clockTimeRe.FindStringSubmatch(t); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm := 0
		if m[2] != "" {
			mm, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "pm":
			if hh < 12 {
				hh += 12
			}
		case "am":
			if hh == 12 {
				hh = 0
			}
		}
		userMins := hh*60 + mm

		bestLabel, bestDelta := "", 1<<31-1
		for _, label := range models.WindowLabels {
			b := windowBounds[label]
			mid := (b[0] + b[1]) / 2
			d := userMins - mid
			if d < 0 {
				d = -d
			}
			if d < bestDelta {
				bestLabel, bestDelta = label, d
			}
		}
		return &bestLabel, &userMins
	}

	for _, label := range models.WindowLabels {
		for _, alias := range windowAliases[label] {
			if aliasRes[alias].MatchString(t) {
				l := label
				return &l, nil
			}
		}
	}
	return nil, nil
}
