package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var weekdayIndex = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

var (
	qualifiedWeekdayRe = regexp.MustCompile(`\b(next|this|coming)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	bareWeekdayRe      = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	tomorrowRe         = regexp.MustCompile(`\btomorrow\b`)
	todayRe            = regexp.MustCompile(`\btoday\b`)
)

var freeformParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseDate resolves a date mention in the text relative to the extractor's
// clock. Relative terms and weekday phrases are handled directly; anything
// else goes through the general-purpose parser with future dates preferred.
// Returns nil when no date can be recognized.
func (r *RuleExtractor) ParseDate(text string) *time.Time {
	t := strings.ToLower(strings.TrimSpace(text))
	base := dateOnly(r.Now().In(r.Loc))

	if strings.Contains(t, "day after tomorrow") {
		return datePtr(base.AddDate(0, 0, 2))
	}
	if tomorrowRe.MatchString(t) {
		return datePtr(base.AddDate(0, 0, 1))
	}
	if todayRe.MatchString(t) {
		return datePtr(base)
	}

	if m := qualifiedWeekdayRe.FindStringSubmatch(t); m != nil {
		target := weekdayIndex[m[2]]
		// "next monday" skips to the following week; "this"/"coming" take the
		// nearest future occurrence, today excluded.
		if m[1] == "next" {
			return datePtr(nextWeekday(base, target).AddDate(0, 0, 7))
		}
		return datePtr(nextWeekday(base, target))
	}
	if m := bareWeekdayRe.FindStringSubmatch(t); m != nil {
		return datePtr(nextWeekday(base, weekdayIndex[m[1]]))
	}

	res, err := freeformParser.Parse(text, base)
	if err != nil || res == nil {
		return nil
	}
	d := dateOnly(res.Time)
	if d.Before(base) {
		// Prefer the future: a past parse rolls to the same weekday next week.
		return datePtr(nextWeekday(base, base.Weekday()))
	}
	return datePtr(d)
}

// nextWeekday returns the next occurrence of the target weekday strictly
// after base.
func nextWeekday(base time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(base.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return base.AddDate(0, 0, delta)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func datePtr(t time.Time) *time.Time {
	return &t
}
