package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"panditseva/models"
)

func testPandit() models.Pandit {
	return models.Pandit{
		ID:   1,
		Name: "Pandit Test",
		TimeWindows: []models.TimeWindow{
			{Label: models.WindowMorning, Start: 8 * 60, End: 10 * 60},
			{Label: models.WindowEvening, Start: 17*60 + 30, End: 19*60 + 30},
		},
		Days: []string{"Mon", "Wed", "Fri"},
	}
}

func TestHasWindow(t *testing.T) {
	p := testPandit()
	assert.True(t, HasWindow(p, models.WindowMorning))
	assert.True(t, HasWindow(p, models.WindowEvening))
	assert.False(t, HasWindow(p, models.WindowAfternoon))
	assert.False(t, HasWindow(p, models.WindowNight))
}

func TestTimeDelta(t *testing.T) {
	p := testPandit()
	mins := 9 * 60 // 09:00, morning midpoint is 09:00 exactly

	assert.Equal(t, 0, TimeDelta(p, "", &mins), "no label means no penalty")
	assert.Equal(t, 0, TimeDelta(p, models.WindowMorning, nil), "no specific time means no penalty")

	assert.Equal(t, 0, TimeDelta(p, models.WindowMorning, &mins))

	early := 8 * 60 // one hour before the morning midpoint
	assert.Equal(t, 60, TimeDelta(p, models.WindowMorning, &early))

	// Evening window is 17:30-19:30, midpoint 18:30.
	evening := 17 * 60
	assert.Equal(t, 90, TimeDelta(p, models.WindowEvening, &evening))

	assert.Equal(t, IncompatibleDelta, TimeDelta(p, models.WindowNight, &mins))
}

func TestWeekdayToken(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tokens := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, want := range tokens {
		d := monday.AddDate(0, 0, i)
		assert.Equal(t, want, WeekdayToken(d))
	}
}

func TestAvailableOn(t *testing.T) {
	p := testPandit()
	assert.True(t, AvailableOn(p, "Mon"))
	assert.True(t, AvailableOn(p, "Fri"))
	assert.False(t, AvailableOn(p, "Tue"))
	assert.False(t, AvailableOn(p, "Sun"))
}
