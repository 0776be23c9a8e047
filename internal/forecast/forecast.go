// Package forecast groups timed observations into local calendar-day
// buckets for display.
package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/tendedero-app/tendedero-api/internal/decision"
	"github.com/tendedero-app/tendedero-api/internal/model"
)

var spanishWeekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

var spanishMonths = [...]string{
	time.January:   "ene",
	time.February:  "feb",
	time.March:     "mar",
	time.April:     "abr",
	time.May:       "may",
	time.June:      "jun",
	time.July:      "jul",
	time.August:    "ago",
	time.September: "sep",
	time.October:   "oct",
	time.November:  "nov",
	time.December:  "dic",
}

// GroupByDay buckets observations by the calendar date of now's location,
// dropping every observation before the start of the current hour. Buckets
// are ordered by date ascending, entries within a bucket by timestamp
// ascending. An empty result is valid data (nothing left to show), not an
// error.
func GroupByDay(observations []model.WeatherObservation, now time.Time) []model.DayBucket {
	loc := now.Location()
	hourFloor := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, loc)

	grouped := make(map[string][]model.WeatherObservation)
	for _, obs := range observations {
		t := time.Unix(obs.Timestamp, 0).In(loc)
		if t.Before(hourFloor) {
			continue
		}
		key := dateKey(t)
		grouped[key] = append(grouped[key], obs)
	}

	// zero-padded Y-M-D keys sort chronologically
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]model.DayBucket, 0, len(keys))
	for _, key := range keys {
		entries := grouped[key]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Timestamp < entries[j].Timestamp
		})

		bucket := model.DayBucket{
			Date:    key,
			Label:   dayLabel(key, now),
			Entries: make([]model.DayEntry, 0, len(entries)),
		}
		for _, obs := range entries {
			t := time.Unix(obs.Timestamp, 0).In(loc)
			bucket.Entries = append(bucket.Entries, model.DayEntry{
				Observation: obs,
				Hour:        fmt.Sprintf("%02d:00", t.Hour()),
				IsDay:       isDaytime(t.Hour()),
				Badge:       decision.EvaluateForecast(obs),
			})
		}
		buckets = append(buckets, bucket)
	}

	return buckets
}

func dateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

func dayLabel(key string, now time.Time) string {
	today := dateKey(now)
	if key == today {
		return "Hoy"
	}
	if key == dateKey(now.AddDate(0, 0, 1)) {
		return "Mañana"
	}

	var year, month, day int
	if _, err := fmt.Sscanf(key, "%d-%d-%d", &year, &month, &day); err != nil {
		return key
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())

	return fmt.Sprintf("%s, %d %s", spanishWeekdays[date.Weekday()], day, spanishMonths[date.Month()])
}

// isDaytime selects the sun/moon glyph for an entry. Visual only: night is
// not a drying-decision factor.
func isDaytime(hour int) bool {
	return hour >= 7 && hour < 20
}
