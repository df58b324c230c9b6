// Package stats derives the dashboard view-model from a user's burger
// collection. Everything here is a pure function of (entries, now);
// callers re-run it on every request, which is fine for the tens to low
// hundreds of entries a single user accumulates.
package stats

import (
	"sort"
	"time"

	"github.com/burgerclub/burger-tracker-api/internal/models"
)

const TopPlacesLimit = 5

type PlaceCount struct {
	Place string `json:"place"`
	Count int    `json:"count"`
}

type MonthBucket struct {
	Month   time.Month `json:"month"`
	Count   int        `json:"count"`
	Current bool       `json:"current"`
}

// DayMark is one day of the current month with at least one entry.
// Clients flag days with Count >= 2 with a badge.
type DayMark struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

type Summary struct {
	TotalCount        int            `json:"total_count"`
	CurrentMonthCount int            `json:"current_month_count"`
	PerfectCount      int            `json:"perfect_count"`
	MonthlyHistogram  []MonthBucket  `json:"monthly_histogram"`
	TotalSpend        float64        `json:"total_spend"`
	AverageRating     float64        `json:"average_rating"`
	TopPlaces         []PlaceCount   `json:"top_places"`
	TopRated          *models.Burger `json:"top_rated,omitempty"`
	CalendarMarks     []DayMark      `json:"calendar_marks"`
}

// Summarize computes the dashboard summary for one owner's entries.
// "Current month" and the histogram year are taken from now, in now's
// location.
func Summarize(burgers []models.Burger, now time.Time) *Summary {
	s := &Summary{
		TotalCount:       len(burgers),
		MonthlyHistogram: make([]MonthBucket, 12),
		CalendarMarks:    []DayMark{},
	}

	year, month, _ := now.Date()
	loc := now.Location()

	for i := range s.MonthlyHistogram {
		s.MonthlyHistogram[i].Month = time.Month(i + 1)
		s.MonthlyHistogram[i].Current = time.Month(i+1) == month
	}

	placeCounts := map[string]int{}
	dayCounts := map[int]int{}
	ratingSum := 0

	for i := range burgers {
		b := &burgers[i]
		created := b.CreatedAt.In(loc)

		ratingSum += b.Rating
		if b.Rating == 5 {
			s.PerfectCount++
		}
		if b.Price != nil {
			s.TotalSpend += *b.Price
		}
		placeCounts[b.PlaceName]++

		if created.Year() == year {
			s.MonthlyHistogram[int(created.Month())-1].Count++
			if created.Month() == month {
				s.CurrentMonthCount++
				dayCounts[created.Day()]++
			}
		}

		// Highest rating wins; on a tie the most recent entry wins.
		if s.TopRated == nil ||
			b.Rating > s.TopRated.Rating ||
			(b.Rating == s.TopRated.Rating && b.CreatedAt.After(s.TopRated.CreatedAt)) {
			s.TopRated = b
		}
	}

	if len(burgers) > 0 {
		s.AverageRating = float64(ratingSum) / float64(len(burgers))
	}

	s.TopPlaces = topPlaces(placeCounts, TopPlacesLimit)

	for day, count := range dayCounts {
		s.CalendarMarks = append(s.CalendarMarks, DayMark{Day: day, Count: count})
	}
	sort.Slice(s.CalendarMarks, func(i, j int) bool {
		return s.CalendarMarks[i].Day < s.CalendarMarks[j].Day
	})

	return s
}

// topPlaces ranks places by visit count, ties broken alphabetically so
// the output is stable across runs.
func topPlaces(counts map[string]int, limit int) []PlaceCount {
	ranked := make([]PlaceCount, 0, len(counts))
	for place, count := range counts {
		ranked = append(ranked, PlaceCount{Place: place, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Place < ranked[j].Place
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
