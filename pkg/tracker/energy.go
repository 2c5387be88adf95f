package tracker

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/entities"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// DailyBalance reduces one day's logs to consumed/burned/net sums. Empty
// slices are fine and produce zeros.
func DailyBalance(food []*entities.FoodLog, exercise []*entities.ExerciseLog) (consumed, burned, net float64) {
	for _, f := range food {
		consumed += f.Calories
	}
	for _, e := range exercise {
		burned += e.CaloriesBurned
	}
	return consumed, burned, consumed - burned
}

// WeeklySeries groups food and exercise logs by calendar date, outer-joins
// the two groupings (a date present on only one side contributes zero for
// the other), and returns the per-day series sorted by date plus the
// average net over the days that have any data at all.
func WeeklySeries(food []*entities.FoodLog, exercise []*entities.ExerciseLog) ([]domain.DayBalance, float64) {
	type totals struct {
		consumed float64
		burned   float64
	}
	byDate := map[string]*totals{}

	for _, f := range food {
		key := f.Date.Format(dateLayout)
		if byDate[key] == nil {
			byDate[key] = &totals{}
		}
		byDate[key].consumed += f.Calories
	}
	for _, e := range exercise {
		key := e.Date.Format(dateLayout)
		if byDate[key] == nil {
			byDate[key] = &totals{}
		}
		byDate[key].burned += e.CaloriesBurned
	}

	days := make([]domain.DayBalance, 0, len(byDate))
	for date, t := range byDate {
		days = append(days, domain.DayBalance{
			Date:     date,
			Consumed: t.consumed,
			Burned:   t.burned,
			Net:      t.consumed - t.burned,
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	if len(days) == 0 {
		return days, 0
	}

	sum := 0.0
	for _, d := range days {
		sum += d.Net
	}
	return days, sum / float64(len(days))
}

// ResolveWeight implements the latest-entry-wins rule: the newest weight
// log overrides the profile weight, which is only a fallback for users who
// never logged one.
func ResolveWeight(latestLog float64, hasLog bool, profileWeight float64) float64 {
	if hasLog {
		return latestLog
	}
	return profileWeight
}

// Streak counts consecutive days with at least one exercise entry, walking
// back from today. A gap (including today itself missing) ends the count.
func Streak(exerciseDates []time.Time, today time.Time) int {
	streak := 0
	current := truncateToDay(today)
	for i, d := range exerciseDates {
		expected := current.AddDate(0, 0, -i)
		if truncateToDay(d).Equal(expected) {
			streak++
		} else {
			break
		}
	}
	return streak
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
