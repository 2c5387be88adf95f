package tracker

import (
	"math"
	"testing"
	"time"

	"NutriSense-Backend/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDailyBalance(t *testing.T) {
	food := []*entities.FoodLog{
		{Calories: 400},
		{Calories: 650},
		{Calories: 300},
	}
	exercise := []*entities.ExerciseLog{
		{CaloriesBurned: 250},
		{CaloriesBurned: 100},
	}

	consumed, burned, net := DailyBalance(food, exercise)
	if !almostEqual(consumed, 1350) {
		t.Errorf("consumed = %v, want 1350", consumed)
	}
	if !almostEqual(burned, 350) {
		t.Errorf("burned = %v, want 350", burned)
	}
	if !almostEqual(net, 1000) {
		t.Errorf("net = %v, want 1000", net)
	}
}

func TestDailyBalanceEmpty(t *testing.T) {
	consumed, burned, net := DailyBalance(nil, nil)
	if consumed != 0 || burned != 0 || net != 0 {
		t.Errorf("got %v/%v/%v, want zeros", consumed, burned, net)
	}
}

func TestWeeklySeries(t *testing.T) {
	food := []*entities.FoodLog{
		{Date: day("2026-08-24"), Calories: 1800},
		{Date: day("2026-08-24"), Calories: 400},
		{Date: day("2026-08-26"), Calories: 2000},
	}
	exercise := []*entities.ExerciseLog{
		{Date: day("2026-08-24"), CaloriesBurned: 300},
		// Exercise-only day must still appear in the series.
		{Date: day("2026-08-25"), CaloriesBurned: 200},
	}

	days, avgNet := WeeklySeries(food, exercise)
	if len(days) != 3 {
		t.Fatalf("len(days) = %d, want 3", len(days))
	}

	if days[0].Date != "2026-08-24" || !almostEqual(days[0].Net, 1900) {
		t.Errorf("day 0 = %+v, want 2026-08-24 net 1900", days[0])
	}
	if days[1].Date != "2026-08-25" || !almostEqual(days[1].Net, -200) {
		t.Errorf("day 1 = %+v, want 2026-08-25 net -200", days[1])
	}
	if days[2].Date != "2026-08-26" || !almostEqual(days[2].Net, 2000) {
		t.Errorf("day 2 = %+v, want 2026-08-26 net 2000", days[2])
	}

	if want := (1900 - 200 + 2000) / 3.0; !almostEqual(avgNet, want) {
		t.Errorf("avgNet = %v, want %v", avgNet, want)
	}
}

func TestWeeklySeriesEmpty(t *testing.T) {
	days, avgNet := WeeklySeries(nil, nil)
	if len(days) != 0 {
		t.Errorf("len(days) = %d, want 0", len(days))
	}
	if avgNet != 0 {
		t.Errorf("avgNet = %v, want 0", avgNet)
	}
}

func TestResolveWeight(t *testing.T) {
	if got := ResolveWeight(82.5, true, 70); !almostEqual(got, 82.5) {
		t.Errorf("logged weight should win, got %v", got)
	}
	if got := ResolveWeight(0, false, 70); !almostEqual(got, 70) {
		t.Errorf("profile fallback, got %v", got)
	}
}

func TestStreak(t *testing.T) {
	today := day("2026-08-31")

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no dates", nil, 0},
		{"today only", []string{"2026-08-31"}, 1},
		{"three consecutive", []string{"2026-08-31", "2026-08-30", "2026-08-29"}, 3},
		{"gap breaks streak", []string{"2026-08-31", "2026-08-30", "2026-08-28"}, 2},
		{"missed today breaks streak", []string{"2026-08-30", "2026-08-29"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, 0, len(tt.dates))
			for _, d := range tt.dates {
				dates = append(dates, day(d))
			}
			if got := Streak(dates, today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}
