package service_test

import (
	"testing"
	"time"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/service"
)

func TestEmptyDayGauge(t *testing.T) {
	t.Parallel()
	today := service.DayKey(time.Now(), time.UTC)
	total := service.TotalCaloriesForDay(nil, today, time.UTC)
	if total != 0 {
		t.Fatalf("expected 0 calories, got %d", total)
	}
	g := service.GaugeState(total, 2000)
	if g.Percentage != 0 || g.OverGoal || g.AtGoal || g.Overflow != 0 {
		t.Fatalf("unexpected gauge for empty day: %+v", g)
	}
	if g.Remaining != 2000 {
		t.Fatalf("expected 2000 remaining, got %d", g.Remaining)
	}
}

func TestTotalCaloriesForDay(t *testing.T) {
	t.Parallel()
	food := []model.FoodEntry{
		entry(t, "2024-06-01T08:00:00Z", "Завтрак", 300),
		entry(t, "2024-05-31T23:59:59Z", "Ужин", 700),
		entry(t, "2024-06-01T13:30:00Z", "Обед", 450),
		entry(t, "2024-06-02T00:00:00Z", "Перекус", 120),
	}
	if got := service.TotalCaloriesForDay(food[:1], "2024-06-01", time.UTC); got != 300 {
		t.Fatalf("expected 300, got %d", got)
	}
	if got := service.TotalCaloriesForDay(food, "2024-06-01", time.UTC); got != 750 {
		t.Fatalf("expected 750, got %d", got)
	}

	reversed := make([]model.FoodEntry, len(food))
	for i, e := range food {
		reversed[len(food)-1-i] = e
	}
	for _, day := range []string{"2024-05-31", "2024-06-01", "2024-06-02", "2024-06-03"} {
		if a, b := service.TotalCaloriesForDay(food, day, time.UTC), service.TotalCaloriesForDay(reversed, day, time.UTC); a != b {
			t.Fatalf("total for %s depends on order: %d vs %d", day, a, b)
		}
	}
}

func TestDayKeyUsesLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := mustTime(t, "2024-05-31T22:30:00Z")
	if got := service.DayKey(at, time.UTC); got != "2024-05-31" {
		t.Fatalf("expected utc day 2024-05-31, got %s", got)
	}
	if got := service.DayKey(at, loc); got != "2024-06-01" {
		t.Fatalf("expected local day 2024-06-01, got %s", got)
	}
	food := []model.FoodEntry{{Date: at, Type: "Ужин", Calories: 500}}
	if got := service.TotalCaloriesForDay(food, "2024-06-01", loc); got != 500 {
		t.Fatalf("expected entry on local day, got %d", got)
	}
}

func TestDaysWithEntriesAndMonthMarks(t *testing.T) {
	t.Parallel()
	food := []model.FoodEntry{
		entry(t, "2024-02-03T08:00:00Z", "Завтрак", 300),
		entry(t, "2024-02-03T19:00:00Z", "Ужин", 600),
		entry(t, "2024-02-29T12:00:00Z", "Обед", 500),
		entry(t, "2024-03-01T12:00:00Z", "Обед", 400),
	}
	days := service.DaysWithEntries(food, time.UTC)
	if len(days) != 3 {
		t.Fatalf("expected 3 distinct days, got %d", len(days))
	}
	if _, ok := days["2024-02-29"]; !ok {
		t.Fatalf("expected 2024-02-29 in %v", days)
	}

	marks, err := service.MonthMarks(food, "2024-02", time.UTC)
	if err != nil {
		t.Fatalf("month marks: %v", err)
	}
	if len(marks) != 29 {
		t.Fatalf("expected 29 days in leap february, got %d", len(marks))
	}
	if !marks[2].HasEntries || marks[2].Calories != 900 {
		t.Fatalf("unexpected mark for feb 3: %+v", marks[2])
	}
	if marks[0].HasEntries {
		t.Fatalf("feb 1 should be disabled: %+v", marks[0])
	}
	if _, err := service.MonthMarks(food, "2024-13", time.UTC); err == nil {
		t.Fatalf("expected invalid month error")
	}
}

func TestEntriesForDayKeepsIndexes(t *testing.T) {
	t.Parallel()
	food := []model.FoodEntry{
		entry(t, "2024-06-01T08:00:00Z", "Завтрак", 300),
		entry(t, "2024-06-02T08:00:00Z", "Завтрак", 310),
		entry(t, "2024-06-01T19:00:00Z", "Ужин", 640),
	}
	got := service.EntriesForDay(food, "2024-06-01", time.UTC)
	if len(got) != 2 || got[0].Index != 0 || got[1].Index != 2 {
		t.Fatalf("unexpected day entries: %+v", got)
	}
}

func TestGaugeState(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		current  int
		goal     int
		percent  int
		over     bool
		at       bool
		overflow float64
	}{
		{name: "half", current: 1000, goal: 2000, percent: 50},
		{name: "at goal", current: 2000, goal: 2000, percent: 100, at: true},
		{name: "over", current: 2500, goal: 2000, percent: 125, over: true, overflow: 0.25},
		{name: "capped", current: 5000, goal: 2000, percent: 250, over: true, overflow: 1},
		{name: "zero goal", current: 10, goal: 0, percent: service.GaugeSentinelPercent, over: true, overflow: 1},
		{name: "rounds", current: 1, goal: 3, percent: 33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := service.GaugeState(tc.current, tc.goal)
			if g.Percentage != tc.percent || g.OverGoal != tc.over || g.AtGoal != tc.at || g.Overflow != tc.overflow {
				t.Fatalf("unexpected gauge: %+v", g)
			}
		})
	}
}

func TestDaySummary(t *testing.T) {
	t.Parallel()
	snap := model.Snapshot{
		Goal: 2000,
		Food: []model.FoodEntry{
			entry(t, "2024-06-01T08:00:00Z", "Завтрак", 1500),
			entry(t, "2024-06-01T20:00:00Z", "Ужин", 1000),
		},
	}
	status := service.DaySummary(snap, mustTime(t, "2024-06-01T12:00:00Z"), time.UTC)
	if status.Date != "2024-06-01" || status.Calories != 2500 || status.Entries != 2 {
		t.Fatalf("unexpected summary: %+v", status)
	}
	if status.Percentage != 125 || !status.OverGoal || status.Overflow != 0.25 || status.Remaining != 0 {
		t.Fatalf("unexpected gauge fields: %+v", status)
	}
}
