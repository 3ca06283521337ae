package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/HullPerse/jekafood/internal/model"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// GaugeSentinelPercent is reported instead of a percentage when the goal is
// zero or negative.
const GaugeSentinelPercent = 999

type Gauge struct {
	Current    int     `json:"current"`
	Goal       int     `json:"goal"`
	Remaining  int     `json:"remaining"`
	Percentage int     `json:"percentage"`
	Overflow   float64 `json:"overflow"`
	AtGoal     bool    `json:"at_goal"`
	OverGoal   bool    `json:"over_goal"`
}

type DayMark struct {
	Day        string `json:"day"`
	HasEntries bool   `json:"has_entries"`
	Calories   int    `json:"calories"`
}

// DayEntry is an entry together with its position in the food log.
type DayEntry struct {
	Index int             `json:"index"`
	Entry model.FoodEntry `json:"entry"`
}

// DayKey truncates t to its calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dayLayout)
}

// ParseDay validates a YYYY-MM-DD day string.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dayLayout, strings.TrimSpace(day), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	return t, nil
}

// NormalizeDay validates day and returns its canonical key.
func NormalizeDay(day string, loc *time.Location) (string, error) {
	t, err := ParseDay(day, loc)
	if err != nil {
		return "", err
	}
	return DayKey(t, loc), nil
}

// TotalCaloriesForDay sums the calories of every entry logged on day.
func TotalCaloriesForDay(food []model.FoodEntry, day string, loc *time.Location) int {
	total := 0
	for _, e := range food {
		if DayKey(e.Date, loc) == day {
			total += e.Calories
		}
	}
	return total
}

func DaysWithEntries(food []model.FoodEntry, loc *time.Location) map[string]struct{} {
	days := make(map[string]struct{})
	for _, e := range food {
		days[DayKey(e.Date, loc)] = struct{}{}
	}
	return days
}

// EntriesForDay returns the entries logged on day in insertion order.
func EntriesForDay(food []model.FoodEntry, day string, loc *time.Location) []DayEntry {
	out := make([]DayEntry, 0)
	for i, e := range food {
		if DayKey(e.Date, loc) == day {
			out = append(out, DayEntry{Index: i, Entry: e})
		}
	}
	return out
}

// MonthMarks returns one mark per day of month (YYYY-MM). Days without
// entries are the ones a calendar shows as disabled.
func MonthMarks(food []model.FoodEntry, month string, loc *time.Location) ([]DayMark, error) {
	if loc == nil {
		loc = time.UTC
	}
	first, err := time.ParseInLocation(monthLayout, strings.TrimSpace(month), loc)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
	}
	totals := make(map[string]int)
	days := DaysWithEntries(food, loc)
	for _, e := range food {
		totals[DayKey(e.Date, loc)] += e.Calories
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	marks := make([]DayMark, 0, daysInMonth)
	for d := 0; d < daysInMonth; d++ {
		key := first.AddDate(0, 0, d).Format(dayLayout)
		_, has := days[key]
		marks = append(marks, DayMark{Day: key, HasEntries: has, Calories: totals[key]})
	}
	return marks, nil
}

// GaugeState compares a day's intake with the goal. Overflow is the share of
// a second ring to draw once the goal is passed, capped at one full ring.
// A goal of zero or less counts as fully over goal.
func GaugeState(current, goal int) Gauge {
	g := Gauge{Current: current, Goal: goal}
	if goal <= 0 {
		g.OverGoal = true
		g.Overflow = 1
		g.Percentage = GaugeSentinelPercent
		return g
	}
	g.Remaining = max(goal-current, 0)
	g.Percentage = int(math.Round(float64(current) / float64(goal) * 100))
	g.AtGoal = current == goal
	g.OverGoal = current > goal
	if g.OverGoal {
		g.Overflow = math.Min(float64(current-goal)/float64(goal), 1)
	}
	return g
}
