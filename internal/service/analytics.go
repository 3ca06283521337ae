package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/HullPerse/jekafood/internal/model"
)

type TypeBreakdown struct {
	Type     string `json:"type"`
	Icon     string `json:"icon"`
	Calories int    `json:"calories"`
	Entries  int    `json:"entries"`
}

type DayTotal struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Entries  int    `json:"entries"`
}

type AdherenceSummary struct {
	EvaluatedDays  int     `json:"evaluated_days"`
	WithinGoalDays int     `json:"within_goal_days"`
	OverGoalDays   int     `json:"over_goal_days"`
	PercentWithin  float64 `json:"percent_within_goal"`
}

type AnalyticsReport struct {
	FromDate              string           `json:"from_date"`
	ToDate                string           `json:"to_date"`
	Goal                  int              `json:"goal"`
	TotalCalories         int              `json:"total_calories"`
	DaysWithEntries       int              `json:"days_with_entries"`
	AverageCaloriesPerDay float64          `json:"avg_calories_per_day"`
	HighestDay            *DayTotal        `json:"highest_day,omitempty"`
	LowestDay             *DayTotal        `json:"lowest_day,omitempty"`
	Adherence             AdherenceSummary `json:"adherence"`
	ByType                []TypeBreakdown  `json:"by_type"`
	Days                  []DayTotal       `json:"days"`
}

// AnalyticsRange summarizes the inclusive day range [from, to]. Averages and
// adherence only count days that have entries; a day is within goal when its
// total does not exceed the goal.
func AnalyticsRange(snap model.Snapshot, from, to string, loc *time.Location) (*AnalyticsReport, error) {
	from, err := NormalizeDay(from, loc)
	if err != nil {
		return nil, err
	}
	to, err = NormalizeDay(to, loc)
	if err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("from date must be <= to date")
	}
	report := &AnalyticsReport{FromDate: from, ToDate: to, Goal: snap.Goal}

	byDay := make(map[string]*DayTotal)
	byType := make(map[string]*TypeBreakdown)
	for _, e := range snap.Food {
		day := DayKey(e.Date, loc)
		if day < from || day > to {
			continue
		}
		d, ok := byDay[day]
		if !ok {
			d = &DayTotal{Date: day}
			byDay[day] = d
		}
		d.Calories += e.Calories
		d.Entries++

		tb, ok := byType[e.Type]
		if !ok {
			tb = &TypeBreakdown{Type: e.Type, Icon: IconForType(e.Type)}
			byType[e.Type] = tb
		}
		tb.Calories += e.Calories
		tb.Entries++
		report.TotalCalories += e.Calories
	}

	for _, d := range byDay {
		report.Days = append(report.Days, *d)
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date < report.Days[j].Date })
	for _, tb := range byType {
		report.ByType = append(report.ByType, *tb)
	}
	sort.Slice(report.ByType, func(i, j int) bool {
		if report.ByType[i].Calories != report.ByType[j].Calories {
			return report.ByType[i].Calories > report.ByType[j].Calories
		}
		return report.ByType[i].Type < report.ByType[j].Type
	})

	report.DaysWithEntries = len(report.Days)
	if report.DaysWithEntries > 0 {
		report.AverageCaloriesPerDay = float64(report.TotalCalories) / float64(report.DaysWithEntries)
	}
	report.HighestDay, report.LowestDay = extremeDays(report.Days)
	report.Adherence = calculateAdherence(report.Days, snap.Goal)
	return report, nil
}

func calculateAdherence(days []DayTotal, goal int) AdherenceSummary {
	out := AdherenceSummary{}
	for _, d := range days {
		out.EvaluatedDays++
		if GaugeState(d.Calories, goal).OverGoal {
			out.OverGoalDays++
			continue
		}
		out.WithinGoalDays++
	}
	if out.EvaluatedDays > 0 {
		out.PercentWithin = (float64(out.WithinGoalDays) / float64(out.EvaluatedDays)) * 100
	}
	return out
}

func extremeDays(days []DayTotal) (*DayTotal, *DayTotal) {
	if len(days) == 0 {
		return nil, nil
	}
	copied := make([]DayTotal, len(days))
	copy(copied, days)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].Calories < copied[j].Calories
	})
	low := copied[0]
	high := copied[len(copied)-1]
	return &high, &low
}
