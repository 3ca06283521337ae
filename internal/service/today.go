package service

import (
	"time"

	"github.com/HullPerse/jekafood/internal/model"
)

type TodayStatus struct {
	Date       string  `json:"date"`
	Calories   int     `json:"calories"`
	Goal       int     `json:"goal"`
	Remaining  int     `json:"remaining"`
	Percentage int     `json:"percentage"`
	Overflow   float64 `json:"overflow"`
	AtGoal     bool    `json:"at_goal"`
	OverGoal   bool    `json:"over_goal"`
	Entries    int     `json:"entries"`
}

func DaySummary(snap model.Snapshot, date time.Time, loc *time.Location) TodayStatus {
	day := DayKey(date, loc)
	total := TotalCaloriesForDay(snap.Food, day, loc)
	g := GaugeState(total, snap.Goal)
	return TodayStatus{
		Date:       day,
		Calories:   total,
		Goal:       snap.Goal,
		Remaining:  g.Remaining,
		Percentage: g.Percentage,
		Overflow:   g.Overflow,
		AtGoal:     g.AtGoal,
		OverGoal:   g.OverGoal,
		Entries:    len(EntriesForDay(snap.Food, day, loc)),
	}
}
