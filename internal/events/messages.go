package events

import (
	"encoding/json"
	"time"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/service"
)

// StoreChanged summarizes the store after a mutation. Consumers fetch
// nothing back; the message carries the counters a dashboard needs.
type StoreChanged struct {
	Goal          int       `json:"goal"`
	FoodCount     int       `json:"food_count"`
	PresetCount   int       `json:"preset_count"`
	Day           string    `json:"day"`
	TodayCalories int       `json:"today_calories"`
	Percentage    int       `json:"percentage"`
	OverGoal      bool      `json:"over_goal"`
	At            time.Time `json:"at"`
}

func NewStoreChanged(snap model.Snapshot, now time.Time, loc *time.Location) *StoreChanged {
	day := service.DayKey(now, loc)
	today := service.TotalCaloriesForDay(snap.Food, day, loc)
	g := service.GaugeState(today, snap.Goal)
	return &StoreChanged{
		Goal:          snap.Goal,
		FoodCount:     len(snap.Food),
		PresetCount:   len(snap.Presets),
		Day:           day,
		TodayCalories: today,
		Percentage:    g.Percentage,
		OverGoal:      g.OverGoal,
		At:            now.UTC(),
	}
}

func (m *StoreChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
