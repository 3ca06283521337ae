package service

import (
	"fmt"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

type DoctorReport struct {
	Goal           int      `json:"goal"`
	InvalidGoal    bool     `json:"invalid_goal"`
	InvalidEntries int      `json:"invalid_entries"`
	InvalidPresets int      `json:"invalid_presets"`
	Problems       []string `json:"problems,omitempty"`
	Fixed          bool     `json:"fixed,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return !r.InvalidGoal && r.InvalidEntries == 0 && r.InvalidPresets == 0
}

// RunDoctor checks the stored snapshot for records the app would not create
// itself. Preset icons are opaque and never checked. With fix, invalid
// entries and presets are dropped and a non-positive goal is reset to
// DefaultGoal in a single store mutation.
func RunDoctor(st *store.Store, fix bool) DoctorReport {
	snap := st.Snapshot()
	report := DoctorReport{Goal: snap.Goal}
	goal := snap.Goal
	if goal <= 0 {
		report.InvalidGoal = true
		report.Problems = append(report.Problems, fmt.Sprintf("goal %d is not positive", goal))
		goal = model.DefaultGoal
	}

	food := make([]model.FoodEntry, 0, len(snap.Food))
	for i, e := range snap.Food {
		if problem := entryProblem(e); problem != "" {
			report.InvalidEntries++
			report.Problems = append(report.Problems, fmt.Sprintf("entry %d: %s", i+1, problem))
			continue
		}
		food = append(food, e)
	}

	presets := make([]model.Preset, 0, len(snap.Presets))
	for _, p := range snap.Presets {
		if problem := presetProblem(p); problem != "" {
			report.InvalidPresets++
			report.Problems = append(report.Problems, fmt.Sprintf("preset %q: %s", p.ID, problem))
			continue
		}
		presets = append(presets, p)
	}

	if !fix || report.Healthy() {
		return report
	}
	st.Replace(model.Snapshot{Goal: goal, Food: food, Presets: presets})
	report.Fixed = true
	return report
}
