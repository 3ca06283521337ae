package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

// maxGoal keeps the rounded goal inside int32 on every platform.
const maxGoal = math.MaxInt32

// ParseGoal turns user input into a daily goal. Empty, non-numeric,
// non-positive and out of range input falls back to model.DefaultGoal;
// fractions are rounded.
func ParseGoal(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v > maxGoal {
		return model.DefaultGoal
	}
	goal := int(math.Round(v))
	if goal <= 0 {
		return model.DefaultGoal
	}
	return goal
}

// SetGoal coerces raw with ParseGoal, stores it and returns the stored value.
func SetGoal(st *store.Store, raw string) int {
	goal := ParseGoal(raw)
	st.SetGoal(goal)
	return goal
}
