package service

import (
	"math"

	"github.com/HullPerse/jekafood/internal/model"
)

// QuantityToCalories converts a quantity of a preset into whole calories.
// Per-100g presets take grams, per-item presets take a piece count. Results
// are rounded half away from zero; negative quantities count as zero.
func QuantityToCalories(p model.Preset, quantity float64) int {
	if math.IsNaN(quantity) || quantity <= 0 {
		return 0
	}
	var kcal float64
	if p.ValueType == model.Per100g {
		kcal = p.Calories * quantity / 100
	} else {
		kcal = p.Calories * quantity
	}
	if kcal <= 0 {
		return 0
	}
	return int(math.Round(kcal))
}
