package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/HullPerse/jekafood/internal/model"
)

// gramsPerUnit converts mass units to grams.
var gramsPerUnit = map[string]float64{
	"mg":  0.001,
	"g":   1,
	"kg":  1000,
	"oz":  28.349523125,
	"lb":  453.59237,
	"lbs": 453.59237,
}

var itemUnits = map[string]struct{}{
	"pcs":   {},
	"pc":    {},
	"item":  {},
	"items": {},
	"шт":    {},
}

// NormalizeQuantity converts value in unit into the quantity a preset's
// calculator expects: grams for per-100g presets, pieces otherwise. An empty
// unit means the preset's own unit.
func NormalizeQuantity(p model.Preset, value float64, unit string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("quantity must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return value, nil
	}
	if p.ValueType == model.Per100g {
		factor, ok := gramsPerUnit[u]
		if !ok {
			return 0, fmt.Errorf("unsupported unit %q for a per-100g preset (use mg, g, kg, oz, or lb)", unit)
		}
		return value * factor, nil
	}
	if _, ok := itemUnits[u]; !ok {
		return 0, fmt.Errorf("unsupported unit %q for a per-item preset (use pcs)", unit)
	}
	return value, nil
}
