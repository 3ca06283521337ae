package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

type CreatePresetInput struct {
	Label     string
	Icon      string
	Calories  float64
	ValueType string
}

type ListPresetsFilter struct {
	Query string
	Limit int
}

type LogPresetInput struct {
	Identifier string
	Quantity   float64
	Unit       string
	Date       time.Time
}

// NewPreset validates input and builds a preset with a fresh time-ordered ID.
func NewPreset(in CreatePresetInput) (model.Preset, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return model.Preset{}, fmt.Errorf("preset label is required")
	}
	if err := validatePositiveFloat("calories", in.Calories); err != nil {
		return model.Preset{}, err
	}
	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = DefaultPresetIcon
	}
	if !ValidPresetIcon(icon) {
		return model.Preset{}, fmt.Errorf("unknown preset icon %q", icon)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return model.Preset{}, fmt.Errorf("generate preset id: %w", err)
	}
	return model.Preset{
		ID:        id.String(),
		Label:     label,
		Icon:      icon,
		Calories:  in.Calories,
		ValueType: model.ParseValueType(in.ValueType),
	}, nil
}

func CreatePreset(st *store.Store, in CreatePresetInput) (model.Preset, error) {
	p, err := NewPreset(in)
	if err != nil {
		return model.Preset{}, err
	}
	st.AddPreset(p)
	return p, nil
}

// ResolvePreset finds a preset by exact ID, then by case-insensitive label.
// A label shared by several presets must be addressed by ID.
func ResolvePreset(presets []model.Preset, idOrLabel string) (model.Preset, error) {
	idOrLabel = strings.TrimSpace(idOrLabel)
	if idOrLabel == "" {
		return model.Preset{}, fmt.Errorf("preset identifier is required")
	}
	for _, p := range presets {
		if p.ID == idOrLabel {
			return p, nil
		}
	}
	want := normalizeName(idOrLabel)
	var matches []model.Preset
	for _, p := range presets {
		if normalizeName(p.Label) == want {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return model.Preset{}, fmt.Errorf("preset %q: %w", idOrLabel, ErrPresetNotFound)
	case 1:
		return matches[0], nil
	default:
		return model.Preset{}, fmt.Errorf("preset label %q is ambiguous (%d matches), use the id", idOrLabel, len(matches))
	}
}

func ListPresets(presets []model.Preset, f ListPresetsFilter) []model.Preset {
	q := normalizeName(f.Query)
	out := make([]model.Preset, 0, len(presets))
	for _, p := range presets {
		if q != "" && !strings.Contains(normalizeName(p.Label), q) {
			continue
		}
		out = append(out, p)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// DeletePreset removes a preset. Food already logged from it stays.
func DeletePreset(st *store.Store, idOrLabel string) (model.Preset, error) {
	p, err := ResolvePreset(st.Presets(), idOrLabel)
	if err != nil {
		return model.Preset{}, err
	}
	st.RemovePreset(p.ID)
	return p, nil
}

// LogPreset converts a quantity of a preset into calories and appends the
// resulting entry under the preset's label.
func LogPreset(st *store.Store, in LogPresetInput) (model.FoodEntry, error) {
	if err := validatePositiveFloat("quantity", in.Quantity); err != nil {
		return model.FoodEntry{}, err
	}
	p, err := ResolvePreset(st.Presets(), in.Identifier)
	if err != nil {
		return model.FoodEntry{}, err
	}
	qty, err := NormalizeQuantity(p, in.Quantity, in.Unit)
	if err != nil {
		return model.FoodEntry{}, err
	}
	entry, err := newEntry(AddEntryInput{
		Type:     p.Label,
		Calories: QuantityToCalories(p, qty),
		Date:     in.Date,
	})
	if err != nil {
		return model.FoodEntry{}, err
	}
	appendEntry(st, entry)
	return entry, nil
}
