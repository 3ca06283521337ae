package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DefaultGoal = 2000

type ValueType string

const (
	Per100g ValueType = "100g"
	PerItem ValueType = "item"
)

// ParseValueType accepts the stored wire values plus a few spellings used on
// the command line. Anything that is not per-100g counts as per item.
func ParseValueType(raw string) ValueType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "100g", "per100g", "g", "gram", "grams":
		return Per100g
	default:
		return PerItem
	}
}

func (v ValueType) Valid() bool {
	return v == Per100g || v == PerItem
}

// UnitLabel is the quantity unit a user types for this value type.
func (v ValueType) UnitLabel() string {
	if v == Per100g {
		return "g"
	}
	return "pcs"
}

func (v *ValueType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode value type: %w", err)
	}
	*v = ParseValueType(raw)
	return nil
}

type FoodEntry struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Calories int       `json:"calories"`
}

type Preset struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Icon      string    `json:"icon"`
	Calories  float64   `json:"calories"`
	ValueType ValueType `json:"valueType"`
}

// Snapshot is the full persisted state of the tracker.
type Snapshot struct {
	Goal    int         `json:"goal"`
	Food    []FoodEntry `json:"food"`
	Presets []Preset    `json:"presets"`
}

func EmptySnapshot() Snapshot {
	return Snapshot{Goal: DefaultGoal, Food: []FoodEntry{}, Presets: []Preset{}}
}

// Clone returns a snapshot that shares no slices with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Goal: s.Goal}
	out.Food = make([]FoodEntry, len(s.Food))
	copy(out.Food, s.Food)
	out.Presets = make([]Preset, len(s.Presets))
	copy(out.Presets, s.Presets)
	return out
}
