package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

type AddEntryInput struct {
	Type     string
	Calories int
	Date     time.Time
}

type ListEntriesFilter struct {
	Day   string
	Type  string
	Limit int
}

// AddEntry appends a hand-entered food entry. A zero Date means now.
func AddEntry(st *store.Store, in AddEntryInput) (model.FoodEntry, error) {
	entry, err := newEntry(in)
	if err != nil {
		return model.FoodEntry{}, err
	}
	appendEntry(st, entry)
	return entry, nil
}

// DeleteEntry removes the entry at index (insertion order, zero based).
func DeleteEntry(st *store.Store, index int) (model.FoodEntry, error) {
	food := st.Food()
	if index < 0 || index >= len(food) {
		return model.FoodEntry{}, fmt.Errorf("entry %d: %w", index+1, ErrEntryNotFound)
	}
	removed := food[index]
	next := make([]model.FoodEntry, 0, len(food)-1)
	next = append(next, food[:index]...)
	next = append(next, food[index+1:]...)
	st.SetFood(next)
	return removed, nil
}

// ClearFood drops every logged entry and reports how many there were.
func ClearFood(st *store.Store) int {
	n := len(st.Food())
	st.SetFood([]model.FoodEntry{})
	return n
}

// ListEntries filters the food log, keeping insertion order. Limit keeps the
// most recent matches.
func ListEntries(food []model.FoodEntry, f ListEntriesFilter, loc *time.Location) []DayEntry {
	typ := normalizeName(f.Type)
	out := make([]DayEntry, 0)
	for i, e := range food {
		if f.Day != "" && DayKey(e.Date, loc) != f.Day {
			continue
		}
		if typ != "" && normalizeName(e.Type) != typ {
			continue
		}
		out = append(out, DayEntry{Index: i, Entry: e})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out
}

func newEntry(in AddEntryInput) (model.FoodEntry, error) {
	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		return model.FoodEntry{}, fmt.Errorf("entry type is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return model.FoodEntry{}, err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	return model.FoodEntry{Date: in.Date, Type: typ, Calories: in.Calories}, nil
}

func appendEntry(st *store.Store, entry model.FoodEntry) {
	food := st.Food()
	st.SetFood(append(food, entry))
}
