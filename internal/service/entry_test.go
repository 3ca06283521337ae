package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/HullPerse/jekafood/internal/service"
)

func TestAddEntryAndTotals(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	at := mustTime(t, "2024-06-01T08:00:00Z")
	got, err := service.AddEntry(st, service.AddEntryInput{Type: " Завтрак ", Calories: 300, Date: at})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if got.Type != "Завтрак" || !got.Date.Equal(at) {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if total := service.TotalCaloriesForDay(st.Food(), "2024-06-01", time.UTC); total != 300 {
		t.Fatalf("expected 300 calories, got %d", total)
	}
}

func TestAddEntryValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	if _, err := service.AddEntry(st, service.AddEntryInput{Type: "", Calories: 100}); err == nil {
		t.Fatalf("expected missing type error")
	}
	if _, err := service.AddEntry(st, service.AddEntryInput{Type: "Обед", Calories: -1}); err == nil {
		t.Fatalf("expected negative calories error")
	}
	if len(st.Food()) != 0 {
		t.Fatalf("rejected entries must not be stored")
	}

	e, err := service.AddEntry(st, service.AddEntryInput{Type: "Обед", Calories: 0})
	if err != nil {
		t.Fatalf("zero calories should be allowed: %v", err)
	}
	if e.Date.IsZero() {
		t.Fatalf("expected default date to be now")
	}
}

func TestDeleteEntryKeepsOrder(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	for i, typ := range []string{"Завтрак", "Обед", "Ужин"} {
		if _, err := service.AddEntry(st, service.AddEntryInput{Type: typ, Calories: 100 * (i + 1)}); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}
	removed, err := service.DeleteEntry(st, 1)
	if err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if removed.Type != "Обед" {
		t.Fatalf("removed wrong entry: %+v", removed)
	}
	food := st.Food()
	if len(food) != 2 || food[0].Type != "Завтрак" || food[1].Type != "Ужин" {
		t.Fatalf("unexpected food after delete: %+v", food)
	}
	if _, err := service.DeleteEntry(st, 5); !errors.Is(err, service.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestClearFood(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	_, _ = service.AddEntry(st, service.AddEntryInput{Type: "Обед", Calories: 500})
	_, _ = service.AddEntry(st, service.AddEntryInput{Type: "Ужин", Calories: 600})
	if n := service.ClearFood(st); n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if len(st.Food()) != 0 {
		t.Fatalf("expected empty food log")
	}
}

func TestListEntriesFilters(t *testing.T) {
	t.Parallel()
	food := []struct {
		at, typ string
		kcal    int
	}{
		{"2024-06-01T08:00:00Z", "Завтрак", 300},
		{"2024-06-01T13:00:00Z", "Обед", 500},
		{"2024-06-02T08:00:00Z", "Завтрак", 320},
		{"2024-06-02T19:00:00Z", "Ужин", 700},
	}
	st := newTestStore(t)
	for _, f := range food {
		if _, err := service.AddEntry(st, service.AddEntryInput{Type: f.typ, Calories: f.kcal, Date: mustTime(t, f.at)}); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}

	byDay := service.ListEntries(st.Food(), service.ListEntriesFilter{Day: "2024-06-02"}, time.UTC)
	if len(byDay) != 2 || byDay[0].Index != 2 {
		t.Fatalf("unexpected day filter result: %+v", byDay)
	}
	byType := service.ListEntries(st.Food(), service.ListEntriesFilter{Type: "завтрак"}, time.UTC)
	if len(byType) != 2 {
		t.Fatalf("expected 2 breakfasts, got %+v", byType)
	}
	last := service.ListEntries(st.Food(), service.ListEntriesFilter{Limit: 1}, time.UTC)
	if len(last) != 1 || last[0].Entry.Calories != 700 {
		t.Fatalf("expected most recent entry, got %+v", last)
	}
}

func TestIconForTypeEntry(t *testing.T) {
	t.Parallel()
	if got := service.IconForType("Ужин"); got != "dinner-dining" {
		t.Fatalf("expected dinner-dining, got %s", got)
	}
	if got := service.IconForType("Oatmeal"); got != service.DefaultFoodIcon {
		t.Fatalf("expected fallback icon, got %s", got)
	}
}
