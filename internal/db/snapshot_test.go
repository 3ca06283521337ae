package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/HullPerse/jekafood/internal/bg"
	"github.com/HullPerse/jekafood/internal/db"
	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Goal: 1850,
		Food: []model.FoodEntry{
			{Date: time.Date(2024, 6, 1, 8, 0, 0, 123000000, time.UTC), Type: "Завтрак", Calories: 300},
			{Date: time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC), Type: "Apple", Calories: 78},
		},
		Presets: []model.Preset{
			{ID: "b", Label: "Egg", Icon: "egg", Calories: 80, ValueType: model.PerItem},
			{ID: "a", Label: "Apple", Icon: "nutrition", Calories: 52.5, ValueType: model.Per100g},
		},
	}
}

func assertSnapshot(t *testing.T, got *model.Snapshot, want model.Snapshot) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected snapshot, got nil")
	}
	if got.Goal != want.Goal || len(got.Food) != len(want.Food) || len(got.Presets) != len(want.Presets) {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	for i := range want.Food {
		g, w := got.Food[i], want.Food[i]
		if !g.Date.Equal(w.Date) || g.Type != w.Type || g.Calories != w.Calories {
			t.Fatalf("food[%d]: expected %+v, got %+v", i, w, g)
		}
	}
	for i := range want.Presets {
		if got.Presets[i] != want.Presets[i] {
			t.Fatalf("presets[%d]: expected %+v, got %+v", i, want.Presets[i], got.Presets[i])
		}
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "jekafood.db")
	ss, err := db.OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("open snapshot store: %v", err)
	}
	defer ss.Close()

	snap, err := ss.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot before first save, got %+v", snap)
	}

	want := sampleSnapshot()
	if err := ss.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := ss.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertSnapshot(t, got, want)

	want.Food = want.Food[:1]
	want.Presets = nil
	if err := ss.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = ss.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(got.Food) != 1 || len(got.Presets) != 0 {
		t.Fatalf("save should replace previous rows: %+v", got)
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f, err := db.NewJSONFile(filepath.Join(t.TempDir(), "nested", "data-storage.json"))
	if err != nil {
		t.Fatalf("new json file: %v", err)
	}
	snap, err := f.Load(ctx)
	if err != nil || snap != nil {
		t.Fatalf("expected nil snapshot for missing file, got %+v (%v)", snap, err)
	}
	want := sampleSnapshot()
	if err := f.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := f.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertSnapshot(t, got, want)
}

func TestStoreSurvivesRestartOnSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jekafood.db")

	ss, err := db.OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("open snapshot store: %v", err)
	}
	st, err := store.Open(ctx, ss, store.WithRunner(bg.Async{}))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	st.SetGoal(1600)
	st.SetFood(sampleSnapshot().Food)
	st.AddPreset(model.Preset{ID: "egg", Label: "Egg", Icon: "egg", Calories: 80, ValueType: model.PerItem})
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := db.OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("reopen snapshot store: %v", err)
	}
	st2, err := store.Open(ctx, reopened, store.WithRunner(bg.Sync{}))
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer st2.Close()
	snap := st2.Snapshot()
	if snap.Goal != 1600 || len(snap.Food) != 2 || len(snap.Presets) != 1 {
		t.Fatalf("unexpected restored snapshot: %+v", snap)
	}
}
