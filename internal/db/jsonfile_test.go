package db_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HullPerse/jekafood/internal/bg"
	"github.com/HullPerse/jekafood/internal/db"
	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

// appDump is what the mobile app writes under its data-storage key.
const appDump = `{"state":{"goal":1800,"food":[{"date":"2024-06-01T08:00:00.000Z","type":"Завтрак","calories":300}],"presets":[{"id":"1717228800000","label":"Apple","icon":"brunch-dining","calories":52,"valueType":"100g"},{"id":"1717228800001","label":"Egg","icon":"kitchen","calories":80,"valueType":"1pc"}]},"version":0}`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data-storage.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write data file: %v", err)
	}
	return path
}

func TestJSONFileLoadsAppDump(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := writeFile(t, appDump)
	f, err := db.NewJSONFile(path)
	if err != nil {
		t.Fatalf("new json file: %v", err)
	}
	st, err := store.Open(ctx, f, store.WithRunner(bg.Sync{}))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	snap := st.Snapshot()
	if snap.Goal != 1800 || len(snap.Food) != 1 || len(snap.Presets) != 2 {
		t.Fatalf("unexpected snapshot from app dump: %+v", snap)
	}
	if !snap.Food[0].Date.Equal(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)) || snap.Food[0].Calories != 300 {
		t.Fatalf("unexpected entry: %+v", snap.Food[0])
	}
	if snap.Presets[1].ValueType != model.PerItem || snap.Presets[1].Icon != "kitchen" {
		t.Fatalf("unexpected preset: %+v", snap.Presets[1])
	}

	st.SetGoal(1900)
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	var doc struct {
		State   model.Snapshot `json:"state"`
		Version *int           `json:"version"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode saved file: %v\n%s", err, raw)
	}
	if doc.Version == nil || *doc.Version != 0 {
		t.Fatalf("saved file lost its version: %s", raw)
	}
	if doc.State.Goal != 1900 || len(doc.State.Food) != 1 || len(doc.State.Presets) != 2 {
		t.Fatalf("saved file lost data: %s", raw)
	}
}

func TestJSONFileLoadsFlatDocument(t *testing.T) {
	t.Parallel()
	f, err := db.NewJSONFile(writeFile(t, `{"goal":1500,"food":[],"presets":[]}`))
	if err != nil {
		t.Fatalf("new json file: %v", err)
	}
	snap, err := f.Load(context.Background())
	if err != nil {
		t.Fatalf("load flat document: %v", err)
	}
	if snap == nil || snap.Goal != 1500 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestJSONFileRejectsUnknownDocuments(t *testing.T) {
	t.Parallel()
	for _, body := range []string{
		`{"settings":{"goal":1800}}`,
		`{"state":{"goal":1800},"version":3}`,
		`[1,2,3]`,
	} {
		f, err := db.NewJSONFile(writeFile(t, body))
		if err != nil {
			t.Fatalf("new json file: %v", err)
		}
		if snap, err := f.Load(context.Background()); err == nil {
			t.Fatalf("expected error for %s, got %+v", body, snap)
		}
	}
}
