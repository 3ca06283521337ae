package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/HullPerse/jekafood/internal/bg"
	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), store.NewMemory(nil), store.WithRunner(bg.Sync{}))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func entry(t *testing.T, at, typ string, calories int) model.FoodEntry {
	t.Helper()
	return model.FoodEntry{Date: mustTime(t, at), Type: typ, Calories: calories}
}
