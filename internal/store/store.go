// Package store holds the tracker state: the daily goal, the food log and
// the preset list.
//
// Every mutation replaces state in memory, hands a copy of the new snapshot
// to the Persister without waiting for it, and then calls each subscribed
// Listener on the caller's goroutine. Readers always get copies.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/HullPerse/jekafood/internal/bg"
	applog "github.com/HullPerse/jekafood/internal/log"
	"github.com/HullPerse/jekafood/internal/model"
)

// Persister is the durable side of the store. Load returns nil when nothing
// has been saved yet.
type Persister interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
	Close() error
}

// Listener receives the committed snapshot after each mutation. It must not
// modify the slices it is given.
type Listener func(model.Snapshot)

type subscriber struct {
	id int
	fn Listener
}

type Store struct {
	mu        sync.Mutex
	state     model.Snapshot
	version   uint64
	listeners []subscriber
	nextID    int

	persister Persister
	runner    bg.Runner
	logger    *applog.Logger

	saveMu       sync.Mutex
	savedVersion uint64
	pending      sync.WaitGroup
}

type Option func(*Store)

func WithRunner(r bg.Runner) Option {
	return func(s *Store) { s.runner = r }
}

func WithLogger(l *applog.Logger) Option {
	return func(s *Store) { s.logger = l.WithComponent(applog.ComponentStore) }
}

// New builds a store seeded with initial. A nil persister keeps state in
// memory only.
func New(initial model.Snapshot, p Persister, opts ...Option) *Store {
	s := &Store{
		state:     normalize(initial),
		persister: p,
		runner:    bg.Async{},
		logger:    applog.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the last saved snapshot from p, falling back to the defaults
// (goal 2000, no food, no presets) when nothing was saved.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	snap, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store snapshot: %w", err)
	}
	initial := model.EmptySnapshot()
	if snap != nil {
		initial = *snap
	}
	s := New(initial, p, opts...)
	s.logger.Debug("snapshot loaded",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldGoal, initial.Goal,
		applog.FieldFoodCount, len(initial.Food),
		applog.FieldPresetCount, len(initial.Presets))
	return s, nil
}

func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Goal
}

func (s *Store) Food() []model.FoodEntry {
	return s.Snapshot().Food
}

func (s *Store) Presets() []model.Preset {
	return s.Snapshot().Presets
}

// SetGoal replaces the goal. Callers validate the value.
func (s *Store) SetGoal(value int) {
	s.mutate(applog.OpSetGoal, func(st *model.Snapshot) bool {
		st.Goal = value
		return true
	})
}

// SetFood replaces the whole food log with a copy of entries.
func (s *Store) SetFood(entries []model.FoodEntry) {
	next := make([]model.FoodEntry, len(entries))
	copy(next, entries)
	s.mutate(applog.OpSetFood, func(st *model.Snapshot) bool {
		st.Food = next
		return true
	})
}

// AddPreset appends p. A preset whose ID is already present is dropped.
func (s *Store) AddPreset(p model.Preset) {
	s.mutate(applog.OpAddPreset, func(st *model.Snapshot) bool {
		for _, existing := range st.Presets {
			if existing.ID == p.ID {
				s.logger.Warn("preset id already present, ignoring", applog.FieldPresetID, p.ID)
				return false
			}
		}
		next := make([]model.Preset, len(st.Presets), len(st.Presets)+1)
		copy(next, st.Presets)
		st.Presets = append(next, p)
		return true
	})
}

// RemovePreset drops the preset with the given id. Unknown ids are ignored.
// Food logged from the preset is left alone.
func (s *Store) RemovePreset(id string) {
	s.mutate(applog.OpRemovePreset, func(st *model.Snapshot) bool {
		next := make([]model.Preset, 0, len(st.Presets))
		for _, p := range st.Presets {
			if p.ID != id {
				next = append(next, p)
			}
		}
		if len(next) == len(st.Presets) {
			return false
		}
		st.Presets = next
		return true
	})
}

// SetPresets replaces the preset list. Later duplicates of an id are dropped.
func (s *Store) SetPresets(presets []model.Preset) {
	next := dedupePresets(presets)
	s.mutate(applog.OpSetPresets, func(st *model.Snapshot) bool {
		st.Presets = next
		return true
	})
}

// Replace swaps goal, food and presets in one mutation, so subscribers see
// a single change.
func (s *Store) Replace(snap model.Snapshot) {
	next := normalize(snap)
	s.mutate(applog.OpReplace, func(st *model.Snapshot) bool {
		*st = next
		return true
	})
}

// Subscribe registers fn and returns a function that removes it. Listeners
// are called in the order they subscribed.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Flush blocks until every scheduled save has finished.
func (s *Store) Flush() {
	s.pending.Wait()
}

// Close flushes pending saves and closes the persister.
func (s *Store) Close() error {
	s.Flush()
	if s.persister == nil {
		return nil
	}
	return s.persister.Close()
}

func (s *Store) mutate(op string, apply func(*model.Snapshot) bool) {
	s.mu.Lock()
	if !apply(&s.state) {
		s.mu.Unlock()
		return
	}
	s.version++
	version := s.version
	snap := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.fn)
	}
	s.mu.Unlock()

	s.logger.Debug("state committed",
		applog.FieldOperation, op,
		applog.FieldVersion, version,
		applog.FieldGoal, snap.Goal,
		applog.FieldFoodCount, len(snap.Food),
		applog.FieldPresetCount, len(snap.Presets))

	s.scheduleSave(version, snap.Clone())
	for _, l := range listeners {
		l(snap)
	}
}

func (s *Store) scheduleSave(version uint64, snap model.Snapshot) {
	if s.persister == nil {
		return
	}
	s.pending.Add(1)
	s.runner.Do(func() {
		defer s.pending.Done()
		s.save(version, snap)
	})
}

func (s *Store) save(version uint64, snap model.Snapshot) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if version <= s.savedVersion {
		return
	}
	if err := s.persister.Save(context.Background(), snap); err != nil {
		s.logger.Error("save snapshot failed",
			applog.FieldOperation, applog.OpSave,
			applog.FieldVersion, version,
			applog.FieldError, err)
		return
	}
	s.savedVersion = version
}

func normalize(snap model.Snapshot) model.Snapshot {
	out := snap.Clone()
	out.Presets = dedupePresets(out.Presets)
	return out
}

func dedupePresets(in []model.Preset) []model.Preset {
	seen := make(map[string]struct{}, len(in))
	out := make([]model.Preset, 0, len(in))
	for _, p := range in {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
