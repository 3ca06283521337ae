package store

import (
	"context"
	"sync"

	"github.com/HullPerse/jekafood/internal/model"
)

// Memory is a Persister that keeps the last saved snapshot in memory.
type Memory struct {
	mu    sync.Mutex
	snap  *model.Snapshot
	saves int
	err   error
}

func NewMemory(initial *model.Snapshot) *Memory {
	m := &Memory{}
	if initial != nil {
		c := initial.Clone()
		m.snap = &c
	}
	return m
}

func (m *Memory) Load(ctx context.Context) (*model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, nil
	}
	c := m.snap.Clone()
	return &c, nil
}

func (m *Memory) Save(ctx context.Context, snap model.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	c := snap.Clone()
	m.snap = &c
	m.saves++
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Saves reports how many saves succeeded.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FailWith makes every later Save return err. A nil err clears it.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
