package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/HullPerse/jekafood/internal/app"
	"github.com/HullPerse/jekafood/internal/model"
)

// persistVersion is the state version the mobile app's persisted storage
// records next to its state.
const persistVersion = 0

// persistedState is the document the mobile app keeps under its
// data-storage key: the store state wrapped with a version.
type persistedState struct {
	State   *model.Snapshot `json:"state"`
	Version int             `json:"version"`
}

// JSONFile keeps the snapshot as a single JSON document in the mobile app's
// persisted layout. Flat {goal, food, presets} documents are read too.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) (*JSONFile, error) {
	if err := app.EnsureDir(path); err != nil {
		return nil, err
	}
	return &JSONFile{path: path}, nil
}

func (f *JSONFile) Path() string {
	return f.path
}

// Load returns nil when the file does not exist yet.
func (f *JSONFile) Load(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	snap, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("decode data file %s: %w", f.path, err)
	}
	return snap, nil
}

// decodeDocument accepts the wrapped {state, version} layout or a flat
// snapshot. A document carrying neither is an error so it is never
// overwritten by defaults.
func decodeDocument(data []byte) (*model.Snapshot, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	snap := model.EmptySnapshot()
	if raw, ok := keys["state"]; ok {
		var version int
		if v, ok := keys["version"]; ok {
			if err := json.Unmarshal(v, &version); err != nil {
				return nil, fmt.Errorf("state version: %w", err)
			}
		}
		if version > persistVersion {
			return nil, fmt.Errorf("unsupported state version %d", version)
		}
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("state: %w", err)
		}
		return &snap, nil
	}
	_, hasGoal := keys["goal"]
	_, hasFood := keys["food"]
	_, hasPresets := keys["presets"]
	if !hasGoal && !hasFood && !hasPresets {
		return nil, errors.New("document has neither state nor goal/food/presets")
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save writes through a temp file and rename so a crash never leaves a
// half-written document.
func (f *JSONFile) Save(ctx context.Context, snap model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(persistedState{State: &snap, Version: persistVersion})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".data-storage-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

func (f *JSONFile) Close() error {
	return nil
}
