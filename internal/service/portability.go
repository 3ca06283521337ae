package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

const ExportFormatVersion = 1

type ExportData struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Goal       int               `json:"goal"`
	Food       []model.FoodEntry `json:"food"`
	Presets    []model.Preset    `json:"presets"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Mode      ImportMode `json:"mode"`
	Goal      int        `json:"goal"`
	Inserted  int        `json:"inserted"`
	Skipped   int        `json:"skipped"`
	Conflicts int        `json:"conflicts"`
	Invalid   int        `json:"invalid"`
	DryRun    bool       `json:"dry_run,omitempty"`
	Warnings  []string   `json:"warnings,omitempty"`
}

func ExportSnapshot(snap model.Snapshot, now time.Time) *ExportData {
	snap = snap.Clone()
	return &ExportData{
		Version:    ExportFormatVersion,
		ExportedAt: now.UTC(),
		Goal:       snap.Goal,
		Food:       snap.Food,
		Presets:    snap.Presets,
	}
}

func WriteExportJSON(w io.Writer, data *ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

func ReadExportJSON(r io.Reader) (*ExportData, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode import: %w", err)
	}
	if data.Version > ExportFormatVersion {
		return nil, fmt.Errorf("unsupported export version %d", data.Version)
	}
	return &data, nil
}

// WriteEntriesCSV writes the food log as date,time,type,calories rows in the
// given location.
func WriteEntriesCSV(w io.Writer, food []model.FoodEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "time", "type", "calories"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range food {
		at := e.Date.In(loc)
		row := []string{at.Format(dayLayout), at.Format("15:04"), e.Type, strconv.Itoa(e.Calories)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ImportSnapshot applies exported data to the store as one mutation. Invalid
// records are dropped with a warning. Merge appends new entries and presets
// whose ID is not yet known; replace swaps the whole snapshot.
func ImportSnapshot(st *store.Store, data *ExportData, opts ImportOptions) (ImportReport, error) {
	if data == nil {
		return ImportReport{}, fmt.Errorf("import data is required")
	}
	mode := normalizeImportMode(opts.Mode)
	report := ImportReport{Mode: mode, DryRun: opts.DryRun}

	goal := data.Goal
	if goal <= 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("goal %d is not positive, using %d", goal, model.DefaultGoal))
		goal = model.DefaultGoal
	}
	food := make([]model.FoodEntry, 0, len(data.Food))
	for i, e := range data.Food {
		if problem := entryProblem(e); problem != "" {
			report.Invalid++
			report.Warnings = append(report.Warnings, fmt.Sprintf("food[%d]: %s", i, problem))
			continue
		}
		food = append(food, e)
	}
	presets := make([]model.Preset, 0, len(data.Presets))
	seen := make(map[string]struct{}, len(data.Presets))
	for i, p := range data.Presets {
		if problem := presetProblem(p); problem != "" {
			report.Invalid++
			report.Warnings = append(report.Warnings, fmt.Sprintf("presets[%d]: %s", i, problem))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			report.Invalid++
			report.Warnings = append(report.Warnings, fmt.Sprintf("presets[%d]: duplicate id %s", i, p.ID))
			continue
		}
		seen[p.ID] = struct{}{}
		presets = append(presets, p)
	}

	current := st.Snapshot()
	switch mode {
	case ImportModeFail:
		if len(current.Food) > 0 || len(current.Presets) > 0 {
			return report, fmt.Errorf("store already has data; use --mode merge or --mode replace")
		}
		fallthrough
	case ImportModeReplace:
		report.Inserted = len(food) + len(presets)
	case ImportModeMerge:
		food, presets = mergeImport(current, food, presets, &report)
	}
	report.Goal = goal
	if opts.DryRun {
		return report, nil
	}

	st.Replace(model.Snapshot{Goal: goal, Food: food, Presets: presets})
	return report, nil
}

func mergeImport(current model.Snapshot, food []model.FoodEntry, presets []model.Preset, report *ImportReport) ([]model.FoodEntry, []model.Preset) {
	type entryKey struct {
		at       int64
		typ      string
		calories int
	}
	known := make(map[entryKey]struct{}, len(current.Food))
	for _, e := range current.Food {
		known[entryKey{e.Date.UnixMilli(), e.Type, e.Calories}] = struct{}{}
	}
	mergedFood := current.Food
	for _, e := range food {
		k := entryKey{e.Date.UnixMilli(), e.Type, e.Calories}
		if _, ok := known[k]; ok {
			report.Skipped++
			continue
		}
		known[k] = struct{}{}
		mergedFood = append(mergedFood, e)
		report.Inserted++
	}

	byID := make(map[string]model.Preset, len(current.Presets))
	for _, p := range current.Presets {
		byID[p.ID] = p
	}
	mergedPresets := current.Presets
	for _, p := range presets {
		if existing, ok := byID[p.ID]; ok {
			if existing != p {
				report.Conflicts++
				report.Warnings = append(report.Warnings, fmt.Sprintf("preset %s differs from the stored one, keeping stored", p.ID))
			} else {
				report.Skipped++
			}
			continue
		}
		mergedPresets = append(mergedPresets, p)
		report.Inserted++
	}
	return mergedFood, mergedPresets
}

func normalizeImportMode(mode ImportMode) ImportMode {
	switch ImportMode(strings.ToLower(strings.TrimSpace(string(mode)))) {
	case ImportModeFail:
		return ImportModeFail
	case ImportModeReplace:
		return ImportModeReplace
	default:
		return ImportModeMerge
	}
}

func entryProblem(e model.FoodEntry) string {
	switch {
	case e.Date.IsZero():
		return "missing date"
	case strings.TrimSpace(e.Type) == "":
		return "missing type"
	case e.Calories < 0:
		return "negative calories"
	}
	return ""
}

func presetProblem(p model.Preset) string {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return "missing id"
	case strings.TrimSpace(p.Label) == "":
		return "missing label"
	case math.IsNaN(p.Calories) || math.IsInf(p.Calories, 0) || p.Calories <= 0:
		return "calories must be > 0"
	case !p.ValueType.Valid():
		return fmt.Sprintf("unknown value type %q", p.ValueType)
	}
	return ""
}
