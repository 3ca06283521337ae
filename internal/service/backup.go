package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/HullPerse/jekafood/internal/app"
	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

const backupExt = ".json"

// BackupInfo describes one backup document. Problem is set when the file
// could not be read back.
type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	Goal      int       `json:"goal"`
	Entries   int       `json:"entries"`
	Presets   int       `json:"presets"`
	Problem   string    `json:"problem,omitempty"`
}

func BackupFileName(now time.Time) string {
	return "jekafood-" + now.UTC().Format("20060102-150405") + backupExt
}

// CreateBackup writes snap as an export document and records its SHA-256 in
// a .sha256 file next to it. Backups do not depend on the storage backend.
func CreateBackup(snap model.Snapshot, path string, now time.Time) (BackupInfo, error) {
	if strings.TrimSpace(path) == "" {
		return BackupInfo{}, fmt.Errorf("backup path is required")
	}
	if err := app.EnsureDir(path); err != nil {
		return BackupInfo{}, err
	}
	data := ExportSnapshot(snap, now)
	var buf bytes.Buffer
	if err := WriteExportJSON(&buf, data); err != nil {
		return BackupInfo{}, err
	}
	checksum := checksumOf(buf.Bytes())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	if err := os.WriteFile(path+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	return backupInfo(path, checksum, data), nil
}

// ReadBackup decodes a backup, checking it against its .sha256 file when
// one exists.
func ReadBackup(path string) (*ExportData, BackupInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, BackupInfo{Path: path}, fmt.Errorf("read backup: %w", err)
	}
	info := BackupInfo{Path: path, Checksum: checksumOf(raw)}
	if expected, err := os.ReadFile(path + ".sha256"); err == nil {
		if strings.TrimSpace(string(expected)) != info.Checksum {
			return nil, info, fmt.Errorf("backup %s: checksum mismatch", filepath.Base(path))
		}
	}
	data, err := ReadExportJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, info, fmt.Errorf("backup %s: %w", filepath.Base(path), err)
	}
	return data, backupInfo(path, info.Checksum, data), nil
}

// RestoreBackup replaces the store contents with a backup. A store that
// already holds food or presets is only overwritten with force.
func RestoreBackup(st *store.Store, path string, force bool) (ImportReport, BackupInfo, error) {
	data, info, err := ReadBackup(path)
	if err != nil {
		return ImportReport{}, info, err
	}
	if !force {
		snap := st.Snapshot()
		if len(snap.Food) > 0 || len(snap.Presets) > 0 {
			return ImportReport{}, info, fmt.Errorf("store already has data; use --force to overwrite")
		}
	}
	report, err := ImportSnapshot(st, data, ImportOptions{Mode: ImportModeReplace})
	return report, info, err
}

// ListBackups reads every backup in dir, newest first. A missing dir has no
// backups.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != backupExt {
			continue
		}
		_, info, err := ReadBackup(filepath.Join(dir, f.Name()))
		if err != nil {
			info.Problem = err.Error()
		}
		out = append(out, info)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func backupInfo(path, checksum string, data *ExportData) BackupInfo {
	return BackupInfo{
		Path:      path,
		Checksum:  checksum,
		CreatedAt: data.ExportedAt,
		Goal:      data.Goal,
		Entries:   len(data.Food),
		Presets:   len(data.Presets),
	}
}

func checksumOf(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
