package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "jekafood"
	dbFileName     = "jekafood.db"
	jsonFileName   = "data-storage.json"
	configFileName = "config.yaml"
	backupDirName  = "backups"
)

func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultDBPath() (string, error) {
	return inDataDir(dbFileName)
}

func DefaultJSONPath() (string, error) {
	return inDataDir(jsonFileName)
}

func DefaultConfigPath() (string, error) {
	return inDataDir(configFileName)
}

// BackupDir is where backups of the data file at dataPath land when no
// output path is given.
func BackupDir(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), backupDirName)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

func inDataDir(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
