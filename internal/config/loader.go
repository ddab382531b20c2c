package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// levelFileName is looked up in the user and local config directories.
const levelFileName = "level.json"

// Load loads the level to play when no campaign level is chosen.
// Search order: customPath -> ~/.match3/configs/level.json -> ./configs/level.json -> embedded default.
// A file that exists but does not validate is an error, not a reason to fall
// through to the next location.
func Load(customPath string) (Level, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	candidates := []string{filepath.Join("configs", levelFileName)}
	if userCfgPath := userConfigPath(levelFileName); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, p := range candidates {
		lvl, err := LoadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return lvl, err
	}

	return Default()
}

// LoadFile reads and validates one level file. The level ID is the file name
// without its extension.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("invalid level %s: %w", path, err)
	}
	lvl.ID = levelID(filepath.Base(path))
	lvl.Source = path
	return lvl, nil
}

// LoadDir recursively loads every level file under root, sorted by ID.
// The first invalid file aborts the walk.
func LoadDir(root string) ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(path) {
			return nil
		}
		lvl, err := LoadFile(path)
		if err != nil {
			return err
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func levelID(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
