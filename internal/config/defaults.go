package config

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed defaults/level.json
var defaultLevelJSON []byte

//go:embed levels/*.json
var campaignFS embed.FS

// embeddedSource marks levels that were compiled into the binary.
const embeddedSource = "embedded"

// Default returns the embedded quick-game level.
func Default() (Level, error) {
	lvl, err := Parse(defaultLevelJSON)
	if err != nil {
		return Level{}, fmt.Errorf("embedded default level: %w", err)
	}
	lvl.ID = "default"
	lvl.Source = embeddedSource
	return lvl, nil
}

// Campaign returns the embedded level pack in play order.
func Campaign() ([]Level, error) {
	names, err := fs.Glob(campaignFS, "levels/*.json")
	if err != nil {
		return nil, fmt.Errorf("listing campaign levels: %w", err)
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		data, err := campaignFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading campaign level %s: %w", name, err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("campaign level %s: %w", name, err)
		}
		lvl.ID = levelID(path.Base(name))
		lvl.Source = embeddedSource
		levels = append(levels, lvl)
	}
	return levels, nil
}

// CampaignLevel returns campaign level n, counting from 1.
func CampaignLevel(n int) (Level, error) {
	levels, err := Campaign()
	if err != nil {
		return Level{}, err
	}
	if n < 1 || n > len(levels) {
		return Level{}, fmt.Errorf("level %d out of range 1..%d", n, len(levels))
	}
	return levels[n-1], nil
}
