package main

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-match3/internal/config"
)

// resolveLevel picks the level named by the global flags: --config wins, then
// --level, then the config search order. The difficulty preset is applied last.
func resolveLevel() (config.Level, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Level{}, err
	}

	var lvl config.Level
	switch {
	case flagConfig != "":
		lvl, err = config.LoadFile(flagConfig)
	case flagLevel != "":
		lvl, err = campaignLevel(flagLevel)
	default:
		lvl, err = config.Load("")
	}
	if err != nil {
		return config.Level{}, err
	}
	return preset.Apply(lvl), nil
}

// campaignLevel accepts a 1-based number or a level ID.
func campaignLevel(ref string) (config.Level, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		return config.CampaignLevel(n)
	}

	levels, err := config.Campaign()
	if err != nil {
		return config.Level{}, err
	}
	for _, l := range levels {
		if l.ID == ref {
			return l, nil
		}
	}
	return config.Level{}, fmt.Errorf("unknown campaign level %q", ref)
}
