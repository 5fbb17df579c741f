// Package prefs persists viewer preferences across runs: overlays, grid, and
// where the asset pipelines look for models and the fixture plan.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the prefs file location, relative to the process working directory.
const Path = "config/remodel.json"

// Prefs holds viewer preferences. In-room fixture declarations live in the
// YAML plan, not here.
type Prefs struct {
	ShowFPS            bool   `json:"show_fps"`
	GridVisible        bool   `json:"grid_visible"`
	AssetDir           string `json:"asset_dir,omitempty"`
	PlanPath           string `json:"plan_path,omitempty"`
	LoadTimeoutSeconds int    `json:"load_timeout_seconds,omitempty"`
}

// Default returns default preferences: overlays off, grid on, plan and assets
// under assets/, a 10 second load timeout.
func Default() Prefs {
	return Prefs{
		ShowFPS:            false,
		GridVisible:        true,
		AssetDir:           "assets",
		PlanPath:           "assets/fixtures/plan.yaml",
		LoadTimeoutSeconds: 10,
	}
}

// Load reads preferences from config/remodel.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/remodel.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
