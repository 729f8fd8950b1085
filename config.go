package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 320
	minHeight     = 240
)

// Sort method constants
const (
	SortLexicographic = 0 // Plain string sort (deterministic default)
	SortNatural       = 1 // Natural sort order (e.g., file1, file2, file10)
	SortEntryOrder    = 2 // Maintain directory listing order (no sort)
)

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth  int                 `json:"window_width"`
	WindowHeight int                 `json:"window_height"`
	Fullscreen   bool                `json:"fullscreen"`
	ShowInfo     bool                `json:"show_info"`
	SortMethod   int                 `json:"sort_method"`
	CacheSize    int                 `json:"cache_size"`
	Keybindings  map[string][]string `json:"keybindings"`
}

func defaultConfig() Config {
	return Config{
		WindowWidth:  defaultWidth,
		WindowHeight: defaultHeight,
		Fullscreen:   false,
		ShowInfo:     false,
		SortMethod:   SortLexicographic,
		CacheSize:    16,
		Keybindings:  GetDefaultKeybindings(),
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "iv.json"
	}
	return filepath.Join(homeDir, ".iv.json")
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()
	result := ConfigLoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("invalid config file, using defaults")
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate sort method
	if config.SortMethod < SortLexicographic || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortLexicographic
	}

	// Validate cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		config.CacheSize = 16
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = GetDefaultKeybindings()
	} else {
		defaults := GetDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Warn().Err(err).Msg("invalid keybindings, using defaults")
			config.Keybindings = GetDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	result.Config = config
	return result
}

func saveConfig(config Config) {
	saveConfigToPath(config, getConfigPath())
}

func saveConfigToPath(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Warn().Int("width", config.WindowWidth).Int("height", config.WindowHeight).
			Msg("not saving config with invalid window size")
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal config")
		return
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		log.Error().Err(err).Str("path", configPath).Msg("failed to save config")
	}
}
