package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"laptimer/internal/core/model"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const (
	minRefreshMillis = 10
	maxRefreshMillis = 1000
)

type yamlSettings struct {
	RefreshIntervalMs int    `yaml:"refresh_interval_ms"`
	StartMode         int    `yaml:"start_mode"`
	HighlightLeaders  *bool  `yaml:"highlight_leaders,omitempty"`
	ShowDiff          *bool  `yaml:"show_diff,omitempty"`
	LogLevel          string `yaml:"log_level,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	settings := model.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return model.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	highlight := settings.HighlightLeaders
	showDiff := settings.ShowDiff
	fileData := yamlSettings{
		RefreshIntervalMs: int(settings.RefreshInterval / time.Millisecond),
		StartMode:         settings.StartMode,
		HighlightLeaders:  &highlight,
		ShowDiff:          &showDiff,
		LogLevel:          settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// applyYamlSettings overrides settings with every valid value from the file.
// Out-of-range values are left zero so the merge keeps the defaults.
func applyYamlSettings(settings *model.Settings, fileData yamlSettings) error {
	var override model.Settings
	if fileData.RefreshIntervalMs >= minRefreshMillis && fileData.RefreshIntervalMs <= maxRefreshMillis {
		override.RefreshInterval = time.Duration(fileData.RefreshIntervalMs) * time.Millisecond
	}
	switch fileData.StartMode {
	case 1, 2, 4:
		override.StartMode = fileData.StartMode
	}
	override.LogLevel = fileData.LogLevel

	if err := mergo.Merge(settings, override, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge settings: %w", err)
	}

	// Booleans are pointers in the file so an explicit false still overrides.
	if fileData.HighlightLeaders != nil {
		settings.HighlightLeaders = *fileData.HighlightLeaders
	}
	if fileData.ShowDiff != nil {
		settings.ShowDiff = *fileData.ShowDiff
	}
	return nil
}
