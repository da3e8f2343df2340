package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHeartJump loads the game tuning.
// Search order: customPath -> ~/.heartjump/configs/heartjump.yaml -> ./configs/heartjump.yaml -> embedded default
func LoadHeartJump(customPath string) (HeartJumpConfig, error) {
	cfg, err := load("heartjump", customPath, DefaultHeartJumpConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLauncher loads the launcher settings.
// Search order: customPath -> ~/.heartjump/configs/launcher.yaml -> ./configs/launcher.yaml -> embedded default
func LoadLauncher(customPath string) (LauncherConfig, error) {
	cfg, err := load("launcher", customPath, DefaultLauncherConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves a config by name. The chosen file is decoded on top of the
// hard-coded defaults, so it only needs the keys it overrides. A file that
// exists but cannot be read or parsed is an error, never a silent fallback.
func load[T any](name, customPath string, defaults func() T) (T, error) {
	cfg := defaults()

	path := findConfig(name, customPath)
	if path == "" {
		// Use embedded default YAML
		if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
			return defaults(), nil // Fallback to hardcoded if embed fails
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// findConfig returns the file a config is loaded from: customPath when set,
// otherwise the first existing file among the user config directory and the
// local configs directory. It returns "" when only the embedded default applies.
func findConfig(name, customPath string) string {
	if customPath != "" {
		return customPath
	}

	candidates := []string{UserConfigPath(name + ".yaml"), filepath.Join("configs", name+".yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// WatchPath returns the file to watch for changes to a config: the file it
// is currently loaded from, or the user config file when only the embedded
// default applies.
func WatchPath(name, customPath string) string {
	if path := findConfig(name, customPath); path != "" {
		return path
	}
	return UserConfigPath(name + ".yaml")
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".heartjump", "configs", filename)
}
