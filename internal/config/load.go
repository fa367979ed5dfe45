package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// localConfigName is the file lightquery picks up from the working directory.
const localConfigName = "lightquery.yaml"

// Load builds the lightquery configuration. Slot bounds, scene path and
// logging start from Default, are overlaid by the first YAML file found
// (the -config flag, else the search paths) and finally by explicit flags.
// The result is validated before it is returned.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// searchPaths lists the files Load considers when -config is absent, most
// specific first.
func searchPaths() []string {
	return []string{
		filepath.Join(".", localConfigName),
		filepath.Join(ConfigDir(), "config.yaml"),
	}
}

// findConfigFile returns the first existing search path, or "".
func findConfigFile() string {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir is where Save writes and where Load looks for the per-user
// config.yaml.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "LightScene")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "LightScene")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lightscene")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lightscene")
	}
}

// loadFromFile decodes path over cfg. Keys the file omits keep their
// current value.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}
