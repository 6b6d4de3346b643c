package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no config file was found on disk.
const SourceEmbedded = "embedded default"

// Load loads the Pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (PongConfig, string, error) {
	var candidates []string
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "pong.yaml"))

	return load(customPath, candidates)
}

// load implements Load over an explicit candidate list.
func load(customPath string, candidates []string) (PongConfig, string, error) {
	// Try custom path first; a broken custom file is an error, not a fallback
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try well-known locations, skipping anything unreadable
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			continue
		}
		return cfg, path, cfg.Validate()
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// loadFile reads and parses a single config file.
func loadFile(path string) (PongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPongConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultPongConfig, so partial documents are allowed.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPongConfig(), err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML, e.g. for `pong config`.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}
