// Package config loads cbz2pdf YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Config holds all configuration for archive conversion.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
	Convert ConvertConfig `yaml:"convert"`
	Tools   ToolsConfig   `yaml:"tools"`
}

// InputConfig defines where batch discovery searches for archives.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Search root (default: current directory)
}

// OutputConfig defines where produced PDFs go.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Destination directory (empty = current directory)
}

// BatchConfig defines batch driver behavior.
type BatchConfig struct {
	Workers   int  `yaml:"workers"`   // Concurrency cap (0 = one per CPU)
	Recursive bool `yaml:"recursive"` // Search subdirectories during discovery
}

// ConvertConfig defines per-job behavior.
type ConvertConfig struct {
	Force      bool `yaml:"force"`      // Overwrite existing destinations
	NoValidate bool `yaml:"noValidate"` // Skip structural validation of produced PDFs
}

// ToolsConfig overrides the external tool binaries.
type ToolsConfig struct {
	Unzip   string `yaml:"unzip"`
	Img2pdf string `yaml:"img2pdf"`
}

// Default returns the configuration used when no file is given: search and
// write in the current directory, auto workers, standard tool names.
func Default() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: "."},
		Output: OutputConfig{DefaultDir: ""},
		Batch:  BatchConfig{Workers: 0, Recursive: false},
		Tools:  ToolsConfig{Unzip: "unzip", Img2pdf: "img2pdf"},
	}
}

// Validate checks value ranges and required fields.
// Called automatically by Load, but available for consumers who construct
// Config manually.
func (c *Config) Validate() error {
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalidValue, c.Batch.Workers)
	}
	if c.Tools.Unzip == "" {
		return fmt.Errorf("%w: tools.unzip cannot be empty", ErrInvalidValue)
	}
	if c.Tools.Img2pdf == "" {
		return fmt.Errorf("%w: tools.img2pdf cannot be empty", ErrInvalidValue)
	}
	return nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
// Fields absent from the file keep their defaults.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/cbz2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "cbz2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
