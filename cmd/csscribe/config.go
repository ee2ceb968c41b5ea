package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/csscribe"
)

const defaultConfigFile = ".csscribe.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (only explicitly set flags override earlier providers)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSCRIBE_* prefix)
	if err := k.Load(env.Provider("CSSCRIBE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. A double underscore
// separates levels and a single underscore becomes a dash:
//
//	CSSCRIBE_STORAGE_DIR        -> storage-dir
//	CSSCRIBE_TRANSFORM__API_KEY -> transform.api-key
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "CSSCRIBE_"))
	parts := strings.Split(s, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", "-")
	}
	return strings.Join(parts, ".")
}

// storageDir returns the configured storage directory, defaulting to
// <user config dir>/csscribe.
func storageDir() (string, error) {
	if dir := getStringWithFallback("storage-dir", "storage-dir", ""); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve storage dir: %w", err)
	}
	return filepath.Join(base, "csscribe"), nil
}

// buildTransformSettings constructs the dispatcher settings from koanf state.
// OPENAI_API_KEY is the last fallback for the credential.
func buildTransformSettings() (csscribe.TransformSettings, error) {
	settings := csscribe.TransformSettings{
		APIKey:  getStringWithFallback("api-key", "transform.api-key", os.Getenv("OPENAI_API_KEY")),
		Prompt:  getStringWithFallback("prompt", "transform.prompt", ""),
		BaseURL: getStringWithFallback("base-url", "transform.base-url", ""),
	}

	if path := getStringWithFallback("prompt-file", "transform.prompt-file", ""); path != "" {
		// #nosec G304 - path comes from trusted configuration
		data, err := os.ReadFile(path)
		if err != nil {
			return settings, fmt.Errorf("reading prompt file: %w", err)
		}
		settings.Prompt = string(data)
	}

	return settings, nil
}

// importPaths returns the glob patterns for "csscribe import".
func importPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if paths := k.Strings("import.paths"); len(paths) > 0 {
		return paths
	}
	return []string{"**/*.css"}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
