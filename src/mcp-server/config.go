// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/H0llyW00dzZ/goutils/src/configfile"
	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
	x509pki "github.com/H0llyW00dzZ/goutils/src/x509/pki"
)

// ConfigEnv names the environment variable holding the configuration file
// path when none is given on the command line.
const ConfigEnv = "GOUTILS_MCP_CONFIG"

// Config represents the MCP server configuration structure.
//
// The configuration is read with [configfile.Load], so JSON, JSONC and YAML
// files are accepted. Missing values keep their defaults.
type Config struct {
	// Defaults: Default encoding and key settings used when a tool call omits them
	Defaults struct {
		// Indent: Spaces per level for normalized JSON; 0 is compact
		Indent int `json:"indent"`
		// ExcludeNull: Omit null fields when normalizing
		ExcludeNull bool `json:"excludeNull"`
		// NullIfEmpty: Collapse empty objects and lists to null when normalizing
		NullIfEmpty bool `json:"nullIfEmpty"`
		// KeyType: Key algorithm for generate_csr ("rsa" or "ec")
		KeyType string `json:"keyType"`
		// KeySize: Key size in bits for generate_csr
		KeySize int `json:"keySize"`
	} `json:"defaults"`

	// SchemaFile: Schema document used by the JSON tools when a call carries none.
	// Relative paths are resolved against the configuration file's directory.
	SchemaFile string `json:"schemaFile"`

	// Log: Server-side logging to stderr
	Log struct {
		// Enabled: Write JSON log lines to stderr
		Enabled bool `json:"enabled"`
	} `json:"log"`

	schemas *jsonobject.Registry
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() *Config {
	config := &Config{}
	config.Defaults.KeyType = string(x509pki.RSA)
	config.Defaults.KeySize = defaultKeySize(x509pki.RSA)
	return config
}

// Schemas returns the registry loaded from SchemaFile, or nil.
func (c *Config) Schemas() *jsonobject.Registry { return c.schemas }

// loadConfig loads the server configuration.
//
// Parameters:
//   - configPath: Path to the configuration file. When empty, the path is
//     taken from the [ConfigEnv] environment variable; when that is empty
//     too, the defaults are returned.
//
// Returns:
//   - *Config: The loaded configuration with defaults applied
//   - error: Read, parse or validation errors
func loadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
	if configPath == "" {
		return defaultConfig(), nil
	}

	ns, err := configfile.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	// Unset keys stay zero so validate derives them from what the file sets.
	config := &Config{}
	if err := ns.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	if config.SchemaFile != "" {
		path := config.SchemaFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(configPath), path)
		}
		if config.schemas, err = jsonobject.LoadSchemas(path); err != nil {
			return nil, fmt.Errorf("failed to load schema file: %w", err)
		}
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Defaults.Indent < 0 {
		return fmt.Errorf("defaults.indent must not be negative, got %d", c.Defaults.Indent)
	}
	if c.Defaults.KeyType == "" {
		c.Defaults.KeyType = string(x509pki.RSA)
	}
	keyType, err := x509pki.ParseKeyType(c.Defaults.KeyType)
	if err != nil {
		return err
	}
	c.Defaults.KeyType = string(keyType)
	if c.Defaults.KeySize <= 0 {
		c.Defaults.KeySize = defaultKeySize(keyType)
	}
	return nil
}

func defaultKeySize(keyType x509pki.KeyType) int {
	if keyType == x509pki.EC {
		return 256
	}
	return 2048
}
