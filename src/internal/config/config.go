package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/maksimkurb/newsletter-lists/src/internal/errors"
	"github.com/maksimkurb/newsletter-lists/src/internal/log"
)

// LoadConfig reads and decodes the TOML configuration file at configPath.
// The result is not validated; see ValidateConfig and ValidateDefaultList.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, apperrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), nil)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read config file", err)
	}

	config, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Configured newsletter lists: %d (default: %q)", len(config.Lists), config.DefaultListName)

	return config, nil
}

// ParseConfig decodes a TOML document into a Config.
func ParseConfig(content []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, apperrors.NewConfigError("failed to parse config file", err)
	}

	// Keep the whole document so keys that Config does not model survive a write
	if err := toml.Unmarshal(content, &config._document); err != nil {
		return nil, apperrors.NewConfigError("failed to parse config file", err)
	}

	return &config, nil
}

// SerializeConfig encodes the configuration back to TOML. Keys of the parsed
// document that Config does not model, such as provider-specific list
// settings, are written back unchanged.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c.document()); err != nil {
		return nil, err
	}
	return &buf, nil
}

// document merges the modelled fields into a copy of the parsed document.
func (c *Config) document() map[string]any {
	doc := maps.Clone(c._document)
	if doc == nil {
		doc = make(map[string]any)
	}

	doc["default_list_name"] = c.DefaultListName

	general := cloneTable(doc["general"])
	if c.General != nil && c.General.APIListenAddr != "" {
		general["api_listen_addr"] = c.General.APIListenAddr
	} else {
		delete(general, "api_listen_addr")
	}
	if len(general) > 0 {
		doc["general"] = general
	} else {
		delete(doc, "general")
	}

	parsedLists, _ := doc["lists"].(map[string]any)
	lists := make(map[string]any, len(c.Lists))
	for name, list := range c.Lists {
		table := cloneTable(parsedLists[name])
		if list != nil && list.ID != nil {
			table["id"] = list.ID
		} else {
			delete(table, "id")
		}
		lists[name] = table
	}
	doc["lists"] = lists

	return doc
}

func cloneTable(v any) map[string]any {
	if table, ok := v.(map[string]any); ok {
		return maps.Clone(table)
	}
	return make(map[string]any)
}

// WriteConfig writes the configuration to the file it was loaded from.
func (c *Config) WriteConfig() error {
	if c._absConfigFilePath == "" {
		return apperrors.NewConfigError("configuration was not loaded from a file", nil)
	}
	config, err := c.SerializeConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c._absConfigFilePath, config.Bytes(), 0644); err != nil {
		return apperrors.NewConfigError("failed to write config file", err)
	}
	return nil
}
