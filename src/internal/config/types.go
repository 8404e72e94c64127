package config

import "sort"

// DefaultAPIListenAddr is used by the server command when neither the
// configuration nor the command line provide an address.
const DefaultAPIListenAddr = "127.0.0.1:12121"

type Config struct {
	// DefaultListName is the list used when a caller does not name one explicitly.
	DefaultListName string `toml:"default_list_name" json:"default_list_name" validate:"required"`
	// General holds settings that are not related to a particular list.
	General *GeneralConfig `toml:"general,omitempty" json:"general,omitempty"`
	// Lists maps a list name to its provider-specific configuration. It may be empty but must be present.
	Lists map[string]*ListConfig `toml:"lists" json:"lists" validate:"required"`

	_absConfigFilePath string
	// _document is the parsed file as a generic table, including keys that are not modelled above.
	_document map[string]any
}

type GeneralConfig struct {
	// APIListenAddr is the address the read-only HTTP API listens on (host:port).
	APIListenAddr string `toml:"api_listen_addr,omitempty" json:"api_listen_addr,omitempty" validate:"hostport_or_empty"`
}

type ListConfig struct {
	// ID is the provider-defined list identifier, a string or an integer. Other keys of the table are ignored.
	ID any `toml:"id" json:"id" validate:"list_id"`
}

// GetConfigPath returns the absolute path of the file the configuration was loaded from.
func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}

// GetAPIListenAddr returns the configured API address or DefaultAPIListenAddr.
func (c *Config) GetAPIListenAddr() string {
	if c.General != nil && c.General.APIListenAddr != "" {
		return c.General.APIListenAddr
	}
	return DefaultAPIListenAddr
}

// ListNames returns the configured list names in lexical order.
func (c *Config) ListNames() []string {
	names := make([]string, 0, len(c.Lists))
	for name := range c.Lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
