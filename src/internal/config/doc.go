// Package config handles configuration file parsing and validation for newsletter-lists.
//
// The configuration is a TOML file naming the newsletter lists of an
// email-marketing provider and the list used when a caller does not ask for
// one explicitly:
//
//	default_list_name = "subscribers"
//
//	[general]
//	api_listen_addr = "127.0.0.1:12121"
//
//	[lists.subscribers]
//	id = "abc123"
//
//	[lists.partners]
//	id = 42
//
// List identifiers are opaque: strings and integers are accepted, other keys
// of a list table are ignored.
//
// Validation is split in two steps. ValidateConfig checks the structure of
// the file and collects every problem into ValidationErrors. ValidateDefaultList
// checks that default_list_name refers to a configured list; it is optional,
// because resolution reports a misconfigured default only when the default is
// actually requested.
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/newsletter-lists.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatal(err)
//	}
package config
