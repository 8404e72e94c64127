// Package commands implements CLI command handlers for newsletter-lists.
//
// Each command implements the Runner interface:
//   - Init(): parse arguments and load the configuration
//   - Run(): execute the command, writing results to AppContext.Stdout
//   - Name(): return the command name used for dispatch
//
// # Available Commands
//
//   - resolve: print the list a name resolves to (no name: the default list)
//   - lists: print every configured list
//   - self-check: validate the configuration, including the default list
//   - set-default: change default_list_name in the configuration file
//   - server: serve the read-only HTTP API and reload on configuration changes
//
// Output of resolve and lists can be shaped with -format, a template with
// {{name}}, {{id}} and {{default}} placeholders:
//
//	newsletter-lists resolve -format '{{id}}' partners
package commands
