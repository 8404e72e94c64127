// Package service holds the application state shared by the CLI commands and
// the HTTP API.
//
// ListService loads the configuration, builds the newsletter.Collection from
// it and swaps in a new collection on Reload. Each collection is immutable;
// readers take the current one and resolve against it without locking.
package service
