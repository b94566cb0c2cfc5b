// Package config provides configuration loading, merging, and validation
// facilities for the journal.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (a .env file is loaded into the environment first)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
