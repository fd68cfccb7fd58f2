// Package config provides configuration loading, merging, and validation
// facilities for the offerdeck server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The returned configuration
// is initialized once at process start and treated as read-only thereafter;
// components receive the sub-configuration they need at construction time
// rather than reading globals.
package config
