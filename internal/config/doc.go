// Package config loads, merges, and validates the configuration of the
// clipboard-sync client and of the development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig]; command-line
// flags are registered on a cobra flag set with [BindClientFlags] or
// [BindServerFlags].
package config
