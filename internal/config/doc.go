// Package config provides configuration loading, merging, and validation
// facilities for the quiz API.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. .env file and environment variables
//  3. Command-line flags
//
// The entry points are [GetStructuredConfig] for the long-running server and
// [GetEnvConfig] for the serverless handler.
package config
