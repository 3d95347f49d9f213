// Package config provides configuration loading, merging, and validation
// facilities for the web front and the noticectl CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables, after the optional dotenv file is loaded
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the web server and
// [GetCLIConfig] for the command line client.
package config
