// Package utils provides general-purpose helper utilities used across
// different parts of the application: JSON response writing, the shared
// resty HTTP client and trace identifier generation.
package utils
