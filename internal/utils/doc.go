// Package utils provides general-purpose helpers used across the client:
// the resty based HTTP client, keyed name hashing, API key inspection and
// UUID generation.
package utils
