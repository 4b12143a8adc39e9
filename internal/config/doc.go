// Package config defines the application configuration and its loading.
// Configuration is read once at process start from environment variables
// (and an optional config file), validated, and treated as immutable for
// the life of the process.
package config
