// Package config defines the application configuration structure and
// loading. Values come from environment variables (prefix WEB420_) and
// an optional config.yaml, with environment taking precedence.
package config
