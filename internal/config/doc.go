// Package config defines the application's configuration structure and
// loading logic. Configuration comes from environment variables (with
// the TASKER_ prefix) and an optional config.yaml file, with
// environment variables taking precedence. Loaded values are validated
// before the application starts serving.
package config
