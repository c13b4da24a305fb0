// Package config loads runtime configuration from the environment. Values
// come from process environment variables, optionally seeded from a .env file
// via godotenv; every setting has a usable default so an empty environment
// still yields a working configuration.
package config
