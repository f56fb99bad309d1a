// Package config loads resolver defaults from an optional YAML file
// and validates server addresses. Precedence is flags over file over
// built-in defaults; the file is read once at startup.
package config
