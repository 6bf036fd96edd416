// Package config manages persistent CLI settings in ~/.agentpack/config.yaml,
// backed by Viper with AGENTPACK_* environment overrides.
package config
