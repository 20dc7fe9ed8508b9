// Package config loads and validates the feed daemon configuration.
//
// Configuration is a YAML file with ${VAR} environment expansion, so
// deployment-specific values (upstream address, channel names) come from
// the environment. The upstream address and both channel names are
// required; timing values have defaults.
package config
