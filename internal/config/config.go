package config

import "time"

// Config is the root configuration for the feed daemon.
type Config struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Server   ServerConfig   `yaml:"server"`
}

// UpstreamConfig holds the external feed connection settings.
type UpstreamConfig struct {
	URL              string        `yaml:"url"`            // WebSocket address of the feed
	Channel          string        `yaml:"channel"`        // subscribe channel; also the dual-price event name
	UpdateChannel    string        `yaml:"update_channel"` // single-price event name
	ReconnectDelay   time.Duration `yaml:"reconnect_delay"`
	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
}

// GatewayConfig holds the downstream broadcast settings.
type GatewayConfig struct {
	Path              string        `yaml:"path"` // WebSocket endpoint path
	BroadcastInterval time.Duration `yaml:"broadcast_interval"`
	SendBufferSize    int           `yaml:"send_buffer_size"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}
