package config

import "time"

// Default values for optional configuration fields. The upstream address and
// channel names deliberately have no defaults.
const (
	DefaultReconnectDelay    = 2 * time.Second
	DefaultHandshakeTimeout  = 10 * time.Second
	DefaultUpstreamWriteWait = 5 * time.Second

	DefaultGatewayPath       = "/ws/market"
	DefaultBroadcastInterval = 1 * time.Second
	DefaultSendBufferSize    = 64
	DefaultGatewayWriteWait  = 5 * time.Second

	DefaultServerPort = 8080
)

func (c *Config) applyDefaults() {
	if c.Upstream.ReconnectDelay == 0 {
		c.Upstream.ReconnectDelay = DefaultReconnectDelay
	}
	if c.Upstream.HandshakeTimeout == 0 {
		c.Upstream.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.Upstream.WriteTimeout == 0 {
		c.Upstream.WriteTimeout = DefaultUpstreamWriteWait
	}

	if c.Gateway.Path == "" {
		c.Gateway.Path = DefaultGatewayPath
	}
	if c.Gateway.BroadcastInterval == 0 {
		c.Gateway.BroadcastInterval = DefaultBroadcastInterval
	}
	if c.Gateway.SendBufferSize == 0 {
		c.Gateway.SendBufferSize = DefaultSendBufferSize
	}
	if c.Gateway.WriteTimeout == 0 {
		c.Gateway.WriteTimeout = DefaultGatewayWriteWait
	}

	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
}
