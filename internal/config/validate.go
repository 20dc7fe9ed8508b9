package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Upstream.URL == "" {
		return errors.New("upstream.url is required")
	}
	if c.Upstream.Channel == "" {
		return errors.New("upstream.channel is required")
	}
	if c.Upstream.UpdateChannel == "" {
		return errors.New("upstream.update_channel is required")
	}
	if c.Upstream.ReconnectDelay <= 0 {
		return errors.New("upstream.reconnect_delay must be positive")
	}

	if c.Gateway.BroadcastInterval <= 0 {
		return errors.New("gateway.broadcast_interval must be positive")
	}
	if c.Gateway.SendBufferSize < 1 {
		return errors.New("gateway.send_buffer_size must be >= 1")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	return nil
}
