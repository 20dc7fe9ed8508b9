package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
upstream:
  url: wss://feed.example.com/socket.io
  channel: kapalicarsi
  update_channel: update
  reconnect_delay: 3s
gateway:
  path: /ws/market
  broadcast_interval: 500ms
server:
  port: 9000
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Upstream.URL != "wss://feed.example.com/socket.io" {
		t.Errorf("Upstream.URL = %q, want %q", cfg.Upstream.URL, "wss://feed.example.com/socket.io")
	}
	if cfg.Upstream.Channel != "kapalicarsi" {
		t.Errorf("Upstream.Channel = %q, want %q", cfg.Upstream.Channel, "kapalicarsi")
	}
	if cfg.Upstream.ReconnectDelay != 3*time.Second {
		t.Errorf("Upstream.ReconnectDelay = %v, want %v", cfg.Upstream.ReconnectDelay, 3*time.Second)
	}
	if cfg.Gateway.BroadcastInterval != 500*time.Millisecond {
		t.Errorf("Gateway.BroadcastInterval = %v, want %v", cfg.Gateway.BroadcastInterval, 500*time.Millisecond)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9000)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_SOCKET_URL", "wss://feed.example.com/socket.io")
	t.Setenv("TEST_SOCKET_CHANNEL", "kapalicarsi")

	yaml := `
upstream:
  url: ${TEST_SOCKET_URL}
  channel: ${TEST_SOCKET_CHANNEL}
  update_channel: update
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Upstream.URL != "wss://feed.example.com/socket.io" {
		t.Errorf("Upstream.URL = %q, want %q", cfg.Upstream.URL, "wss://feed.example.com/socket.io")
	}
	if cfg.Upstream.Channel != "kapalicarsi" {
		t.Errorf("Upstream.Channel = %q, want %q", cfg.Upstream.Channel, "kapalicarsi")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
upstream:
  url: wss://feed.example.com/socket.io
  channel: kapalicarsi
  update_channel: update
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Upstream.ReconnectDelay != DefaultReconnectDelay {
		t.Errorf("Upstream.ReconnectDelay = %v, want default %v", cfg.Upstream.ReconnectDelay, DefaultReconnectDelay)
	}
	if cfg.Upstream.HandshakeTimeout != DefaultHandshakeTimeout {
		t.Errorf("Upstream.HandshakeTimeout = %v, want default %v", cfg.Upstream.HandshakeTimeout, DefaultHandshakeTimeout)
	}
	if cfg.Gateway.Path != DefaultGatewayPath {
		t.Errorf("Gateway.Path = %q, want default %q", cfg.Gateway.Path, DefaultGatewayPath)
	}
	if cfg.Gateway.BroadcastInterval != DefaultBroadcastInterval {
		t.Errorf("Gateway.BroadcastInterval = %v, want default %v", cfg.Gateway.BroadcastInterval, DefaultBroadcastInterval)
	}
	if cfg.Gateway.SendBufferSize != DefaultSendBufferSize {
		t.Errorf("Gateway.SendBufferSize = %d, want default %d", cfg.Gateway.SendBufferSize, DefaultSendBufferSize)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, DefaultServerPort)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Upstream: UpstreamConfig{
				URL:            "wss://feed.example.com/socket.io",
				Channel:        "kapalicarsi",
				UpdateChannel:  "update",
				ReconnectDelay: 2 * time.Second,
			},
			Gateway: GatewayConfig{
				BroadcastInterval: time.Second,
				SendBufferSize:    64,
			},
			Server: ServerConfig{Port: 8080},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Upstream.URL = "" },
			wantErr: "upstream.url is required",
		},
		{
			name:    "missing channel",
			mutate:  func(c *Config) { c.Upstream.Channel = "" },
			wantErr: "upstream.channel is required",
		},
		{
			name:    "missing update channel",
			mutate:  func(c *Config) { c.Upstream.UpdateChannel = "" },
			wantErr: "upstream.update_channel is required",
		},
		{
			name:    "negative reconnect delay",
			mutate:  func(c *Config) { c.Upstream.ReconnectDelay = -time.Second },
			wantErr: "upstream.reconnect_delay must be positive",
		},
		{
			name:    "zero broadcast interval",
			mutate:  func(c *Config) { c.Gateway.BroadcastInterval = 0 },
			wantErr: "gateway.broadcast_interval must be positive",
		},
		{
			name:    "zero send buffer",
			mutate:  func(c *Config) { c.Gateway.SendBufferSize = 0 },
			wantErr: "gateway.send_buffer_size must be >= 1",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port must be between 1 and 65535, got 70000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
