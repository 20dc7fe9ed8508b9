// Package service wires the market feed pipeline together: upstream client →
// store → gateway. One Service instance is constructed at process start and
// handed to the HTTP layer and the shutdown hook; there is no hidden global.
package service

import (
	"log/slog"
	"sync"

	"github.com/Osman-ordu/ceptecash-backend/internal/config"
	"github.com/Osman-ordu/ceptecash-backend/internal/gateway"
	"github.com/Osman-ordu/ceptecash-backend/internal/store"
	"github.com/Osman-ordu/ceptecash-backend/internal/upstream"
)

// Service owns the market data pipeline.
type Service struct {
	store   *store.Store
	client  *upstream.Client
	gateway *gateway.Gateway
	logger  *slog.Logger

	shutdownOnce sync.Once
}

// New builds the pipeline. The gateway's broadcast ticker starts here; the
// upstream connection waits for Start.
func New(cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	st := store.New()

	client := upstream.NewClient(upstream.Config{
		URL:              cfg.Upstream.URL,
		Channel:          cfg.Upstream.Channel,
		UpdateChannel:    cfg.Upstream.UpdateChannel,
		ReconnectDelay:   cfg.Upstream.ReconnectDelay,
		HandshakeTimeout: cfg.Upstream.HandshakeTimeout,
		WriteTimeout:     cfg.Upstream.WriteTimeout,
	}, st, logger.With("component", "upstream"))

	gw := gateway.New(gateway.Config{
		BroadcastInterval: cfg.Gateway.BroadcastInterval,
		SendBufferSize:    cfg.Gateway.SendBufferSize,
		WriteTimeout:      cfg.Gateway.WriteTimeout,
	}, st, logger.With("component", "gateway"))

	return &Service{
		store:   st,
		client:  client,
		gateway: gw,
		logger:  logger,
	}
}

// Start connects to the upstream feed. Reconnection is handled internally
// from here on.
func (s *Service) Start() {
	s.client.Connect()
	s.logger.Info("market service started")
}

// Shutdown disconnects the upstream feed and closes all downstream
// subscribers. Idempotent.
func (s *Service) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.client.Disconnect()
		s.gateway.Close()
		s.logger.Info("market service stopped")
	})
}

// Store returns the price store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Upstream returns the feed client, for connection status queries.
func (s *Service) Upstream() *upstream.Client {
	return s.client
}

// Gateway returns the downstream gateway, for mounting its WS endpoint.
func (s *Service) Gateway() *gateway.Gateway {
	return s.gateway
}
