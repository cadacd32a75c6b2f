package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// ServerConfig holds settings for the HTTP and WebSocket server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// AllowOrigins is the comma separated CORS origin list
	AllowOrigins string

	// WebSocket buffer sizes in bytes
	ReadBufferSize  int
	WriteBufferSize int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":3000",
		AllowOrigins:    "*",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadBufferSize <= 0 || s.WriteBufferSize <= 0 {
		return fmt.Errorf("websocket buffer sizes (%d, %d) must be positive: %w",
			s.ReadBufferSize, s.WriteBufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
