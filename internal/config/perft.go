package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesscore/internal/errors"
)

// PerftConfig holds settings for move generation counts.
type PerftConfig struct {
	// Depth is the search depth; 0 disables perft
	Depth int

	// Divide reports counts per root move
	Divide bool

	// Workers is the number of goroutines used for divide
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
