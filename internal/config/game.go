package config

import (
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// StartFEN is the starting position; empty means the standard one.
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that the starting position parses.
func (g *GameConfig) Validate() error {
	if g.StartFEN == "" {
		return nil
	}
	if _, _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "start position: %v", err)
	}
	return nil
}

// FEN returns the starting position, defaulting to the standard one.
func (g *GameConfig) FEN() string {
	if g.StartFEN == "" {
		return engine.InitialFEN
	}
	return g.StartFEN
}
