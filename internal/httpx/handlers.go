package httpx

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/session"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// parse reads from and to as algebraic squares.
func (r moveRequest) parse() (chess.Position, chess.Position, error) {
	from, err := chess.ParseSquare(r.From)
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	to, err := chess.ParseSquare(r.To)
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	return from, to, nil
}

type movesResponse struct {
	Square chess.Position   `json:"square"`
	Moves  []chess.Position `json:"moves"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"games":  s.games.Len(),
	})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if req.FEN == "" {
		req.FEN = s.cfg.Game.FEN()
	}

	game, err := s.games.Create(req.FEN)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(game.State())
}

func (s *Server) getGame(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(game.State())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.games.Delete(id); err != nil {
		return err
	}
	s.hub.Drop(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) validMoves(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	square, err := chess.ParseSquare(c.Params("square"))
	if err != nil {
		return err
	}
	moves, err := game.ValidMoves(square)
	if err != nil {
		return err
	}
	return c.JSON(movesResponse{Square: square, Moves: moves})
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	from, to, err := req.parse()
	if err != nil {
		return err
	}

	state, err := game.MoveState(from, to)
	if err != nil {
		return err
	}
	s.publish(game.ID(), state)
	return c.JSON(state)
}

// publish pushes state to every WebSocket watching the game.
func (s *Server) publish(id string, state session.State) {
	msg, err := newMessage(MessageTypeState, state)
	if err != nil {
		fmt.Fprintf(s.cfg.LogFile, "game %s: encoding state: %v\n", id, err)
		return
	}
	s.hub.Broadcast(id, msg)
}
