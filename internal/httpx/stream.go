package httpx

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chesscore/internal/session"
)

const localsGame = "game"

// upgrade admits WebSocket upgrades for known games only.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	game, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	c.Locals(localsGame, game)
	return c.Next()
}

// stream sends the game state on connect and after every move, and accepts
// move messages from the client.
func (s *Server) stream(conn *websocket.Conn) {
	game, ok := conn.Locals(localsGame).(*session.Session)
	if !ok {
		_ = conn.Close()
		return
	}
	id := game.ID()

	s.hub.Subscribe(id, conn)
	defer s.hub.Unsubscribe(id, conn)

	if msg, err := newMessage(MessageTypeState, game.State()); err == nil {
		_ = s.hub.Send(conn, msg)
	}

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if s.cfg.Verbosity > 1 {
				fmt.Fprintf(s.cfg.LogFile, "game %s: websocket closed: %v\n", id, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := s.handleMessage(game, data); err != nil {
			s.sendError(conn, err)
		}
	}
}

func (s *Server) handleMessage(game *session.Session, data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	switch msg.Type {
	case MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
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
		return nil
	}
	return fmt.Errorf("unknown message type: %s", msg.Type)
}

func (s *Server) sendError(conn *websocket.Conn, err error) {
	msg, merr := newMessage(MessageTypeError, fiber.Map{"error": err.Error(), "status": statusFor(err)})
	if merr != nil {
		return
	}
	_ = s.hub.Send(conn, msg)
}
