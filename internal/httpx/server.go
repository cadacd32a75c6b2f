// Package httpx serves chess sessions over HTTP and WebSocket.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/session"
)

// Server is the HTTP front end for a session manager.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	games *session.Manager
	hub   *Hub
}

// New builds the fiber application and its routes.
func New(cfg *config.Config, games *session.Manager) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "chessd",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		cfg:   cfg,
		games: games,
		hub:   NewHub(),
	}

	s.app.Use(recover.New())
	if cfg.Verbosity > 0 {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	s.app.Get("/healthz", s.health)

	api := s.app.Group("/api")
	g := api.Group("/games")
	g.Post("/", s.createGame)
	g.Get("/:id", s.getGame)
	g.Delete("/:id", s.deleteGame)
	g.Get("/:id/moves/:square", s.validMoves)
	g.Post("/:id/moves", s.makeMove)

	s.app.Get("/ws/games/:id", s.upgrade, websocket.New(s.stream, websocket.Config{
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
	}))

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Hub returns the WebSocket subscriber registry.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
