package httpx

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chesscore/internal/errors"
)

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidSquare):
		return fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrNotYourTurn),
		stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrNoPiece):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// errorHandler writes every handler error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
