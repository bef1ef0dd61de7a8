package testutil

import (
	"io"

	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/infrastructure/logging"
)

// NewLogger retorna um logger que descarta a saída
func NewLogger() ports.Logger {
	return logging.NewSlogLoggerWithWriter("error", io.Discard)
}
