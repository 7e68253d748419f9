package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger: human-readable console output in dev mode,
// JSON in production.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
