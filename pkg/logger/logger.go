package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger: JSON in production, console otherwise
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
