package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger picks the zap preset from ENV: production encoding for "prod",
// development encoding otherwise.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
