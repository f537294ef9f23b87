package app

import (
	"go.trai.ch/kiln/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Close flushes telemetry. It is safe to call on partially built components.
func (c *Components) Close() error {
	if c == nil || c.Telemetry == nil {
		return nil
	}
	return c.Telemetry.Close()
}
