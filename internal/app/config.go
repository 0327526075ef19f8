package app

import (
	"io"

	"keyforge/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings config.Config // parsed keyforge.yaml plus overrides
	Logs     io.Writer     // optional; defaults to os.Stderr
}
