package app

import "time"

// Config holds runtime wiring options for building the app.
type Config struct {
	Verbose     bool
	ProfilePath string        // signing profile YAML, empty for debug defaults
	Timeout     time.Duration // per-command timeout, zero for the default
}
