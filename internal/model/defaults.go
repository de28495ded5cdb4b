package model

import "time"

// Shared defaults used by the CLI and the TUI.
const (
	DefaultStartupDelay = 2 * time.Second
	DefaultTaxonomy     = "mear"
	DefaultSkin         = "default"
	DefaultSection      = "overview"
	DefaultLogLevel     = "info"
)
