// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/typeget/internal/adapters/config"
	_ "go.trai.ch/typeget/internal/adapters/logger"
	_ "go.trai.ch/typeget/internal/adapters/manifest"
	_ "go.trai.ch/typeget/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/typeget/internal/app"
	_ "go.trai.ch/typeget/internal/engine/scheduler"
)
