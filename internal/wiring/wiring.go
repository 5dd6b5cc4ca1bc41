// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prebuild/internal/adapters/config"
	_ "go.trai.ch/prebuild/internal/adapters/fs"
	_ "go.trai.ch/prebuild/internal/adapters/logger"
	_ "go.trai.ch/prebuild/internal/adapters/shell"
	_ "go.trai.ch/prebuild/internal/adapters/telemetry"
	// Register the app node.
	_ "go.trai.ch/prebuild/internal/app"
)
