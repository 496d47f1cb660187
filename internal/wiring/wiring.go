// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/probe/internal/adapters/attrstore"
	_ "go.trai.ch/probe/internal/adapters/blob"
	_ "go.trai.ch/probe/internal/adapters/capture"
	_ "go.trai.ch/probe/internal/adapters/config"
	_ "go.trai.ch/probe/internal/adapters/layout"
	_ "go.trai.ch/probe/internal/adapters/logger"
	_ "go.trai.ch/probe/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/probe/internal/app"
	_ "go.trai.ch/probe/internal/engine/exenv"
)
