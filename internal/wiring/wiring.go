// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wasmtc/internal/adapters/fs"
	_ "go.trai.ch/wasmtc/internal/adapters/job"
	_ "go.trai.ch/wasmtc/internal/adapters/logger"
	_ "go.trai.ch/wasmtc/internal/adapters/optionstore"
	_ "go.trai.ch/wasmtc/internal/adapters/sdk"
	_ "go.trai.ch/wasmtc/internal/adapters/store"
	_ "go.trai.ch/wasmtc/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/wasmtc/internal/app"
)
