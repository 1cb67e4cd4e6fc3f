// Package version carries the build metadata reported by the healthz
// endpoint and the startup banner. Version, Commit and BuildDate are
// meant to be overridden at build time via -ldflags; the in-source
// values are the dev-build fallbacks.
package version

import (
	"runtime"
	"time"
)

var (
	// Version is the writewell release tag, ex: v0.1.0.
	Version = "dev"
	// Commit is the short hash the binary was built from.
	Commit = "none"
	// BuildDate falls back to process start for dev builds.
	BuildDate = time.Now().Format(time.RFC3339)
	// GoVersion is the toolchain that produced the binary.
	GoVersion = runtime.Version()
)
