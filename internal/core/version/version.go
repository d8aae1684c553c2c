// Package version exposes build metadata for the running binary
package version

import "runtime/debug"

// Version is stamped at build time via -ldflags
var Version = "dev"

// BuildInfo is the wire form of build metadata
type BuildInfo struct {
	Version   string `json:"version" example:"0.1.0"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
	Revision  string `json:"revision,omitempty" example:"3f1c2ab"`
}

// Info collects build metadata from the binary
func Info() BuildInfo {
	out := BuildInfo{Version: Version}
	if bi, ok := debug.ReadBuildInfo(); ok {
		out.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				out.Revision = s.Value
			}
		}
	}
	return out
}
