// Package version exposes the build version, either from the embedded
// version file or from module build info when installed via go install.
package version

import (
	"embed"
	"io"
	"runtime/debug"
	"strings"
)

//go:embed version.*
var versions embed.FS

var Version string = "unable to get version"

func init() {
	f, err := versions.Open("version.txt")
	if err != nil {
		inf, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		Version = inf.Main.Version
		return
	}
	s, err := io.ReadAll(f)
	if err != nil {
		return
	}
	Version = strings.TrimSpace(string(s))
}
