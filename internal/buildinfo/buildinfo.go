// Package buildinfo holds build metadata for the gowc binary.
// cmd/gowc receives the linker-injected values and passes them to Set.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	unsetCommit  = "none"
	unsetBuilder = "unknown"
)

// Info is the metadata printed by --version.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

var current = Info{
	Version: "dev",
	Commit:  unsetCommit,
	Date:    "unknown",
	BuiltBy: unsetBuilder,
}

// Set stores the build metadata received from linker-injected variables.
func Set(version, commit, date, builtBy string) {
	current = Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy}
}

// Get returns the current build metadata.
func Get() Info { return current }

// Version returns the build version string.
func Version() string { return current.Version }

// Enrich fills the commit from the VCS revision and the builder from the
// Go version when the linker did not provide them.
func Enrich() {
	if current.Commit != unsetCommit && current.BuiltBy != unsetBuilder {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if current.Commit == unsetCommit {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				current.Commit = setting.Value
			}
		}
	}

	if current.BuiltBy == unsetBuilder {
		current.BuiltBy = info.GoVersion
	}
}

// Summary renders the --version text for the named program.
func (i Info) Summary(name string) string {
	return fmt.Sprintf("%s version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s\n", name, i.Version, i.Commit, i.Date, i.BuiltBy)
}
