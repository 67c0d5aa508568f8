// Package compileinfo reports the module version and VCS state that a binary
// was built from, so that output files can be traced back to the code that
// produced them.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime/debug"
)

type CompileInfo struct {
	Binary     string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Binary == "" {
		return "No build information is embedded in this binary."
	}

	out := fmt.Sprintf("%s %s (%s)", c.Binary, c.Version, c.GoVersion)
	if c.Commit != "" {
		out += fmt.Sprintf(" commit %s at %s", c.Commit, c.CommitTime)
	}
	if c.Modified {
		out += " with uncommitted changes"
	}

	return out
}

// Get reads the build information embedded by the go tool. Fields are empty
// when it is unavailable, e.g. in tests.
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		Binary:    path.Base(z.Path),
		Version:   z.Main.Version,
		GoVersion: z.GoVersion,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
