// This file is part of ALE2600.
//
// ALE2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ALE2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ALE2600.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the name and version of the application.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "ALE2600"

// number is set by the linker for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version is "unreleased" for a build from a source repository without a
// version number and "local" when there is no build information at all.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Welcome returns the message printed when an environment is created.
func Welcome() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Arcade Learning Environment (version %s)\n", ApplicationName, version)
	b.WriteString("[Powered by an external emulator core]\n")
	b.WriteString("Use -help for help screen.")
	return b.String()
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
