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

// Package paths contains functions to prepare paths to ALE2600 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the default config file is
// found with:
//
//	paths.ResourcePath("ale.cfg")
//
// If the directory ".ale" is present in the current directory then that is
// the base path. Otherwise the user's config directory is used, as reported
// by os.UserConfigDir(). On a modern Linux system the example above would be
//
//	/home/user/.config/ale/ale.cfg
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path for all resources. the getBasePath() function should be used
// rather than this value directly.
const baseResourcePath = ".ale"

// ResourcePath returns the resource string prepended with the base path. Empty
// parts are ignored. The existence of the resource is not checked.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cnf, strings.TrimPrefix(baseResourcePath, "."))
}

// UniqueFilename creates a filename that should not collide with any existing
// file. The function does not test for this. Format of the returned string:
//
//	prepend_shortname_YYYYMMDD_HHMMSS
//
// If shortname is empty the format is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, shortName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(shortName)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
