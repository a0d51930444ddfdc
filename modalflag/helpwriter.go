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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer []byte
}

// Help writes the buffered output of the flag package with the mode path added
// to the banner line.
func (hw *helpWriter) Help(output io.Writer, path string) {
	if output == nil {
		return
	}

	helpLines := strings.Split(string(hw.buffer), "\n")

	// the flag package writes only the banner if there are no flags
	if len(helpLines) <= 2 && strings.TrimSpace(helpLines[len(helpLines)-1]) == "" {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", strings.TrimSuffix(helpLines[0], ":"), path)
	} else {
		fmt.Fprintln(output, helpLines[0])
	}

	io.WriteString(output, strings.Join(helpLines[1:], "\n"))
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}
