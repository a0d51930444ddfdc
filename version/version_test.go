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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/ale2600/test"
	"github.com/jetsetilly/ale2600/version"
)

func TestWelcome(t *testing.T) {
	v, _, _ := version.Version()
	test.ExpectInequality(t, v, "")

	w := version.Welcome()
	test.ExpectSuccess(t, strings.HasPrefix(w, version.ApplicationName))
	test.ExpectSuccess(t, strings.Contains(w, v))
	test.ExpectSuccess(t, strings.Contains(w, "-help"))
}
