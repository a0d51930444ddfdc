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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/ale2600/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 10.5, 0.1)
}

func TestExpectImplements(t *testing.T) {
	var s fmt.Stringer
	test.ExpectImplements(t, &test.CompareWriter{}, s)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	fmt.Fprintf(w, "hello %s", "world")
	test.ExpectSuccess(t, w.Compare("hello world"))
	test.ExpectSuccess(t, w.Contains("lo wo"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
