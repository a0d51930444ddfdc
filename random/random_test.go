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

package random_test

import (
	"testing"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.Seed(123)
	b.Seed(123)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	seed, fromTime := a.CurrentSeed()
	test.ExpectEquality(t, seed, int64(123))
	test.ExpectFailure(t, fromTime)

	// reseeding restarts the sequence
	a.Seed(99)
	b.Seed(99)
	test.ExpectEquality(t, a.Float64(), b.Float64())
}

func TestParseSeed(t *testing.T) {
	_, ok, err := random.ParseSeed("time")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	seed, ok, err := random.ParseSeed("42")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, seed, int64(42))

	_, _, err = random.ParseSeed("-1")
	test.ExpectSuccess(t, curated.Is(err, random.InvalidSeed))

	_, _, err = random.ParseSeed("tomorrow")
	test.ExpectSuccess(t, curated.Is(err, random.InvalidSeed))
}
