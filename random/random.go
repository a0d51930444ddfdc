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

package random

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/ale2600/curated"
)

// Random is a seedable random number generator. It is not safe for concurrent
// use, in keeping with the single-threaded environment that owns it.
type Random struct {
	seed     int64
	fromTime bool
	rnd      *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. The
// new instance is seeded from the wall clock until Seed() is called.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.SeedFromTime()
	return rnd
}

// Seed the generator with an explicit value.
func (rnd *Random) Seed(seed int64) {
	rnd.seed = seed
	rnd.fromTime = false
	rnd.rnd = rand.New(rand.NewPCG(uint64(seed), 0))
}

// SeedFromTime seeds the generator from the wall clock. Returns the seed that
// was used.
func (rnd *Random) SeedFromTime() int64 {
	rnd.Seed(time.Now().UnixNano())
	rnd.fromTime = true
	return rnd.seed
}

// CurrentSeed returns the seed value and whether it was taken from the wall
// clock.
func (rnd *Random) CurrentSeed() (int64, bool) {
	return rnd.seed, rnd.fromTime
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.IntN(n)
}

// Float64 returns a random number in the range 0.0 to 1.0 (exclusive).
func (rnd *Random) Float64() float64 {
	return rnd.rnd.Float64()
}

// TimeSeed is the seed string that requests seeding from the wall clock.
const TimeSeed = "time"

// Sentinel error returned by ParseSeed().
const InvalidSeed = "random: invalid seed: %v"

// ParseSeed interprets a seed string. The string "time" requests seeding from
// the wall clock, anything else must be a non-negative integer. The ok value is
// false if the seed string is "time".
func ParseSeed(s string) (seed int64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, TimeSeed) {
		return 0, false, nil
	}

	seed, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, curated.Errorf(InvalidSeed, err)
	}
	if seed < 0 {
		return 0, false, curated.Errorf(InvalidSeed, "seed must be non-negative")
	}

	return seed, true, nil
}
