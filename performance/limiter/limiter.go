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

// Package limiter restricts the rate at which frames are shown. It is used to
// slow an agent down to a speed that a person watching the display can
// follow.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		env.Act(a)
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/ale2600/curated"
)

// Sentinel error returned by NewFPSLimiter().
const InvalidRate = "limiter: invalid frame rate: %d"

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(period(framesPerSecond)),
	}
	return lim, nil
}

func period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// SetLimit changes the limit at which the FpsLimiter waits. Values of zero or
// less are ignored.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		return
	}
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(period(framesPerSecond))
}

// Limit returns the current frame rate.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
