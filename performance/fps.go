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

package performance

import "time"

// FramesPerSecond is the frame rate of an NTSC television.
const FramesPerSecond = 60.0

// CalcFPS takes the the number of frames and duration and returns the
// frames-per-second and the accuracy of that value as a percentage of the
// NTSC frame rate.
func CalcFPS(numFrames int, duration time.Duration) (fps float64, accuracy float64) {
	secs := duration.Seconds()
	if secs <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / secs
	accuracy = 100 * fps / FramesPerSecond
	return fps, accuracy
}
