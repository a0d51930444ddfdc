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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/ale2600/test"
	"github.com/jetsetilly/ale2600/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	_, err := wavwriter.NewWavWriter(fn, 0)
	test.ExpectFailure(t, err)

	aw, err := wavwriter.NewWavWriter(fn, 31440)
	test.DemandSuccess(t, err)

	aw.AddSamples([]uint8{0, 10, 20, 30})
	aw.AddSamples([]uint8{40, 50})
	test.ExpectEquality(t, aw.NumSamples(), 6)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 6)
	test.ExpectEquality(t, int(dec.SampleRate), 31440)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 8)
}
