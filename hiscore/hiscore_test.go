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

package hiscore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ale2600/hiscore"
	"github.com/jetsetilly/ale2600/test"
)

func TestStore(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "db", "hiscore.db")

	st, err := hiscore.Open(fn)
	test.DemandSuccess(t, err)
	defer st.Close()

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	for _, ep := range []hiscore.Episode{
		{Title: "pong", Agent: "random_agent", Frames: 100, Score: -21},
		{Title: "pong", Agent: "random_agent", Frames: 200, Score: 5},
		{Title: "pong", Agent: "random_agent", Frames: 150, Score: 5},
		{Title: "pong", Agent: "random_agent", Frames: 300, Score: 10},
		{Title: "breakout", Agent: "random_agent", Frames: 300, Score: 50},
	} {
		id, err := st.SaveEpisode(&ep)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, id, ep.ID)
		test.ExpectSuccess(t, !ep.Played.IsZero())
	}

	top, err := st.TopEpisodes("pong", 3)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(top), 3)
	test.ExpectEquality(t, top[0].Score, 10)
	test.ExpectEquality(t, top[1].Score, 5)
	test.ExpectEquality(t, top[1].Frames, 150)
	test.ExpectEquality(t, top[2].Frames, 200)

	top, err = st.TopEpisodes("pong", 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(top), 4)

	top, err = st.TopEpisodes("freeway", 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(top), 0)

	s, err := st.Stats("pong")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Episodes, 4)
	test.ExpectEquality(t, s.High, 10)
	test.ExpectApproximate(t, s.Average, -0.25, 0.001)

	test.ExpectSuccess(t, st.Close())
	test.ExpectSuccess(t, st.Close())
}

func TestReopen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hiscore.db")

	st, err := hiscore.Open(fn)
	test.DemandSuccess(t, err)
	_, err = st.SaveEpisode(&hiscore.Episode{Title: "boxing", Score: 12, Seed: 42})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, st.Close())

	st, err = hiscore.Open(fn)
	test.DemandSuccess(t, err)
	defer st.Close()

	top, err := st.TopEpisodes("boxing", 1)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(top), 1)
	test.ExpectEquality(t, top[0].Seed, int64(42))
	test.ExpectEquality(t, top[0].Score, 12)
}
