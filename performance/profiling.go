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

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/logger"
)

// Profile specifies which profiles are to be generated by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// Sentinel errors returned by the performance package.
const (
	ProfileError   = "performance: profile: %v"
	UnknownProfile = "performance: unknown profile type: %s"
)

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are CPU, MEM, TRACE, ALL and NONE. Names are not case
// sensitive.
func ParseProfile(s string) (Profile, error) {
	p := ProfileNone
	if strings.TrimSpace(s) == "" {
		return p, nil
	}

	for _, f := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(f)) {
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		case "NONE":
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, f)
		}
	}

	return p, nil
}

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// filename for a profile. the header is usually the name of the ROM
func profileFilename(header string, kind string) string {
	return fmt.Sprintf("%s_%s.profile", header, kind)
}

// RunProfiler runs the supplied function and generates the profiles named in
// the Profile argument. Profile files are created in the current directory
// with the header at the start of the filename.
func RunProfiler(profile Profile, header string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		fn := profileFilename(header, "cpu")
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
		logger.Logf(logger.Allow, "profile", "cpu profile: %s", fn)
	}

	if profile&ProfileTrace == ProfileTrace {
		fn := profileFilename(header, "trace")
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer trace.Stop()
		logger.Logf(logger.Allow, "profile", "trace: %s", fn)
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		fn := profileFilename(header, "mem")
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		logger.Logf(logger.Allow, "profile", "mem profile: %s", fn)
	}

	return nil
}
