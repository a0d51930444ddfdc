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

package settings

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/ale2600/curated"
)

// WarningBoilerPlate is written to the head of every settings file saved by
// Save().
const WarningBoilerPlate = "; *** settings file written by ale2600. comments will be lost on save ***"

// the separator between key and value in the native config file format. the
// alternative separator is used by config files written for other ALE tools.
const (
	fieldSep    = "::"
	altFieldSep = "="
)

// Sentinel error returned by LoadConfig().
const ConfigError = "settings: config file: %s: %v"

// LoadConfig reads settings from the named file. Files with the extension
// .yaml or .yml are read as a flat YAML mapping. Any other file is read as
// lines of "key :: value" or "key = value" pairs. Blank lines and lines
// beginning with ';' or '#' are ignored.
//
// Settings in the file replace any existing value. Unknown keys are an error.
func (s *Settings) LoadConfig(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return s.loadYAML(filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++

		l := strings.TrimSpace(scanner.Text())
		if len(l) == 0 || strings.HasPrefix(l, ";") || strings.HasPrefix(l, "#") {
			continue
		}

		key, value, ok := strings.Cut(l, fieldSep)
		if !ok {
			key, value, ok = strings.Cut(l, altFieldSep)
		}
		if !ok {
			return curated.Errorf(ConfigError, filename, fmt.Sprintf("no separator at line %d", line))
		}

		if err := s.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return curated.Errorf(ConfigError, filename, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}

	return nil
}

func (s *Settings) loadYAML(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}

	// apply in key order so that any error is reported consistently
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		if v == nil {
			v = ""
		}
		if err := s.Set(k, fmt.Sprintf("%v", v)); err != nil {
			return curated.Errorf(ConfigError, filename, err)
		}
	}

	return nil
}

// Save writes every setting to the named file. YAML is written if the
// extension of the file is .yaml or .yml. Otherwise the native config file
// format is used.
func (s *Settings) Save(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(ConfigError, filename, err)
		}
	}()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		m := make(map[string]any, len(s.entries))
		for k, e := range s.entries {
			m[k] = e.value.Get()
		}
		enc := yaml.NewEncoder(f)
		if err := enc.Encode(m); err != nil {
			return curated.Errorf(ConfigError, filename, err)
		}
		if err := enc.Close(); err != nil {
			return curated.Errorf(ConfigError, filename, err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(f, "%s\n", WarningBoilerPlate); err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}
	if err := s.Write(f); err != nil {
		return curated.Errorf(ConfigError, filename, err)
	}

	return nil
}
