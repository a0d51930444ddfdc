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

// Package settings holds the configuration of an environment.
//
// The table of settings is fixed and every setting has a type (String, Int,
// Bool or Float) and a default value. Values can be loaded from config files
// and from the command line. The order in which sources are applied is
// decided by the caller. The environment package applies them as follows,
// with later sources taking precedence:
//
//	defaults
//	the default config file, if it exists
//	the command line
//	the file named by the "config" setting, if any
//
// Config files are lines of "key :: value" pairs. The "key = value" form used
// by other ALE tools is also accepted. Files with a .yaml or .yml extension
// are read as a flat YAML mapping instead.
//
// Validate() should be called once all sources have been applied. It checks
// that the values make sense together.
package settings
