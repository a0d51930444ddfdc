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

// Package cartridgeloader is used to specify the data that is to be loaded
// into the emulated console.
//
// The Loader type checks that the ROM file exists, reads the data and hashes
// it. ROM files can be loaded directly or from inside ZIP, 7z, RAR, gzip and
// tar.gz archives. When loading from an archive the first file with one of the
// extensions in FileExtensions is used.
//
// The MD5 hash is used to identify the title of a cartridge. The SHA-1 hash is
// recorded in transcripts by the recorder package.
package cartridgeloader
