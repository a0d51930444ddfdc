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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/ale2600/emucore"
)

// RAM is a chained digest of RAM contents.
type RAM struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Hash implements the digest.Digest interface.
func (dig *RAM) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *RAM) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with the contents of RAM.
func (dig *RAM) Update(ram emucore.RAM) {
	dig.digest = chain(dig.digest, &dig.buffer, ram)
}
