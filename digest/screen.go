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

// Screen is a chained digest of screens.
type Screen struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{}
}

// Hash implements the digest.Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Screen) ResetDigest() {
	clear(dig.digest[:])
}

// Update the digest with a new screen.
func (dig *Screen) Update(scr *emucore.Screen) {
	dig.digest = chain(dig.digest, &dig.buffer, scr.Pix)
}

// chain the previous digest value with the new data. the buffer is reused
// between calls
func chain(prev [sha1.Size]byte, buffer *[]byte, data []byte) [sha1.Size]byte {
	l := len(prev) + len(data)
	if len(*buffer) != l {
		*buffer = make([]byte, l)
	}
	n := copy(*buffer, prev[:])
	copy((*buffer)[n:], data)
	return sha1.Sum(*buffer)
}
