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

package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/ale2600/curated"
)

// Sentinel errors returned by the cartridgeloader package.
const (
	NoROM          = "cartridgeloader: no ROM file specified or the ROM file was not found: %s"
	NoROMInArchive = "cartridgeloader: no ROM file found in archive: %s"
	FileTooLarge   = "cartridgeloader: file exceeds maximum size: %s"
	LoadError      = "cartridgeloader: %v"
)

// FileExtensions is the list of file extensions recognised as ROM files when
// searching inside an archive. Comparison is case insensitive.
var FileExtensions = []string{".bin", ".a26", ".rom"}

// maximum size of cartridge data. the largest VCS cartridges are 64k but
// modern ARM based cartridges are much larger
const maxROMSize = 8 * 1024 * 1024

// Loader is used to specify the cartridge to load.
type Loader struct {
	// filename of cartridge to load. this may be an archive
	Filename string

	// the name of the ROM file inside the archive. the same as the base of
	// Filename if the file is not an archive
	Name string

	// copy of the loaded data
	Data []byte

	// hashes of the loaded data. filled in by Load()
	MD5  string
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the name of the ROM without the path or extension. If
// the ROM was found in an archive then the name inside the archive is used.
func (cl Loader) ShortName() string {
	n := cl.Name
	if n == "" {
		n = filepath.Base(cl.Filename)
	}
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Exists returns an error if the Filename field is empty or does not name an
// existing file.
func (cl Loader) Exists() error {
	if strings.TrimSpace(cl.Filename) == "" {
		return curated.Errorf(NoROM, "no filename")
	}
	fi, err := os.Stat(cl.Filename)
	if err != nil {
		return curated.Errorf(NoROM, cl.Filename)
	}
	if fi.IsDir() {
		return curated.Errorf(NoROM, fmt.Sprintf("%s is a directory", cl.Filename))
	}
	return nil
}

// Load the cartridge data. Archives in the ZIP, 7z, RAR and gzip (including
// tar.gz) formats are recognised by their content and the first ROM file found
// inside them is loaded. Any other file is loaded as it is.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	if err := cl.Exists(); err != nil {
		return err
	}

	f, err := os.Open(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return curated.Errorf(LoadError, err)
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf(LoadError, err)
	}

	var data []byte
	var name string

	switch detectFormat(header, cl.Filename) {
	case formatZIP:
		data, name, err = extractFromZIP(cl.Filename)
	case format7z:
		data, name, err = extractFrom7z(cl.Filename)
	case formatRAR:
		data, name, err = extractFromRAR(cl.Filename)
	case formatGzip:
		data, name, err = extractFromGzip(cl.Filename)
	default:
		data, err = limitedRead(f, cl.Filename)
		name = filepath.Base(cl.Filename)
	}
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, fmt.Sprintf("%s is empty", cl.Filename))
	}

	cl.Data = data
	cl.Name = name
	cl.MD5 = fmt.Sprintf("%x", md5.Sum(cl.Data))
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))

	return nil
}

type formatType int

const (
	formatRaw formatType = iota
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z     = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip   = []byte{0x1f, 0x8b}
	magicRAR    = []byte("Rar!")
)

// the content of the file is preferred to the extension. a VCS cartridge can
// legitimately begin with any byte sequence but the chance of it beginning
// with the full magic sequence of an archive is negligible
func detectFormat(header []byte, filename string) formatType {
	switch {
	case bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd):
		return formatZIP
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".rar":
		return formatRAR
	case ".gz", ".tgz":
		return formatGzip
	}

	return formatRaw
}

// isROMFile checks if a filename has one of the ROM file extensions.
func isROMFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// limitedRead reads from r up to maxROMSize bytes. it is an error if there is
// more data than that.
func limitedRead(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxROMSize+1))
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(data) > maxROMSize {
		return nil, curated.Errorf(FileTooLarge, name)
	}
	return data, nil
}
