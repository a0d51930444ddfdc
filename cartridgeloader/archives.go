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
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"

	"github.com/jetsetilly/ale2600/curated"
)

func extractFromZIP(filename string) ([]byte, string, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, f.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoROMInArchive, filename)
}

func extractFrom7z(filename string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, f.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoROMInArchive, filename)
}

func extractFromRAR(filename string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}
	defer r.Close()

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}

		if header.IsDir || !isROMFile(header.Name) {
			continue
		}

		data, err := limitedRead(r, header.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(header.Name), nil
	}

	return nil, "", curated.Errorf(NoROMInArchive, filename)
}

// a gzip file is either a compressed tar archive or a single compressed ROM.
// the extension decides which
func extractFromGzip(filename string) ([]byte, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}
	defer gr.Close()

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return extractFromTar(gr, filename)
	}

	data, err := limitedRead(gr, filename)
	if err != nil {
		return nil, "", err
	}

	name := filepath.Base(filename)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}
	return data, name, nil
}

func extractFromTar(r io.Reader, filename string) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}

		if header.Typeflag != tar.TypeReg || !isROMFile(header.Name) {
			continue
		}

		data, err := limitedRead(tr, header.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(header.Name), nil
	}

	return nil, "", curated.Errorf(NoROMInArchive, filename)
}
