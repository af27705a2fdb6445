// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.

package loader

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/logger"
)

// Sentinel error patterns.
const (
	LoadError     = "loader: %v"
	MalformedWord = "loader: malformed word on line %d (%s)"
	ShortBinary   = "loader: binary data is not a whole number of words (%d bytes)"
)

// List of program formats.
const (
	FormatAuto = "AUTO"
	FormatHex  = "HEX"
	FormatBin  = "BIN"
)

// FileExtensions is the list of file extensions that are recognised by the
// loader package. Extensions other than .BIN are treated as HEX.
var FileExtensions = [...]string{".TXT", ".HEX", ".MIPS", ".BIN"}

// Loader is used to specify the program to load into the simulator.
type Loader struct {
	// filename of program to load
	Filename string

	// one of the Format* values. FormatAuto means that the file extension
	// decides the format
	Format string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// the program words parsed from Data
	Words []uint32
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, format string) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatHex,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		ld.Format = format
	} else if strings.ToUpper(path.Ext(filename)) == ".BIN" {
		ld.Format = FormatBin
	}

	return ld
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Len returns the number of words in the loaded program.
func (ld Loader) Len() int {
	return len(ld.Words)
}

// Load the program data. Filenames with a valid URL scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(LoadError, "unexpected hash value")
	}
	ld.Hash = hash

	switch ld.Format {
	case FormatBin:
		ld.Words, err = ParseBinary(ld.Data)
	case FormatHex:
		ld.Words, err = Parse(bytes.NewReader(ld.Data))
	default:
		err = curated.Errorf(LoadError, fmt.Sprintf("unsupported format (%s)", ld.Format))
	}
	if err != nil {
		ld.Data = nil
		return err
	}

	logger.Logf(logger.Allow, "loader", "%s: %d words", ld.ShortName(), len(ld.Words))

	return nil
}

// Parse reads a program in the HEX format.
func Parse(r io.Reader) ([]uint32, error) {
	var words []uint32

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s := scanner.Text()
		if i := strings.IndexRune(s, '#'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		w, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return nil, curated.Errorf(MalformedWord, line, s)
		}
		words = append(words, uint32(w))
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	return words, nil
}

// ParseBinary converts raw little-endian data to program words.
func ParseBinary(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, curated.Errorf(ShortBinary, len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	return words, nil
}
