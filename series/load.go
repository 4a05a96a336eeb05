// SPDX-License-Identifier: MIT
// Package: warp/series
//
// load.go — text and binary sample sources.
//
// Text format:
//   • Samples are separated by blanks, commas or semicolons, across any
//     number of lines.
//   • '#' starts a comment that runs to the end of the line.
//   • Input is UTF-8; a UTF-8 or UTF-16 (LE/BE) byte-order mark switches
//     the decoder accordingly.
//
// Binary format:
//   • Concatenated little-endian IEEE-754 float64 values, no header.

package series

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sampleSize = 8 // bytes per float64

// ReadText parses every sample in r.
// Returns ErrParse (wrapped with the line number) on a malformed token and
// ErrEmpty when r holds no samples at all.
func ReadText(r io.Reader) ([]float64, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	var out []float64
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text = text[:k]
		}
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrParse, line, tok)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("series: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f', ',', ';', '\u00a0':
		return true
	}

	return false
}

// LoadText opens path and parses it with ReadText.
func LoadText(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadBinary memory-maps path and decodes it as little-endian float64 samples.
// Returns ErrEmpty for an empty file and ErrBadBinary when the size is not a
// multiple of 8 bytes.
func LoadBinary(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("series: stat %s: %w", path, err)
	}
	size := st.Size()
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	if size%sampleSize != 0 {
		return nil, fmt.Errorf("%s: %w (%d bytes)", path, ErrBadBinary, size)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("series: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return decodeSamples(m), nil
}

// decodeSamples copies len(b)/8 samples out of b; b must outlive the call only.
func decodeSamples(b []byte) []float64 {
	out := make([]float64, len(b)/sampleSize)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*sampleSize:]))
	}

	return out
}

// WriteBinary writes s to w in the LoadBinary format.
func WriteBinary(w io.Writer, s []float64) error {
	bw := bufio.NewWriter(w)
	var buf [sampleSize]byte
	for _, v := range s {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("series: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("series: write: %w", err)
	}

	return nil
}
