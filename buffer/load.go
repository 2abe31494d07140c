package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxLineBytes bounds a single scanned line.
const maxLineBytes = 16 << 20

// ReadLines splits r into lines. Line terminators (\n and a preceding \r)
// are not kept; a trailing newline does not produce an extra empty line.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// LoadFile reads path into a new Buffer.
//
// A missing file yields an empty buffer and a nil error. Any other failure
// yields an empty buffer together with the error so callers can report it
// without aborting.
func LoadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return New(), fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return New(), fmt.Errorf("load %s: %w", path, err)
	}
	return New(lines...), nil
}
