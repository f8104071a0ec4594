// 16 Oct 2026

// Package common holds the few constants and helpers shared by the
// gfa tools and their tests.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
)

// Version is printed by -version.
const Version = "v0.1.0"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempBytes([]byte(s))
}

// WrtTempBytes is WrtTemp for data which is not text, like a gzipped
// gfa file.
func WrtTempBytes(b []byte) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	defer f_tmp.Close()
	if _, err := f_tmp.Write(b); err != nil {
		return "", fmt.Errorf("writing to temp file %v", f_tmp.Name())
	}
	return f_tmp.Name(), nil
}

// WrtTempTo is used when a test wants to write with its own writer,
// such as a gzip compressor. fill is handed the open file.
func WrtTempTo(fill func(w io.Writer) error) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	defer f_tmp.Close()
	if err := fill(f_tmp); err != nil {
		return "", fmt.Errorf("filling temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
