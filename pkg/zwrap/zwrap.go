// Package zwrap opens a file for reading and, if it starts with the gzip
// magic number, wraps it so reads come from the decompressor. Upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Compression is decided by looking at the first two bytes, never the
// file name.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

var (
	ErrNotExist = errors.New("file does not exist")
	ErrTooSmall = errors.New("file is too small")
)

// gzip magic number
const (
	magic1 byte = 0x1f
	magic2 byte = 0x8b
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	e1 := fc.zrdr.Close() // Close decompressor
	e2 := fc.fp.Close()   // and backing file
	switch {
	case e1 != nil && e2 != nil:
		return errors.Errorf("%v %v", e1, e2)
	case e1 != nil:
		return e1
	}
	return e2
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.zrdr.Read(p) }

// Sniff looks at the first two bytes of br, without using them up,
// and says if they are the gzip magic number. Fewer than two bytes
// gives ErrTooSmall.
func Sniff(br *bufio.Reader) (bool, error) {
	buf, err := br.Peek(2)
	if err != nil {
		if err == io.EOF {
			return false, ErrTooSmall
		}
		return false, err
	}
	return buf[0] == magic1 && buf[1] == magic2, nil
}

// Exists returns ErrNotExist, wrapped with the name, if there is
// nothing at fname.
func Exists(fname string) error {
	if _, err := os.Stat(fname); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrNotExist, fname)
		}
		return err
	}
	return nil
}

// mapped is a plain file read through a memory map.
type mapped struct {
	*bytes.Reader
	fp *os.File
	mm mmap.MMap
}

func (m *mapped) Close() error {
	e := m.mm.Unmap()
	if e2 := m.fp.Close(); e == nil {
		e = e2
	}
	return e
}

// bufFile is a file we have already started reading through br.
type bufFile struct {
	*bufio.Reader
	fp *os.File
}

func (b *bufFile) Close() error { return b.fp.Close() }

// mapFile memory maps fp if it is a regular file with something in it.
func mapFile(fp *os.File) (*mapped, bool) {
	fi, err := fp.Stat()
	if err != nil || !fi.Mode().IsRegular() || fi.Size() == 0 {
		return nil, false
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, false
	}
	return &mapped{Reader: bytes.NewReader(mm), fp: fp, mm: mm}, true
}

// Open opens fname for reading. Gzipped files are decompressed on the
// fly. Plain regular files are memory mapped, which was the fastest way
// to go through a big file in numseq. Anything else, like a pipe, is
// read through the buffer we sniffed with, so we never seek.
func Open(fname string) (io.ReadCloser, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fp)
	gz, err := Sniff(br)
	if err != nil {
		fp.Close()
		return nil, err
	}
	if gz {
		zrdr, err := gzip.NewReader(br)
		if err != nil {
			fp.Close()
			return nil, err
		}
		return &FpGzip{fp: fp, zrdr: zrdr}, nil
	}
	if m, ok := mapFile(fp); ok { // the map starts at byte 0 whatever br has read
		return m, nil
	}
	return &bufFile{Reader: br, fp: fp}, nil
}
