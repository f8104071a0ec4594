package zwrap_test

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/gfa_deadends/pkg/common"
	"github.com/andrew-torda/gfa_deadends/pkg/zwrap"
)

const gfaText = "H\tVN:Z:1.0\nS\tutg1\tACGT\nL\tutg1\t+\tutg1\t+\t0M\n"

func gzipped(t *testing.T, s string) []byte {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := io.WriteString(zw, s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// gztest has the same text, once compressed and once not.
type gztest struct {
	data    []byte
	gzipped bool
}

func gztests(t *testing.T) []gztest {
	return []gztest{
		{gzipped(t, gfaText), true},
		{[]byte(gfaText), false},
	}
}

func writeToTmp(t *testing.T, data []byte) string {
	fname, err := common.WrtTempBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

// Sniff must not use up the bytes it looks at.
func TestSniff(t *testing.T) {
	for _, x := range gztests(t) {
		br := bufio.NewReader(bytes.NewReader(x.data))
		gz, err := zwrap.Sniff(br)
		if err != nil {
			t.Fatal(err)
		}
		if gz != x.gzipped {
			t.Errorf("Sniff got %v want %v", gz, x.gzipped)
		}
		b, _ := io.ReadAll(br)
		if !bytes.Equal(b, x.data) {
			t.Errorf("compressed %v: Sniff consumed input", x.gzipped)
		}
	}
}

func TestOpen(t *testing.T) {
	for _, x := range gztests(t) {
		fname := writeToTmp(t, x.data)
		rdr, err := zwrap.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rdr)
		if err != nil {
			t.Error(err)
		}
		if string(b) != gfaText {
			t.Errorf("compressed %v wrong string: %q", x.gzipped, b)
		}
		if err := rdr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// One byte is not enough to look for the magic number.
func TestTooSmall(t *testing.T) {
	for _, s := range []string{"", "S"} {
		fname := writeToTmp(t, []byte(s))
		if _, err := zwrap.Sniff(bufio.NewReader(bytes.NewReader([]byte(s)))); !errors.Is(err, zwrap.ErrTooSmall) {
			t.Errorf("%q: Sniff wanted ErrTooSmall, got %v", s, err)
		}
		if _, err := zwrap.Open(fname); !errors.Is(err, zwrap.ErrTooSmall) {
			t.Errorf("%q: Open wanted ErrTooSmall, got %v", s, err)
		}
	}
}

// Two bytes of magic and then rubbish should fail in the gzip header.
func TestBrokenGzip(t *testing.T) {
	fname := writeToTmp(t, []byte{0x1f, 0x8b, 'x'})
	if rdr, err := zwrap.Open(fname); err == nil {
		rdr.Close()
		t.Error("no error opening broken gzip file")
	}
}

func TestExists(t *testing.T) {
	fname := writeToTmp(t, []byte(gfaText))
	if err := zwrap.Exists(fname); err != nil {
		t.Error(err)
	}
	os.Remove(fname)
	err := zwrap.Exists(fname)
	if !errors.Is(err, zwrap.ErrNotExist) {
		t.Errorf("wanted ErrNotExist, got %v", err)
	}
}
