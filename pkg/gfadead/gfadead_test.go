package gfadead_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/gfa_deadends/pkg/common"
	"github.com/andrew-torda/gfa_deadends/pkg/gfa"
	. "github.com/andrew-torda/gfa_deadends/pkg/gfadead"
	"github.com/andrew-torda/gfa_deadends/pkg/zwrap"
)

const (
	circular = "S\tutg1\tACGT\nL\tutg1\t+\tutg1\t+\t0M\n"
	linear   = "S\tutg1\tACGT\n"
	noRecs   = "H\tVN:Z:1.0\n"
	spaced   = "\nS\ta\t*\n\nS\tb\t*\n\n\nL\ta\t+\tb\t+\t0M\n\n"
	unspaced = "S\ta\t*\nS\tb\t*\nL\ta\t+\tb\t+\t0M\n"
	badStrnd = "S\ta\t*\nL\ta\t+\ta\tx\t0M\n"
)

func plainFile(t *testing.T, s string) string {
	t.Helper()
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

func gzFile(t *testing.T, s string) string {
	t.Helper()
	fname, err := common.WrtTempTo(func(w io.Writer) error {
		zw := gzip.NewWriter(w)
		if _, err := io.WriteString(zw, s); err != nil {
			return err
		}
		return zw.Close()
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

func run(t *testing.T, cmdArgs CmdArgs) (string, error) {
	t.Helper()
	var b bytes.Buffer
	err := Mymain(cmdArgs, &b)
	return b.String(), err
}

func TestCount(t *testing.T) {
	for _, x := range []struct {
		name, gfa, want string
	}{
		{"circular", circular, "0\n"},
		{"linear", linear, "2\n"},
		{"no records", noRecs, "0\n"},
		{"blank lines", spaced, "2\n"},
		{"no blank lines", unspaced, "2\n"},
	} {
		for _, mk := range []func(*testing.T, string) string{plainFile, gzFile} {
			got, err := run(t, CmdArgs{InFname: mk(t, x.gfa)})
			if err != nil {
				t.Fatalf("%s: %v", x.name, err)
			}
			if got != x.want {
				t.Errorf("%s: got %q want %q", x.name, got, x.want)
			}
		}
	}
}

func TestBadStrand(t *testing.T) {
	for _, fname := range []string{plainFile(t, badStrnd), gzFile(t, badStrnd)} {
		got, err := run(t, CmdArgs{InFname: fname})
		if !errors.Is(err, gfa.ErrFormat) {
			t.Errorf("wanted format error, got %v", err)
		}
		if got != "" {
			t.Errorf("printed %q on a broken file", got)
		}
		if err != nil && !strings.Contains(err.Error(), fname) {
			t.Errorf("error %q does not name the file", err)
		}
	}
}

func TestMissing(t *testing.T) {
	fname := plainFile(t, linear) + "_not_there"
	if _, err := run(t, CmdArgs{InFname: fname}); !errors.Is(err, zwrap.ErrNotExist) {
		t.Errorf("wanted ErrNotExist, got %v", err)
	}
}

// A zero length file cannot be checked for the gzip magic number.
func TestTooSmall(t *testing.T) {
	if _, err := run(t, CmdArgs{InFname: plainFile(t, "")}); !errors.Is(err, zwrap.ErrTooSmall) {
		t.Errorf("wanted ErrTooSmall, got %v", err)
	}
}

func TestStrict(t *testing.T) {
	dup := "S\ta\nS\ta\n"
	got, err := run(t, CmdArgs{InFname: plainFile(t, dup)})
	if err != nil || got != "2\n" {
		t.Errorf("default mode got %q, %v", got, err)
	}
	if _, err = run(t, CmdArgs{InFname: plainFile(t, dup), Strict: true}); !errors.Is(err, gfa.ErrFormat) {
		t.Errorf("strict mode wanted format error, got %v", err)
	}
}

func TestListDead(t *testing.T) {
	got, err := run(t, CmdArgs{InFname: plainFile(t, unspaced+"S\tc\n"), ListDead: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "4\na\tstart\nb\tend\nc\tstart\nc\tend\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
