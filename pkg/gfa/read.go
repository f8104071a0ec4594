package gfa

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/andrew-torda/gfa_deadends/pkg/zwrap"
)

const (
	tab     = "\t"
	segType = "S"
	lnkType = "L"
)

// loader carries the state while we go through a file.
type loader struct {
	g     Graph
	opts  Options
	seen  map[string]struct{} // only used in strict mode
	lineN int
}

// segment handles the fields of an S line after the record type.
func (l *loader) segment(line string, f []string) error {
	if len(f) < 2 {
		return &FormatError{Line: l.lineN, Kind: MissingName, Text: line}
	}
	name := f[1]
	if l.opts.Strict {
		if _, ok := l.seen[name]; ok {
			return &FormatError{Line: l.lineN, Kind: DuplicateName, Text: name}
		}
		l.seen[name] = struct{}{}
	}
	l.g.Segments = append(l.g.Segments, name)
	return nil
}

// link handles an L line. Overlaps and tags after the second
// strand are ignored in any form.
func (l *loader) link(line string, f []string) error {
	if len(f) < 5 {
		return &FormatError{Line: l.lineN, Kind: MissingLinkField, Text: line}
	}
	sa, err := ParseStrand(f[2])
	if err != nil {
		return &FormatError{Line: l.lineN, Kind: BadStrand, Text: f[2]}
	}
	sb, err := ParseStrand(f[4])
	if err != nil {
		return &FormatError{Line: l.lineN, Kind: BadStrand, Text: f[4]}
	}
	l.g.Links = append(l.g.Links, Link{NameA: f[1], StrandA: sa, NameB: f[3], StrandB: sb})
	return nil
}

// doLine looks at one line without its newline.
func (l *loader) doLine(line string) error {
	line = strings.TrimSuffix(line, "\r")
	rtype, _, _ := strings.Cut(line, tab)
	switch rtype {
	case segType:
		return l.segment(line, strings.SplitN(line, tab, 3))
	case lnkType:
		return l.link(line, strings.SplitN(line, tab, 6))
	}
	return nil
}

// Load reads GFA text from rdr and returns the segment names and links
// in the order they appear. The first bad line stops everything and
// we return a *FormatError. There is no partial result.
// opts may be nil.
func Load(rdr io.Reader, opts *Options) (*Graph, error) {
	l := loader{}
	if opts != nil {
		l.opts = *opts
	}
	if l.opts.Strict {
		l.seen = make(map[string]struct{})
	}
	br := bufio.NewReaderSize(rdr, 64*1024)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF { // a partial line is no use
			return nil, errors.Wrapf(err, "reading line %d", l.lineN+1)
		}
		if len(line) > 0 {
			l.lineN++
			if e := l.doLine(strings.TrimSuffix(line, "\n")); e != nil {
				return nil, e
			}
		}
		if err == io.EOF {
			break
		}
	}
	return &l.g, nil
}

// Readfile opens fname, which may be gzipped, and loads it.
// Every error comes back with the file name at the front.
func Readfile(fname string, opts *Options) (*Graph, error) {
	fp, err := zwrap.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", fname)
	}
	g, err := Load(fp, opts)
	if e := fp.Close(); err == nil && e != nil {
		err = e
	}
	if err != nil {
		return nil, errors.Wrap(err, fname)
	}
	return g, nil
}
