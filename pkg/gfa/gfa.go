// 16 Oct 2026

// Package gfa reads the structural part of GFA version 1 files: segment
// names and the links between them. Sequences, overlaps and tags are
// not looked at.
//
// Only lines starting with an S or L record are interpreted. Headers,
// paths, comments, blank lines and anything else are skipped.
package gfa

import (
	"fmt"

	"github.com/pkg/errors"
)

// Strand is the orientation of one end of a link.
type Strand int8

const (
	Reverse Strand = -1
	Forward Strand = 1
)

func (s Strand) String() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	}
	return fmt.Sprintf("Strand(%d)", int8(s))
}

// ParseStrand converts "+" or "-" to a Strand. Anything else, including
// an empty string, is an error.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return 0, errors.Errorf("invalid strand %q", s)
}

// Link joins one extremity of segment A to one extremity of segment B.
// Duplicates are legal.
type Link struct {
	NameA   string
	StrandA Strand
	NameB   string
	StrandB Strand
}

func (l Link) String() string {
	return fmt.Sprintf("%s%v -> %s%v", l.NameA, l.StrandA, l.NameB, l.StrandB)
}

// Graph is what we get from a file. Segments are in the order they
// were read and may contain duplicates unless Options.Strict was set.
type Graph struct {
	Segments []string
	Links    []Link
}

// NSeg returns the number of segment records.
func (g *Graph) NSeg() int { return len(g.Segments) }

// NLink returns the number of link records.
func (g *Graph) NLink() int { return len(g.Links) }

// Options contains the choices passed in from the caller.
type Options struct {
	Strict bool // Duplicate segment names are a format error
}
