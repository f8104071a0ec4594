// 16 Oct 2026

// Package deadend counts segment extremities in an assembly graph which
// no link touches. Every segment starts with both its start and end
// dead and each link brings two extremities to life.
package deadend

import (
	"fmt"

	"github.com/andrew-torda/matrix"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/andrew-torda/gfa_deadends/pkg/gfa"
)

// Extremity is one of the two ends of a segment.
type Extremity uint8

const (
	Start Extremity = iota
	End
)

func (e Extremity) String() string {
	switch e {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return fmt.Sprintf("Extremity(%d)", uint8(e))
}

// Resolve says which extremity a link endpoint touches.
// first is true for the "from" side of the link.
//
//	first  +  end
//	first  -  start
//	second +  start
//	second -  end
func Resolve(first bool, s gfa.Strand) Extremity {
	if first == (s == gfa.Forward) {
		return End
	}
	return Start
}

// Rows and columns of Report.Tally.
const (
	TallyFirst  = 0
	TallySecond = 1
	TallyFwd    = 0
	TallyRev    = 1
)

// Report is the result of Analyze.
type Report struct {
	names     *linkedhashset.Set // every segment, in input order
	deadStart *linkedhashset.Set
	deadEnd   *linkedhashset.Set
	// Tally counts link endpoints. Rows are TallyFirst, TallySecond
	// and columns TallyFwd, TallyRev.
	Tally    *matrix.FMatrix2d
	Dangling int // endpoints naming a segment we never saw
}

// Dead is one unconnected extremity.
type Dead struct {
	Name string
	Ext  Extremity
}

func (d Dead) String() string { return d.Name + "\t" + d.Ext.String() }

// newSet puts the names into a set. Duplicates collapse.
func newSet(names []string) *linkedhashset.Set {
	s := linkedhashset.New()
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// kill removes name from the set of its extremity. Removing
// something which is not there does nothing, so repeated links
// are harmless.
func (r *Report) kill(name string, ext Extremity) {
	if ext == Start {
		r.deadStart.Remove(name)
	} else {
		r.deadEnd.Remove(name)
	}
}

// endpoint brings one side of a link to life and keeps the tally.
func (r *Report) endpoint(first bool, name string, s gfa.Strand) {
	row, col := TallySecond, TallyFwd
	if first {
		row = TallyFirst
	}
	if s != gfa.Forward {
		col = TallyRev
	}
	r.Tally.Mat[row][col]++
	if !r.names.Contains(name) {
		r.Dangling++
	}
	r.kill(name, Resolve(first, s))
}

// AnalyzeLists does the work on segment names and links.
func AnalyzeLists(segments []string, links []gfa.Link) *Report {
	r := &Report{
		names:     newSet(segments),
		deadStart: newSet(segments),
		deadEnd:   newSet(segments),
		Tally:     matrix.NewFMatrix2d(2, 2),
	}
	for _, lnk := range links {
		r.endpoint(true, lnk.NameA, lnk.StrandA)
		r.endpoint(false, lnk.NameB, lnk.StrandB)
	}
	return r
}

// Analyze works on a graph from the gfa reader.
func Analyze(g *gfa.Graph) *Report { return AnalyzeLists(g.Segments, g.Links) }

// Count is the number of dead ends. This is what most callers want.
func Count(segments []string, links []gfa.Link) int {
	return AnalyzeLists(segments, links).Count()
}

// Count returns the number of extremities still not connected.
func (r *Report) Count() int { return r.deadStart.Size() + r.deadEnd.Size() }

// NSeg is the number of distinct segment names.
func (r *Report) NSeg() int { return r.names.Size() }

func toStrings(s *linkedhashset.Set) []string {
	v := s.Values()
	out := make([]string, len(v))
	for i := range v {
		out[i] = v[i].(string)
	}
	return out
}

// DeadStarts returns names of segments whose start is unconnected,
// in input order.
func (r *Report) DeadStarts() []string { return toStrings(r.deadStart) }

// DeadEnds is like DeadStarts, but for the end of segments.
func (r *Report) DeadEnds() []string { return toStrings(r.deadEnd) }

// Dead lists every dead extremity, segment by segment in input order,
// start before end.
func (r *Report) Dead() []Dead {
	out := make([]Dead, 0, r.Count())
	for _, v := range r.names.Values() {
		name := v.(string)
		if r.deadStart.Contains(name) {
			out = append(out, Dead{name, Start})
		}
		if r.deadEnd.Contains(name) {
			out = append(out, Dead{name, End})
		}
	}
	return out
}
