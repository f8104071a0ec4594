// 16 Oct 2026
// Read a GFA assembly graph, maybe gzipped, and count the segment
// extremities with no link. This is the work behind cmd/gfadead, after
// the command line has been parsed.

package gfadead

import (
	"fmt"
	"io"

	"github.com/plan-systems/klog"

	"github.com/andrew-torda/gfa_deadends/pkg/deadend"
	"github.com/andrew-torda/gfa_deadends/pkg/gfa"
	"github.com/andrew-torda/gfa_deadends/pkg/zwrap"
)

// CmdArgs is filled out by the command line parser.
type CmdArgs struct {
	InFname  string
	Strict   bool // duplicate segment names are an error
	ListDead bool // list dead extremities after the count
}

// logTally writes the endpoint tally at verbosity 2.
func logTally(r *deadend.Report) {
	m := r.Tally.Mat
	klog.V(2).Infof("link endpoints  first: %.0f+ %.0f-  second: %.0f+ %.0f-",
		m[deadend.TallyFirst][deadend.TallyFwd], m[deadend.TallyFirst][deadend.TallyRev],
		m[deadend.TallySecond][deadend.TallyFwd], m[deadend.TallySecond][deadend.TallyRev])
	klog.V(2).Infof("%d dead starts, %d dead ends", len(r.DeadStarts()), len(r.DeadEnds()))
	if r.Dangling > 0 {
		klog.V(2).Infof("%d link endpoints name segments which are not in the file", r.Dangling)
	}
}

// Mymain checks the file is there, reads it and writes the count to w.
// Any error should be fatal for the caller.
func Mymain(cmdArgs CmdArgs, w io.Writer) error {
	fname := cmdArgs.InFname
	if err := zwrap.Exists(fname); err != nil {
		return err
	}
	klog.V(1).Infof("reading %s", fname)
	g, err := gfa.Readfile(fname, &gfa.Options{Strict: cmdArgs.Strict})
	if err != nil {
		return err
	}
	klog.V(1).Infof("%d segments, %d links", g.NSeg(), g.NLink())

	r := deadend.Analyze(g)
	if n := r.NSeg(); n != g.NSeg() {
		klog.V(1).Infof("%d distinct segment names in %d segment lines", n, g.NSeg())
	}
	logTally(r)
	if _, err := fmt.Fprintln(w, r.Count()); err != nil {
		return err
	}
	if cmdArgs.ListDead {
		for _, d := range r.Dead() {
			if _, err := fmt.Fprintln(w, d); err != nil {
				return err
			}
		}
	}
	return nil
}
