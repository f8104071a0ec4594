// 16 Oct 2026
// gfadead counts the dead ends in a GFA assembly graph.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"sync"

	"github.com/plan-systems/klog"

	. "github.com/andrew-torda/gfa_deadends/pkg/common"
	"github.com/andrew-torda/gfa_deadends/pkg/gfadead"
)

var (
	klogOnce  sync.Once
	klogLevel flag.Value
)

// verbosity sets up klog on its own flag set, so its many flags stay
// out of our usage, and hands back the one we want, -v.
func verbosity() flag.Value {
	klogOnce.Do(func() {
		kfs := flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(kfs)
		kfs.Set("logtostderr", "true")
		klogLevel = kfs.Lookup("v").Value
	})
	return klogLevel
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage:", fs.Name(), "[options] file.gfa[.gz]")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// mymain returns the exit status. Every error ends up here and
// nowhere else.
func mymain(args []string, stdout, stderr io.Writer) int {
	var cmdArgs gfadead.CmdArgs
	name := path.Base(args[0])
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we print errors and usage ourselves
	fs.Usage = func() {}
	version := fs.Bool("version", false, "print the version and exit")
	fs.BoolVar(&cmdArgs.Strict, "s", false, "strict, duplicate segment names are an error")
	fs.BoolVar(&cmdArgs.ListDead, "l", false, "after the count, list each dead end as name and start/end")
	fs.Var(verbosity(), "v", "log level, 1 for the size of the graph, 2 for link orientations")
	defer klog.Flush()

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			usage(fs, stderr)
			return ExitSuccess
		}
		fmt.Fprintln(stderr, "Error:", err)
		usage(fs, stderr)
		return ExitFailure
	}
	if *version {
		fmt.Fprintln(stdout, name, Version)
		return ExitSuccess
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected one input file, got", fs.NArg())
		usage(fs, stderr)
		return ExitFailure
	}
	cmdArgs.InFname = fs.Arg(0)
	if err := gfadead.Mymain(cmdArgs, stdout); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain(os.Args, os.Stdout, os.Stderr))
}
