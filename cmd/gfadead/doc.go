/*
gfadead counts the dead ends in an assembly graph in GFA version 1
format. A dead end is a start or end of a segment which no link
touches, so a complete circular chromosome has none and a lone
linear contig has two.

Usage:

	gfadead [options] file.gfa[.gz]

The input may be gzipped. This is decided by looking at the first two
bytes, not the file name. The count is printed as a single number on
standard output.

Options:

	-l        after the count, list each dead end, one per line as
	          the segment name, a tab and "start" or "end"
	-s        strict, stop if a segment name appears twice
	-v n      log at level n to stderr. 1 gives the size of the graph,
	          2 adds how the link ends were oriented
	-version  print the version and exit

Only S and L lines are looked at. Everything else is skipped.
A line which cannot be used, like a link whose strand is not + or -,
stops the program with exit status 1 and a message starting "Error:".
*/
package main
