// Command viewdemo reads whitespace-separated integers and runs them through a
// lazy pipeline. Input is consumed one token at a time, so it works on an
// endless stdin as long as -take bounds it.
//
//	$ echo "1 2 3 4 5 6" | viewdemo -even
//	12
//	$ echo "1 2 0 3 4 0 5" | viewdemo -delim 0
//	[1 2]
//	[3 4]
//	[5]
package main

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"rangekit/seqs"
)

type options struct {
	input string
	drop  int
	take  int
	even  bool
	delim string
}

func parseFlags(args []string, stderr io.Writer) (options, bool, error) {
	var opts options
	var verbose bool

	fs := flag.NewFlagSet("viewdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "read numbers from this string instead of stdin")
	fs.IntVar(&opts.drop, "drop", 0, "skip this many leading numbers")
	fs.IntVar(&opts.take, "take", -1, "stop after this many numbers (-1 for no limit)")
	fs.BoolVar(&opts.even, "even", false, "keep only even numbers")
	fs.StringVar(&opts.delim, "delim", "", "split on this space-separated run of numbers instead of summing")
	fs.BoolVar(&verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return opts, false, err
	}
	return opts, verbose, nil
}

func parseDelim(s string) ([]int, error) {
	var delim []int
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bad delimiter %q", f)
		}
		delim = append(delim, n)
	}
	return delim, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, verbose, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src := stdin
	if opts.input != "" {
		src = strings.NewReader(opts.input)
	}

	pulled := 0
	stream := seqs.Ints(src)
	var nums iter.Seq[int] = seqs.Peek(stream.All(), func(int) { pulled++ })
	nums = seqs.Drop(nums, opts.drop)
	if opts.even {
		nums = seqs.Filter(nums, func(x int) bool { return x%2 == 0 })
	}
	if opts.take >= 0 {
		nums = seqs.Take(nums, opts.take)
	}
	logger.Debug("pipeline built", "drop", opts.drop, "take", opts.take, "even", opts.even, "pulled", pulled)

	if opts.delim != "" {
		delim, err := parseDelim(opts.delim)
		if err != nil {
			logger.Error("invalid flag", "err", err)
			return 2
		}
		segments := 0
		for seg := range seqs.LazySplit(nums, delim...) {
			fmt.Fprintln(stdout, slices.Collect(seg))
			segments++
		}
		logger.Debug("split done", "segments", segments, "pulled", pulled)
	} else {
		fmt.Fprintln(stdout, seqs.Sum(nums))
		logger.Debug("sum done", "pulled", pulled)
	}

	if err := stream.Err(); err != nil {
		logger.Error("reading input", "err", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
