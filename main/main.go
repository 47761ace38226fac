// Command fsgrep reports byte offsets of a needle in files or stdin.
//
//	fsgrep [-r] [-a] [-c] [-x] [-q] [-s N] NEEDLE [FILE...]
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kivattt/getopt"
	"github.com/rawbytedev/faststring"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type config struct {
	reverse bool
	all     bool
	count   bool
	hex     bool
	quiet   bool
	start   int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fsgrep: ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	var cfg config
	fs := getopt.NewFlagSet("fsgrep", flag.ContinueOnError)
	fs.BoolVar(&cfg.reverse, "reverse", false, "report the last match instead of the first")
	fs.BoolVar(&cfg.all, "all", false, "report every match, overlapping ones included")
	fs.BoolVar(&cfg.count, "count", false, "print the number of matches per input")
	fs.BoolVar(&cfg.hex, "hex", false, "NEEDLE is hex encoded bytes")
	fs.BoolVar(&cfg.quiet, "quiet", false, "print nothing, only set the exit status")
	fs.IntVar(&cfg.start, "start", -1, "start index for single-match search")
	fs.Alias("r", "reverse")
	fs.Alias("a", "all")
	fs.Alias("c", "count")
	fs.Alias("x", "hex")
	fs.Alias("q", "quiet")
	fs.Alias("s", "start")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	rest := fs.Args()
	if len(rest) < 1 {
		log.Print("missing NEEDLE")
		fs.PrintDefaults()
		return exitError
	}

	needle := faststring.New(rest[0])
	if cfg.hex {
		b, err := hex.DecodeString(rest[0])
		if err != nil {
			log.Printf("bad hex needle: %v", err)
			return exitError
		}
		needle = faststring.FromBytes(b)
	}

	inputs := rest[1:]
	status := exitNoMatch
	if len(inputs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			log.Printf("read stdin: %v", err)
			return exitError
		}
		if search(cfg, "-", faststring.Wrap(data), needle, stdout, false) {
			status = exitMatch
		}
		return status
	}
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Print(err)
			status = exitError
			continue
		}
		found := search(cfg, path, faststring.Wrap(data), needle, stdout, len(inputs) > 1)
		if found && status == exitNoMatch {
			status = exitMatch
		}
	}
	return status
}

// search prints the matches of needle in hay and reports whether any exist.
func search(cfg config, name string, hay, needle faststring.FastString, w io.Writer, prefix bool) bool {
	var offsets []int
	if cfg.all || cfg.count {
		offsets = hay.Positions(needle)
	} else {
		opts := faststring.SearchOptions{Reverse: cfg.reverse}
		if cfg.start >= 0 {
			opts.Start, opts.HasStart = cfg.start, true
		}
		if p := hay.Position(needle, opts); p != faststring.NotFound {
			offsets = []int{p}
		}
	}
	if cfg.quiet {
		return len(offsets) > 0
	}
	if cfg.count {
		if prefix {
			fmt.Fprintf(w, "%s:%d\n", name, len(offsets))
		} else {
			fmt.Fprintln(w, len(offsets))
		}
		return len(offsets) > 0
	}
	for _, off := range offsets {
		if prefix {
			fmt.Fprintf(w, "%s:%d\n", name, off)
		} else {
			fmt.Fprintln(w, off)
		}
	}
	return len(offsets) > 0
}
