// Command chipmux multiplexes bit strings over the default chip code book,
// or renders text as binary digits.
//
//	chipmux -in 1101                      # 0040
//	chipmux -in 1101 -format json         # {"name":"-in","length":4,"signal":[0,0,4,0]}
//	chipmux -file a.txt -file b.txt       # one line per file, computed in parallel
//	chipmux -mode render -render bytes -in A
//
// When -file names a missing file, it is created with the -in text first.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type config struct {
	in      string
	files   []string
	mode    string
	render  string
	format  string
	random  bool
	seed    int64
	noColor bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg   config
		files stringList
	)
	fs := flag.NewFlagSet("chipmux", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input text (bit string in multiplex mode)")
	fs.Var(&files, "file", "input file; repeatable. A missing file is created from -in")
	fs.StringVar(&cfg.mode, "mode", modeMultiplex, "multiplex|render")
	fs.StringVar(&cfg.render, "render", "naive", "render mode: naive|bytes|alpha-chars|alpha-bits")
	fs.StringVar(&cfg.format, "format", formatDecimal, "signal output format: decimal|json")
	fs.BoolVar(&cfg.random, "random", false, "use random chip codes (not implemented)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for -random")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable coloured output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.files = files

	switch cfg.mode {
	case modeMultiplex, modeRender:
	default:
		return cfg, fmt.Errorf("unknown -mode %q", cfg.mode)
	}
	switch cfg.format {
	case formatDecimal, formatJSON:
	default:
		return cfg, fmt.Errorf("unknown -format %q", cfg.format)
	}

	return cfg, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("chipmux: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
