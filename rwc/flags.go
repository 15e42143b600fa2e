package main

import (
	"errors"
	"io"

	"github.com/spf13/pflag"
)

const Version = "0.0.1"

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

type options struct {
	metrics
	debug bool
	files []string
}

// parseArgs parses the command line. Flags may follow file operands and
// short flags may be grouped, so -lmw and -wlm select the same metrics.
// With no metric selected, lines, words and chars are counted.
func parseArgs(args []string) (*options, error) {
	var (
		o    = new(options)
		h, v bool
	)
	f := pflag.NewFlagSet("rwc", pflag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.BoolVarP(&o.lines, "lines", "l", false, "count lines")
	f.BoolVarP(&o.words, "words", "w", false, "count words")
	f.BoolVarP(&o.chars, "chars", "m", false, "count characters")
	f.BoolVarP(&o.bytes, "bytes", "c", false, "count bytes")
	f.BoolVar(&o.debug, "debug", false, "log each counted file")

	f.BoolVarP(&h, "help", "h", false, "")
	f.BoolVarP(&v, "version", "V", false, "")

	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if h {
		return nil, errHelp
	}
	if v {
		return nil, errVersion
	}
	if o.none() {
		o.lines, o.words, o.chars = true, true, true
	}
	o.files = f.Args()
	return o, nil
}
