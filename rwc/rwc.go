// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.
//
// Rwc counts lines, words, characters and bytes

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/as/log"
)

const (
	Prefix   = "rwc: "
	Synopsis = "Usage: rwc [-lwmc] [--debug] FILE..."
)

var errUsage = errors.New("no input files")

func main() {
	os.Exit(rwc(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// rwc runs the command line args and returns the exit status.
func rwc(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseArgs(args)
	switch err {
	case nil:
	case errHelp:
		usage(stdout)
		return 0
	case errVersion:
		fmt.Fprintln(stdout, "rwc", Version)
		return 0
	default:
		printerr(stderr, err)
		fmt.Fprintln(stderr, Synopsis)
		return 1
	}

	log.Service = "rwc"
	log.DebugOn = o.debug
	log.SetOutput(stderr)

	err = run(o, stdin, stdout, stderr)
	if err == errUsage {
		fmt.Fprintln(stderr, Synopsis)
		return 1
	}
	if err != nil {
		printerr(stderr, err)
		return 1
	}
	return 0
}

// run counts each file in o.files in order and writes one row per file to
// stdout, followed by a totals row when more than one file was named.
// Files that cannot be opened are reported to stderr and skipped. A read
// error stops the run.
func run(o *options, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(o.files) == 0 {
		return errUsage
	}
	totals := &tally{name: "total"}
	for _, name := range o.files {
		fd, err := open(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open %s: %s\n", name, reason(err))
			continue
		}
		t, err := count(fd, o.metrics)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		t.name = name
		log.Debug.Add(
			"file", name,
			"lines", t.lines,
			"words", t.words,
			"chars", t.chars,
			"bytes", t.bytes,
		).F("counted")

		totals.add(t)
		fmt.Fprintf(stdout, "%s %s\n", o.format(t), t)
	}
	if len(o.files) > 1 {
		fmt.Fprintf(stdout, "%s %s\n", o.format(totals), totals)
	}
	return nil
}

// format renders the selected counts of t as 8 column fields, always in
// the order lines, words, chars, bytes.
func (m metrics) format(t *tally) string {
	var b strings.Builder
	if m.lines {
		fmt.Fprintf(&b, "%8d", t.lines)
	}
	if m.words {
		fmt.Fprintf(&b, "%8d", t.words)
	}
	if m.chars {
		fmt.Fprintf(&b, "%8d", t.chars)
	}
	if m.bytes {
		fmt.Fprintf(&b, "%8d", t.bytes)
	}
	return b.String()
}

// open opens the named file. The name - is the standard input.
func open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(name)
}

// reason returns the operating system's part of an open error,
// capitalized, e.g. "No such file or directory".
func reason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	s := err.Error()
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func printerr(w io.Writer, v ...interface{}) {
	fmt.Fprint(w, Prefix)
	fmt.Fprintln(w, v...)
}

func usage(w io.Writer) {
	fmt.Fprint(w, `
NAME
	rwc - word count

SYNOPSIS
	rwc [ -lwmc ] [ --debug ] file ...

DESCRIPTION
	Rwc counts lines, words and characters in each file
	and prints one row per file: the counts in columns
	eight wide, then the file name. When more than one
	file is named, a final row holds the totals.

	The default behavior is equal to: rwc -lwm

	Counts are always printed in the order lines, words,
	characters, bytes, whatever the order of the flags.

	A file named - is the standard input. A file that
	cannot be opened is reported and skipped.

FLAGS
	-l, --lines    Count newline terminated lines.
	-w, --words    Count runs of non-space characters.
	-m, --chars    Count characters.
	-c, --bytes    Count bytes.
	--debug        Log each counted file to stderr as JSON.
	-V, --version  Print the version.

NOMENCLATURE
	A character is a UTF-8 rune. Each byte that is not
	part of a valid rune counts as one character, the
	Unicode replacement character U+FFFD.

	A line is a run of bytes ending in a newline. A last
	line without one is not counted.

EXAMPLE
	Count lines, words and chars in file1 and file2:
	rwc file1 file2

	Count only the lines of /etc/hosts
	rwc -l /etc/hosts

BUGS
	Words are delimited by Unicode white space only;
	punctuation does not split them.
`)
}
