// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.

package main

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	iocount "github.com/as/io/count"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const BufferSize = 1 << 16

// metrics selects what count computes. Unselected fields of a tally stay zero.
type metrics struct {
	lines, words, chars, bytes bool
}

func (m metrics) none() bool {
	return !m.lines && !m.words && !m.chars && !m.bytes
}

type tally struct {
	lines, words, chars, bytes uint64
	name                       string
}

func (t tally) String() string {
	return t.name
}

// add adds tally2 to tally t
func (t *tally) add(t2 *tally) {
	t.lines += t2.lines
	t.words += t2.words
	t.chars += t2.chars
	t.bytes += t2.bytes
}

// byteCounter counts the raw bytes read through it.
type byteCounter struct {
	io.Reader
	n uint64
}

func (b *byteCounter) Read(p []byte) (int, error) {
	n, err := b.Reader.Read(p)
	b.n += uint64(n)
	return n, err
}

// count reads in until EOF and tallies the metrics selected by m. The input
// is decoded as UTF-8 on the way in; each invalid byte counts as one U+FFFD.
// Only lines terminated by a newline are counted as lines.
func count(in io.Reader, m metrics) (*tally, error) {
	raw := &byteCounter{Reader: in}
	t := new(tally)
	if !m.lines && !m.words && !m.chars {
		if _, err := io.Copy(io.Discard, raw); err != nil {
			return nil, err
		}
		if m.bytes {
			t.bytes = raw.n
		}
		return t, nil
	}

	s := &scanner{m: m, t: t, nl: iocount.NewWriter("\n")}
	r := bufio.NewReaderSize(transform.NewReader(raw, xunicode.UTF8.NewDecoder()), BufferSize)
	for {
		chunk, err := r.ReadSlice('\n')
		s.scan(chunk)
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	s.flush()

	if m.lines {
		t.lines = uint64(s.nl.Seen())
	}
	if m.bytes {
		t.bytes = raw.n
	}
	return t, nil
}

// scanner carries word state across chunks. A chunk ends at a newline
// unless the line outgrew the read buffer, in which case a word or a rune
// may continue into the next chunk.
type scanner struct {
	m      metrics
	t      *tally
	nl     *iocount.Writer
	inword bool
	carry  []byte
}

func (s *scanner) scan(p []byte) {
	if len(p) == 0 {
		return
	}
	if s.m.lines {
		s.nl.Write(p)
	}
	if s.m.chars {
		s.t.chars += runes(p)
	}
	if s.m.words {
		s.words(p)
	}
}

func (s *scanner) words(p []byte) {
	if len(s.carry) > 0 {
		p = append(s.carry, p...)
		s.carry = nil
	}
	for len(p) > 0 {
		r, n := rune(p[0]), 1
		if r >= utf8.RuneSelf {
			if !utf8.FullRune(p) {
				s.carry = append([]byte(nil), p...)
				return
			}
			r, n = utf8.DecodeRune(p)
		}
		p = p[n:]
		if unicode.IsSpace(r) {
			s.inword = false
			continue
		}
		if !s.inword {
			s.inword = true
			s.t.words++
		}
	}
}

// flush settles a partial rune left at end of input. It can only be
// non-space, so it ends or extends a word.
func (s *scanner) flush() {
	if len(s.carry) > 0 && !s.inword {
		s.t.words++
	}
	s.carry = nil
}

// runes counts the rune starts in p. The decoder emits valid UTF-8,
// so a rune cut by the read buffer is counted exactly once.
func runes(p []byte) (n uint64) {
	for _, c := range p {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}
