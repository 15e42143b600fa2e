package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var all = metrics{lines: true, words: true, chars: true, bytes: true}

// counts prints t by field; %v would print only its name.
func counts(t *tally) string {
	return fmt.Sprintf("lines=%d words=%d chars=%d bytes=%d", t.lines, t.words, t.chars, t.bytes)
}

func TestCount(t *testing.T) {
	for _, tc := range []struct {
		name                       string
		in                         string
		lines, words, chars, bytes uint64
	}{
		{"empty", "", 0, 0, 0, 0},
		{"hello", "hello world\n", 1, 2, 12, 12},
		{"twolines", "foo\nbar\n", 2, 2, 8, 8},
		{"unterminated", "no newline", 0, 2, 10, 10},
		{"blank", "\n\n", 2, 0, 2, 2},
		{"padded", "  lead  trail  \n", 1, 2, 16, 16},
		{"controls", "tab\tsep\vx\fy\r\n", 1, 4, 13, 13},
		{"accents", "héllo wörld\n", 1, 2, 12, 14},
		{"nbsp", "a\u00a0b\n", 1, 2, 4, 5},
		{"ideographic", "日本\u3000語\n", 1, 2, 5, 13},
		{"invalid", "a\xffb\n", 1, 1, 4, 4},
		{"binary", "\xff\xfe", 0, 1, 2, 2},
	} {
		have, err := count(strings.NewReader(tc.in), all)
		if err != nil {
			t.Fatalf("%s: %s", tc.name, err)
		}
		want := tally{lines: tc.lines, words: tc.words, chars: tc.chars, bytes: tc.bytes}
		if *have != want {
			t.Logf("%s: %q", tc.name, tc.in)
			t.Logf("have %s", counts(have))
			t.Logf("want %s", counts(&want))
			t.Fail()
		}
	}
}

func TestCountLongLine(t *testing.T) {
	in := strings.Repeat("ab ", 50000) + "\n"
	have, err := count(strings.NewReader(in), all)
	if err != nil {
		t.Fatal(err)
	}
	want := tally{lines: 1, words: 50000, chars: 150001, bytes: 150001}
	if *have != want {
		t.Fatalf("have %s, want %s", counts(have), counts(&want))
	}
}

// A line longer than the read buffer, made of multibyte runes, is cut
// mid-rune; neither the rune nor the word around it may be counted twice.
func TestCountSplitRune(t *testing.T) {
	in := strings.Repeat("é\u3000", 40000)
	have, err := count(strings.NewReader(in), all)
	if err != nil {
		t.Fatal(err)
	}
	want := tally{lines: 0, words: 40000, chars: 80000, bytes: 200000}
	if *have != want {
		t.Fatalf("have %s, want %s", counts(have), counts(&want))
	}
}

func TestCountSplitWord(t *testing.T) {
	in := strings.Repeat("x", BufferSize*2+7) + " y\n"
	have, err := count(strings.NewReader(in), metrics{words: true})
	if err != nil {
		t.Fatal(err)
	}
	if have.words != 2 {
		t.Fatalf("words: have %d, want 2", have.words)
	}
}

func TestCountSelected(t *testing.T) {
	in := "one two\nthree\n"
	for _, tc := range []struct {
		m    metrics
		want tally
	}{
		{metrics{lines: true}, tally{lines: 2}},
		{metrics{words: true}, tally{words: 3}},
		{metrics{chars: true}, tally{chars: 14}},
		{metrics{bytes: true}, tally{bytes: 14}},
		{metrics{lines: true, bytes: true}, tally{lines: 2, bytes: 14}},
	} {
		have, err := count(strings.NewReader(in), tc.m)
		if err != nil {
			t.Fatal(err)
		}
		if *have != tc.want {
			t.Logf("metrics %+v", tc.m)
			t.Logf("have %s, want %s", counts(have), counts(&tc.want))
			t.Fail()
		}
	}
}

var errDisk = errors.New("disk on fire")

// brokenReader yields its data, then fails.
type brokenReader struct {
	data string
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if b.data == "" {
		return 0, errDisk
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func TestCountReadError(t *testing.T) {
	for _, m := range []metrics{all, {bytes: true}, {lines: true}} {
		_, err := count(&brokenReader{data: "some\ntext"}, m)
		if !errors.Is(err, errDisk) {
			t.Fatalf("metrics %+v: have error %v, want %v", m, err, errDisk)
		}
	}
}

func TestTallyAdd(t *testing.T) {
	sum := &tally{name: "total"}
	sum.add(&tally{lines: 1, words: 2, chars: 3, bytes: 4})
	sum.add(&tally{lines: 10, words: 20, chars: 30, bytes: 40})
	want := tally{lines: 11, words: 22, chars: 33, bytes: 44, name: "total"}
	if *sum != want {
		t.Fatalf("have %s, want %s", counts(sum), counts(&want))
	}
}

func TestRunes(t *testing.T) {
	p := []byte("aé日")
	if n := runes(p[:2]) + runes(p[2:]); n != 3 {
		t.Fatalf("split runes: have %d, want 3", n)
	}
	if n := runes(nil); n != 0 {
		t.Fatalf("nil: have %d", n)
	}
}
