package reduce

import (
	"bytes"
	"testing"
)

func TestNormalizeIdentifiersCollapsesRepeatedName(t *testing.T) {
	t.Parallel()

	src := []byte("longname + longname + longname")

	e, err := New(src, func(v []byte) bool {
		return bytes.Count(v, []byte("+")) >= 2
	}, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.normalizeIdentifiers()

	if bytes.Contains(e.Current(), []byte("longname")) {
		t.Fatalf("expected the repeated identifier to shrink away, got %q", e.Current())
	}
}

func TestNormalizeIdentifiersIgnoresSingleOccurrence(t *testing.T) {
	t.Parallel()

	src := []byte("onlyonce")

	e, err := New(src, func([]byte) bool { return true }, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.normalizeIdentifiers()

	// "onlyonce" occurs exactly once, so it never enters the candidate
	// list (which requires count > 1) and the pass leaves current alone.
	if string(e.Current()) != "onlyonce" {
		t.Fatalf("got %q, want unchanged %q", e.Current(), "onlyonce")
	}
}

func TestNormalizeIdentifiersBreaksTiesByFirstOccurrence(t *testing.T) {
	t.Parallel()

	// "aaaa" and "bbbb" tie on length*occurrence-count (4*2 == 4*2).
	// "aaaa" occurs first in the source, so it must be the one tried
	// first, every run, regardless of Go's randomized map iteration
	// order.
	src := []byte("aaaa bbbb aaaa bbbb")

	var first []byte

	for i := 0; i < 20; i++ {
		e, err := New(append([]byte(nil), src...), func(v []byte) bool {
			return bytes.Count(v, []byte("bbbb")) == 2
		}, false, nil)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		e.normalizeIdentifiers()

		got := e.Current()

		if first == nil {
			first = append([]byte(nil), got...)
			continue
		}

		if !bytes.Equal(first, got) {
			t.Fatalf("tied identifiers produced non-deterministic results: %q vs %q", first, got)
		}
	}
}
