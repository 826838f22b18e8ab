package reduce

import (
	"bytes"
	"testing"
)

func TestNormalizeWhitespaceCollapsesBlankLinesAndTrims(t *testing.T) {
	t.Parallel()

	e, err := New([]byte("  a  \r\n\n\n  b  \n"), func(v []byte) bool {
		return bytesContain(v, 'a') && bytesContain(v, 'b')
	}, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.normalizeWhitespace()

	if bytesContain(e.Current(), '\r') {
		t.Fatalf("carriage return survived: %q", e.Current())
	}

	if bytes.Contains(e.Current(), []byte("\n\n")) {
		t.Fatalf("blank line survived: %q", e.Current())
	}
}

func TestRemoveCommentsStripsLineComments(t *testing.T) {
	t.Parallel()

	src := []byte("keep\n// a comment\nkeep2\n")

	e, err := New(src, func(v []byte) bool {
		return bytesContain(v, 'k')
	}, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.removeComments()

	if bytes.Contains(e.Current(), []byte("comment")) {
		t.Fatalf("comment text survived: %q", e.Current())
	}
}

func TestKillStringsDeletesBetweenAdjacentQuotePairs(t *testing.T) {
	t.Parallel()

	src := []byte(`"one" "two"`)

	e, err := New(src, func([]byte) bool { return true }, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.killStrings()

	if bytes.Contains(e.Current(), []byte("one")) || bytes.Contains(e.Current(), []byte("two")) {
		t.Fatalf("string interiors survived: %q", e.Current())
	}
}

func TestDeleteBracketContentsEmptiesBraces(t *testing.T) {
	t.Parallel()

	src := []byte("foo{bar}baz")

	e, err := New(src, func(v []byte) bool {
		return bytesContain(v, 'f') && bytesContain(v, 'z')
	}, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.deleteBracketContents()

	if bytes.Contains(e.Current(), []byte("bar")) {
		t.Fatalf("brace contents survived: %q", e.Current())
	}
}

func TestDebracketRemovesBracketCharacters(t *testing.T) {
	t.Parallel()

	src := []byte("{abc}")

	e, err := New(src, func([]byte) bool { return true }, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.debracket()

	if bytesContain(e.Current(), '{') || bytesContain(e.Current(), '}') {
		t.Fatalf("braces survived: %q", e.Current())
	}
}

func TestPullOutBracesReplacesOpenBraceWithSemicolon(t *testing.T) {
	t.Parallel()

	src := []byte("head{body}")

	e, err := New(src, func(v []byte) bool {
		return bytesContain(v, 'h') && bytesContain(v, 'b')
	}, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.pullOutBraces()

	if bytesContain(e.Current(), '{') {
		t.Fatalf("open brace survived: %q", e.Current())
	}
}

func TestPrefixLinesTruncatesAtFirstSpace(t *testing.T) {
	t.Parallel()

	src := []byte("keyword rest of the line\n")

	e, err := New(src, func(v []byte) bool {
		return bytesContain(v, 'k')
	}, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.prefixLines()

	if bytes.Contains(e.Current(), []byte("rest")) {
		t.Fatalf("tail of line survived: %q", e.Current())
	}
}

func TestPrefixLinesNoSpaceIsNoop(t *testing.T) {
	t.Parallel()

	src := []byte("noSpacesHere;alsoNone;")

	e, err := New(src, func([]byte) bool { return true }, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.prefixLines()

	if string(e.Current()) != string(src) {
		t.Fatalf("expected no change with no spaces present, got %q", e.Current())
	}
}
