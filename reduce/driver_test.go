package reduce

import "testing"

func reduceFully(t *testing.T, initial []byte, predicate PredicateFunc) []byte {
	t.Helper()

	e, err := New(initial, predicate, false, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Reduce()

	return e.Current()
}

func TestReduceLengthAtLeastOneShrinksToOneByte(t *testing.T) {
	t.Parallel()

	got := reduceFully(t, []byte("hello world"), func(v []byte) bool {
		return len(v) >= 1
	})

	if len(got) != 1 {
		t.Fatalf("got %q (len %d), want a single byte", got, len(got))
	}
}

func TestReduceContainsCrashShrinksToTinyResult(t *testing.T) {
	t.Parallel()

	src := []byte(`
int main(void) {
    int x = 1;
    int y = 2;
    CRASH(x, y);
    return 0;
}
`)

	got := reduceFully(t, src, func(v []byte) bool {
		return bytesContainSub(v, "CRASH")
	})

	if !bytesContainSub(got, "CRASH") {
		t.Fatalf("result %q lost the required substring", got)
	}

	if len(got) > 5 {
		t.Fatalf("got %q (len %d), want len <= 5", got, len(got))
	}
}

func TestReduceParsesAsIntegerEqualTo42(t *testing.T) {
	t.Parallel()

	got := reduceFully(t, []byte("  0042  \n"), func(v []byte) bool {
		n, ok := parseTrimmedInt(v)
		return ok && n == 42
	})

	if string(got) != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestReduceContainsBalancedBracesWithSomethingInside(t *testing.T) {
	t.Parallel()

	src := []byte("prefix { stuff inside here } suffix")

	got := reduceFully(t, src, func(v []byte) bool {
		pairs := findPairedBrackets('{', '}', v)
		for _, p := range pairs {
			if p.close-p.open > 1 {
				return true
			}
		}

		return false
	})

	pairs := findPairedBrackets('{', '}', got)

	found := false

	for _, p := range pairs {
		if p.close-p.open > 1 {
			found = true
		}
	}

	if !found {
		t.Fatalf("result %q does not contain a non-empty brace pair", got)
	}
}

func TestReduceAlwaysTrueShrinksToEmpty(t *testing.T) {
	t.Parallel()

	got := reduceFully(t, []byte("abc"), func([]byte) bool { return true })

	if string(got) != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestReduceContainsExactlyAbInOrder(t *testing.T) {
	t.Parallel()

	got := reduceFully(t, []byte("xxxaxxxbxxx"), func(v []byte) bool {
		ai := indexOf(v, 'a')
		if ai < 0 {
			return false
		}

		bi := indexOf(v[ai+1:], 'b')

		return bi >= 0
	})

	if string(got) != "ab" {
		t.Fatalf("got %q, want %q", got, "ab")
	}
}

func bytesContainSub(v []byte, sub string) bool {
	return indexOfSub(v, sub) >= 0
}

func indexOfSub(v []byte, sub string) int {
	n, m := len(v), len(sub)
	if m == 0 {
		return 0
	}

	for i := 0; i+m <= n; i++ {
		if string(v[i:i+m]) == sub {
			return i
		}
	}

	return -1
}

func indexOf(v []byte, c byte) int {
	for i, b := range v {
		if b == c {
			return i
		}
	}

	return -1
}

func parseTrimmedInt(v []byte) (int, bool) {
	i, j := 0, len(v)
	for i < j && (v[i] == ' ' || v[i] == '\n' || v[i] == '\t') {
		i++
	}

	for j > i && (v[j-1] == ' ' || v[j-1] == '\n' || v[j-1] == '\t') {
		j--
	}

	if i == j {
		return 0, false
	}

	n := 0

	for _, c := range v[i:j] {
		if c < '0' || c > '9' {
			return 0, false
		}

		n = n*10 + int(c-'0')
	}

	return n, true
}
