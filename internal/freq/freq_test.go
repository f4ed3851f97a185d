package freq

import (
	"reflect"
	"testing"
)

func TestCount_SkipsSingleRuneTokens(t *testing.T) {
	tokens := []string{"a", "go", "b", "世", "世界", "x", "go"}
	table := Count(tokens)

	if table.Get("a") != 0 || table.Get("b") != 0 || table.Get("世") != 0 {
		t.Fatalf("single-rune tokens must not enter the table: %+v", table.Entries())
	}
	if got := table.Get("go"); got != 2 {
		t.Fatalf("expected go=2, got %d", got)
	}
	if got := table.Get("世界"); got != 1 {
		t.Fatalf("expected 世界=1, got %d", got)
	}
	// Sum equals the number of qualifying tokens (go, 世界, go).
	if got := table.Sum(); got != 3 {
		t.Fatalf("expected sum 3, got %d", got)
	}
}

func TestCount_SkipsEmptyTokens(t *testing.T) {
	table := Count([]string{"", "ok"})
	if table.Len() != 1 || table.Get("ok") != 1 {
		t.Fatalf("expected only %q counted, got %+v", "ok", table.Entries())
	}
}

func TestCount_RuneLengthNotByteLength(t *testing.T) {
	// A single CJK ideograph is three bytes but one rune, so it is skipped.
	table := Count([]string{"界"})
	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %+v", table.Entries())
	}
}

func TestCount_CaseSensitive(t *testing.T) {
	table := Count([]string{"Hello", "hello", "WORLD", "world"})
	for _, w := range []string{"Hello", "hello", "WORLD", "world"} {
		if table.Get(w) != 1 {
			t.Fatalf("expected %q counted once, got %d", w, table.Get(w))
		}
	}
	if table.Len() != 4 {
		t.Fatalf("expected 4 distinct case-sensitive words, got %d", table.Len())
	}
}

func TestTopN_SortedDescendingStableTies(t *testing.T) {
	// cc and bb tie on count; bb was inserted first and must stay first.
	tokens := []string{"bb", "aa", "cc", "aa", "cc", "bb", "aa"}
	table := Count(tokens)

	got := table.TopN(3)
	want := []Entry{{"aa", 3}, {"bb", 2}, {"cc", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top-3 mismatch: got %+v want %+v", got, want)
	}
}

func TestTopN_TruncatesToTableSize(t *testing.T) {
	table := Count([]string{"aa", "bb"})
	if got := len(table.TopN(20)); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	if got := len(table.TopN(1)); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
	if got := len(table.TopN(0)); got != 0 {
		t.Fatalf("expected 0 entries, got %d", got)
	}
	if got := len(table.TopN(-1)); got != 0 {
		t.Fatalf("expected 0 entries for negative n, got %d", got)
	}
}

func TestTopN_SumNeverExceedsTableSum(t *testing.T) {
	tokens := []string{"aa", "aa", "bb", "cc", "cc", "cc", "dd"}
	table := Count(tokens)

	for n := 0; n <= table.Len()+2; n++ {
		top := table.TopN(n)
		if SumCounts(top) > table.Sum() {
			t.Fatalf("n=%d: top sum %d exceeds table sum %d", n, SumCounts(top), table.Sum())
		}
		if n >= table.Len() && SumCounts(top) != table.Sum() {
			t.Fatalf("n=%d: expected equality, got %d vs %d", n, SumCounts(top), table.Sum())
		}
	}
}

func TestWordsAndCounts_PreserveOrder(t *testing.T) {
	entries := []Entry{{"aa", 3}, {"bb", 2}, {"cc", 2}}
	if got := Words(entries); !reflect.DeepEqual(got, []string{"aa", "bb", "cc"}) {
		t.Fatalf("words mismatch: %v", got)
	}
	if got := Counts(entries); !reflect.DeepEqual(got, []int{3, 2, 2}) {
		t.Fatalf("counts mismatch: %v", got)
	}
}

func TestEmptyTable(t *testing.T) {
	table := Count(nil)
	if table.Len() != 0 || table.Sum() != 0 {
		t.Fatalf("expected empty table")
	}
	if got := table.TopN(20); len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}
