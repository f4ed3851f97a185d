// Package freq counts word occurrences and derives top-N views.
package freq

import (
	"sort"
	"unicode/utf8"
)

// DefaultTopN is the number of entries shown by the standard views.
const DefaultTopN = 20

// Entry is a single word and its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Table maps distinct words to occurrence counts while remembering the
// order in which words were first seen. First-seen order is the tiebreak
// for equal counts in TopN, so it must survive aggregation.
type Table struct {
	counts map[string]int
	order  []string
}

// Count builds a Table from a token sequence. Tokens shorter than two
// runes are skipped; everything else increments its count. The sum of all
// counts therefore equals the number of qualifying tokens.
func Count(tokens []string) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, tok := range tokens {
		// Table keys are words of two or more runes; this also drops any
		// empty token a segmenter might emit.
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if _, seen := t.counts[tok]; !seen {
			t.order = append(t.order, tok)
		}
		t.counts[tok]++
	}
	return t
}

// Len reports the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Get returns the count for word, zero when absent.
func (t *Table) Get(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[word]
}

// Sum returns the total of all counts.
func (t *Table) Sum() int {
	if t == nil {
		return 0
	}
	var n int
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Entries returns all entries in first-seen order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		out = append(out, Entry{Word: w, Count: t.counts[w]})
	}
	return out
}

// TopN returns at most n entries sorted by count descending. Entries with
// equal counts keep their first-seen order, which requires a stable sort.
// Non-positive n yields no entries.
func (t *Table) TopN(n int) []Entry {
	if n <= 0 {
		return nil
	}
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Words returns the words of entries in order.
func Words(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}

// Counts returns the counts of entries in order.
func Counts(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Count
	}
	return out
}

// SumCounts totals the counts of entries.
func SumCounts(entries []Entry) int {
	var n int
	for _, e := range entries {
		n += e.Count
	}
	return n
}
