// Package atc maps ATC classification codes to disease codes through a curated
// prefix table. A code collects the disease codes of every prefix of it found in
// the table, from the full code down to its first character.
package atc

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

// MaxPrefixLen is the longest prefix a table key may have.
const MaxPrefixLen = 7

var (
	ErrInvalidPrefix   = errors.New("invalid prefix")
	ErrDuplicatePrefix = errors.New("duplicate prefix")
)

// Entry is one curated prefix with the disease codes it implies.
type Entry struct {
	Prefix string
	Codes  []int
}

// Codes is a literal list of disease codes.
func Codes(ids ...int) []int {
	return ids
}

// Range returns the contiguous codes lo, lo+1, ..., hi-1.
func Range(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	ids := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		ids = append(ids, i)
	}
	return ids
}

// Concat joins literal lists and ranges into one list.
func Concat(lists ...[]int) []int {
	var ids []int
	for _, l := range lists {
		ids = append(ids, l...)
	}
	return ids
}

// Table is an immutable prefix to disease code set mapping. Every value is
// stored sorted and without duplicates.
type Table struct {
	entries map[string][]int
}

// NewTable builds a table from entries, normalizing each value to a sorted set.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{entries: make(map[string][]int, len(entries))}

	for _, e := range entries {
		n := utf8.RuneCountInString(e.Prefix)
		if n == 0 || n > MaxPrefixLen {
			return nil, fmt.Errorf("%w: %q must have 1 to %d characters", ErrInvalidPrefix, e.Prefix, MaxPrefixLen)
		}
		if _, exists := t.entries[e.Prefix]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePrefix, e.Prefix)
		}
		t.entries[e.Prefix] = sortedSet(e.Codes)
	}

	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for literal
// catalogs known at compile time.
func MustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the codes stored under exactly this prefix.
// The returned slice must not be modified.
func (t *Table) Lookup(prefix string) ([]int, bool) {
	codes, ok := t.entries[prefix]
	return codes, ok
}

// Len returns the number of prefixes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Prefixes returns every key in lexical order.
func (t *Table) Prefixes() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Universe returns the sorted union of all disease codes in the table.
func (t *Table) Universe() []int {
	var all []int
	for _, codes := range t.entries {
		all = append(all, codes...)
	}
	return sortedSet(all)
}

func sortedSet(ids []int) []int {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
