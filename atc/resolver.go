package atc

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Resolver answers disease code lookups for ATC codes. It only reads its table
// and can be shared between goroutines.
type Resolver struct {
	table *Table
}

// NewResolver returns a resolver over t.
func NewResolver(t *Table) *Resolver {
	return &Resolver{table: t}
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the resolver over the built-in catalog.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(MustTable(DefaultEntries()))
	})
	return defaultResolver
}

// Table returns the underlying table.
func (r *Resolver) Table() *Table {
	return r.table
}

// Resolve returns the union of the disease codes of every non-empty prefix of
// code present in the table, sorted ascending. Matching is cumulative: A02BC01
// picks up both the A02BC and the A02B entries. It reports false when code is
// empty or when no prefix matches.
func (r *Resolver) Resolve(code string) ([]int, bool) {
	if code == "" {
		return nil, false
	}

	found := make(map[int]struct{})
	for end := len(code); end > 0; end-- {
		// only cut on character boundaries
		if end < len(code) && !utf8.RuneStart(code[end]) {
			continue
		}
		if codes, ok := r.table.Lookup(code[:end]); ok {
			for _, c := range codes {
				found[c] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return nil, false
	}

	out := make([]int, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	slices.Sort(out)
	return out, true
}

// ResolveString is Resolve in the comma separated form stored in the output
// column.
func (r *Resolver) ResolveString(code string) (string, bool) {
	codes, ok := r.Resolve(code)
	if !ok {
		return "", false
	}
	return FormatCodes(codes), true
}

// FormatCodes joins codes with commas, e.g. "552,553,868".
func FormatCodes(codes []int) string {
	var b strings.Builder
	for i, c := range codes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// ParseCodes reads a value written by FormatCodes. An empty string yields no
// codes.
func ParseCodes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		c, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid disease code %q: %w", p, err)
		}
		codes = append(codes, c)
	}
	return codes, nil
}
