package prettyplot

import (
	"sort"
	"strings"
)

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSetFrom(init []string) StringSet {
	s := make(StringSet, len(init))
	for _, v := range init {
		s.Add(v)
	}
	return s
}

func (s StringSet) String() string {
	return "[" + strings.Join(s.Elements(), " ") + "]"
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the members of s in sorted order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
