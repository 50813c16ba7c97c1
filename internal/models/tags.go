package models

import (
	"slices"
	"strings"
)

// TagSet is an immutable set of unique tags. The zero value is empty.
type TagSet struct {
	tags []Tag // sorted, unique
}

// NewTagSet builds a set from tags, dropping duplicates.
func NewTagSet(tags ...Tag) TagSet {
	out := slices.Clone(tags)
	slices.Sort(out)
	return TagSet{tags: slices.Compact(out)}
}

// Len returns the number of tags.
func (s TagSet) Len() int { return len(s.tags) }

// Contains reports whether t is in the set.
func (s TagSet) Contains(t Tag) bool {
	_, ok := slices.BinarySearch(s.tags, t)
	return ok
}

// Slice returns the tags in sorted order.
func (s TagSet) Slice() []Tag { return slices.Clone(s.tags) }

// Union returns a set with the tags of both s and o.
func (s TagSet) Union(o TagSet) TagSet {
	return NewTagSet(append(slices.Clone(s.tags), o.tags...)...)
}

// Without returns s minus every tag in o.
func (s TagSet) Without(o TagSet) TagSet {
	out := make([]Tag, 0, len(s.tags))
	for _, t := range s.tags {
		if !o.Contains(t) {
			out = append(out, t)
		}
	}
	return TagSet{tags: out}
}

// Intersect returns the tags present in both s and o.
func (s TagSet) Intersect(o TagSet) TagSet {
	out := make([]Tag, 0, len(s.tags))
	for _, t := range s.tags {
		if o.Contains(t) {
			out = append(out, t)
		}
	}
	return TagSet{tags: out}
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(o TagSet) bool { return slices.Equal(s.tags, o.tags) }

// String renders the set as "[a, b]".
func (s TagSet) String() string {
	parts := make([]string, len(s.tags))
	for i, t := range s.tags {
		parts[i] = string(t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
