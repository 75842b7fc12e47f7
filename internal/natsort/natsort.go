// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package natsort orders file names the way people expect: runs of digits
// compare by numeric value, so "img2.png" sorts before "img10.png".
//
// A name is split into alternating literal and number segments. Keys are
// compared segment by segment. Literals compare bytewise; numbers compare
// by value. When a number meets a literal at the same position, the number
// orders first. When every shared segment is equal, the shorter key orders
// first.
package natsort

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Kind tags a segment as literal text or a number.
type Kind int

const (
	Number Kind = iota
	Literal
)

// Segment is one run of a sort key. For Number segments Text holds the
// digits with leading zeros removed ("0" for an all-zero run).
type Segment struct {
	Kind Kind
	Text string
}

// Key is the natural sort key of a name.
type Key []Segment

// KeyOf splits name into its natural sort key. The name is NFC-normalized
// first so composed and decomposed spellings produce the same key.
func KeyOf(name string) Key {
	name = norm.NFC.String(name)

	var key Key
	last := 0
	for _, loc := range digitRun.FindAllStringIndex(name, -1) {
		if loc[0] > last {
			key = append(key, Segment{Kind: Literal, Text: name[last:loc[0]]})
		}
		key = append(key, Segment{Kind: Number, Text: trimZeros(name[loc[0]:loc[1]])})
		last = loc[1]
	}
	if last < len(name) {
		key = append(key, Segment{Kind: Literal, Text: name[last:]})
	}
	return key
}

func trimZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Compare returns -1, 0 or +1 as a orders before, equal to, or after b.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareSegment(a, b Segment) int {
	if a.Kind != b.Kind {
		if a.Kind == Number {
			return -1
		}
		return 1
	}
	if a.Kind == Number {
		// Digits have no leading zeros, so a longer run is a larger value.
		if len(a.Text) != len(b.Text) {
			if len(a.Text) < len(b.Text) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a.Text, b.Text)
}

// entry pairs a name with its key so each name is split once per sort.
type entry struct {
	name string
	key  Key
}

func newEntry(name string) entry {
	return entry{name: name, key: KeyOf(name)}
}

// before reports whether e orders before o. Names with equal keys ("img02"
// and "img2") fall back to a bytewise comparison so the order is total.
func (e entry) before(o entry) bool {
	if c := Compare(e.key, o.key); c != 0 {
		return c < 0
	}
	return e.name < o.name
}

// Strings sorts names in natural order in place.
func Strings(names []string) {
	entries := make([]entry, len(names))
	for i, n := range names {
		entries[i] = newEntry(n)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].before(entries[j])
	})
	for i, e := range entries {
		names[i] = e.name
	}
}
