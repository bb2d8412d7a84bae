// Package rubric defines the evaluation criteria a story is judged against.
// The catalog is static data: an ordered sequence of named criteria, each
// with four ordinal anchor levels (4 = best). No behavior beyond lookup.
package rubric

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LevelCount is the number of anchor levels every criterion carries.
// Levels are densely numbered 1..LevelCount; 4 is the best score.
const LevelCount = 4

// Criterion is one independently scored dimension of story quality.
type Criterion struct {
	// Key uniquely identifies the criterion within a catalog. Keys are
	// stable across runs; the judge is asked to echo them back verbatim,
	// although the critique parser never relies on that.
	Key         string
	Description string
	// Levels holds the anchor sentence for each ordinal level.
	// Levels[0] describes score 1, Levels[3] describes score 4.
	Levels [LevelCount]string
}

// Level returns the anchor sentence for score n (1-4).
// Out-of-range scores return the empty string.
func (c Criterion) Level(n int) string {
	if n < 1 || n > LevelCount {
		return ""
	}
	return c.Levels[n-1]
}

// Catalog is an ordered sequence of criteria, unique by key.
// A catalog is immutable for the lifetime of a run.
type Catalog []Criterion

// Keys returns the criterion keys in catalog order.
func (cat Catalog) Keys() []string {
	keys := make([]string, len(cat))
	for i, c := range cat {
		keys[i] = c.Key
	}
	return keys
}

// Lookup returns the criterion with the given key, if present.
func (cat Catalog) Lookup(key string) (Criterion, bool) {
	for _, c := range cat {
		if c.Key == key {
			return c, true
		}
	}
	return Criterion{}, false
}

// Validate checks catalog invariants: at least one criterion, unique
// non-empty keys, and exactly four non-empty anchor levels per criterion.
func (cat Catalog) Validate() error {
	if len(cat) == 0 {
		return fmt.Errorf("rubric: catalog is empty")
	}
	seen := make(map[string]bool, len(cat))
	for _, c := range cat {
		if c.Key == "" {
			return fmt.Errorf("rubric: criterion with empty key")
		}
		if seen[c.Key] {
			return fmt.Errorf("rubric: duplicate criterion key %q", c.Key)
		}
		seen[c.Key] = true
		for n := 1; n <= LevelCount; n++ {
			if c.Level(n) == "" {
				return fmt.Errorf("rubric: criterion %q missing level %d", c.Key, n)
			}
		}
	}
	return nil
}

// MarshalJSON renders the catalog as an object keyed by criterion, in
// catalog order. encoding/json sorts map keys, which would reorder the
// criteria in the judge prompt, so the object is assembled by hand.
// The shape mirrors what the judge prompt embeds:
//
//	{"key": {"description": "...", "rubric": {"1": "...", ..., "4": "..."}}}
func (cat Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range cat {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Key)
		if err != nil {
			return nil, fmt.Errorf("rubric: marshal key %q: %w", c.Key, err)
		}
		buf.Write(key)
		buf.WriteString(`:{"description":`)
		desc, err := json.Marshal(c.Description)
		if err != nil {
			return nil, fmt.Errorf("rubric: marshal description for %q: %w", c.Key, err)
		}
		buf.Write(desc)
		buf.WriteString(`,"rubric":{`)
		for n := 1; n <= LevelCount; n++ {
			if n > 1 {
				buf.WriteByte(',')
			}
			anchor, err := json.Marshal(c.Level(n))
			if err != nil {
				return nil, fmt.Errorf("rubric: marshal level %d for %q: %w", n, c.Key, err)
			}
			fmt.Fprintf(&buf, `"%d":`, n)
			buf.Write(anchor)
		}
		buf.WriteString("}}")
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
