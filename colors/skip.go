package colors

import (
	"fmt"

	"github.com/npillmayer/blockstyle/maybe"
)

const (
	skipNone uint8 = iota
	skipAll
	skipFeatures
)

// Skip is an option type for suppressing the serialization of color
// classes and styles. The zero value is NoSkip.
//
// A block type may render its color markup by other means (e.g., server
// side) and therefore opt out of serialization, either globally or for
// individual features.
type Skip struct {
	kind     uint8
	features []Feature
}

/*
type Skip
	= NoSkip
	| SkipAll
	| SkipFeatures [Feature]
*/

// NoSkip serializes every supported feature.
func NoSkip() Skip {
	return Skip{kind: skipNone}
}

// SkipAll suppresses serialization of every feature.
func SkipAll() Skip {
	return Skip{kind: skipAll}
}

// SkipFeatures suppresses serialization of a set of named features. An empty
// set is legal and skips nothing, but is still a set: it never reports an
// un-named feature as skipped.
func SkipFeatures(features ...Feature) Skip {
	fs := make([]Feature, len(features))
	copy(fs, features)
	return Skip{kind: skipFeatures, features: fs}
}

// Applies reports whether serialization is suppressed for feature.
//
// For a set of features, the result is true iff feature is present and a
// member of the set. Otherwise the result is the boolean flag, regardless
// of feature.
func (s Skip) Applies(feature maybe.Maybe[Feature]) bool {
	switch s.kind {
	case skipAll:
		return true
	case skipFeatures:
		f, ok := maybe.Get(feature)
		if !ok {
			return false
		}
		for _, x := range s.features {
			if x == f {
				return true
			}
		}
	}
	return false
}

func (s Skip) String() string {
	switch s.kind {
	case skipAll:
		return "all"
	case skipFeatures:
		return fmt.Sprintf("%v", s.features)
	}
	return "none"
}

// Match starts a switch-style match on a skip value, similar to
// Support.Match().
func (s Skip) Match() *SkipMatcher {
	return &SkipMatcher{skip: s}
}

// SkipMatcher matches a skip value against patterns.
type SkipMatcher struct {
	skip Skip
}

// IsKind matches if the skip value is of the same kind as s.
func (m *SkipMatcher) IsKind(s Skip) *SkipMatcher {
	if m.skip.kind == s.kind {
		return m
	}
	return nil
}

// Features matches a set of features and extracts a copy of the set, if fs
// is non-nil.
func (m *SkipMatcher) Features(fs *[]Feature) *SkipMatcher {
	if m.skip.kind == skipFeatures {
		if fs != nil {
			*fs = append([]Feature(nil), m.skip.features...)
		}
		return m
	}
	return nil
}
