package colors

import (
	"fmt"

	"github.com/npillmayer/blockstyle/maybe"
)

// Feature names an individual color feature of a block.
type Feature string

// Color features which may be supported and serialized individually.
const (
	TextFeature       Feature = "text"
	BackgroundFeature Feature = "background"
	GradientsFeature  Feature = "gradients"
	LinkFeature       Feature = "link"
)

const (
	supportDisabled uint8 = iota
	supportEnabled
	supportDetailed
)

// Support is an option type for the color capabilities of a block type.
// The zero value is Disabled.
type Support struct {
	kind   uint8
	detail DetailedSupport // as given by the client, kind == supportDetailed
	flags  Flags           // resolved at construction time
}

/*
type Support
	= Disabled
	| Enabled                  -- text and background
	| Detailed DetailedSupport
*/

// DetailedSupport is a record of individual color capabilities.
// Absent fields resolve to defaults: Text and Background default to true,
// Gradients and Link default to false. A nil field is absent.
type DetailedSupport struct {
	Text              maybe.Maybe[bool]
	Background        maybe.Maybe[bool]
	Gradients         maybe.Maybe[bool]
	Link              maybe.Maybe[bool]
	SkipSerialization Skip
}

// Flags are the resolved color capabilities of a block type.
type Flags struct {
	HasText       bool
	HasBackground bool
	HasGradients  bool
	HasLink       bool
}

// Any is a predicate for any color capability being present.
func (f Flags) Any() bool {
	return f.HasText || f.HasBackground || f.HasGradients || f.HasLink
}

// Disabled creates a color support without any capabilities.
func Disabled() Support {
	return Support{kind: supportDisabled}
}

// Enabled creates a color support with text and background color
// capabilities. It is equivalent to a detailed support with all fields
// absent.
func Enabled() Support {
	return Support{
		kind:  supportEnabled,
		flags: Flags{HasText: true, HasBackground: true},
	}
}

// Detailed creates a color support from a record of individual capabilities.
// Defaults for absent fields are resolved here, once.
func Detailed(d DetailedSupport) Support {
	return Support{
		kind:   supportDetailed,
		detail: d,
		flags: Flags{
			HasText:       maybe.WithDefault(d.Text, true),
			HasBackground: maybe.WithDefault(d.Background, true),
			HasGradients:  maybe.WithDefault(d.Gradients, false),
			HasLink:       maybe.WithDefault(d.Link, false),
		},
	}
}

// IsDetailed is a predicate for a support created by Detailed(…).
func (s Support) IsDetailed() bool {
	return s.kind == supportDetailed
}

// Skip returns the serialization skipping of a detailed support. For other
// kinds of support it returns NoSkip.
func (s Support) Skip() Skip {
	if s.kind != supportDetailed {
		return NoSkip()
	}
	return s.detail.SkipSerialization
}

func (s Support) String() string {
	switch s.kind {
	case supportEnabled:
		return "enabled"
	case supportDetailed:
		return fmt.Sprintf("detailed(text=%v background=%v gradients=%v link=%v skip=%s)",
			s.flags.HasText, s.flags.HasBackground, s.flags.HasGradients, s.flags.HasLink,
			s.detail.SkipSerialization)
	}
	return "disabled"
}

// ---------------------------------------------------------------------------

// Match starts a switch-style match on a color support:
//
//     var d colors.DetailedSupport
//     switch m := s.Match(); m {
//     case m.IsKind(colors.Enabled()): …
//     case m.Detailed(&d): …
//     }
//
func (s Support) Match() *Matcher {
	return &Matcher{support: s}
}

// Matcher matches a color support against patterns.
type Matcher struct {
	support Support
}

// IsKind matches if the support is of the same kind as s.
func (m *Matcher) IsKind(s Support) *Matcher {
	if m.support.kind == s.kind {
		return m
	}
	return nil
}

// Detailed matches a detailed support and extracts its record, if d is
// non-nil.
func (m *Matcher) Detailed(d *DetailedSupport) *Matcher {
	if m.support.kind == supportDetailed {
		if d != nil {
			*d = m.support.detail
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// SupportPatterns holds a result value for every kind of color support.
type SupportPatterns[T any] struct {
	Disabled T
	Enabled  T
	Detailed T
}

// SupportPattern starts an expression-style match on a color support:
//
//     e := colors.SupportPattern[string](s)
//     name := e.OneOf(colors.SupportPatterns[string]{
//         Disabled: "none",
//         Enabled:  "legacy",
//         Detailed: e.With(&d).Const("detailed"),
//     })
//
func SupportPattern[T any](s Support) *SupportExpr[T] {
	return &SupportExpr[T]{support: s}
}

// SupportExpr is an expression-style matcher for color support.
type SupportExpr[T any] struct {
	support Support
}

// OneOf selects the pattern value for the kind of support.
func (e *SupportExpr[T]) OneOf(patterns SupportPatterns[T]) T {
	switch e.support.kind {
	case supportEnabled:
		return patterns.Enabled
	case supportDetailed:
		return patterns.Detailed
	}
	return patterns.Disabled
}

// With extracts the detailed record into d. For non-detailed support d is
// set to the zero record.
func (e *SupportExpr[T]) With(d *DetailedSupport) *SupportExpr[T] {
	*d = e.support.detail
	return e
}

// Const returns x.
func (e *SupportExpr[T]) Const(x T) T {
	return x
}
