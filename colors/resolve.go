package colors

import (
	"github.com/npillmayer/blockstyle/maybe"
	"github.com/npillmayer/blockstyle/style"
)

// ResolveSupportFlags resolves the individual color capabilities of s.
// Disabled support yields no capabilities, Enabled support yields text and
// background.
func ResolveSupportFlags(s Support) Flags {
	return s.flags
}

// ShouldSkipSerialization reports whether serialization of a color feature
// is suppressed by s. With feature absent, only a global skip reports true.
// Supports other than detailed ones never skip.
func ShouldSkipSerialization(s Support, feature maybe.Maybe[Feature]) bool {
	return s.Skip().Applies(feature)
}

// resolution describes how a single feature is serialized.
type resolution struct {
	feature  Feature
	marker   string // generic class, applied for named or custom values
	context  string // class name suffix for named slugs
	property string // style property for custom values
}

var (
	textResolution = resolution{
		feature: TextFeature, marker: "has-text-color",
		context: "color", property: "color",
	}
	backgroundResolution = resolution{
		feature: BackgroundFeature, marker: "has-background",
		context: "background-color", property: "background-color",
	}
	gradientResolution = resolution{
		feature: GradientsFeature, marker: "has-background",
		context: "gradient-background", property: "background",
	}
)

// ResolvePresentation computes the class tokens and style declarations for
// the color attributes of a block with color support s.
//
// Features are resolved in fixed order: text, background, gradient. For
// every feature which is supported and not skipped, a generic marker class
// is applied if either a named slug or a custom value is present. A named
// slug adds a slug-specific class; otherwise a custom value adds an inline
// style declaration. Background and gradient share the marker class
// "has-background", which therefore may occur twice.
//
// A global skip is honoured only for detailed support; for other kinds of
// support serialization cannot be suppressed.
func ResolvePresentation(s Support, attrs Attributes) Presentation {
	var p Presentation
	flags := ResolveSupportFlags(s)
	if !flags.Any() {
		return p
	}
	if s.IsDetailed() && ShouldSkipSerialization(s, maybe.Nothing[Feature]()) {
		tracer().Debugf("color serialization skipped for all features")
		return p
	}
	if flags.HasText {
		p.serialize(s, textResolution, attrs.TextColor, attrs.Style.Color.Text)
	}
	if flags.HasBackground {
		p.serialize(s, backgroundResolution, attrs.BackgroundColor, attrs.Style.Color.Background)
	}
	if flags.HasGradients {
		p.serialize(s, gradientResolution, attrs.Gradient, attrs.Style.Color.Gradient)
	}
	tracer().P("classes", p.Classes.Len()).Debugf("resolved color presentation: %v", p)
	return p
}

func (p *Presentation) serialize(s Support, r resolution, named, custom maybe.Maybe[string]) {
	if ShouldSkipSerialization(s, maybe.Just(r.feature)) {
		tracer().Debugf("color serialization skipped for feature %s", r.feature)
		return
	}
	slug, hasNamed := maybe.Get(named)
	value, hasCustom := maybe.Get(custom)
	if hasNamed || hasCustom {
		p.Classes.Append(r.marker)
	}
	if hasNamed {
		p.Classes.Append(ColorClassName(r.context, slug))
	} else if hasCustom {
		p.Styles.Append(r.property, style.Property(value))
	}
}
