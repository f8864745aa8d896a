/*
Package colors derives presentational CSS classes and inline styles for the
color attributes of a block.

A block type declares which color features it supports (text color,
background color, gradients, link color) with a capability descriptor. A
block instance carries attribute values: named palette slugs, custom raw
color values, or both. ResolvePresentation combines the two and yields the
class tokens and style declarations a renderer attaches to the block's
wrapper element:

    support := colors.Detailed(colors.DetailedSupport{
        Gradients: maybe.Just(true),
    })
    attrs := colors.Attributes{
        TextColor: maybe.Just("vivid-cyan-blue"),
    }
    p := colors.ResolvePresentation(support, attrs)
    class, _ := p.ClassName() // "has-text-color has-vivid-cyan-blue-color"

Named slugs take precedence over custom values: a custom value is serialized
as an inline style only if no slug is present for the same feature.

Serialization may be suppressed for all features or for a set of individual
features, for blocks rendering their color markup elsewhere.

All functions in this package are pure and safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package colors

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockstyle.colors'.
func tracer() tracing.Trace {
	return tracing.Select("blockstyle.colors")
}
