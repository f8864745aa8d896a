package colors

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/npillmayer/blockstyle/maybe"
	"github.com/npillmayer/blockstyle/style"
)

// Attributes are the color attributes of a block instance. A nil field is
// absent.
type Attributes struct {
	TextColor       maybe.Maybe[string] // named palette slug
	BackgroundColor maybe.Maybe[string] // named palette slug
	Gradient        maybe.Maybe[string] // named gradient slug
	Style           StyleAttributes
}

// StyleAttributes is the 'style' attribute of a block.
type StyleAttributes struct {
	Color CustomColors
}

// CustomColors are raw CSS values, used when no named slug is present.
type CustomColors struct {
	Text       maybe.Maybe[string]
	Background maybe.Maybe[string]
	Gradient   maybe.Maybe[string]
}

// Presentation is the result of resolving color support for a block: class
// tokens and style declarations in the order they have been produced.
type Presentation struct {
	Classes style.ClassList
	Styles  style.Declarations
}

// ClassName returns the class tokens joined by spaces, or false if there are
// none.
func (p Presentation) ClassName() (string, bool) {
	if p.Classes.Len() == 0 {
		return "", false
	}
	return p.Classes.String(), true
}

// StyleAttr returns the style declarations joined by spaces, or false if
// there are none.
func (p Presentation) StyleAttr() (string, bool) {
	if p.Styles.Len() == 0 {
		return "", false
	}
	return p.Styles.String(), true
}

// IsEmpty is a predicate for a presentation without classes and styles.
func (p Presentation) IsEmpty() bool {
	return p.Classes.Len() == 0 && p.Styles.Len() == 0
}

// --- Class names -----------------------------------------------------------

// KebabCase converts a slug into a lower-case, hyphen-separated token
// suitable for CSS class names, e.g.
//
//     KebabCase("vividCyanBlue") => "vivid-cyan-blue"
//     KebabCase("Pale Pink")     => "pale-pink"
//     KebabCase("a b/c")         => "a-b-c"
//
// Runs of characters other than letters and digits collapse into a single
// hyphen; leading and trailing ones are dropped.
func KebabCase(slug string) string {
	words := strings.TrimSpace(nonWordRun.ReplaceAllString(slug, " "))
	return strcase.ToKebab(words)
}

var nonWordRun = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// ColorClassName returns the class name for a slug in a given context,
// e.g. ColorClassName("background-color", "pale pink") =>
// "has-pale-pink-background-color".
func ColorClassName(context string, slug string) string {
	return "has-" + KebabCase(slug) + "-" + context
}
