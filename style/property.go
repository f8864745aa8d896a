package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/pkg/errors"
)

// Property is a raw value for a CSS property. For example, with
//
//     background-color: #123456
//
// a property value of "#123456" is set. Values are kept as given; in
// particular, they are not converted to lower case, as custom color values
// are emitted verbatim.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// --- Declarations ----------------------------------------------------------

// Declaration is a single style declaration, i.e. a key-value pair.
type Declaration struct {
	Key       string
	Value     Property
	Important bool
}

// String renders a declaration in inline-style format:
//
//     color: #ff0000;
//
func (d Declaration) String() string {
	if d.Important {
		return d.Key + ": " + d.Value.String() + " !important;"
	}
	return d.Key + ": " + d.Value.String() + ";"
}

// Declarations is an ordered sequence of style declarations. nil is a legal
// (empty) sequence.
type Declarations []Declaration

// Append adds a declaration at the end, regardless of whether key is
// already present.
func (ds *Declarations) Append(key string, value Property) {
	*ds = append(*ds, Declaration{Key: key, Value: value})
}

// Set overwrites the value of an existing declaration for key in place, or
// appends a new one.
func (ds *Declarations) Set(key string, value Property) {
	for i := range *ds {
		if (*ds)[i].Key == key {
			(*ds)[i].Value = value
			(*ds)[i].Important = false
			return
		}
	}
	ds.Append(key, value)
}

// Get returns the value of the first declaration for key.
func (ds Declarations) Get(key string) (Property, bool) {
	for _, d := range ds {
		if d.Key == key {
			return d.Value, true
		}
	}
	return NullStyle, false
}

// Len returns the number of declarations.
func (ds Declarations) Len() int {
	return len(ds)
}

// String joins all declarations with single spaces.
func (ds Declarations) String() string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// ParseDeclarations parses the content of an inline style attribute, e.g.
//
//     ParseDeclarations("color: red; margin-top: 3px")
//
// Keys are converted to lower case, values are kept as given.
func ParseDeclarations(inline string) (Declarations, error) {
	if strings.TrimSpace(inline) == "" {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(inline)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse inline style %q", inline)
	}
	ds := make(Declarations, 0, len(decls))
	for _, d := range decls {
		ds = append(ds, Declaration{
			Key:       strings.ToLower(d.Property),
			Value:     Property(d.Value),
			Important: d.Important,
		})
	}
	tracer().Debugf("parsed %d inline style declarations", len(ds))
	return ds, nil
}

// --- Property Groups -------------------------------------------------------

// Symbolic names for string literals, denoting property groups.
const (
	PGColor      = "Color"
	PGBackground = "Background"
	PGX          = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"color":            PGColor,
	"background-color": PGBackground,
	"background":       PGBackground,
	"background-image": PGBackground,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("background-color") => "Background"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}
