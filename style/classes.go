package style

import "strings"

// ClassList is an ordered sequence of CSS class tokens. nil is a legal
// (empty) class list.
type ClassList []string

// Append adds class tokens at the end. Duplicates are kept.
func (cl *ClassList) Append(classes ...string) {
	*cl = append(*cl, classes...)
}

// Merge adds class tokens which are not yet contained in cl, keeping the
// order of first occurence.
func (cl *ClassList) Merge(classes ...string) {
	for _, c := range classes {
		if c != "" && !cl.Contains(c) {
			*cl = append(*cl, c)
		}
	}
}

// Contains is a predicate for a class token being in the list.
func (cl ClassList) Contains(class string) bool {
	for _, c := range cl {
		if c == class {
			return true
		}
	}
	return false
}

// Len returns the number of class tokens.
func (cl ClassList) Len() int {
	return len(cl)
}

// String joins all class tokens with single spaces.
func (cl ClassList) String() string {
	return strings.Join(cl, " ")
}

// ParseClassList splits the value of an HTML class attribute into tokens.
func ParseClassList(attr string) ClassList {
	fields := strings.Fields(attr)
	if len(fields) == 0 {
		return nil
	}
	return ClassList(fields)
}
