/*
Package markup applies a resolved color presentation to block markup.

Block markup is an HTML fragment with a wrapper element. Classes of the
presentation are merged into the wrapper's class attribute, style
declarations into its style attribute. Existing class tokens are kept in
front and never duplicated; existing style declarations are kept as well,
unless the presentation declares the same property, in which case the
resolved value wins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/blockstyle/colors"
	"github.com/npillmayer/blockstyle/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'blockstyle.markup'.
func tracer() tracing.Trace {
	return tracing.Select("blockstyle.markup")
}

// ErrNotAnElement is returned if a presentation is applied to a node which
// is not an HTML element.
var ErrNotAnElement = errors.New("cannot apply presentation to non-element node")

// ErrNoMatch is returned if no element in the markup matches the selector for
// the block wrapper.
var ErrNoMatch = errors.New("no element matches block wrapper selector")

// Apply merges a presentation into the class and style attributes of an
// element node. An empty presentation leaves the node untouched.
func Apply(node *html.Node, p colors.Presentation) error {
	if node == nil || node.Type != html.ElementNode {
		return ErrNotAnElement
	}
	if p.IsEmpty() {
		return nil
	}
	if p.Classes.Len() > 0 {
		classes := style.ParseClassList(getAttr(node, "class"))
		classes.Merge(p.Classes...)
		setAttr(node, "class", classes.String())
	}
	if p.Styles.Len() > 0 {
		decls, err := style.ParseDeclarations(getAttr(node, "style"))
		if err != nil {
			return err
		}
		for _, d := range p.Styles {
			decls.Set(d.Key, d.Value)
		}
		setAttr(node, "style", decls.String())
	}
	tracer().P("element", node.Data).Debugf("applied color presentation")
	return nil
}

// ApplyToFirst applies a presentation to the first element in the tree
// rooted at doc (including doc itself) which matches a CSS selector.
func ApplyToFirst(doc *html.Node, selector string, p colors.Presentation) error {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return errors.Wrapf(err, "invalid block wrapper selector %q", selector)
	}
	wrapper := sel.MatchFirst(doc)
	if wrapper == nil {
		return errors.Wrap(ErrNoMatch, selector)
	}
	return Apply(wrapper, p)
}

// Render parses an HTML fragment of block markup, applies a presentation to
// the first element matching selector and returns the re-serialized
// fragment.
func Render(fragment string, selector string, p colors.Presentation) (string, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", errors.Wrap(err, "cannot parse block markup")
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return "", errors.Wrapf(err, "invalid block wrapper selector %q", selector)
	}
	var wrapper *html.Node
	for _, n := range nodes {
		if wrapper = sel.MatchFirst(n); wrapper != nil {
			break
		}
	}
	if wrapper == nil {
		return "", errors.Wrap(ErrNoMatch, selector)
	}
	if err = Apply(wrapper, p); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		if err = html.Render(&buf, n); err != nil {
			return "", errors.Wrap(err, "cannot render block markup")
		}
	}
	return buf.String(), nil
}

func getAttr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(node *html.Node, key string, value string) {
	for i, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: value})
}
