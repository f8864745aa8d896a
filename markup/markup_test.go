package markup

import (
	"strings"
	"testing"

	"github.com/npillmayer/blockstyle/colors"
	"github.com/npillmayer/blockstyle/maybe"
	"github.com/npillmayer/blockstyle/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderGroupBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockstyle.markup")
	defer teardown()
	//
	attrs := colors.Attributes{
		TextColor: maybe.Just("vivid-cyan-blue"),
		Style: colors.StyleAttributes{Color: colors.CustomColors{
			Background: maybe.Just("#123456"),
		}},
	}
	p := colors.ResolvePresentation(colors.Enabled(), attrs)
	out, err := Render(`<div class="wp-block-group"><p>Hello</p></div>`, ".wp-block-group", p)
	require.NoError(t, err)
	assert.Equal(t,
		`<div class="wp-block-group has-text-color has-vivid-cyan-blue-color has-background" `+
			`style="background-color: #123456;"><p>Hello</p></div>`, out)
}

func TestApplyMergesExistingAttributes(t *testing.T) {
	node := &html.Node{
		Type: html.ElementNode,
		Data: "p",
		Attr: []html.Attribute{
			{Key: "class", Val: "has-background custom"},
			{Key: "style", Val: "margin-top: 3px; background-color: red"},
		},
	}
	s := colors.Detailed(colors.DetailedSupport{Gradients: maybe.Just(true)})
	p := colors.ResolvePresentation(s, colors.Attributes{
		BackgroundColor: maybe.Just("black"),
		Style: colors.StyleAttributes{Color: colors.CustomColors{
			Text:     maybe.Just("#fff"),
			Gradient: maybe.Just("linear-gradient(red,blue)"),
		}},
	})
	require.NoError(t, Apply(node, p))
	assert.Equal(t, "has-background custom has-text-color has-black-background-color", getAttr(node, "class"))
	assert.Equal(t, "margin-top: 3px; background-color: red; color: #fff; background: linear-gradient(red,blue);",
		getAttr(node, "style"))
}

func TestApplyOverridesSameProperty(t *testing.T) {
	node := &html.Node{
		Type: html.ElementNode,
		Data: "p",
		Attr: []html.Attribute{{Key: "style", Val: "color: red"}},
	}
	p := colors.Presentation{}
	p.Styles.Append("color", style.Property("#00ff00"))
	require.NoError(t, Apply(node, p))
	assert.Equal(t, "color: #00ff00;", getAttr(node, "style"))
	assert.Equal(t, "", getAttr(node, "class"))
}

func TestApplyEmptyPresentation(t *testing.T) {
	node := &html.Node{Type: html.ElementNode, Data: "div"}
	require.NoError(t, Apply(node, colors.Presentation{}))
	assert.Empty(t, node.Attr)
	assert.ErrorIs(t, Apply(&html.Node{Type: html.TextNode, Data: "x"}, colors.Presentation{}), ErrNotAnElement)
	assert.ErrorIs(t, Apply(nil, colors.Presentation{}), ErrNotAnElement)
}

func TestApplyToFirst(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><body><div class="outer"><h2 class="wp-block-heading">Title</h2></div></body></html>`))
	require.NoError(t, err)
	p := colors.ResolvePresentation(colors.Enabled(), colors.Attributes{TextColor: maybe.Just("Pale Pink")})
	require.NoError(t, ApplyToFirst(doc, "h2.wp-block-heading", p))
	var b strings.Builder
	require.NoError(t, html.Render(&b, doc))
	assert.Contains(t, b.String(), `<h2 class="wp-block-heading has-text-color has-pale-pink-color">`)

	err = ApplyToFirst(doc, ".wp-block-quote", p)
	assert.ErrorIs(t, err, ErrNoMatch)
	err = ApplyToFirst(doc, "h2[", p)
	assert.Error(t, err)
}

func TestRenderNoMatch(t *testing.T) {
	_, err := Render(`<p>plain</p>`, ".wp-block-group", colors.Presentation{})
	assert.ErrorIs(t, err, ErrNoMatch)
}
