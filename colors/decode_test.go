package colors_test

import (
	"testing"

	"github.com/npillmayer/blockstyle/colors"
	"github.com/npillmayer/blockstyle/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSupportKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockstyle.colors")
	defer teardown()
	//
	for _, x := range []struct {
		json  string
		flags colors.Flags
	}{
		{``, colors.Flags{}},
		{`null`, colors.Flags{}},
		{`false`, colors.Flags{}},
		{`true`, colors.Flags{HasText: true, HasBackground: true}},
		{`{}`, colors.Flags{HasText: true, HasBackground: true}},
		{`{"text": false, "gradients": true}`, colors.Flags{HasBackground: true, HasGradients: true}},
		{`{"background": false, "link": true}`, colors.Flags{HasText: true, HasLink: true}},
	} {
		s, err := colors.ParseSupport([]byte(x.json))
		require.NoError(t, err, x.json)
		assert.Equal(t, x.flags, colors.ResolveSupportFlags(s), x.json)
	}
}

func TestParseSupportSkip(t *testing.T) {
	s, err := colors.ParseSupport([]byte(`{"__experimentalSkipSerialization": true}`))
	require.NoError(t, err)
	assert.True(t, colors.ShouldSkipSerialization(s, nil))

	s, err = colors.ParseSupport([]byte(`{"__experimentalSkipSerialization": ["background"]}`))
	require.NoError(t, err)
	assert.False(t, colors.ShouldSkipSerialization(s, nil))
	assert.True(t, colors.ShouldSkipSerialization(s, maybe.Just(colors.BackgroundFeature)))
	assert.False(t, colors.ShouldSkipSerialization(s, maybe.Just(colors.TextFeature)))

	s, err = colors.ParseSupport([]byte(`{"__experimentalSkipSerialization": false}`))
	require.NoError(t, err)
	assert.False(t, colors.ShouldSkipSerialization(s, maybe.Just(colors.TextFeature)))
}

func TestParseSupportInvalid(t *testing.T) {
	for _, x := range []string{
		`"yes"`,
		`42`,
		`{"text": "no"}`,
		`{"__experimentalSkipSerialization": "background"}`,
		`{"__experimentalSkipSerialization": [1, 2]}`,
	} {
		_, err := colors.ParseSupport([]byte(x))
		if assert.Error(t, err, x) {
			assert.True(t, errors.Is(err, colors.ErrInvalidDescriptor), x)
			assert.Equal(t, colors.ErrInvalidDescriptor, errors.Cause(err), x)
		}
	}
}

func TestParseSupports(t *testing.T) {
	block := `{
		"name": "core/group",
		"supports": {
			"align": ["wide", "full"],
			"color": { "gradients": true, "link": true }
		}
	}`
	s, err := colors.ParseSupports([]byte(block))
	require.NoError(t, err)
	assert.True(t, s.IsDetailed())
	assert.Equal(t, colors.Flags{HasText: true, HasBackground: true, HasGradients: true, HasLink: true},
		colors.ResolveSupportFlags(s))

	s, err = colors.ParseSupports([]byte(`{"name": "core/spacer"}`))
	require.NoError(t, err)
	assert.False(t, colors.ResolveSupportFlags(s).Any())

	_, err = colors.ParseSupports([]byte(`{"supports": `))
	assert.ErrorIs(t, err, colors.ErrInvalidDescriptor)
}

func TestParseAttributes(t *testing.T) {
	attrs, err := colors.ParseAttributes([]byte(`{
		"textColor": "vivid-cyan-blue",
		"gradient": null,
		"level": 2,
		"style": { "color": { "text": "#ff0000", "background": "#123456" } }
	}`))
	require.NoError(t, err)
	slug, ok := maybe.Get(attrs.TextColor)
	assert.True(t, ok)
	assert.Equal(t, "vivid-cyan-blue", slug)
	assert.False(t, maybe.IsJust(attrs.Gradient))
	assert.False(t, maybe.IsJust(attrs.BackgroundColor))
	assert.Equal(t, "#123456", maybe.WithDefault(attrs.Style.Color.Background, ""))

	p := colors.ResolvePresentation(colors.Enabled(), attrs)
	class, _ := p.ClassName()
	style, _ := p.StyleAttr()
	assert.Equal(t, "has-text-color has-vivid-cyan-blue-color has-background", class)
	assert.Equal(t, "background-color: #123456;", style)

	_, err = colors.ParseAttributes([]byte(`{"textColor": 7}`))
	assert.ErrorIs(t, err, colors.ErrInvalidAttributes)
}
