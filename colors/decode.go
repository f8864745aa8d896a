package colors

import (
	"bytes"
	"encoding/json"

	"github.com/npillmayer/blockstyle/maybe"
	"github.com/pkg/errors"
)

// ErrInvalidDescriptor is returned for a color support descriptor of
// unexpected shape, e.g. a string where a boolean or an object is expected.
var ErrInvalidDescriptor = errors.New("invalid color support descriptor")

// ErrInvalidAttributes is returned for block attributes of unexpected shape,
// e.g. a number for a color slug.
var ErrInvalidAttributes = errors.New("invalid color attributes")

// skipSerializationKey is the key of the serialization flag within the color
// support object of block.json.
const skipSerializationKey = "__experimentalSkipSerialization"

type detailedJSON struct {
	Text       *bool           `json:"text"`
	Background *bool           `json:"background"`
	Gradients  *bool           `json:"gradients"`
	Link       *bool           `json:"link"`
	Skip       json.RawMessage `json:"__experimentalSkipSerialization"`
}

// ParseSupport decodes the JSON value of 'supports.color' of a block type.
// It may be
//
//   - absent, null or false: Disabled
//   - true: Enabled
//   - an object: Detailed, with '__experimentalSkipSerialization' being a
//     boolean or an array of feature names.
//
func ParseSupport(data []byte) (Support, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Disabled(), nil
	}
	switch data[0] {
	case 't', 'f':
		var enabled bool
		if err := json.Unmarshal(data, &enabled); err != nil {
			return Disabled(), errors.Wrap(ErrInvalidDescriptor, err.Error())
		}
		if enabled {
			return Enabled(), nil
		}
		return Disabled(), nil
	case '{':
		var d detailedJSON
		if err := json.Unmarshal(data, &d); err != nil {
			return Disabled(), errors.Wrap(ErrInvalidDescriptor, err.Error())
		}
		skip, err := parseSkip(d.Skip)
		if err != nil {
			return Disabled(), err
		}
		return Detailed(DetailedSupport{
			Text:              maybe.FromPtr(d.Text),
			Background:        maybe.FromPtr(d.Background),
			Gradients:         maybe.FromPtr(d.Gradients),
			Link:              maybe.FromPtr(d.Link),
			SkipSerialization: skip,
		}), nil
	}
	return Disabled(), errors.Wrapf(ErrInvalidDescriptor, "color support is neither boolean nor object: %s", data)
}

func parseSkip(data json.RawMessage) (Skip, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return NoSkip(), nil
	}
	switch data[0] {
	case 't', 'f':
		var skip bool
		if err := json.Unmarshal(data, &skip); err != nil {
			return NoSkip(), errors.Wrap(ErrInvalidDescriptor, err.Error())
		}
		if skip {
			return SkipAll(), nil
		}
		return NoSkip(), nil
	case '[':
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return NoSkip(), errors.Wrapf(ErrInvalidDescriptor, "%s: %s", skipSerializationKey, err.Error())
		}
		features := make([]Feature, len(names))
		for i, n := range names {
			features[i] = Feature(n)
		}
		return SkipFeatures(features...), nil
	}
	return NoSkip(), errors.Wrapf(ErrInvalidDescriptor, "%s is neither boolean nor array: %s",
		skipSerializationKey, data)
}

// ParseSupports decodes a block type definition (block.json) and extracts
// its color support. A missing 'supports' or 'supports.color' yields
// Disabled.
func ParseSupports(blockJSON []byte) (Support, error) {
	var block struct {
		Supports struct {
			Color json.RawMessage `json:"color"`
		} `json:"supports"`
	}
	if err := json.Unmarshal(blockJSON, &block); err != nil {
		return Disabled(), errors.Wrap(ErrInvalidDescriptor, err.Error())
	}
	s, err := ParseSupport(block.Supports.Color)
	if err != nil {
		return s, err
	}
	tracer().Debugf("block type color support: %s", s)
	return s, nil
}

type attributesJSON struct {
	TextColor       *string `json:"textColor"`
	BackgroundColor *string `json:"backgroundColor"`
	Gradient        *string `json:"gradient"`
	Style           *struct {
		Color *struct {
			Text       *string `json:"text"`
			Background *string `json:"background"`
			Gradient   *string `json:"gradient"`
		} `json:"color"`
	} `json:"style"`
}

// ParseAttributes decodes the attributes of a block instance. Attributes
// other than color attributes are ignored. A null value is treated as
// absent.
func ParseAttributes(data []byte) (Attributes, error) {
	var a attributesJSON
	if err := json.Unmarshal(data, &a); err != nil {
		return Attributes{}, errors.Wrap(ErrInvalidAttributes, err.Error())
	}
	attrs := Attributes{
		TextColor:       maybe.FromPtr(a.TextColor),
		BackgroundColor: maybe.FromPtr(a.BackgroundColor),
		Gradient:        maybe.FromPtr(a.Gradient),
	}
	if a.Style != nil && a.Style.Color != nil {
		attrs.Style.Color = CustomColors{
			Text:       maybe.FromPtr(a.Style.Color.Text),
			Background: maybe.FromPtr(a.Style.Color.Background),
			Gradient:   maybe.FromPtr(a.Style.Color.Gradient),
		}
	}
	return attrs, nil
}
