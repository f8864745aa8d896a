package colors_test

import (
	"testing"

	"github.com/npillmayer/blockstyle/colors"
	"github.com/npillmayer/blockstyle/maybe"
)

func TestSupportMatch(t *testing.T) {
	enabled := colors.Enabled()
	switch m := enabled.Match(); m {
	case m.IsKind(colors.Enabled()):
		t.Logf("support is enabled")
	default:
		t.Errorf("expected support to match kind(enabled), isn't: %v", enabled)
	}

	detailed := colors.Detailed(colors.DetailedSupport{Gradients: maybe.Just(true)})
	var d colors.DetailedSupport
	switch m := detailed.Match(); m {
	case m.IsKind(colors.Enabled()):
		t.Errorf("expected detailed support not to match enabled")
	case m.Detailed(&d):
		t.Logf("detailed = %v", detailed)
	default:
		t.Errorf("expected Detailed(…) to be detailed, isn't: %v", detailed)
	}
	if !maybe.WithDefault(d.Gradients, false) {
		t.Errorf("expected extracted record to carry gradients=true, is %v", d.Gradients)
	}
}

func TestSupportPattern(t *testing.T) {
	kinds := []colors.Support{colors.Disabled(), colors.Enabled(), colors.Detailed(colors.DetailedSupport{})}
	expected := []string{"none", "legacy", "detailed"}
	for i, s := range kinds {
		m := colors.SupportPattern[string](s)
		x := m.OneOf(colors.SupportPatterns[string]{
			Disabled: "none",
			Enabled:  "legacy",
			Detailed: "detailed",
		})
		if x != expected[i] {
			t.Errorf("%d: expected %s, have %s", i, expected[i], x)
		}
	}

	var d colors.DetailedSupport
	s := colors.Detailed(colors.DetailedSupport{SkipSerialization: colors.SkipAll()})
	e := colors.SupportPattern[string](s)
	name := e.OneOf(colors.SupportPatterns[string]{
		Enabled:  "legacy",
		Detailed: e.With(&d).Const("detailed"),
	})
	if name != "detailed" {
		t.Errorf("expected detailed, have %s", name)
	}
	if !d.SkipSerialization.Applies(nil) {
		t.Error("expected extracted record of detailed support with SkipAll to skip")
	}
}

func TestSkipMatch(t *testing.T) {
	skip := colors.SkipFeatures(colors.BackgroundFeature, colors.GradientsFeature)
	var fs []colors.Feature
	switch m := skip.Match(); m {
	case m.IsKind(colors.SkipAll()):
		t.Error("expected set of features not to match SkipAll")
	case m.Features(&fs):
		t.Logf("skipping %v", fs)
	}
	if len(fs) != 2 || fs[1] != colors.GradientsFeature {
		t.Errorf("expected [background gradients], have %v", fs)
	}
	var zero colors.Skip
	switch m := zero.Match(); m {
	case m.IsKind(colors.NoSkip()):
	default:
		t.Error("expected zero skip to be NoSkip")
	}
}
