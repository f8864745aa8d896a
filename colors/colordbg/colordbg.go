/*
Package colordbg implements helpers to debug color support resolution.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package colordbg

import (
	"fmt"
	"testing"

	"github.com/npillmayer/blockstyle/colors"
	"github.com/npillmayer/blockstyle/maybe"
	"github.com/npillmayer/blockstyle/style"
	tp "github.com/xlab/treeprint"
)

// Tree outputs a tree diagram of a color support resolution: the support
// flags of a block type, the color attributes of a block instance, and the
// resulting presentation. Style declarations are listed with their
// property group.
//
//     color support: detailed(…)
//     ├── flags
//     │   ├── text: true
//     │   …
//     ├── attributes
//     │   ├── textColor: vivid-cyan-blue
//     │   …
//     └── presentation
//         ├── class: has-text-color has-vivid-cyan-blue-color
//         └── style
//
func Tree(s colors.Support, attrs colors.Attributes, p colors.Presentation) string {
	root := tp.New()
	root.SetValue("color support: " + s.String())
	flags := colors.ResolveSupportFlags(s)
	fb := root.AddBranch("flags")
	fb.AddNode(fmt.Sprintf("text: %v", flags.HasText))
	fb.AddNode(fmt.Sprintf("background: %v", flags.HasBackground))
	fb.AddNode(fmt.Sprintf("gradients: %v", flags.HasGradients))
	fb.AddNode(fmt.Sprintf("link: %v", flags.HasLink))
	fb.AddNode("skip: " + s.Skip().String())
	ab := root.AddBranch("attributes")
	attr(ab, "textColor", attrs.TextColor)
	attr(ab, "backgroundColor", attrs.BackgroundColor)
	attr(ab, "gradient", attrs.Gradient)
	attr(ab, "style.color.text", attrs.Style.Color.Text)
	attr(ab, "style.color.background", attrs.Style.Color.Background)
	attr(ab, "style.color.gradient", attrs.Style.Color.Gradient)
	pb := root.AddBranch("presentation")
	if class, ok := p.ClassName(); ok {
		pb.AddNode("class: " + class)
	} else {
		pb.AddNode("class: –")
	}
	sb := pb.AddBranch("style")
	for _, d := range p.Styles {
		sb.AddMetaNode(style.GroupNameFromPropertyKey(d.Key), d.String())
	}
	return root.String()
}

func attr(branch tp.Tree, key string, value maybe.Maybe[string]) {
	var v string
	if value == nil {
		branch.AddNode(key + ": –")
		return
	}
	switch m := value.Match(); m {
	case m.Just(&v):
		branch.AddNode(fmt.Sprintf("%s: %s", key, v))
	case m.Nothing():
		branch.AddNode(key + ": –")
	}
}

// Log is a helper for testing. It resolves the presentation for s and attrs
// and logs the diagram to t.
func Log(t *testing.T, s colors.Support, attrs colors.Attributes) colors.Presentation {
	p := colors.ResolvePresentation(s, attrs)
	t.Logf("\n%s", Tree(s, attrs, p))
	return p
}
