/*
Package style holds the building blocks for presentational output: raw CSS
property values, ordered style declarations and ordered class lists.

Markup for blocks is produced by concatenating class tokens and inline style
declarations. Order matters for output parity with server-rendered markup,
therefore both ClassList and Declarations preserve insertion order and do not
de-duplicate on Append.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blockstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("blockstyle.style")
}
