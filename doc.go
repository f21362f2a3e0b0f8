/*
Package syllab hyphenates words.

It implements the pattern algorithm described by Frank Liang
(F.M.Liang, http://www.tug.org/docs/liang/): digit-annotated patterns,
as shipped with every TeX distribution, vote on the gaps between the
characters of a word, and gaps with an odd final value become
hyphenation opportunities.

Patterns are compiled ahead of time into a flat automaton (see package
automaton) and embedded as plain string constants, so using a language
costs no load or decode step at all. Hyphenating a word of up to 40
characters performs no heap allocation; longer words fall back to
allocated buffers (build with tag 'syllab_noheap' to forbid the
fallback).

	syllables := syllab.Hyphenate("extensive", syllab.English)
	fmt.Println(syllables.Join("-")) // ex-ten-sive

Besides the compiled languages, type Dictionary loads pattern sets and
exception lists at run time, for example from the TeX pattern files
parsed by packages texpatterns and texexceptions.

Further Reading

	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package syllab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'syllab'
func tracer() tracing.Trace {
	return tracing.Select("syllab")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
