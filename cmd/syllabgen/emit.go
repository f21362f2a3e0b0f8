package main

import (
	"strings"

	"github.com/dave/jennifer/jen"
)

// emit renders the generated language file: the Lang constants, the
// language table binding names, tags, margins and data, and one string
// constant per compiled automaton.
func emit(pkg string, langs []compiledLang) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by syllabgen. DO NOT EDIT.")

	defs := make([]jen.Code, 0, 2*len(langs))
	for i, l := range langs {
		defs = append(defs, jen.Commentf("%s hyphenates with the %s patterns (margins %d/%d).",
			l.Name, l.Tag, l.LeftMin, l.RightMin))
		if i == 0 {
			defs = append(defs, jen.Id(l.Name).Id("Lang").Op("=").Id("iota").Op("+").Lit(1))
		} else {
			defs = append(defs, jen.Id(l.Name))
		}
	}
	f.Comment("The languages compiled into the package, in table order.")
	f.Const().Defs(defs...)

	entries := make([]jen.Code, len(langs))
	for i, l := range langs {
		entries[i] = jen.Values(jen.Dict{
			jen.Id("name"):  jen.Lit(l.Name),
			jen.Id("tag"):   jen.Lit(l.Tag),
			jen.Id("data"):  jen.Id(dataName(l.Name)),
			jen.Id("left"):  jen.Lit(l.LeftMin),
			jen.Id("right"): jen.Lit(l.RightMin),
		})
	}
	f.Var().Id("langTable").Op("=").Index().Id("langInfo").Values(entries...)

	for _, l := range langs {
		f.Commentf("%s: %s, %d patterns, %d bytes.",
			dataName(l.Name), l.Identifier, l.Patterns, len(l.Data))
		f.Const().Id(dataName(l.Name)).Op("=").Lit(l.Data)
	}
	return f
}

func dataName(name string) string {
	return strings.ToLower(name[:1]) + name[1:] + "Data"
}
