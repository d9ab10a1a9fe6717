// Package cn merges class names for utility-first CSS.
//
// Merge is a two step pipeline. Clsx first flattens heterogeneous inputs
// (strings, slices, maps, conditionals, nils) into a list of class tokens.
// The Merger then hands the list to tailwind-merge, which drops every class
// overridden by a later class of the same Tailwind class group:
//
//	cn.Merge("px-2 py-1 bg-red-500", cn.When(active, "bg-blue-500"), "p-3")
//	// active: "bg-blue-500 p-3"
//
// Classes the Merger does not recognise are kept, with exact duplicates
// collapsed onto their last occurrence, so Merge(Merge(x), Merge(x)) equals
// Merge(x).
package cn

import "sync/atomic"

var std atomic.Pointer[Merger]

func init() {
	m, err := New()
	if err != nil {
		// no stylesheets, so New cannot fail
		panic(err)
	}
	std.Store(m)
}

// Default returns the Merger used by the package level Merge.
func Default() *Merger {
	return std.Load()
}

// SetDefault replaces the Merger used by the package level Merge. A nil
// Merger is ignored.
func SetDefault(m *Merger) {
	if m != nil {
		std.Store(m)
	}
}

// Merge flattens inputs and resolves class conflicts with the default Merger.
func Merge(inputs ...ClassValue) string {
	return Default().Merge(inputs...)
}

// MergeClasses resolves conflicts in a flattened class list with the default
// Merger.
func MergeClasses(classes string) string {
	return Default().MergeClasses(classes)
}
