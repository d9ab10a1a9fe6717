package ui

import "github.com/vango-dev/vango-ui/pkg/cn"

// CN merges class lists: inputs are flattened (strings, slices, cn.Map,
// cn.When, nils) and conflicting Tailwind utilities are resolved so that the
// later class wins. User overrides passed last therefore replace the
// component defaults.
func CN(inputs ...cn.ClassValue) string {
	return cn.Merge(inputs...)
}
