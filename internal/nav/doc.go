// Package nav models the sidebar navigation tree of a documentation site.
//
// A sidebar is an ordered sequence of entries. Each entry is either an Item
// (a label and a link) or a Group (a label and nested entries). Slice order
// is display order, top to bottom; a group's entries render indented beneath
// its label, recursively.
//
// The model never validates. Links that do not resolve, duplicate links and
// empty groups are reported by lint or by the external renderer.
package nav
