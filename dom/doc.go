// Package dom is the host-tree layer: parsing, querying and mutating
// golang.org/x/net/html node trees, plus the listener registry and
// three-phase event dispatch those trees do not carry on their own.
package dom
