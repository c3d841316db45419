// Package domq is a chainable selection layer over live HTML trees: a
// selector or node reference resolves to a Selection, and every mutating
// operation fans out over the selected elements and returns the same
// Selection for further chaining. Reads come from the first element only.
//
//	doc, _ := dom.ParseHTML(page)
//	s, _ := domq.Select(doc, "ul.menu li")
//	s.AddClass("active").SetAttr("role", "menuitem").Append("span", domq.Attrs{"class": "badge"})
package domq
