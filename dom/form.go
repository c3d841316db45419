package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Form-associated controls, the elements that participate in form submission
// and serialization.
// https://html.spec.whatwg.org/#form-associated-element
var controlTags = map[string]bool{
	"input":    true,
	"select":   true,
	"textarea": true,
	"button":   true,
}

// Controls returns form's form-associated controls in tree order.
func Controls(form *html.Node) []*html.Node {
	if form == nil {
		return nil
	}
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if IsElement(n) && n != form && controlTags[TagName(n)] {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(form)
	return out
}

// ControlType classifies a control for submission purposes: the lowered
// "type" attribute for inputs (default "text"), "select-one" or
// "select-multiple" for selects, "textarea", and the button's type (default
// "submit") for buttons.
func ControlType(n *html.Node) string {
	switch TagName(n) {
	case "select":
		if HasAttr(n, "multiple") {
			return "select-multiple"
		}
		return "select-one"
	case "textarea":
		return "textarea"
	case "button":
		if t, ok := Attr(n, "type"); ok && t != "" {
			return strings.ToLower(t)
		}
		return "submit"
	case "input":
		if t, ok := Attr(n, "type"); ok && t != "" {
			return strings.ToLower(t)
		}
		return "text"
	}
	return ""
}

// Disabled reports the disabled attribute.
func Disabled(n *html.Node) bool {
	return HasAttr(n, "disabled")
}

// Checked reports the checked attribute, the stored checkedness of checkable
// inputs in a static tree.
func Checked(n *html.Node) bool {
	return HasAttr(n, "checked")
}

// Options returns the option elements under a select in tree order.
func Options(sel *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if TagName(n) == "option" {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if sel != nil {
		walk(sel)
	}
	return out
}

// SelectedOptions returns only the options carrying the selected attribute.
func SelectedOptions(sel *html.Node) []*html.Node {
	var out []*html.Node
	for _, o := range Options(sel) {
		if HasAttr(o, "selected") {
			out = append(out, o)
		}
	}
	return out
}

// OptionValue is an option's submission value: its value attribute when set,
// its text otherwise.
func OptionValue(o *html.Node) string {
	if v, ok := Attr(o, "value"); ok {
		return v
	}
	return Text(o)
}

// Value returns a control's current value: the value attribute for inputs
// (checkable inputs default to "on" when no value is set), the text content
// for textareas, and the selected option's value for single selects (the
// first option when none is marked selected, matching browser checkedness).
func Value(n *html.Node) string {
	switch TagName(n) {
	case "textarea":
		return Text(n)
	case "select":
		opts := Options(n)
		for _, o := range opts {
			if HasAttr(o, "selected") {
				return OptionValue(o)
			}
		}
		if len(opts) > 0 {
			return OptionValue(opts[0])
		}
		return ""
	case "input":
		v, ok := Attr(n, "value")
		if !ok {
			switch ControlType(n) {
			case "checkbox", "radio":
				return "on"
			}
		}
		return v
	default:
		v, _ := Attr(n, "value")
		return v
	}
}
