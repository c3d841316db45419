package domq

import (
	"net/url"
	"strings"

	"github.com/domq/domq/dom"
)

// FormField is one name/value pair produced by form serialization.
type FormField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Control types that never serialize.
var unserializableTypes = map[string]bool{
	"file":   true,
	"reset":  true,
	"submit": true,
	"button": true,
}

// SerializeArray walks the selected elements in order and emits the
// successful form fields, unencoded. A field qualifies when it has a
// non-empty name, is not disabled and is not of a file/reset/submit/button
// type; multi-selects contribute one pair per selected option, checkboxes
// and radios only while checked, everything else unconditionally.
func (s *Selection) SerializeArray() []FormField {
	var out []FormField
	for _, n := range s.nodes {
		if !dom.IsElement(n) {
			continue
		}
		name, _ := dom.Attr(n, "name")
		if name == "" || dom.Disabled(n) {
			continue
		}
		ctype := dom.ControlType(n)
		if unserializableTypes[ctype] {
			continue
		}
		switch ctype {
		case "select-multiple":
			for _, opt := range dom.SelectedOptions(n) {
				out = append(out, FormField{Name: name, Value: dom.OptionValue(opt)})
			}
		case "checkbox", "radio":
			if dom.Checked(n) {
				out = append(out, FormField{Name: name, Value: dom.Value(n)})
			}
		default:
			out = append(out, FormField{Name: name, Value: dom.Value(n)})
		}
	}
	return out
}

// Serialize joins the same fields into a percent-encoded query string.
// Field order follows element order, so the pairs are joined by hand;
// url.Values would sort the names.
func (s *Selection) Serialize() string {
	fields := s.SerializeArray()
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}
