package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type classOpTestcase struct {
	inClass  string // initial class attribute
	op       string // add, remove, toggle
	name     string
	outClass string
}

var classOpTests = []classOpTestcase{
	{"", "add", "active", "active"},
	{"active", "add", "active", "active"},
	{"a b", "add", "c", "a b c"},
	{"a b c", "remove", "b", "a c"},
	{"a", "remove", "missing", "a"},
	{"b b", "remove", "b", ""},
	{"", "toggle", "on", "on"},
	{"on", "toggle", "on", ""},
	{"a  b\tc", "add", "d", "a b c d"},
}

func TestClassOps(t *testing.T) {
	for _, tt := range classOpTests {
		doc, err := ParseHTML(`<div id="x" class="` + tt.inClass + `"></div>`)
		require.NoError(t, err)
		ns, err := doc.QueryAll("#x")
		require.NoError(t, err)
		require.Len(t, ns, 1)
		n := ns[0]

		switch tt.op {
		case "add":
			AddClass(n, tt.name)
		case "remove":
			RemoveClass(n, tt.name)
		case "toggle":
			ToggleClass(n, tt.name)
		}

		got, _ := Attr(n, "class")
		require.Equal(t, tt.outClass, got, "%s %q on %q", tt.op, tt.name, tt.inClass)
	}
}

func TestToggleClassReturnsNewState(t *testing.T) {
	doc, err := ParseHTML(`<p id="x"></p>`)
	require.NoError(t, err)
	ns, _ := doc.QueryAll("#x")
	n := ns[0]

	require.True(t, ToggleClass(n, "lit"))
	require.True(t, HasClass(n, "lit"))
	require.False(t, ToggleClass(n, "lit"))
	require.False(t, HasClass(n, "lit"))
}
