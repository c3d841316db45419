package domq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const basicForm = `<form id="f">
	<input name="a" value="hello">
	<input type="checkbox" name="b">
	<input type="radio" name="c" value="yes" checked>
</form>`

func formSelection(t *testing.T, markup string) *Selection {
	t.Helper()
	doc := parseDoc(t, markup)
	form := mustSelect(t, doc, "form").Nodes()[0]
	return FromNode(doc, form)
}

func TestSerializeArrayBasicForm(t *testing.T) {
	s := formSelection(t, basicForm)
	require.Equal(t, []FormField{
		{Name: "a", Value: "hello"},
		{Name: "c", Value: "yes"},
	}, s.SerializeArray())
}

func TestSerializeBasicForm(t *testing.T) {
	s := formSelection(t, basicForm)
	require.Equal(t, "a=hello&c=yes", s.Serialize())
}

func TestSerializeSkipsIneligibleControls(t *testing.T) {
	s := formSelection(t, `<form>
		<input value="unnamed">
		<input name="" value="empty-name">
		<input name="off" value="x" disabled>
		<input type="file" name="f">
		<input type="submit" name="go" value="Go">
		<input type="reset" name="r">
		<button name="btn" type="button">b</button>
		<input name="keep" value="v">
	</form>`)
	require.Equal(t, []FormField{{Name: "keep", Value: "v"}}, s.SerializeArray())
}

func TestSerializeCheckableControls(t *testing.T) {
	s := formSelection(t, `<form>
		<input type="checkbox" name="x" value="1" checked>
		<input type="checkbox" name="y" value="2">
		<input type="radio" name="r" value="a">
		<input type="radio" name="r" value="b" checked>
		<input type="checkbox" name="bare" checked>
	</form>`)
	require.Equal(t, []FormField{
		{Name: "x", Value: "1"},
		{Name: "r", Value: "b"},
		{Name: "bare", Value: "on"},
	}, s.SerializeArray())
}

func TestSerializeMultiSelect(t *testing.T) {
	s := formSelection(t, `<form>
		<select name="tags" multiple>
			<option value="go" selected>Go</option>
			<option value="js">JS</option>
			<option value="html" selected>HTML</option>
		</select>
	</form>`)
	require.Equal(t, []FormField{
		{Name: "tags", Value: "go"},
		{Name: "tags", Value: "html"},
	}, s.SerializeArray())
	require.Equal(t, "tags=go&tags=html", s.Serialize())
}

func TestSerializeSingleSelectAndTextarea(t *testing.T) {
	s := formSelection(t, `<form>
		<select name="pick">
			<option value="first">1</option>
			<option value="second" selected>2</option>
		</select>
		<textarea name="note">some text</textarea>
	</form>`)
	require.Equal(t, []FormField{
		{Name: "pick", Value: "second"},
		{Name: "note", Value: "some text"},
	}, s.SerializeArray())
}

func TestSerializePercentEncodes(t *testing.T) {
	s := formSelection(t, `<form>
		<input name="q w" value="a&b=c">
	</form>`)
	require.Equal(t, "q+w=a%26b%3Dc", s.Serialize())
}

func TestSerializeOrderFollowsControlOrder(t *testing.T) {
	s := formSelection(t, `<form>
		<input name="z" value="1">
		<input name="a" value="2">
		<input name="m" value="3">
	</form>`)
	// element order, never name order
	require.Equal(t, "z=1&a=2&m=3", s.Serialize())
}
