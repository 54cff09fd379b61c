package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestMake(t *testing.T) {
	t.Run("classes and props", func(t *testing.T) {
		el, err := Make("DIV", []string{"cdx-input", "cdx-metaparam__title"}, Props{
			Editable:       true,
			InitialContent: "Hello <b>world</b>",
		})
		require.NoError(t, err)

		assert.Equal(t, "div", el.Data)
		assert.Equal(t, atom.Div, el.DataAtom)
		assert.Nil(t, el.Parent)
		assert.Equal(t, []string{"cdx-input", "cdx-metaparam__title"}, Classes(el))
		assert.True(t, IsEditable(el))

		inner, err := InnerHTML(el)
		require.NoError(t, err)
		assert.Equal(t, "Hello <b>world</b>", inner)
	})

	t.Run("no classes no props", func(t *testing.T) {
		el, err := Make("span", nil, Props{})
		require.NoError(t, err)

		out, err := Render(el)
		require.NoError(t, err)
		assert.Equal(t, "<span></span>", out)
		assert.False(t, IsEditable(el))
	})

	t.Run("duplicate classes collapse", func(t *testing.T) {
		el, err := Make("div", []string{"a", "b", "a"}, Props{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, Classes(el))
	})

	t.Run("unknown tag is accepted", func(t *testing.T) {
		el, err := Make("meta-field", nil, Props{InitialContent: "x"})
		require.NoError(t, err)
		assert.Equal(t, atom.Atom(0), el.DataAtom)

		out, err := Render(el)
		require.NoError(t, err)
		assert.Equal(t, "<meta-field>x</meta-field>", out)
	})

	t.Run("invalid tag name", func(t *testing.T) {
		for _, name := range []string{"", "di v", "<div>"} {
			_, err := Make(name, nil, Props{})
			require.ErrorIs(t, err, ErrInvalidTagName, name)
		}
	})

	t.Run("invalid class name", func(t *testing.T) {
		_, err := Make("div", []string{"ok", ""}, Props{})
		require.ErrorIs(t, err, ErrInvalidClassName)

		_, err = Make("div", []string{"two words"}, Props{})
		require.ErrorIs(t, err, ErrInvalidClassName)
	})
}

func TestInnerHTMLSerialization(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{name: "plain text", markup: "Title", want: "Title"},
		{name: "quotes stay literal", markup: `Don't "quote" me`, want: `Don't "quote" me`},
		{name: "ampersand escaped", markup: "A & B", want: "A &amp; B"},
		{name: "void element", markup: "line<br>next", want: "line<br>next"},
		{name: "nbsp", markup: "a&nbsp;b", want: "a&nbsp;b"},
		{name: "attributes", markup: `<a href="/x?a=1&amp;b=2" title="say &quot;hi&quot;">x</a>`, want: `<a href="/x?a=1&amp;b=2" title="say &quot;hi&quot;">x</a>`},
		{name: "comment", markup: "a<!-- note -->b", want: "a<!-- note -->b"},
		{name: "unclosed tag is balanced", markup: "<i>open", want: "<i>open</i>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := Make("div", nil, Props{InitialContent: tt.markup})
			require.NoError(t, err)

			got, err := InnerHTML(el)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetInnerHTMLReplacesChildren(t *testing.T) {
	el, err := Make("div", nil, Props{InitialContent: "<b>old</b> text"})
	require.NoError(t, err)

	require.NoError(t, SetInnerHTML(el, "new"))

	got, err := InnerHTML(el)
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	require.ErrorIs(t, SetInnerHTML(&html.Node{Type: html.TextNode, Data: "x"}, "y"), ErrNotElement)
}

func TestQueryClass(t *testing.T) {
	nodes, err := ParseFragment(`<div class="root target"><p class="a"><span class="target first">1</span></p><span class="target">2</span></div>`)
	require.NoError(t, err)
	root := FirstElement(nodes)
	require.NotNil(t, root)

	found := QueryClass(root, "target")
	require.NotNil(t, found)
	assert.True(t, HasClass(found, "first"), "document order, root excluded")

	assert.Len(t, QueryAllClass(root, "target"), 2)
	assert.Nil(t, QueryClass(root, "missing"))
	assert.Nil(t, QueryClass(nil, "target"))
}

func TestDataAttributes(t *testing.T) {
	el, err := Make("div", nil, Props{})
	require.NoError(t, err)

	SetData(el, "placeholder", "Title")
	SetData(el, "placeholder", "Page title")

	value, ok := Data(el, "placeholder")
	require.True(t, ok)
	assert.Equal(t, "Page title", value)
	assert.Len(t, el.Attr, 1)

	found, err := ParseFragment(`<section><div data-id="b2">x</div></section>`)
	require.NoError(t, err)
	assert.NotNil(t, QueryData(FirstElement(found), "id", "b2"))
	assert.Nil(t, QueryData(FirstElement(found), "id", "b3"))
}

func TestTextContent(t *testing.T) {
	nodes, err := ParseFragment(`<div>Hello <b>bold</b> world</div>`)
	require.NoError(t, err)
	assert.Equal(t, "Hello bold world", TextContent(FirstElement(nodes)))
}
