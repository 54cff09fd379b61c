package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Serialization follows the HTML fragment serialization rules browsers use for
// innerHTML/outerHTML: void elements have no end tag, text escapes only &, <,
// > and NBSP, attribute values escape only &, " and NBSP.

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"\u00a0", "&nbsp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"\u00a0", "&nbsp;",
		`"`, "&quot;",
	)
)

var voidElements = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true, "br": true,
	"col": true, "embed": true, "frame": true, "hr": true, "img": true,
	"input": true, "keygen": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrNotElement
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		serialize(&sb, c)
	}
	return sb.String(), nil
}

// SetInnerHTML replaces the children of n with the parsed markup. The markup
// is parsed in the context of n, the way the innerHTML setter does.
func SetInnerHTML(n *html.Node, markup string) error {
	if n == nil || n.Type != html.ElementNode {
		return ErrNotElement
	}

	children, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return err
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, child := range children {
		n.AppendChild(child)
	}
	return nil
}

// Render serializes n itself, including its own tag (outerHTML).
func Render(n *html.Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("dom: render nil node")
	}

	var sb strings.Builder
	serialize(&sb, n)
	return sb.String(), nil
}

// ParseFragment parses markup as body content and returns the top-level nodes.
func ParseFragment(markup string) ([]*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(markup), body)
}

// TextContent concatenates the text descendants of n.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return false
	})
	return sb.String()
}

func serialize(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			serialize(sb, c)
		}

	case html.DoctypeNode:
		sb.WriteString("<!DOCTYPE ")
		sb.WriteString(n.Data)
		sb.WriteString(">")

	case html.CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")

	case html.TextNode:
		if isRawTextParent(n.Parent) {
			sb.WriteString(n.Data)
			return
		}
		sb.WriteString(textEscaper.Replace(n.Data))

	case html.ElementNode:
		sb.WriteString("<")
		sb.WriteString(n.Data)
		for _, attr := range n.Attr {
			sb.WriteString(" ")
			if attr.Namespace != "" {
				sb.WriteString(attr.Namespace)
				sb.WriteString(":")
			}
			sb.WriteString(attr.Key)
			sb.WriteString(`="`)
			sb.WriteString(attrEscaper.Replace(attr.Val))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")

		if n.Namespace == "" && voidElements[n.Data] {
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			serialize(sb, c)
		}

		sb.WriteString("</")
		sb.WriteString(n.Data)
		sb.WriteString(">")
	}
}

func isRawTextParent(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.Namespace == "" && rawTextElements[n.Data]
}
