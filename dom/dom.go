// Package dom builds and inspects element trees on top of golang.org/x/net/html.
//
// It plays the role a browser DOM plays for block tools: elements are created
// unattached, decorated with classes and properties, and read back through
// class lookups and innerHTML serialization.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrInvalidTagName is returned when an element cannot be created for the given tag name.
	ErrInvalidTagName = errors.New("dom: invalid tag name")
	// ErrInvalidClassName is returned when a class token is empty or contains whitespace.
	ErrInvalidClassName = errors.New("dom: invalid class name")
	// ErrNotElement is returned when an element-only operation receives another node type.
	ErrNotElement = errors.New("dom: node is not an element")
)

const (
	attrClass           = "class"
	attrContentEditable = "contenteditable"
	dataAttrPrefix      = "data-"
)

// Props is the set of element properties Make knows how to assign.
type Props struct {
	// Editable marks the element content-editable.
	Editable bool
	// InitialContent is parsed as an HTML fragment and becomes the element's children.
	InitialContent string
}

// Make creates a new unattached element with the given classes and properties.
func Make(tagName string, classNames []string, props Props) (*html.Node, error) {
	el, err := newElement(tagName)
	if err != nil {
		return nil, err
	}

	if err := AddClass(el, classNames...); err != nil {
		return nil, err
	}

	if props.Editable {
		SetAttr(el, attrContentEditable, "true")
	}

	if props.InitialContent != "" {
		if err := SetInnerHTML(el, props.InitialContent); err != nil {
			return nil, err
		}
	}

	return el, nil
}

func newElement(tagName string) (*html.Node, error) {
	name := strings.ToLower(tagName)
	if name == "" || strings.ContainsAny(name, " \t\n\r\f<>/=\"'") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTagName, tagName)
	}

	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(name)),
		Data:     name,
	}, nil
}

// AddClass appends class tokens to the element, skipping ones it already carries.
func AddClass(n *html.Node, classNames ...string) error {
	if len(classNames) == 0 {
		return nil
	}
	if n == nil || n.Type != html.ElementNode {
		return ErrNotElement
	}

	classes := Classes(n)
	for _, name := range classNames {
		if name == "" || strings.ContainsAny(name, " \t\n\r\f") {
			return fmt.Errorf("%w: %q", ErrInvalidClassName, name)
		}
		if !containsString(classes, name) {
			classes = append(classes, name)
		}
	}

	SetAttr(n, attrClass, strings.Join(classes, " "))
	return nil
}

// Classes returns the element's class tokens in order.
func Classes(n *html.Node) []string {
	value, ok := Attr(n, attrClass)
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// HasClass reports whether the element carries the class token.
func HasClass(n *html.Node, className string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return containsString(Classes(n), className)
}

// Attr returns the value of an attribute without a namespace.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute without a namespace.
func SetAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// Data returns the value of a data-* attribute, like element.dataset[name].
func Data(n *html.Node, name string) (string, bool) {
	return Attr(n, dataAttrPrefix+name)
}

// SetData sets a data-* attribute, like element.dataset[name] = value.
func SetData(n *html.Node, name, value string) {
	SetAttr(n, dataAttrPrefix+name, value)
}

// IsEditable reports whether the element is marked content-editable.
func IsEditable(n *html.Node) bool {
	value, ok := Attr(n, attrContentEditable)
	if !ok {
		return false
	}
	switch strings.ToLower(value) {
	case "", "true", "plaintext-only":
		return true
	default:
		return false
	}
}

// QueryClass returns the first descendant of root, in document order, that
// carries the class token. The root itself is not considered.
func QueryClass(root *html.Node, className string) *html.Node {
	return query(root, func(n *html.Node) bool {
		return HasClass(n, className)
	})
}

// QueryData returns the first descendant element whose data-* attribute equals value.
func QueryData(root *html.Node, name, value string) *html.Node {
	return query(root, func(n *html.Node) bool {
		got, ok := Data(n, name)
		return ok && got == value
	})
}

// QueryAllClass returns every descendant of root carrying the class token, in document order.
func QueryAllClass(root *html.Node, className string) []*html.Node {
	var found []*html.Node
	walk(root, func(n *html.Node) bool {
		if HasClass(n, className) {
			found = append(found, n)
		}
		return false
	})
	return found
}

func query(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return true
		}
		return false
	})
	return found
}

// walk visits the descendants of root depth-first until visit returns true.
func walk(root *html.Node, visit func(*html.Node) bool) bool {
	if root == nil {
		return false
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if visit(c) || walk(c, visit) {
			return true
		}
	}
	return false
}

// FirstElement returns the first element among nodes, skipping text and comments.
func FirstElement(nodes []*html.Node) *html.Node {
	for _, n := range nodes {
		if n != nil && n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// FirstElementChild returns the first child of n that is an element.
func FirstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
