// Package markdown moves page metadata between Markdown documents and
// Metaparam records.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rgonek/editorjs-metaparam/dom"
	"github.com/rgonek/editorjs-metaparam/metaparam"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const (
	frontMatterDelimiter = "---\n"
	keywordSeparator     = ", "
)

type frontMatterEnvelope struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Keywords    any    `yaml:"keywords" toml:"keywords" json:"keywords"`
}

// Importer reads Metaparam records from Markdown documents.
type Importer struct {
	md goldmark.Markdown
}

// NewImporter creates an Importer with GFM enabled.
func NewImporter() *Importer {
	return &Importer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Import reads title, description and keywords from the document's front
// matter. A missing title falls back to the first heading of the body and a
// missing description to the first paragraph, both as inline HTML.
func (im *Importer) Import(source []byte) (metaparam.Data, error) {
	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return metaparam.Data{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	data := metaparam.Data{
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    joinKeywords(meta.Keywords),
	}
	if data.Title != "" && data.Description != "" {
		return data, nil
	}

	root := im.md.Parser().Parse(text.NewReader(body))
	heading, paragraph := firstBlocks(root)

	if data.Title == "" && heading != nil {
		if data.Title, err = im.renderInner(body, heading); err != nil {
			return metaparam.Data{}, err
		}
	}
	if data.Description == "" && paragraph != nil {
		if data.Description, err = im.renderInner(body, paragraph); err != nil {
			return metaparam.Data{}, err
		}
	}

	return data, nil
}

// Import reads a record with a default Importer.
func Import(source []byte) (metaparam.Data, error) {
	return NewImporter().Import(source)
}

// firstBlocks returns the first heading and the first top-level paragraph.
func firstBlocks(root ast.Node) (ast.Node, ast.Node) {
	var heading, paragraph ast.Node
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch n.Kind() {
		case ast.KindHeading:
			if heading == nil {
				heading = n
			}
		case ast.KindParagraph:
			if paragraph == nil {
				paragraph = n
			}
		}
		if heading != nil && paragraph != nil {
			break
		}
	}
	return heading, paragraph
}

func (im *Importer) renderInner(source []byte, n ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := im.md.Renderer().Render(&buf, source, n); err != nil {
		return "", fmt.Errorf("render %s: %w", n.Kind(), err)
	}

	nodes, err := dom.ParseFragment(buf.String())
	if err != nil {
		return "", fmt.Errorf("parse rendered %s: %w", n.Kind(), err)
	}
	el := dom.FirstElement(nodes)
	if el == nil {
		return "", nil
	}
	return dom.InnerHTML(el)
}

func joinKeywords(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, keywordSeparator)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, keywordSeparator)
	default:
		return fmt.Sprint(v)
	}
}

// Export renders the record as a YAML front matter block. Values are written
// exactly as stored.
func Export(d metaparam.Data) ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.Write(out)
	buf.WriteString(frontMatterDelimiter)
	return buf.Bytes(), nil
}
