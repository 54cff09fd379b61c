// Package metaparam implements the Metaparam block tool: three editable
// inputs (title, description, keywords) for authoring page metadata.
package metaparam

import (
	"github.com/rgonek/editorjs-metaparam/dom"
	"github.com/rgonek/editorjs-metaparam/editor"
	"golang.org/x/net/html"
)

const (
	wrapperClass     = "cdx-metaparam"
	titleClass       = "cdx-metaparam__title"
	descriptionClass = "cdx-metaparam__description"
	keywordsClass    = "cdx-metaparam__keywords"
	placeholderData  = "placeholder"
)

// CSS holds the class names used by the tool's elements.
type CSS struct {
	BaseClass   string
	Wrapper     string
	Input       string
	Title       string
	Description string
	Keywords    string
}

// Options are the construction inputs supplied by the host.
type Options struct {
	Data   Data
	Config Config
	API    editor.API
}

// Tool is one Metaparam block instance. It owns its data record.
type Tool struct {
	api          editor.API
	placeholders Config
	data         Data
}

// New creates a tool instance. Missing placeholders fall back to defaults;
// data is taken as given.
func New(opts Options) *Tool {
	return &Tool{
		api:          opts.API,
		placeholders: opts.Config.applyDefaults(),
		data:         opts.Data,
	}
}

// CSS returns the tool's class names.
func (t *Tool) CSS() CSS {
	return CSS{
		BaseClass:   t.api.Styles.Block,
		Wrapper:     wrapperClass,
		Input:       t.api.Styles.Input,
		Title:       titleClass,
		Description: descriptionClass,
		Keywords:    keywordsClass,
	}
}

// Placeholders returns the resolved placeholder configuration.
func (t *Tool) Placeholders() Config {
	return t.placeholders
}

// Data returns a snapshot of the current record.
func (t *Tool) Data() Data {
	return t.data
}

type input struct {
	class       string
	value       string
	placeholder string
}

func (t *Tool) inputs() []input {
	css := t.CSS()
	return []input{
		{class: css.Title, value: t.data.Title, placeholder: t.placeholders.TitlePlaceholder},
		{class: css.Description, value: t.data.Description, placeholder: t.placeholders.DescriptionPlaceholder},
		{class: css.Keywords, value: t.data.Keywords, placeholder: t.placeholders.KeywordsPlaceholder},
	}
}

// Render creates the container with the three editable inputs, seeded with
// the current record. Every call builds new nodes.
func (t *Tool) Render() (*html.Node, error) {
	css := t.CSS()

	container, err := dom.Make("div", []string{css.BaseClass, css.Wrapper}, dom.Props{})
	if err != nil {
		return nil, err
	}

	for _, in := range t.inputs() {
		el, err := dom.Make("div", []string{css.Input, in.class}, dom.Props{
			Editable:       true,
			InitialContent: in.value,
		})
		if err != nil {
			return nil, err
		}
		dom.SetData(el, placeholderData, in.placeholder)
		container.AppendChild(el)
	}

	return container, nil
}

// Save reads the inputs of container into the record and returns a snapshot.
// If any input is missing the record is left untouched and the error matches
// ErrNotFound.
func (t *Tool) Save(container *html.Node) (Data, error) {
	css := t.CSS()

	title, err := readInput(container, FieldTitle, css.Title)
	if err != nil {
		return Data{}, err
	}
	description, err := readInput(container, FieldDescription, css.Description)
	if err != nil {
		return Data{}, err
	}
	keywords, err := readInput(container, FieldKeywords, css.Keywords)
	if err != nil {
		return Data{}, err
	}

	t.data = Data{
		Title:       title,
		Description: description,
		Keywords:    keywords,
	}
	return t.data, nil
}

func readInput(container *html.Node, field, class string) (string, error) {
	el := dom.QueryClass(container, class)
	if el == nil {
		return "", &FieldNotFoundError{Field: field, Class: class}
	}
	return dom.InnerHTML(el)
}
