package metaparam

import (
	_ "embed"
	"strings"

	"github.com/rgonek/editorjs-metaparam/editor"
	"golang.org/x/net/html"
)

// Name is the block type the tool is registered under.
const Name = "metaparam"

const toolboxTitle = "Metaparam"

//go:embed toolbox.svg
var toolboxIcon string

// Toolbox returns the insertion menu entry.
func Toolbox() editor.Toolbox {
	return editor.Toolbox{
		Icon:  strings.TrimSpace(toolboxIcon),
		Title: toolboxTitle,
	}
}

// EnableLineBreaks reports that Enter inserts a line break inside an input
// instead of finishing the block.
func EnableLineBreaks() bool {
	return true
}

// Sanitize declares empty rule sets for all fields, so saved markup is kept as typed.
func Sanitize() editor.SanitizeConfig {
	return editor.SanitizeConfig{
		FieldTitle:       {},
		FieldDescription: {},
		FieldKeywords:    {},
	}
}

// Class registers the tool with an editor.
type Class struct{}

var _ editor.ToolClass = Class{}

func (Class) Name() string                    { return Name }
func (Class) Toolbox() editor.Toolbox         { return Toolbox() }
func (Class) EnableLineBreaks() bool          { return EnableLineBreaks() }
func (Class) Sanitize() editor.SanitizeConfig { return Sanitize() }

// New builds a tool from host block data and tool config.
func (Class) New(opts editor.ToolOptions) (editor.BlockTool, error) {
	return block{New(Options{
		Data:   DataFromMap(opts.Data),
		Config: ConfigFromMap(opts.Config),
		API:    opts.API,
	})}, nil
}

// block adapts Tool to the editor's BlockTool contract.
type block struct {
	*Tool
}

func (b block) Save(container *html.Node) (any, error) {
	data, err := b.Tool.Save(container)
	if err != nil {
		return nil, err
	}
	return data.Map(), nil
}
