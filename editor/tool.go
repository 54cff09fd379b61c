// Package editor is a host runtime for block tools. It instantiates tools from
// saved Editor.js documents, renders them into an editor holder tree and saves
// the holder back into a document, applying each tool's sanitize rules.
package editor

import "golang.org/x/net/html"

// Toolbox describes how a tool is offered in the block insertion menu.
type Toolbox struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

// SanitizeRules lists the markup allowed in one saved field. Keys are tag
// names; a value of true allows the bare tag, a []string or map value also
// allows the named attributes. An empty rule set disables sanitizing for the
// field entirely.
type SanitizeRules map[string]any

// SanitizeConfig maps saved data field names to their rules.
type SanitizeConfig map[string]SanitizeRules

// Styles are the host CSS classes tools use for themed blocks and inputs.
type Styles struct {
	Block string `json:"block" yaml:"block"`
	Input string `json:"input" yaml:"input"`
}

// API is the host capability set passed to every tool instance.
type API struct {
	Styles Styles
}

// ToolOptions carries everything a tool instance is constructed from.
type ToolOptions struct {
	Data   map[string]any
	Config map[string]any
	API    API
}

// BlockTool is one block instance.
type BlockTool interface {
	// Render returns the block's container element.
	Render() (*html.Node, error)
	// Save reads the container previously returned by Render (or an
	// equivalent structure) and returns the block's data.
	Save(container *html.Node) (any, error)
}

// ToolClass describes a block type and creates its instances.
type ToolClass interface {
	Name() string
	Toolbox() Toolbox
	EnableLineBreaks() bool
	Sanitize() SanitizeConfig
	New(opts ToolOptions) (BlockTool, error)
}
