package editor

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rgonek/editorjs-metaparam/dom"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

const (
	HolderClass    = "codex-editor"
	BlockClass     = "ce-block"
	StubBlockClass = "ce-block--stub"

	dataBlockID   = "id"
	dataBlockType = "type"
	dataBlockData = "block"
)

// Editor instantiates registered tools for saved documents.
type Editor struct {
	config    Config
	tools     *Registry
	sanitizer *Sanitizer
	log       *logrus.Logger
}

// New creates an Editor with the given config and tools.
func New(config Config, tools *Registry) (*Editor, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tools == nil {
		tools = NewRegistry()
	}

	sanitizer, err := NewSanitizer(cfg.Sanitize)
	if err != nil {
		return nil, err
	}

	return &Editor{
		config:    cfg,
		tools:     tools,
		sanitizer: sanitizer,
		log:       cfg.Logger,
	}, nil
}

// Tools returns the editor's tool registry.
func (e *Editor) Tools() *Registry {
	return e.tools
}

// NewBlockID returns an identifier for a block that has none yet.
func NewBlockID() string {
	return uuid.NewString()
}

type block struct {
	id    string
	kind  string
	class ToolClass
	tool  BlockTool
	// data is kept for preserved blocks that have no tool.
	data map[string]any
}

// Session is a loaded document: one tool instance per block.
type Session struct {
	editor *Editor
	blocks []*block
	// loadWarnings come from Load, Append and Restore; saveWarnings are
	// replaced by every Save.
	loadWarnings []Warning
	saveWarnings []Warning
}

// Load instantiates a tool for every block of doc.
func (e *Editor) Load(doc OutputData) (*Session, error) {
	s := &Session{editor: e}
	for i, bd := range doc.Blocks {
		if err := s.add(bd); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return s, nil
}

// Append adds a new block of the given type to the end of the session.
func (s *Session) Append(blockType string, data map[string]any) error {
	return s.add(BlockData{Type: blockType, Data: data})
}

// Len returns the number of blocks in the session.
func (s *Session) Len() int {
	return len(s.blocks)
}

// Warnings returns the warnings of loading the session followed by those of
// the most recent Save.
func (s *Session) Warnings() []Warning {
	warnings := make([]Warning, 0, len(s.loadWarnings)+len(s.saveWarnings))
	warnings = append(warnings, s.loadWarnings...)
	return append(warnings, s.saveWarnings...)
}

func (s *Session) add(bd BlockData) error {
	id := bd.ID
	if id == "" {
		id = NewBlockID()
	}
	log := s.editor.log.WithFields(logrus.Fields{"block": id, "type": bd.Type})

	class, ok := s.editor.tools.Lookup(bd.Type)
	if !ok {
		switch s.editor.config.UnknownTools {
		case UnknownError:
			return fmt.Errorf("unknown tool %q", bd.Type)
		case UnknownSkip:
			log.Warn("skipping block with unknown tool")
			s.loadWarnings = appendWarning(s.loadWarnings, WarningSkippedBlock, id, bd.Type, "block dropped: no tool registered")
			return nil
		default:
			log.Warn("preserving block with unknown tool")
			s.loadWarnings = appendWarning(s.loadWarnings, WarningUnknownTool, id, bd.Type, "block data preserved: no tool registered")
			s.blocks = append(s.blocks, &block{id: id, kind: bd.Type, data: cloneMap(bd.Data)})
			return nil
		}
	}

	tool, err := class.New(ToolOptions{
		Data:   cloneMap(bd.Data),
		Config: cloneMap(s.editor.config.Tools[bd.Type].Config),
		API:    API{Styles: s.editor.config.Styles},
	})
	if err != nil {
		return fmt.Errorf("create %q tool: %w", bd.Type, err)
	}

	log.Debug("block loaded")
	s.blocks = append(s.blocks, &block{id: id, kind: bd.Type, class: class, tool: tool})
	return nil
}

// Render builds the editor holder with one wrapper per block.
func (s *Session) Render() (*html.Node, error) {
	holder, err := dom.Make("div", []string{HolderClass}, dom.Props{})
	if err != nil {
		return nil, err
	}

	for _, b := range s.blocks {
		wrapper, err := s.renderBlock(b)
		if err != nil {
			return nil, err
		}
		holder.AppendChild(wrapper)
	}

	return holder, nil
}

func (s *Session) renderBlock(b *block) (*html.Node, error) {
	classes := []string{BlockClass}
	if b.tool == nil {
		classes = append(classes, StubBlockClass)
	}

	wrapper, err := dom.Make("div", classes, dom.Props{})
	if err != nil {
		return nil, err
	}
	dom.SetData(wrapper, dataBlockID, b.id)
	dom.SetData(wrapper, dataBlockType, b.kind)

	if b.tool == nil {
		raw, err := json.Marshal(b.data)
		if err != nil {
			return nil, fmt.Errorf("render block %s (%s): %w", b.id, b.kind, err)
		}
		dom.SetData(wrapper, dataBlockData, string(raw))
		return wrapper, nil
	}

	content, err := b.tool.Render()
	if err != nil {
		return nil, fmt.Errorf("render block %s (%s): %w", b.id, b.kind, err)
	}
	wrapper.AppendChild(content)

	s.editor.log.WithFields(logrus.Fields{"block": b.id, "type": b.kind}).Debug("block rendered")
	return wrapper, nil
}

// Save reads every block back from holder and returns the document.
// Blocks whose wrapper is gone from holder are treated as deleted.
func (s *Session) Save(holder *html.Node) (OutputData, error) {
	cfg := s.editor.config
	doc := OutputData{
		Time:    cfg.Now().UnixMilli(),
		Version: cfg.Version,
		Blocks:  make([]BlockData, 0, len(s.blocks)),
	}
	var warnings []Warning

	for _, b := range s.blocks {
		if b.tool == nil {
			doc.Blocks = append(doc.Blocks, BlockData{ID: b.id, Type: b.kind, Data: cloneMap(b.data)})
			continue
		}

		wrapper := findWrapper(holder, b.id)
		if wrapper == nil {
			warnings = appendWarning(warnings, WarningMissingBlock, b.id, b.kind, "block wrapper not found in holder, treated as deleted")
			continue
		}

		data, changed, err := s.saveBlock(b, dom.FirstElementChild(wrapper))
		if err != nil {
			return OutputData{}, err
		}
		for _, field := range changed {
			warnings = appendWarning(warnings, WarningSanitizedField, b.id, b.kind, fmt.Sprintf("field %q was sanitized", field))
		}
		doc.Blocks = append(doc.Blocks, BlockData{ID: b.id, Type: b.kind, Data: data})
	}

	s.saveWarnings = warnings
	return doc, nil
}

func (s *Session) saveBlock(b *block, container *html.Node) (map[string]any, []string, error) {
	saved, err := b.tool.Save(container)
	if err != nil {
		return nil, nil, fmt.Errorf("save block %s (%s): %w", b.id, b.kind, err)
	}

	data, err := toDataMap(saved)
	if err != nil {
		return nil, nil, fmt.Errorf("save block %s (%s): %w", b.id, b.kind, err)
	}

	cleaned, changed := s.editor.sanitizer.Clean(b.kind, b.class.Sanitize(), data)

	s.editor.log.WithFields(logrus.Fields{"block": b.id, "type": b.kind, "sanitized": len(changed)}).Debug("block saved")
	return cleaned, changed, nil
}

// Restore rebuilds a session from a rendered editor holder, typically one
// parsed back from serialized markup after editing. Tools start empty and
// take their data from the DOM on Save, except preserved stubs, whose data
// travels in the wrapper's data-block attribute.
func (e *Editor) Restore(root *html.Node) (*Session, error) {
	holder := root
	if !dom.HasClass(holder, HolderClass) {
		holder = dom.QueryClass(root, HolderClass)
	}
	if holder == nil {
		return nil, fmt.Errorf("editor holder %q not found", HolderClass)
	}

	s := &Session{editor: e}
	for c := holder.FirstChild; c != nil; c = c.NextSibling {
		if !dom.HasClass(c, BlockClass) {
			continue
		}
		id, _ := dom.Data(c, dataBlockID)
		kind, ok := dom.Data(c, dataBlockType)
		if !ok || kind == "" {
			return nil, fmt.Errorf("block wrapper %q has no type", id)
		}
		if id == "" {
			id = NewBlockID()
			dom.SetData(c, dataBlockID, id)
		}
		var data map[string]any
		if raw, ok := dom.Data(c, dataBlockData); ok {
			if err := json.Unmarshal([]byte(raw), &data); err != nil {
				return nil, fmt.Errorf("block %s (%s): decode preserved data: %w", id, kind, err)
			}
		}
		if err := s.add(BlockData{ID: id, Type: kind, Data: data}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func findWrapper(holder *html.Node, id string) *html.Node {
	if holder == nil {
		return nil
	}
	if got, ok := dom.Data(holder, dataBlockID); ok && got == id && dom.HasClass(holder, BlockClass) {
		return holder
	}
	for _, wrapper := range dom.QueryAllClass(holder, BlockClass) {
		if got, ok := dom.Data(wrapper, dataBlockID); ok && got == id {
			return wrapper
		}
	}
	return nil
}

func toDataMap(saved any) (map[string]any, error) {
	if m, ok := saved.(map[string]any); ok {
		return cloneMap(m), nil
	}

	raw, err := json.Marshal(saved)
	if err != nil {
		return nil, fmt.Errorf("failed to encode block data: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("block data must be an object: %w", err)
	}
	return data, nil
}

func appendWarning(warnings []Warning, warnType WarningType, blockID, blockType, message string) []Warning {
	return append(warnings, Warning{
		Type:      warnType,
		BlockID:   blockID,
		BlockType: blockType,
		Message:   message,
	})
}
