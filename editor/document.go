package editor

import (
	"encoding/json"
	"fmt"
)

// OutputData is a saved Editor.js document.
type OutputData struct {
	Time    int64       `json:"time,omitempty"`
	Blocks  []BlockData `json:"blocks"`
	Version string      `json:"version,omitempty"`
}

// BlockData is one saved block.
type BlockData struct {
	ID   string         `json:"id,omitempty"`
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// ParseOutputData decodes a saved Editor.js document.
func ParseOutputData(input []byte) (OutputData, error) {
	var doc OutputData
	if err := json.Unmarshal(input, &doc); err != nil {
		return OutputData{}, fmt.Errorf("failed to parse editor JSON: %w", err)
	}
	for i, block := range doc.Blocks {
		if block.Type == "" {
			return OutputData{}, fmt.Errorf("block %d has no type", i)
		}
	}
	return doc, nil
}

// FirstBlock returns the first block of the given type.
func (d OutputData) FirstBlock(blockType string) (BlockData, bool) {
	for _, block := range d.Blocks {
		if block.Type == blockType {
			return block, true
		}
	}
	return BlockData{}, false
}
