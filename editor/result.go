package editor

// WarningType categorizes editor warnings.
type WarningType string

const (
	WarningUnknownTool    WarningType = "unknown_tool"
	WarningSkippedBlock   WarningType = "skipped_block"
	WarningMissingBlock   WarningType = "missing_block"
	WarningSanitizedField WarningType = "sanitized_field"
)

// Warning represents a non-fatal issue encountered while loading or saving.
type Warning struct {
	Type      WarningType `json:"type"`
	BlockID   string      `json:"blockId,omitempty"`
	BlockType string      `json:"blockType,omitempty"`
	Message   string      `json:"message"`
}
