package metaparam

// Field names of the saved data record.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldKeywords    = "keywords"
)

// Default placeholders shown in empty inputs.
const (
	DefaultTitlePlaceholder       = "Title"
	DefaultDescriptionPlaceholder = "Description"
	DefaultKeywordsPlaceholder    = "Keywords"
)

// Data is the saved metadata record. Values are raw markup as typed by the user.
type Data struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Keywords    string `json:"keywords" yaml:"keywords"`
}

// Map returns the record in the generic form hosts store per block.
func (d Data) Map() map[string]any {
	return map[string]any{
		FieldTitle:       d.Title,
		FieldDescription: d.Description,
		FieldKeywords:    d.Keywords,
	}
}

// DataFromMap reads a record from host block data. Missing, null and
// non-string values become empty strings.
func DataFromMap(m map[string]any) Data {
	return Data{
		Title:       stringValue(m, FieldTitle),
		Description: stringValue(m, FieldDescription),
		Keywords:    stringValue(m, FieldKeywords),
	}
}

// Config holds the input placeholders. Empty values fall back to the defaults.
type Config struct {
	TitlePlaceholder       string `json:"titlePlaceholder,omitempty" yaml:"titlePlaceholder,omitempty"`
	DescriptionPlaceholder string `json:"descriptionPlaceholder,omitempty" yaml:"descriptionPlaceholder,omitempty"`
	KeywordsPlaceholder    string `json:"keywordsPlaceholder,omitempty" yaml:"keywordsPlaceholder,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.TitlePlaceholder == "" {
		c.TitlePlaceholder = DefaultTitlePlaceholder
	}
	if c.DescriptionPlaceholder == "" {
		c.DescriptionPlaceholder = DefaultDescriptionPlaceholder
	}
	if c.KeywordsPlaceholder == "" {
		c.KeywordsPlaceholder = DefaultKeywordsPlaceholder
	}
	return c
}

// ConfigFromMap reads placeholders from host tool config, ignoring anything
// that is not a string.
func ConfigFromMap(m map[string]any) Config {
	return Config{
		TitlePlaceholder:       stringValue(m, "titlePlaceholder"),
		DescriptionPlaceholder: stringValue(m, "descriptionPlaceholder"),
		KeywordsPlaceholder:    stringValue(m, "keywordsPlaceholder"),
	}
}

func stringValue(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
