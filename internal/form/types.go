package form

// WidgetKind represents the primitive kind of a raw form widget as the
// document format reports it. The set is closed: every consumer switches
// over it exhaustively so a new kind is a compile-visible change.
type WidgetKind string

const (
	WidgetKindText          WidgetKind = "text"
	WidgetKindMultilineText WidgetKind = "multiline-text"
	WidgetKindDropdown      WidgetKind = "dropdown"
	WidgetKindCheckbox      WidgetKind = "checkbox"
	WidgetKindRadioGroup    WidgetKind = "radio-group"
)

// RawWidget is one entry from the source document's interactive form:
// an opaque name, a primitive kind, the current/default value and, for
// choice widgets, the option list. RawWidgets live only within a single
// parse pass.
type RawWidget struct {
	Name         string     `json:"name"`
	Kind         WidgetKind `json:"kind"`
	Value        string     `json:"value,omitempty"`
	DefaultValue string     `json:"default_value,omitempty"`
	Options      []string   `json:"options,omitempty"`
}

// defaultFieldType maps the primitive widget kind to the semantic field
// type used when no naming-convention evidence overrides it.
func (k WidgetKind) defaultFieldType() FieldType {
	switch k {
	case WidgetKindText:
		return FieldTypeText
	case WidgetKindMultilineText:
		return FieldTypeTextarea
	case WidgetKindDropdown:
		return FieldTypeSelect
	case WidgetKindCheckbox:
		return FieldTypeCheckbox
	case WidgetKindRadioGroup:
		return FieldTypeRadio
	}
	return FieldTypeText
}

// FieldType represents the semantic type of a logical form field.
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeNumber    FieldType = "number"
	FieldTypeDate      FieldType = "date"
	FieldTypeSelect    FieldType = "select"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeTextarea  FieldType = "textarea"
	FieldTypePhone     FieldType = "phone"
	FieldTypeEmail     FieldType = "email"
	FieldTypeURL       FieldType = "url"
	FieldTypeMCCSelect FieldType = "mcc-select"
	FieldTypeZipcode   FieldType = "zipcode"
	FieldTypeEIN       FieldType = "ein"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeBoolean   FieldType = "boolean"
)

// FieldOption is one selectable option of a grouped logical field. For
// fields reconstructed from several widgets, SourceWidgetID records which
// raw widget backs the option.
type FieldOption struct {
	Label          string `json:"label" yaml:"label"`
	Value          string `json:"value" yaml:"value"`
	SourceWidgetID string `json:"source_widget_id,omitempty" yaml:"source_widget_id,omitempty"`
}

// ParsedFormField is the reconstructed, user-meaningful form field. A
// field extracted from a document is backed by exactly one of
// SourceWidgetID (single widget) or SourceWidgetIDs (multi-widget group).
// Fields originating from a fallback template carry neither, and may
// carry the enhanced metadata (Description, HelpText, Placeholder) that
// extraction never produces.
type ParsedFormField struct {
	FieldName       string        `json:"field_name" yaml:"field_name"`
	FieldType       FieldType     `json:"field_type" yaml:"field_type"`
	FieldLabel      string        `json:"field_label" yaml:"field_label"`
	IsRequired      bool          `json:"is_required" yaml:"is_required"`
	Options         []FieldOption `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue    string        `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	Validation      string        `json:"validation,omitempty" yaml:"validation,omitempty"`
	Position        int           `json:"position" yaml:"position"`
	Section         string        `json:"section" yaml:"section"`
	SourceWidgetID  string        `json:"source_widget_id,omitempty" yaml:"source_widget_id,omitempty"`
	SourceWidgetIDs []string      `json:"source_widget_ids,omitempty" yaml:"source_widget_ids,omitempty"`
	Description     string        `json:"description,omitempty" yaml:"description,omitempty"`
	HelpText        string        `json:"help_text,omitempty" yaml:"help_text,omitempty"`
	Placeholder     string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// ParsedFormSection is a named, ordered grouping of logical fields.
// Order values are unique and ascending; fields preserve their original
// position ordering within the section.
type ParsedFormSection struct {
	Title  string            `json:"title" yaml:"title"`
	Order  int               `json:"order" yaml:"order"`
	Fields []ParsedFormField `json:"fields" yaml:"fields"`
}

// ParseResult is the complete output of one parse pass. Parsing never
// fails: when extraction is impossible or yields nothing the result
// holds the fallback template and UsedFallback is set.
type ParseResult struct {
	Sections     []ParsedFormSection `json:"sections" yaml:"sections"`
	TotalFields  int                 `json:"total_fields" yaml:"total_fields"`
	UsedFallback bool                `json:"used_fallback" yaml:"used_fallback"`
	// Collisions counts unstructured widgets that shared a grouping key
	// with an earlier widget and silently overwrote it.
	Collisions int `json:"collisions,omitempty" yaml:"collisions,omitempty"`
}

// PersistenceRecord is the flattened, storage-ready form of a logical
// field, scoped to an owning form. Options keep labels only; the
// value/source pairing is reconstructible from the field-name convention.
type PersistenceRecord struct {
	FormID       string    `json:"form_id" yaml:"form_id"`
	FieldName    string    `json:"field_name" yaml:"field_name"`
	FieldType    FieldType `json:"field_type" yaml:"field_type"`
	FieldLabel   string    `json:"field_label" yaml:"field_label"`
	IsRequired   bool      `json:"is_required" yaml:"is_required"`
	Options      []string  `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue string    `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	Validation   string    `json:"validation,omitempty" yaml:"validation,omitempty"`
	Position     int       `json:"position" yaml:"position"`
	Section      string    `json:"section" yaml:"section"`
	PDFFieldID   string    `json:"pdf_field_id,omitempty" yaml:"pdf_field_id,omitempty"`
}
