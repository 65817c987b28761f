package form

import "encoding/json"

// ToPersistenceRecords flattens a structured section list (extracted or
// fallback) into the ordered, storage-ready record set for one form.
// Options keep their labels only; a multi-widget group's raw widget ids
// are serialized into a single recoverable PDFFieldID string.
func ToPersistenceRecords(sections []ParsedFormSection, formID string) []PersistenceRecord {
	var records []PersistenceRecord
	for _, section := range sections {
		for _, field := range section.Fields {
			rec := PersistenceRecord{
				FormID:       formID,
				FieldName:    field.FieldName,
				FieldType:    field.FieldType,
				FieldLabel:   field.FieldLabel,
				IsRequired:   field.IsRequired,
				DefaultValue: field.DefaultValue,
				Validation:   field.Validation,
				Position:     field.Position,
				Section:      field.Section,
				PDFFieldID:   serializeSourceIDs(field),
			}
			if len(field.Options) > 0 {
				rec.Options = make([]string, 0, len(field.Options))
				for _, opt := range field.Options {
					rec.Options = append(rec.Options, opt.Label)
				}
			}
			records = append(records, rec)
		}
	}
	return records
}

// serializeSourceIDs collapses the field's widget backing into one
// optional string: a single id verbatim, or a JSON array for groups.
func serializeSourceIDs(field ParsedFormField) string {
	if field.SourceWidgetID != "" {
		return field.SourceWidgetID
	}
	if len(field.SourceWidgetIDs) == 0 {
		return ""
	}
	// Marshaling a []string cannot fail.
	data, _ := json.Marshal(field.SourceWidgetIDs)
	return string(data)
}
