package form

import "strings"

// groupingKey merges widgets that belong to the same logical field. For
// structured names the option type takes part in the key, so a radio
// group and a select sharing a field name stay distinct.
type groupingKey struct {
	section    string
	fieldName  string
	optionType string
}

// member pairs a raw widget with its decomposed name and the 1-based
// position at which it was encountered.
type member struct {
	widget   RawWidget
	parts    FieldNameParts
	position int
}

// groupWidgets merges raw widgets into logical fields and reconciles
// each field's semantic type. It returns the fields in encounter order
// of their first member, plus the count of unstructured key collisions
// that resolved by last-writer-wins.
func groupWidgets(widgets []RawWidget) ([]ParsedFormField, int) {
	order := make([]groupingKey, 0, len(widgets))
	groups := make(map[groupingKey][]member, len(widgets))
	collisions := 0

	for i, w := range widgets {
		parts := DecomposeFieldName(w.Name)
		key := groupingKey{parts.Section, parts.FieldName, parts.OptionType}
		m := member{widget: w, parts: parts, position: i + 1}

		existing, seen := groups[key]
		switch {
		case !seen:
			order = append(order, key)
			groups[key] = []member{m}
		case parts.IsStructured:
			groups[key] = append(existing, m)
		default:
			// Unstructured widgets are never merged into a multi-member
			// group: a duplicate key silently overwrites the earlier
			// widget while keeping its original slot.
			m.position = existing[0].position
			groups[key] = []member{m}
			collisions++
		}
	}

	fields := make([]ParsedFormField, 0, len(order))
	for _, key := range order {
		fields = append(fields, reconcileField(groups[key]))
	}
	return fields, collisions
}

// reconcileField builds one logical field from a non-empty group of
// members sharing a grouping key.
func reconcileField(members []member) ParsedFormField {
	first := members[0]
	field := ParsedFormField{
		FieldName:  first.parts.Section + "_" + first.parts.FieldName,
		FieldLabel: humanizeLabel(first.parts.FieldName),
		Position:   first.position,
		Section:    first.parts.Section,
	}

	switch {
	case first.parts.IsStructured && len(members) > 1:
		field.FieldType = normalizeOptionType(first.parts.OptionType)
		field.Options = make([]FieldOption, 0, len(members))
		field.SourceWidgetIDs = make([]string, 0, len(members))
		for _, m := range members {
			field.Options = append(field.Options, FieldOption{
				Label:          humanizeLabel(m.parts.OptionValue),
				Value:          m.parts.OptionValue,
				SourceWidgetID: m.widget.Name,
			})
			field.SourceWidgetIDs = append(field.SourceWidgetIDs, m.widget.Name)
			if field.DefaultValue == "" && m.widget.Value != "" {
				field.DefaultValue = m.parts.OptionValue
			}
		}

	case first.parts.IsStructured:
		// Convention evidence beats the widget's primitive kind.
		field.FieldType = normalizeOptionType(first.parts.OptionType)
		field.SourceWidgetID = first.widget.Name
		field.Options = widgetOptions(first.widget)
		field.DefaultValue = widgetDefault(first.widget)

	default:
		field.FieldType = upgradeFieldType(first.widget.Kind.defaultFieldType(), first.parts.FieldName)
		field.SourceWidgetID = first.widget.Name
		field.Options = widgetOptions(first.widget)
		field.DefaultValue = widgetDefault(first.widget)
	}

	return field
}

// normalizeOptionType maps a vocabulary token to a field type. The only
// rewrite is bool to boolean; every other token is a field type already.
func normalizeOptionType(token string) FieldType {
	if token == "bool" {
		return FieldTypeBoolean
	}
	return FieldType(token)
}

// upgradeFieldType promotes a primitive-kind default using substring
// evidence from the field name. First match wins.
func upgradeFieldType(base FieldType, fieldName string) FieldType {
	name := strings.ToLower(fieldName)
	switch {
	case strings.Contains(name, "date"):
		return FieldTypeDate
	case strings.Contains(name, "email"):
		return FieldTypeEmail
	case strings.Contains(name, "phone"):
		return FieldTypePhone
	case strings.Contains(name, "zip"), strings.Contains(name, "postal"):
		return FieldTypeZipcode
	case strings.Contains(name, "taxid"), strings.Contains(name, "ein"):
		return FieldTypeEIN
	}
	return base
}

// widgetOptions carries a choice widget's own option list onto its
// single-member logical field.
func widgetOptions(w RawWidget) []FieldOption {
	if len(w.Options) == 0 {
		return nil
	}
	options := make([]FieldOption, 0, len(w.Options))
	for _, opt := range w.Options {
		options = append(options, FieldOption{
			Label:          humanizeLabel(opt),
			Value:          opt,
			SourceWidgetID: w.Name,
		})
	}
	return options
}

func widgetDefault(w RawWidget) string {
	if w.Value != "" {
		return w.Value
	}
	return w.DefaultValue
}
