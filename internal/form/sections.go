package form

// collapsedSectionTitle names the single catch-all section used when
// partitioning by name prefix would add no information.
const collapsedSectionTitle = "Form Fields"

// assembleSections partitions logical fields into sections by their
// already-computed section value. Many real documents have no naming
// discipline at all, so a degenerate partition (every field in one
// bucket) collapses to a single catch-all section instead of presenting
// a spurious layout to the rendering layer.
func assembleSections(fields []ParsedFormField) []ParsedFormSection {
	if len(fields) == 0 {
		return nil
	}

	order := make([]string, 0, 4)
	buckets := make(map[string][]ParsedFormField, 4)
	for _, f := range fields {
		if _, seen := buckets[f.Section]; !seen {
			order = append(order, f.Section)
		}
		buckets[f.Section] = append(buckets[f.Section], f)
	}

	if len(order) == 1 {
		return []ParsedFormSection{{
			Title:  collapsedSectionTitle,
			Order:  1,
			Fields: fields,
		}}
	}

	sections := make([]ParsedFormSection, 0, len(order))
	for i, key := range order {
		sections = append(sections, ParsedFormSection{
			Title:  humanizeLabel(key),
			Order:  i + 1,
			Fields: buckets[key],
		})
	}
	return sections
}
