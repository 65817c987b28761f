package form

import "strings"

// optionTypeVocabulary is the closed set of option-type tokens the
// naming convention section_fieldname_optiontype[_optionvalue] may embed
// in a widget name. The first matching token wins during decomposition;
// a field name that itself contains a vocabulary word before the real
// type token is an accepted ambiguity of the convention.
var optionTypeVocabulary = map[string]bool{
	"radio":    true,
	"checkbox": true,
	"select":   true,
	"bool":     true,
	"boolean":  true,
	"text":     true,
	"textarea": true,
	"email":    true,
	"phone":    true,
	"zipcode":  true,
	"ein":      true,
	"date":     true,
}

// FieldNameParts is the decomposition of one opaque widget name.
// When IsStructured is false, OptionType and OptionValue are empty and
// Section defaults to the first underscore-delimited token, or "general"
// when the name has no underscore at all.
type FieldNameParts struct {
	Section      string
	FieldName    string
	OptionType   string
	OptionValue  string
	IsStructured bool
}

// DecomposeFieldName tokenizes an opaque widget name against the
// underscore convention. It is a total function: every input yields a
// best-effort decomposition, never an error.
func DecomposeFieldName(name string) FieldNameParts {
	tokens := strings.Split(name, "_")
	if len(tokens) < 2 {
		return FieldNameParts{Section: "general", FieldName: name}
	}

	for i := 1; i < len(tokens); i++ {
		token := strings.ToLower(tokens[i])
		if !optionTypeVocabulary[token] {
			continue
		}
		parts := FieldNameParts{
			Section:      tokens[0],
			FieldName:    strings.Join(tokens[1:i], "_"),
			OptionType:   token,
			IsStructured: true,
		}
		if i+1 < len(tokens) {
			parts.OptionValue = strings.Join(tokens[i+1:], "_")
		}
		return parts
	}

	// Legacy name: underscores but no option-type token anywhere.
	return FieldNameParts{
		Section:   tokens[0],
		FieldName: strings.Join(tokens[1:], "_"),
	}
}
