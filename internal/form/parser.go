package form

import "log"

// Parser is the form-field extraction and structuring engine. It holds
// no mutable state between invocations; concurrent parses over separate
// documents need no coordination.
type Parser struct {
	extractor *WidgetExtractor
	variant   TemplateVariant
	debug     bool
}

// NewParser creates a parser that substitutes the current fallback
// template when extraction is impossible or empty.
func NewParser(debug bool) *Parser {
	return NewParserWithTemplate(TemplateCurrent, debug)
}

// NewParserWithTemplate creates a parser with an explicit fallback
// template variant. The legacy variant exists for consumers that still
// reference its exact field-name set.
func NewParserWithTemplate(variant TemplateVariant, debug bool) *Parser {
	return &Parser{
		extractor: NewWidgetExtractor(debug),
		variant:   variant,
		debug:     debug,
	}
}

// Parse extracts, decomposes, groups, and sections the form fields of
// one document buffer. It never fails: a load error, an empty form, or
// any unexpected structural error during the pipeline substitutes the
// fallback template, so the caller always gets a usable schema.
func (p *Parser) Parse(buf []byte) *ParseResult {
	widgets, err := p.extractor.ExtractWidgets(buf)
	if err != nil {
		log.Printf("form parse: document load failed, substituting fallback template: %v", err)
		return p.fallbackResult()
	}
	if len(widgets) == 0 {
		log.Printf("form parse: substituting fallback template: %v", ErrEmptyForm)
		return p.fallbackResult()
	}
	return p.ParseWidgets(widgets)
}

// ParseWidgets runs the pure pipeline over an already-extracted widget
// list. Exposed for callers that obtain widgets elsewhere and for tests.
func (p *Parser) ParseWidgets(widgets []RawWidget) (result *ParseResult) {
	if len(widgets) == 0 {
		return p.fallbackResult()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("form parse: unexpected structural error, substituting fallback template: %v", r)
			result = p.fallbackResult()
		}
	}()

	fields, collisions := groupWidgets(widgets)
	sections := assembleSections(fields)

	return &ParseResult{
		Sections:    sections,
		TotalFields: countFields(sections),
		Collisions:  collisions,
	}
}

func (p *Parser) fallbackResult() *ParseResult {
	sections := FallbackTemplate(p.variant)
	return &ParseResult{
		Sections:     sections,
		TotalFields:  countFields(sections),
		UsedFallback: true,
	}
}

func countFields(sections []ParsedFormSection) int {
	total := 0
	for _, s := range sections {
		total += len(s.Fields)
	}
	return total
}
