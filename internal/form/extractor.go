package form

import (
	"bytes"
	"fmt"
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Field flag bits per the PDF spec (1-based bit numbers 13, 16, 17).
const (
	flagMultiline  = 1 << 12
	flagRadio      = 1 << 15
	flagPushbutton = 1 << 16
)

// WidgetExtractor reads the interactive form of a PDF document and
// returns one RawWidget per form widget, in the document's native
// encounter order.
type WidgetExtractor struct {
	debug bool
}

// NewWidgetExtractor creates a widget extractor.
func NewWidgetExtractor(debug bool) *WidgetExtractor {
	return &WidgetExtractor{debug: debug}
}

// ExtractWidgets extracts all form widgets from a PDF byte buffer. A
// buffer that cannot be read as a PDF yields a DocumentLoadError; a
// readable document with no form widgets yields an empty list and no
// error.
func (e *WidgetExtractor) ExtractWidgets(buf []byte) ([]RawWidget, error) {
	if len(buf) == 0 {
		return nil, &DocumentLoadError{Err: fmt.Errorf("empty document buffer")}
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(buf), conf)
	if err != nil {
		return nil, &DocumentLoadError{Err: fmt.Errorf("failed to read PDF context: %w", err)}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, &DocumentLoadError{Err: fmt.Errorf("failed to ensure page count: %w", err)}
	}

	return e.extractFromContext(ctx)
}

// extractFromContext walks the AcroForm Fields array of a pdfcpu context.
func (e *WidgetExtractor) extractFromContext(ctx *model.Context) ([]RawWidget, error) {
	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, &DocumentLoadError{Err: fmt.Errorf("failed to get catalog: %w", err)}
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		if e.debug {
			log.Printf("No AcroForm dictionary found in document")
		}
		return nil, nil
	}

	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, &DocumentLoadError{Err: fmt.Errorf("failed to dereference AcroForm: %w", err)}
	}
	if acroFormDict == nil {
		return nil, nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return nil, nil
	}

	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, &DocumentLoadError{Err: fmt.Errorf("failed to dereference Fields array: %w", err)}
	}

	widgets := make([]RawWidget, 0, len(fieldsArray))
	for i, fieldRef := range fieldsArray {
		widget, err := e.processField(ctx, fieldRef, i)
		if err != nil {
			if e.debug {
				log.Printf("Error processing field %d: %v", i, err)
			}
			continue
		}
		if widget != nil {
			widgets = append(widgets, *widget)
		}
	}

	return widgets, nil
}

// processField converts a single field dictionary to a RawWidget. Fields
// that carry no user data (pushbuttons, signatures) return nil.
func (e *WidgetExtractor) processField(ctx *model.Context, fieldObj types.Object, index int) (*RawWidget, error) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference field: %w", err)
	}
	if fieldDict == nil {
		return nil, nil
	}

	widget := &RawWidget{}

	if nameObj, found := fieldDict.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			widget.Name = name
		}
	}
	if widget.Name == "" {
		widget.Name = fmt.Sprintf("field_%d", index)
	}

	ftName := e.fieldTypeName(ctx, fieldDict)
	flags := e.fieldFlags(ctx, fieldDict)

	switch ftName {
	case "Tx":
		if flags&flagMultiline != 0 {
			widget.Kind = WidgetKindMultilineText
		} else {
			widget.Kind = WidgetKindText
		}
		widget.Value = e.stringValue(ctx, fieldDict, "V")
		widget.DefaultValue = e.stringValue(ctx, fieldDict, "DV")

	case "Ch":
		widget.Kind = WidgetKindDropdown
		widget.Options = e.fieldOptions(ctx, fieldDict)
		widget.Value = e.stringValue(ctx, fieldDict, "V")
		widget.DefaultValue = e.stringValue(ctx, fieldDict, "DV")

	case "Btn":
		if flags&flagPushbutton != 0 {
			return nil, nil
		}
		if flags&flagRadio != 0 {
			widget.Kind = WidgetKindRadioGroup
			widget.Options = e.fieldOptions(ctx, fieldDict)
			if selected := e.nameValue(ctx, fieldDict, "V"); selected != "" && selected != "Off" {
				widget.Value = selected
			}
		} else {
			widget.Kind = WidgetKindCheckbox
			if checked := e.nameValue(ctx, fieldDict, "V"); checked != "" && checked != "Off" {
				widget.Value = "true"
			}
		}

	default:
		// Signature and unknown field types hold nothing renderable.
		return nil, nil
	}

	if e.debug {
		log.Printf("Extracted widget: %s (kind: %s)", widget.Name, widget.Kind)
	}

	return widget, nil
}

// fieldTypeName resolves the FT entry, following Parent for inherited
// field types.
func (e *WidgetExtractor) fieldTypeName(ctx *model.Context, fieldDict types.Dict) string {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, found := fieldDict.Find("Parent"); found {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return e.fieldTypeName(ctx, parentDict)
			}
		}
		return ""
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return ""
	}
	return string(ftName)
}

func (e *WidgetExtractor) fieldFlags(ctx *model.Context, fieldDict types.Dict) int64 {
	flagsObj, found := fieldDict.Find("Ff")
	if !found {
		return 0
	}
	flags, err := ctx.DereferenceInteger(flagsObj)
	if err != nil || flags == nil {
		return 0
	}
	return int64(*flags)
}

func (e *WidgetExtractor) stringValue(ctx *model.Context, fieldDict types.Dict, key string) string {
	obj, found := fieldDict.Find(key)
	if !found {
		return ""
	}
	if val, err := ctx.DereferenceStringOrHexLiteral(obj, model.V10, nil); err == nil {
		return val
	}
	if name, err := ctx.DereferenceName(obj, model.V10, nil); err == nil {
		return string(name)
	}
	return ""
}

func (e *WidgetExtractor) nameValue(ctx *model.Context, fieldDict types.Dict, key string) string {
	obj, found := fieldDict.Find(key)
	if !found {
		return ""
	}
	name, err := ctx.DereferenceName(obj, model.V10, nil)
	if err != nil {
		return ""
	}
	return string(name)
}

// fieldOptions extracts the Opt array of a choice field. Entries can be
// plain strings or [export_value, display_value] pairs; the display
// value wins for pairs.
func (e *WidgetExtractor) fieldOptions(ctx *model.Context, fieldDict types.Dict) []string {
	optObj, found := fieldDict.Find("Opt")
	if !found {
		return nil
	}

	optArray, err := ctx.DereferenceArray(optObj)
	if err != nil {
		return nil
	}

	var options []string
	for _, opt := range optArray {
		if str, err := ctx.DereferenceStringOrHexLiteral(opt, model.V10, nil); err == nil {
			options = append(options, str)
		} else if arr, err := ctx.DereferenceArray(opt); err == nil && len(arr) >= 2 {
			if displayVal, err := ctx.DereferenceStringOrHexLiteral(arr[1], model.V10, nil); err == nil {
				options = append(options, displayVal)
			}
		}
	}
	return options
}
