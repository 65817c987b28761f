package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/formlift/formschema/internal/form"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json, yaml")
	asRecords    = flag.Bool("records", false, "Output flattened persistence records instead of sections")
	formID       = flag.String("form-id", "", "Form ID to stamp on persistence records (requires -records)")
	template     = flag.String("template", "current", "Fallback template variant: current, legacy")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath := flag.Arg(0)
	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read file %s: %v\n", absPath, err)
		os.Exit(1)
	}

	if *verbose {
		printDocumentDetails(buf)
	}

	parser := form.NewParserWithTemplate(form.TemplateVariant(*template), *verbose)
	result := parser.Parse(buf)

	if err := outputResult(absPath, result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting result: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Form Extract Schema - extract a structured form schema from a fillable PDF")
	fmt.Println()
	fmt.Println("Reconstructs sectioned, typed form fields from the PDF's interactive form")
	fmt.Println("widgets. When the document cannot be read or has no widgets, a static")
	fmt.Println("fallback template is substituted so the output is always a usable schema.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format        Output format: text (default), json, yaml")
	fmt.Println("  -records       Output flattened persistence records instead of sections")
	fmt.Println("  -form-id       Form ID stamped on persistence records")
	fmt.Println("  -template      Fallback template variant: current (default), legacy")
	fmt.Println("  -verbose       Print document details and extraction diagnostics")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  form_extract_schema application.pdf")
	fmt.Println("  form_extract_schema -format json application.pdf")
	fmt.Println("  form_extract_schema -format yaml -records -form-id merchant-1 application.pdf")
	fmt.Println("  form_extract_schema -template legacy -verbose application.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  form_extract_schema [OPTIONS] <pdf_file>")
}

func printDocumentDetails(buf []byte) {
	details, err := form.DocumentInfo(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read document details: %v\n", err)
		return
	}
	fmt.Printf("Document: %d page(s), %d bytes\n\n", details.Pages, details.Size)
}

func outputResult(path string, result *form.ParseResult) error {
	if *asRecords {
		records := form.ToPersistenceRecords(result.Sections, *formID)
		return outputValue(records, func() { outputRecordsText(records) })
	}
	return outputValue(result, func() { outputSchemaText(path, result) })
}

func outputValue(value any, text func()) error {
	switch *outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(value)
	case "text":
		text()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputSchemaText(path string, result *form.ParseResult) {
	fmt.Printf("Form schema for: %s\n", path)
	fmt.Printf("Sections: %d, fields: %d\n", len(result.Sections), result.TotalFields)
	if result.UsedFallback {
		fmt.Println("Note: extraction was not possible, this is the fallback template")
	}
	if result.Collisions > 0 {
		fmt.Printf("Warning: %d duplicate field name(s) were overwritten\n", result.Collisions)
	}
	fmt.Println()

	for _, section := range result.Sections {
		fmt.Printf("[%d] %s\n", section.Order, section.Title)
		for _, field := range section.Fields {
			fmt.Printf("    %s\n", field.FieldName)
			fmt.Printf("      Type: %s\n", field.FieldType)
			fmt.Printf("      Label: %s\n", field.FieldLabel)
			if field.IsRequired {
				fmt.Println("      Required: true")
			}
			if field.DefaultValue != "" {
				fmt.Printf("      Default: %s\n", field.DefaultValue)
			}
			if field.Validation != "" {
				fmt.Printf("      Validation: %s\n", field.Validation)
			}
			if len(field.Options) > 0 {
				fmt.Println("      Options:")
				for _, opt := range field.Options {
					fmt.Printf("        - %s (%s)\n", opt.Label, opt.Value)
				}
			}
			if *verbose {
				if field.SourceWidgetID != "" {
					fmt.Printf("      Source widget: %s\n", field.SourceWidgetID)
				}
				if len(field.SourceWidgetIDs) > 0 {
					fmt.Printf("      Source widgets: %v\n", field.SourceWidgetIDs)
				}
			}
		}
		fmt.Println()
	}
}

func outputRecordsText(records []form.PersistenceRecord) {
	fmt.Printf("Persistence records: %d\n\n", len(records))
	for i, rec := range records {
		fmt.Printf("[%d] %s\n", i+1, rec.FieldName)
		fmt.Printf("    Type: %s\n", rec.FieldType)
		fmt.Printf("    Label: %s\n", rec.FieldLabel)
		fmt.Printf("    Section: %s\n", rec.Section)
		fmt.Printf("    Position: %d\n", rec.Position)
		if rec.FormID != "" {
			fmt.Printf("    Form ID: %s\n", rec.FormID)
		}
		if len(rec.Options) > 0 {
			fmt.Printf("    Options: %v\n", rec.Options)
		}
		if rec.PDFFieldID != "" {
			fmt.Printf("    PDF Field ID: %s\n", rec.PDFFieldID)
		}
		fmt.Println()
	}
}

func init() {
	// Custom flag usage
	flag.Usage = func() {
		printHelp()
	}
}
