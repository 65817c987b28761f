package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/formlift/formschema/internal/config"
	"github.com/formlift/formschema/internal/form"
	"github.com/formlift/formschema/internal/store"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	parser     *form.Parser
	fieldStore *store.FieldStore
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, parser *form.Parser, fieldStore *store.FieldStore) (*Server, error) {
	if parser == nil {
		return nil, fmt.Errorf("parser cannot be nil")
	}
	if fieldStore == nil {
		return nil, fmt.Errorf("fieldStore cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		parser:     parser,
		fieldStore: fieldStore,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register form parse file tool
	formParseFileTool := mcp.NewTool(
		"form_parse_file",
		mcp.WithDescription("Extract a structured form schema from a fillable PDF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the PDF file (relative paths resolve against the forms directory)"),
		),
	)
	s.mcpServer.AddTool(formParseFileTool, s.handleFormParseFile)

	// Register form persist file tool
	formPersistFileTool := mcp.NewTool(
		"form_persist_file",
		mcp.WithDescription("Extract a form schema from a PDF file and persist its field records"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the PDF file (relative paths resolve against the forms directory)"),
		),
		mcp.WithString("form_id",
			mcp.Description("Identifier to persist the fields under (generated if empty)"),
		),
	)
	s.mcpServer.AddTool(formPersistFileTool, s.handleFormPersistFile)

	// Register fallback template tool
	formFallbackTemplateTool := mcp.NewTool(
		"form_fallback_template",
		mcp.WithDescription("Return the static fallback form schema used when extraction fails"),
		mcp.WithString("variant",
			mcp.Description("Template variant: 'current' or 'legacy' (uses configured default if empty)"),
		),
	)
	s.mcpServer.AddTool(formFallbackTemplateTool, s.handleFormFallbackTemplate)

	// Register server info tool
	formServerInfoTool := mcp.NewTool(
		"form_server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(formServerInfoTool, s.handleFormServerInfo)
}

// Handler functions
func (s *Server) handleFormParseFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolved, buf, err := s.readFormFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.parser.Parse(buf)
	return mcp.NewToolResultText(s.formatParseResult(resolved, result)), nil
}

func (s *Server) handleFormPersistFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	formID := ""
	if id, ok := args["form_id"].(string); ok {
		formID = id
	}
	if formID == "" {
		formID = uuid.NewString()
	}

	resolved, buf, err := s.readFormFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.parser.Parse(buf)
	records := form.ToPersistenceRecords(result.Sections, formID)
	if err := s.fieldStore.ReplaceFormFields(ctx, formID, records); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to persist fields: %v", err)), nil
	}

	responseText := fmt.Sprintf("Persisted form schema for: %s\n", resolved)
	responseText += fmt.Sprintf("Form ID: %s\n", formID)
	responseText += fmt.Sprintf("Sections: %d\n", len(result.Sections))
	responseText += fmt.Sprintf("Fields persisted: %d\n", len(records))
	if result.UsedFallback {
		responseText += "Note: extraction was not possible, the fallback template was persisted instead\n"
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFormFallbackTemplate(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	variant := s.config.TemplateVariant // default
	if v, ok := args["variant"].(string); ok && v != "" {
		variant = v
	}

	sections := form.FallbackTemplate(form.TemplateVariant(variant))

	text := fmt.Sprintf("Fallback form template (variant: %s)\n", variant)
	text += s.formatSections(sections)
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleFormServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.formatServerInfo()), nil
}

// readFormFile resolves a path against the forms directory, enforces the
// configured size limit, and returns the file contents.
func (s *Server) readFormFile(path string) (string, []byte, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.config.FormsDirectory, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("cannot access file %s: %w", path, err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("path is a directory: %s", path)
	}
	if info.Size() > s.config.MaxFileSize {
		return "", nil, fmt.Errorf("file %s exceeds maximum size of %d bytes", path, s.config.MaxFileSize)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("cannot read file %s: %w", path, err)
	}
	return path, buf, nil
}

// Formatting methods
func (s *Server) formatParseResult(path string, result *form.ParseResult) string {
	text := fmt.Sprintf("Parsed form schema for: %s\n", path)
	text += fmt.Sprintf("Sections: %d\n", len(result.Sections))
	text += fmt.Sprintf("Total fields: %d\n", result.TotalFields)
	if result.UsedFallback {
		text += "Note: extraction was not possible, this is the fallback template\n"
	}
	if result.Collisions > 0 {
		text += fmt.Sprintf("Warning: %d duplicate field name(s) were overwritten\n", result.Collisions)
	}
	text += "\n"
	text += s.formatSections(result.Sections)
	return text
}

func (s *Server) formatSections(sections []form.ParsedFormSection) string {
	var b strings.Builder
	for _, section := range sections {
		fmt.Fprintf(&b, "%d. %s (%d fields)\n", section.Order, section.Title, len(section.Fields))
		for _, field := range section.Fields {
			fmt.Fprintf(&b, "   - %s [%s] %q", field.FieldName, field.FieldType, field.FieldLabel)
			if field.IsRequired {
				b.WriteString(" (required)")
			}
			b.WriteString("\n")
			if len(field.Options) > 0 {
				optionValues := make([]string, len(field.Options))
				for i, opt := range field.Options {
					optionValues[i] = opt.Value
				}
				fmt.Fprintf(&b, "     options: %s\n", strings.Join(optionValues, ", "))
			}
			if field.DefaultValue != "" {
				fmt.Fprintf(&b, "     default: %s\n", field.DefaultValue)
			}
		}
	}
	return b.String()
}

func (s *Server) formatServerInfo() string {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Forms Directory: %s\n", s.config.FormsDirectory)
	text += fmt.Sprintf("Database: %s\n", s.config.DatabasePath)
	text += fmt.Sprintf("Fallback Template Variant: %s\n", s.config.TemplateVariant)
	text += fmt.Sprintf("Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	// Directory contents
	pdfs := s.listPDFFiles()
	if len(pdfs) > 0 {
		text += fmt.Sprintf("Directory Contents (%d PDF files found):\n", len(pdfs))
		for i, name := range pdfs {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(pdfs)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s\n", i+1, name)
		}
		text += "\n"
	} else {
		text += "Directory Contents: No PDF files found in forms directory\n\n"
	}

	// Available tools
	text += "Available Tools:\n"
	text += "\n• form_parse_file\n"
	text += "  Extracts a sectioned, typed form schema from a fillable PDF.\n"
	text += "  Parameters: path (required)\n"
	text += "\n• form_persist_file\n"
	text += "  Extracts a form schema and persists the flattened field records.\n"
	text += "  Parameters: path (required), form_id (optional, generated if empty)\n"
	text += "\n• form_fallback_template\n"
	text += "  Returns the static fallback schema used when extraction fails.\n"
	text += "  Parameters: variant (optional: 'current' or 'legacy')\n"
	text += "\n• form_server_info\n"
	text += "  Returns this information.\n"

	return text
}

func (s *Server) listPDFFiles() []string {
	entries, err := os.ReadDir(s.config.FormsDirectory)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting form schema MCP server in stdio mode")
		log.Printf("Forms directory: %s", s.config.FormsDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// For now, we'll just use stdio mode since the mark3labs library
	// handles the transport differently
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
