package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Fallback template variant constants
	TemplateCurrent = "current"
	TemplateLegacy  = "legacy"

	// Default values
	DefaultPort         = 8080
	DefaultHost         = "127.0.0.1"
	DefaultLogLevel     = "info"
	DefaultMaxFileSize  = 100 * 1024 * 1024 // 100MB
	DefaultDatabasePath = "formschema.db"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the form schema server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Form processing configuration
	FormsDirectory  string
	DatabasePath    string
	TemplateVariant string // fallback template variant: "current" or "legacy"

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		Mode:            ModeStdio, // Default to stdio mode for MCP compatibility
		Host:            DefaultHost,
		Port:            DefaultPort,
		FormsDirectory:  currentDir,
		DatabasePath:    DefaultDatabasePath,
		TemplateVariant: TemplateCurrent,
		Version:         "1.0.0",
		ServerName:      "formschema-server",
		LogLevel:        DefaultLogLevel,
		MaxFileSize:     DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.FormsDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.FormsDirectory); err == nil {
			cfg.FormsDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("FORMSCHEMA")
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.FormsDirectory)
	viper.SetDefault("db", cfg.DatabasePath)
	viper.SetDefault("template", cfg.TemplateVariant)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.FormsDirectory, "Directory containing fillable PDF forms")
	pflag.String("db", cfg.DatabasePath, "Path to the SQLite database for persisted field records")
	pflag.String("template", cfg.TemplateVariant, "Fallback template variant: 'current' or 'legacy'")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("db", pflag.Lookup("db"))
	_ = viper.BindPFlag("template", pflag.Lookup("template"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nFormSchema Server - extracts structured form schemas from fillable PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                         "+
			"# stdio mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/forms                    "+
			"# stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --dir=/path/to/forms      # server mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --template=legacy                       # legacy fallback schema\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_MODE        Server mode\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_HOST        Server host\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_PORT        Server port\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_DIR         Forms directory\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_DB          SQLite database path\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_TEMPLATE    Fallback template variant\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  FORMSCHEMA_MAXFILESIZE Maximum file size\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.FormsDirectory = viper.GetString("dir")
	cfg.DatabasePath = viper.GetString("db")
	cfg.TemplateVariant = viper.GetString("template")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	// Validate forms directory
	if c.FormsDirectory == "" {
		return errors.New("forms directory cannot be empty")
	}

	// Check if forms directory exists, create if it doesn't
	if _, err := os.Stat(c.FormsDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.FormsDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create forms directory %s: %w", c.FormsDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access forms directory %s: %w", c.FormsDirectory, err)
	}

	// Validate database path
	if c.DatabasePath == "" {
		return errors.New("database path cannot be empty")
	}

	// Validate fallback template variant
	if c.TemplateVariant != TemplateCurrent && c.TemplateVariant != TemplateLegacy {
		return fmt.Errorf("invalid template variant: %s (must be 'current' or 'legacy')", c.TemplateVariant)
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, FormsDirectory: %s, DatabasePath: %s, "+
		"TemplateVariant: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.FormsDirectory, c.DatabasePath, c.TemplateVariant, c.LogLevel, c.MaxFileSize)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
