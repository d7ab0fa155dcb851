package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	internalerrors "github.com/olegiv/sli-report/internal/errors"
	"github.com/olegiv/sli-report/internal/report"
)

// Configuration keys, read from the environment or a .env file.
const (
	keyReportFormat  = "REPORT_FORMAT"
	keyLogLevel      = "LOG_LEVEL"
	keyLogDir        = "LOG_DIR"
	keyLogMaxSizeMB  = "LOG_MAX_SIZE_MB"
	keyLogMaxBackups = "LOG_MAX_BACKUPS"
	keyMaxLineBytes  = "MAX_LINE_BYTES"
)

// Line length limits for MAX_LINE_BYTES.
const (
	minLineBytes = 4 * 1024
	maxLineBytes = 64 * 1024 * 1024
)

// CLIOptions holds command-line arguments
type CLIOptions struct {
	SourcePath string // positional: path to the log file
	Format     string // --format: text or markdown
	ShowHelp   bool   // -h/--help was given

	flags *pflag.FlagSet
}

// ParseCLI parses command-line arguments (without the program name).
// Help requests return pflag.ErrHelp after usage has been printed to out.
func ParseCLI(program string, args []string, out io.Writer) (*CLIOptions, error) {
	opts := &CLIOptions{}

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVarP(&opts.Format, "format", "f", string(report.FormatText),
		fmt.Sprintf("Report format: %s", strings.Join(report.ValidFormats(), ", ")))

	// Custom usage message
	fs.Usage = func() {
		_, _ = fmt.Fprintf(out, "SLI Report - reliability metrics from transactional ATM logs\n\n")
		_, _ = fmt.Fprintf(out, "Usage: %s [options] <logfile>\n\n", program)
		_, _ = fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(out, "\nExamples:\n")
		_, _ = fmt.Fprintf(out, "  %s big_atm_log.txt\n", program)
		_, _ = fmt.Fprintf(out, "  %s --format markdown big_atm_log.txt > report.md\n", program)
		_, _ = fmt.Fprintf(out, "\nEnvironment variables can be set in .env file or exported directly:\n")
		_, _ = fmt.Fprintf(out, "  %s, %s, %s, %s, %s, %s\n",
			keyReportFormat, keyLogLevel, keyLogDir, keyLogMaxSizeMB, keyLogMaxBackups, keyMaxLineBytes)
		_, _ = fmt.Fprintf(out, "CLI arguments override environment variables.\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			opts.ShowHelp = true
			return opts, err
		}
		return nil, internalerrors.Wrapf(internalerrors.ErrInvalidConfig, err, "invalid arguments")
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, internalerrors.New(internalerrors.ErrInvalidConfig,
			"expected exactly one log file argument, got %d", fs.NArg())
	}

	opts.SourcePath = fs.Arg(0)
	opts.flags = fs
	return opts, nil
}

// Config holds all application configuration
type Config struct {
	// Input
	SourcePath   string
	MaxLineBytes int

	// Output
	Format report.Format

	// Application logging
	LogLevel      string
	LogDir        string // empty disables the log file
	LogMaxSizeMB  int
	LogMaxBackups int
}

// LoadWithCLI loads configuration with CLI argument overrides
// Priority: CLI args > OS environment variables > .env file > defaults
func LoadWithCLI(cli *CLIOptions) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// godotenv sets unset OS env vars from .env, which viper then reads.
	_ = godotenv.Load()

	setDefaults(v)

	if cli != nil && cli.flags != nil {
		if err := v.BindPFlag(keyReportFormat, cli.flags.Lookup("format")); err != nil {
			return nil, internalerrors.Wrapf(internalerrors.ErrInvalidConfig, err, "failed to bind --format")
		}
	}

	config := &Config{
		MaxLineBytes:  v.GetInt(keyMaxLineBytes),
		Format:        report.Format(strings.ToLower(v.GetString(keyReportFormat))),
		LogLevel:      v.GetString(keyLogLevel),
		LogDir:        v.GetString(keyLogDir),
		LogMaxSizeMB:  v.GetInt(keyLogMaxSizeMB),
		LogMaxBackups: v.GetInt(keyLogMaxBackups),
	}

	if cli != nil {
		config.SourcePath = cli.SourcePath
	}

	if err := config.Validate(); err != nil {
		return nil, internalerrors.Wrapf(internalerrors.ErrInvalidConfig, err, "configuration validation failed")
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyReportFormat, string(report.FormatText))
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogDir, "")
	v.SetDefault(keyLogMaxSizeMB, 10)
	v.SetDefault(keyLogMaxBackups, 5)
	v.SetDefault(keyMaxLineBytes, 1024*1024)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("log file path is required")
	}

	if _, err := report.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("%s: %w", keyReportFormat, err)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%s must be one of: debug, info, warn, error", keyLogLevel)
	}

	if c.MaxLineBytes < minLineBytes || c.MaxLineBytes > maxLineBytes {
		return fmt.Errorf("%s must be between %d and %d", keyMaxLineBytes, minLineBytes, maxLineBytes)
	}

	if c.LogDir != "" {
		if c.LogMaxSizeMB < 1 || c.LogMaxSizeMB > 1024 {
			return fmt.Errorf("%s must be between 1 and 1024", keyLogMaxSizeMB)
		}
		if c.LogMaxBackups < 0 {
			return fmt.Errorf("%s must not be negative", keyLogMaxBackups)
		}
	}

	return nil
}

// HasLogFile returns true if application logs are also written to a file
func (c *Config) HasLogFile() bool {
	return c.LogDir != ""
}

// ProgramName returns the base name of the running executable.
func ProgramName() string {
	if len(os.Args) == 0 {
		return "slireport"
	}
	name := os.Args[0]
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}
