package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/axtree/internal/logger"
)

const (
	envLogLevel = "AXCTL_LOG_LEVEL"
	envNoColor  = "AXCTL_NO_COLOR"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	logLevel string
	envFile  string

	useColor bool
)

var rootCmd = &cobra.Command{
	Use:   "axctl",
	Short: "Replay and inspect accessibility tree updates",
	Long: `axctl is a developer tool for accessibility tree producers. It replays
update scripts through the same validation an adapter performs, reports the
change notifications each update produces, and prints the resulting tree.

Scripts are YAML documents (see pkg/wire) or MessagePack update streams
written by "axctl encode".`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return configure(cmd) },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Load environment defaults from this file if it exists")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// configure applies environment defaults for flags the user did not set
// and initializes logging and colour.
func configure(cmd *cobra.Command) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		logLevel = os.Getenv(envLogLevel)
	}
	if !flags.Changed("no-color") {
		if v, ok := os.LookupEnv(envNoColor); ok {
			// Any value other than an explicit false disables colour.
			b, err := strconv.ParseBool(v)
			noColor = err != nil || b
		}
	}
	useColor = !noColor && !jsonOut && isTerminal(os.Stdout)

	opts := logger.Options{Enabled: logLevel != "", Output: os.Stderr}
	if jsonOut {
		opts.Format = logger.FormatJSON
	}
	if opts.Enabled {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		opts.Level = level
	} else if verbose {
		opts.Enabled = true
		opts.Level = slog.LevelDebug
	}
	return logger.Init(opts)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorize(colorRed, "Error: ")+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

const (
	colorRed    = "31"
	colorGreen  = "32"
	colorYellow = "33"
	colorCyan   = "36"
	colorDim    = "2"
)

func colorize(code, s string) string {
	if !useColor {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
