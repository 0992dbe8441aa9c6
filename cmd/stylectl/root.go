package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stylekit/internal/logger"
	"github.com/joshuapare/stylekit/pkg/registry"
)

var (
	// Global flags
	verbose      bool
	jsonOut      bool
	noColor      bool
	registryPath string
	logDir       string
)

var rootCmd = &cobra.Command{
	Use:   "stylectl",
	Short: "Inspect property registries and resolve element styles",
	Long: `stylectl loads a property registry and element style scenarios,
resolves each element's computed style through a shared style cache, and
reports what changes between two scenarios.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{
			Enabled: verbose || logDir != "",
			Level:   slog.LevelDebug,
			Output:  os.Stderr,
			LogDir:  logDir,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&registryPath, "registry", "", "Property registry file (.yaml, .yml or .toml); default: built-in set")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to a dated file in this directory")
}

func execute() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRegistry returns the registry named by --registry, or the built-in one.
func loadRegistry() (*registry.Registry, error) {
	if registryPath == "" {
		return registry.Default(), nil
	}
	reg, err := registry.Load(registryPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("registry loaded", "path", registryPath, "properties", reg.Len())
	return reg, nil
}

// printVerbose prints a message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
