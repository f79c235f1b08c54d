// Package cmd implements the reactrust CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/tui"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string

	styles tui.Styles

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "reactrust",
	Short: "reactrust — build reactive programs into native executables",
	Long: "reactrust drives the two-stage reactive toolchain: it lowers a .rml source\n" +
		"file to ML with the reactive compiler, then compiles and links the result\n" +
		"against the toolchain's runtime libraries.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		styles = tui.NewStyles(tui.Detect(themeOverride))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "color theme: dark, light, or auto")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(initCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("reactrust %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
