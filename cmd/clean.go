package cmd

import (
	"fmt"
	"os"

	"github.com/Daru13/reactrust/internal/artifact"
	"github.com/Daru13/reactrust/internal/build"
	"github.com/Daru13/reactrust/internal/config"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated build artifacts from the working directory",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

// runClean is best-effort and always exits zero: cleaning an already clean
// directory removes nothing, and removal problems are surfaced as warnings.
func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Warning.Render("WARNING:"), err)
		cfg = config.Default()
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Warning.Render("WARNING:"), err)
		return nil
	}

	m := artifact.New(build.SourceExt, cfg.Clean.Extensions)
	removed, err := m.Clean(wd)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Warning.Render("WARNING:"), err)
	}

	fmt.Printf("removed %d artifact(s)\n", removed)
	return nil
}
