package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Daru13/reactrust/internal/build"
	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/logging"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <source.rml>",
	Short: "Compile a reactive source file into an executable",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	log := logging.Discard()
	if verbose {
		log = logging.NewJSONLogger(os.Stderr, true)
	}

	b := build.New(cfg, log)
	b.WorkDir = wd

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	exe, err := b.Build(ctx, build.NewTarget(args[0]))
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Println(styles.Success.Render("✓"), "built", styles.Accent.Render(exe))
	return nil
}
