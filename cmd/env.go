package cmd

import (
	"context"
	"fmt"

	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/toolchain"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the toolchain library search path",
	Args:  cobra.NoArgs,
	RunE:  runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loc := &toolchain.Locator{Command: cfg.Compiler, Flag: cfg.WhereFlag}
	path, err := loc.Locate(ctx)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
