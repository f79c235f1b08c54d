package cmd

import (
	"fmt"
	"os"

	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initForce    bool
	initDefaults bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a reactrust.yaml build configuration",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write the default config without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	cfg := config.Default()

	if !initDefaults {
		if !tui.Interactive() {
			return fmt.Errorf("stdout is not a terminal; run with --defaults")
		}
		var err error
		cfg, err = runWizard(cfg, styles)
		if err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(cfgFile, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", cfgFile, err)
	}

	fmt.Println(styles.Success.Render("✓"), "wrote", styles.Accent.Render(cfgFile))
	return nil
}
