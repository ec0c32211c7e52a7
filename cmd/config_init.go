package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"placer/internal/config"
)

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a default config file",
	Long: `Write the default configuration to the config path.

The target is --config when given, otherwise .placer/config.yaml in the
current directory. Refuses to overwrite an existing file unless --force
is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = ".placer/config.yaml"
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		if err := config.Save(path, config.Defaults()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")
	rootCmd.AddCommand(configInitCmd)
}
