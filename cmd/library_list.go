package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"placer/internal/library"
)

var libraryListCmd = &cobra.Command{
	Use:   "library:list",
	Short: "List packages in the library as JSON",
	Long: `List the packages available to the board as JSON.

Without --library the built-in standard library is listed.

Examples:
  # List the built-in packages
  placer library:list

  # List a library file
  placer library:list -l packages.yaml

  # Parse specific fields with jq
  placer library:list | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var lib *library.Library
		if cfg.LibraryPath == "" {
			lib = library.Standard()
		} else {
			var err error
			lib, err = library.NewLoader().Load(cmd.Context(), cfg.LibraryPath)
			if err != nil {
				return fmt.Errorf("loading library: %w", err)
			}
		}

		packages := make([]*library.Package, 0, lib.Count())
		for _, name := range lib.Names() {
			pkg, err := lib.Get(name)
			if err != nil {
				return err
			}
			packages = append(packages, pkg)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(packages)
	},
}

func init() {
	rootCmd.AddCommand(libraryListCmd)
}
