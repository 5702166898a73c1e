package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Long: `Load a configuration file and check every field.

Checks that both IP addresses parse, the dataset is accepted, all
numbers are finite and all ports are in range. Collisions between
ports and the shape of the areas are not checked.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return errors.ValidationError(path + ": " + err.Error())
	}

	logSuccess("%s is valid", path)
	return nil
}
