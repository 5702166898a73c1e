package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/editor"
	"github.com/feonix-uav/configuranator/internal/errors"
	"github.com/feonix-uav/configuranator/internal/system"
)

// getenv is replaced in tests.
var getenv = os.Getenv

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a configuration file in your editor",
	Long: `Open a configuration file in $VISUAL or $EDITOR (vi if neither is
set) and check that it still loads once the editor exits.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logInfo("Run configuranator without arguments to create %s", path)
		}
		return errors.IOError("open", path, err)
	}

	if err := editor.Open(cmd.Context(), system.DefaultExecutor(), getenv, path); err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to edit "+path, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		var missing *codec.MissingKeyError
		if errors.As(err, &missing) {
			logWarning("%s is missing %s", path, missing.Key)
		}
		logWarning("%s no longer loads; run `configuranator edit %s` again to fix it", path, path)
		return err
	}

	if err := cfg.Validate(); err != nil {
		logWarning("%s loads but has invalid fields: %v", path, err)
		return nil
	}

	logInfo("%s loads and validates", path)
	return nil
}
