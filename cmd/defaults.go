package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/errors"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default vision model settings",
	Args:  cobra.NoArgs,
	RunE:  runDefaults,
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}

func runDefaults(cmd *cobra.Command, args []string) error {
	doc := struct {
		SauronConfig config.SauronConfig `toml:"sauron_config"`
	}{config.DefaultSauronConfig()}

	if err := codec.NewTOMLCodec().Encode(cmd.OutOrStdout(), &doc); err != nil {
		return errors.EncodeError(err)
	}
	return nil
}
