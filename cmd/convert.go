package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/errors"
)

var (
	convertFormat string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Re-encode a configuration file in another format",
	Long: `Load a configuration file and encode it as toml, yaml or json.

The result goes to stdout unless --output names a file. Output files
are replaced atomically.`,
	Example: `  configuranator convert mission.toml --format yaml
  configuranator convert mission.toml --format json -o mission.json`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Output format (toml, yaml, json)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write to this file instead of stdout")
	_ = convertCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := codec.ByFormat(convertFormat)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "invalid --format", err)
	}

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	if convertOutput == "" {
		return writeConfig(cmd.OutOrStdout(), cfg, c)
	}

	if err := config.SaveAs(convertOutput, cfg, c); err != nil {
		return err
	}
	logSuccess("Wrote %s (%s)", convertOutput, c.Format())
	return nil
}
