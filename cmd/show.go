package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/feonix-uav/configuranator/internal/codec"
	"github.com/feonix-uav/configuranator/internal/config"
	"github.com/feonix-uav/configuranator/internal/tui"
)

var showTUI bool

// runViewer is replaced in tests.
var runViewer = tui.RunViewer

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a configuration file",
	Long: `Load a configuration file and print it as TOML.

With --tui the file opens in a scrollable full-screen view with a
summary of the main values above the document.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showTUI, "tui", false, "Open an interactive viewer")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if !showTUI {
		return writeConfig(cmd.OutOrStdout(), cfg, codec.NewTOMLCodec())
	}

	var doc bytes.Buffer
	if err := writeConfig(&doc, cfg, codec.NewTOMLCodec()); err != nil {
		return err
	}
	return runViewer(path, tui.Summary(cfg)+"\n"+doc.String())
}
