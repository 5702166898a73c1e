package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/feonix-uav/configuranator/internal/builder"
	"github.com/feonix-uav/configuranator/internal/logging"
	"github.com/feonix-uav/configuranator/internal/prompt"
)

var (
	verbose    bool
	jsonOutput bool
	logFile    string

	// logWriter is the open --log-file, closed when Execute returns.
	logWriter io.WriteCloser
)

var rootCmd = &cobra.Command{
	Use:   "configuranator",
	Short: "Feonix UAV configuration builder",
	Long: `configuranator builds the configuration document shared by the
vision (sauron), guidance (gnc) and communications (dad) processes.

Run without a subcommand to answer the questions interactively and
write a new .toml file. Subcommands inspect, check and convert
existing files.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var w io.Writer = os.Stderr
		if logFile != "" {
			logWriter = logging.FileWriter(logFile)
			w = logWriter
		}
		logging.Setup(verbose, jsonOutput, w)
	},
	RunE: runBuild,
}

func Execute() error {
	defer closeLogFile()
	return rootCmd.Execute()
}

// closeLogFile closes the --log-file writer and sends any later logs
// back to stderr.
func closeLogFile() {
	if logWriter == nil {
		return
	}
	if err := logWriter.Close(); err != nil {
		logWarning("failed to close log file %s: %v", logFile, err)
	}
	logWriter = nil
	logging.Setup(verbose, jsonOutput, os.Stderr)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotated file instead of stderr")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)

func runBuild(cmd *cobra.Command, args []string) error {
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	fileName, err := builder.New(p).Run()
	if err != nil {
		return err
	}

	logging.Debug("configuration written", "path", fileName)
	return nil
}
