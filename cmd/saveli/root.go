package saveli

import (
	"github.com/rs/zerolog/log"
	"github.com/saveli-project/saveli/internal/version"
	"github.com/saveli-project/saveli/pkg/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "saveli",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newSetStoragePathCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newUnlinkCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newIgnoreCmd())
	rootCmd.AddCommand(newHeedCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}
