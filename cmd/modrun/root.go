package modrun

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modrun-cli/modrun/internal/commands"
	"github.com/modrun-cli/modrun/internal/version"
	"github.com/modrun-cli/modrun/pkg/config"
	"github.com/modrun-cli/modrun/pkg/errors"
	"github.com/modrun-cli/modrun/pkg/logging"
	"github.com/modrun-cli/modrun/pkg/resolver"
	"github.com/modrun-cli/modrun/pkg/runner"
	"github.com/modrun-cli/modrun/pkg/ui"
)

// NewRootCmd creates and returns the root command. All user-facing
// notifications go through the given sink; the command itself never
// prints dispatch output directly.
func NewRootCmd(sink ui.UI) *cobra.Command {
	var (
		verbosity    int
		appPath      string
		commandsPath string
	)

	rootCmd := &cobra.Command{
		Use:     "modrun <command> [args...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			commands.RegisterBuiltins()

			appFile, commandsFile := config.DefaultPaths(appPath, commandsPath)
			cfg, err := config.Load(appFile, commandsFile)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				sink.Error(MsgNoCommand)
				sink.Info(fmt.Sprintf(MsgUsageHint, ui.AccentStyle.Render(cfg.App.Name)))
				return errors.New(errors.ErrUsage, "no command specified")
			}

			return runner.New(resolver.New()).Run(cfg, args[0], args[1:], sink)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&appPath, "app-config", "", MsgFlagAppConfig)
	rootCmd.PersistentFlags().StringVar(&commandsPath, "commands-config", "", MsgFlagCommandsConfig)

	// Everything after the command name belongs to the command.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("modrun version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
