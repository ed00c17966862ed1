package modrun

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modrun-cli/modrun/pkg/errors"
	"github.com/modrun-cli/modrun/pkg/types"
	"github.com/modrun-cli/modrun/pkg/ui"
)

// appScaffold and commandsScaffold mirror the on-disk layout of the two
// configuration files.
type appScaffold struct {
	App types.AppMetadata `toml:"app" yaml:"app"`
}

type commandsScaffold struct {
	Commands map[string]string `toml:"commands" yaml:"commands"`
}

func newInitCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "toml" && format != "yaml" {
				return errors.Newf(errors.ErrUsage, "unsupported format '%s' (want toml or yaml)", format)
			}

			app := appScaffold{
				App: types.AppMetadata{
					Name:        "myapp",
					Version:     "0.1.0",
					Description: "Describe your CLI here",
				},
			}
			cmds := commandsScaffold{
				Commands: map[string]string{
					"ping": "builtin:ping",
				},
			}

			marshal := toml.Marshal
			if format == "yaml" {
				marshal = yaml.Marshal
			}

			appData, err := marshal(app)
			if err != nil {
				return errors.Wrap(err, errors.ErrUnknown, "failed to render app config")
			}
			commandsData, err := marshal(cmds)
			if err != nil {
				return errors.Wrap(err, errors.ErrUnknown, "failed to render commands config")
			}

			files := []struct {
				path string
				data []byte
			}{
				{"modrun." + format, appData},
				{"commands." + format, commandsData},
			}
			for _, f := range files {
				if _, err := os.Stat(f.path); err == nil && !force {
					return errors.Newf(errors.ErrInvalidInput,
						"%s already exists (use --force to overwrite)", f.path)
				}
				if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
					return errors.Wrapf(err, errors.ErrUnknown, "failed to write %s", f.path)
				}
			}

			fmt.Println(ui.TitleStyle.Render("Configuration created"))
			for _, f := range files {
				fmt.Printf("  %s\n", f.path)
			}
			fmt.Println(ui.MutedStyle.Render("Try it: modrun ping"))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", MsgFlagInitFormat)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagInitForce)
	return cmd
}
