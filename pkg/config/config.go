// Package config loads and validates the two declarative sources that
// drive the dispatcher: application metadata and command definitions.
// Loading is eager and total; no partially validated configuration ever
// escapes this package.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/modrun-cli/modrun/pkg/errors"
	"github.com/modrun-cli/modrun/pkg/logging"
	"github.com/modrun-cli/modrun/pkg/types"
)

// Separator splits a command entry into its path and function halves.
// The split happens at the first occurrence, so paths containing the
// separator later on still parse.
const Separator = ":"

// EnvPrefix is the prefix for environment overrides of application
// metadata, e.g. MODRUN_APP_NAME overrides app.name.
const EnvPrefix = "MODRUN_"

// Load reads and validates the application metadata source and the
// commands source, returning the combined configuration. Any missing
// file, parse failure, or schema violation fails the whole load.
func Load(appPath, commandsPath string) (*types.Config, error) {
	logger := logging.GetLogger("config")

	appK, err := loadFile(appPath)
	if err != nil {
		return nil, err
	}
	app, err := parseApp(appK, appPath)
	if err != nil {
		return nil, err
	}

	commandsK, err := loadFile(commandsPath)
	if err != nil {
		return nil, err
	}
	commands, err := parseCommands(commandsK, commandsPath)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("app", app.Name).
		Int("commands", len(commands)).
		Msg("Configuration loaded")

	return &types.Config{App: app, Commands: commands}, nil
}

// loadFile reads one configuration file into a koanf instance. The
// parser is chosen from the file extension: TOML by default, YAML for
// .yaml/.yml.
func loadFile(path string) (*koanf.Koanf, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigNotFound, "configuration file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "configuration file not readable: %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return k, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return toml.Parser()
	}
}

// parseApp validates the [app] section and returns the application
// metadata. Environment overrides (MODRUN_APP_*) are merged on top of
// the file values before validation.
func parseApp(k *koanf.Koanf, source string) (types.AppMetadata, error) {
	var app types.AppMetadata

	if !k.Exists("app") {
		return app, errors.Newf(errors.ErrConfigInvalid, "missing [app] section in %s", source)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return app, errors.Wrap(err, errors.ErrConfigParse, "failed to load environment overrides")
	}

	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &app,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("app", &app, conf); err != nil {
		return types.AppMetadata{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode [app] section in %s", source)
	}

	required := []struct {
		key   string
		value string
	}{
		{"name", app.Name},
		{"version", app.Version},
		{"description", app.Description},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return types.AppMetadata{}, errors.Newf(errors.ErrConfigInvalid,
				"missing or empty '%s' in [app] section of %s", field.key, source)
		}
	}

	return app, nil
}

// parseCommands validates the [commands] section and returns the
// normalized command definitions. A single malformed entry fails the
// whole section.
func parseCommands(k *koanf.Koanf, source string) (map[string]types.CommandDefinition, error) {
	if !k.Exists("commands") {
		return nil, errors.Newf(errors.ErrConfigInvalid, "missing [commands] section in %s", source)
	}

	entries := k.StringMap("commands")
	if len(entries) == 0 {
		return nil, errors.Newf(errors.ErrConfigInvalid, "no commands defined in %s", source)
	}

	commands := make(map[string]types.CommandDefinition, len(entries))
	for name, target := range entries {
		if strings.TrimSpace(name) == "" {
			return nil, errors.Newf(errors.ErrConfigInvalid, "empty command name in %s", source)
		}

		pathPart, funcPart, found := strings.Cut(target, Separator)
		if !found {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"invalid definition for command '%s': expected <path>%s<function>, got %q",
				name, Separator, target)
		}

		pathPart = strings.TrimSpace(pathPart)
		funcPart = strings.TrimSpace(funcPart)
		if pathPart == "" || funcPart == "" {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"invalid definition for command '%s': path and function must be non-empty", name)
		}

		commands[name] = types.CommandDefinition{
			Path:     pathPart,
			Function: funcPart,
		}
	}

	return commands, nil
}
