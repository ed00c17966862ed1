package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// File names looked up when no explicit path is given, in order of
// preference.
var (
	appFileNames      = []string{"modrun.toml", "modrun.yaml"}
	commandsFileNames = []string{"commands.toml", "commands.yaml"}
)

// DefaultPaths resolves the configuration pair. Explicit values win;
// otherwise files in the working directory are preferred over the XDG
// config home.
func DefaultPaths(appPath, commandsPath string) (string, string) {
	if appPath == "" {
		appPath = findConfig(appFileNames)
	}
	if commandsPath == "" {
		commandsPath = findConfig(commandsFileNames)
	}
	return appPath, commandsPath
}

func findConfig(names []string) string {
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	for _, name := range names {
		path := filepath.Join(xdg.ConfigHome, "modrun", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	// Fall back to the conventional working-directory name so the load
	// error reports the expected location.
	return names[0]
}
