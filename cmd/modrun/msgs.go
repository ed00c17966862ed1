package modrun

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A configuration-driven command dispatcher"
	MsgRootLong        = "modrun executes commands declared in configuration. No command logic\nlives in the dispatcher itself: a command is added by naming it in the\ncommands file and pointing it at a plugin function (or a builtin)."
	MsgVersionShort    = "Print version information"
	MsgInitShort       = "Scaffold starter configuration files"
	MsgInitLong        = "Init writes a starter application config and commands config to the\nworking directory, wired to the builtin 'ping' command so the setup can\nbe verified immediately."
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAppConfig      = "Path to the application config file"
	MsgFlagCommandsConfig = "Path to the commands config file"
	MsgFlagInitFormat     = "Configuration format to write (toml or yaml)"
	MsgFlagInitForce      = "Overwrite existing configuration files"

	// Status messages
	MsgNoCommand = "No command specified"
	MsgUsageHint = "Usage: %s <command> [args]"
)
