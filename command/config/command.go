package config

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/spf13/cobra"
)

// FromCommand builds the config of a command invocation: the --config file
// if one is given, else the defaults, overridden by explicitly set
// --data-dir and --log-level flags.
func FromCommand(cmd *cobra.Command) (*Config, error) {
	cfg := DefaultConfig()

	if flag := cmd.Flag(command.ConfigFlag); flag != nil && flag.Value.String() != "" {
		var err error

		if cfg, err = ReadConfigFile(flag.Value.String()); err != nil {
			return nil, err
		}
	}

	if flag := cmd.Flag(command.DataDirFlag); flag != nil && flag.Changed {
		cfg.DataDir = flag.Value.String()
	}

	if flag := cmd.Flag(command.LogLevelFlag); flag != nil && flag.Changed {
		cfg.LogLevel = flag.Value.String()
	}

	return cfg, nil
}
