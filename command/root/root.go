package root

import (
	"fmt"
	"os"

	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/args"
	"github.com/dogechain-lab/objectchain/command/helper"
	"github.com/dogechain-lab/objectchain/command/object"
	"github.com/dogechain-lab/objectchain/command/version"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "objectchain",
			Short: "Objectchain converts JSON call arguments and manages a versioned object store",
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)
	helper.RegisterConfigFlag(rootCommand.baseCmd)

	rootCommand.baseCmd.PersistentFlags().String(
		command.LogLevelFlag,
		command.DefaultLogLevel,
		"the log level for console output",
	)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		args.GetCommand(),
		object.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
