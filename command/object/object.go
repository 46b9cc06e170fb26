package object

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/object/genesis"
	"github.com/dogechain-lab/objectchain/command/object/get"
	"github.com/dogechain-lab/objectchain/command/object/list"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	objectCmd := &cobra.Command{
		Use:   "object",
		Short: "Top level command for inspecting and seeding the object store. Only accepts subcommands.",
	}

	objectCmd.PersistentFlags().String(
		command.DataDirFlag,
		command.DefaultDataDir,
		"the data directory of the object store",
	)

	registerSubcommands(objectCmd)

	return objectCmd
}

func registerSubcommands(baseCmd *cobra.Command) {
	baseCmd.AddCommand(
		// object get
		get.GetCommand(),
		// object list
		list.GetCommand(),
		// object import
		genesis.GetCommand(),
	)
}
