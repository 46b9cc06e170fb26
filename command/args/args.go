package args

import (
	"github.com/dogechain-lab/objectchain/command/args/encode"
	"github.com/dogechain-lab/objectchain/command/args/resolve"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	argsCmd := &cobra.Command{
		Use:   "args",
		Short: "Top level command for converting JSON call arguments. Only accepts subcommands.",
	}

	registerSubcommands(argsCmd)

	return argsCmd
}

func registerSubcommands(baseCmd *cobra.Command) {
	baseCmd.AddCommand(
		// args encode
		encode.GetCommand(),
		// args resolve
		resolve.GetCommand(),
	)
}
