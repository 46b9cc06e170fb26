package encode

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/helper"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode",
		Short:   "Encodes a JSON value as the canonical bytes of a primitive type",
		Example: `args encode --type "vector<u64>" --value "[1, 2, 3]"`,
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(cmd)
	helper.SetRequiredFlags(cmd, params.getRequiredFlags())

	return cmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.typeRaw,
		typeFlag,
		"",
		"the expected type, e.g. u64, address or vector<u8>",
	)

	cmd.Flags().StringVar(
		&params.valueRaw,
		valueFlag,
		"",
		"the JSON value to encode",
	)
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return params.initRawParams()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := params.encode(); err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(params.getResult())
}
