package genesis

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/config"
	"github.com/dogechain-lab/objectchain/command/helper"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import",
		Short:   "Seeds the object store from a JSON list of objects",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(cmd)
	helper.SetRequiredFlags(cmd, params.getRequiredFlags())

	return cmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.genesisPath,
		fileFlag,
		"",
		"the genesis file listing the objects to import",
	)
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return params.initRawParams()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	cfg, err := config.FromCommand(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	if err := params.importObjects(cfg); err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(params.getResult())
}
