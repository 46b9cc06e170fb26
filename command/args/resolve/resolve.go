package resolve

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/dogechain-lab/objectchain/command/helper"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolve",
		Short:   "Splits the JSON arguments of a function call into object ids and encoded pure arguments",
		Example: `args resolve --catalog catalog.json --package 0x2 --module Coin --function transfer --args '["0x101", "0x1"]'`,
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(cmd)
	helper.SetRequiredFlags(cmd, params.getRequiredFlags())

	return cmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.catalogPath,
		command.CatalogFlag,
		"",
		"the function signature catalog. Defaults to the catalog of the config file",
	)

	cmd.Flags().StringVar(
		&params.packageRaw,
		packageFlag,
		"",
		"the package id of the function",
	)

	cmd.Flags().StringVar(
		&params.module,
		moduleFlag,
		"",
		"the module of the function",
	)

	cmd.Flags().StringVar(
		&params.function,
		functionFlag,
		"",
		"the function name",
	)

	cmd.Flags().StringVar(
		&params.argsRaw,
		argsFlag,
		"[]",
		"the call arguments as a JSON array",
	)
}

func runPreRun(cmd *cobra.Command, _ []string) error {
	return params.initRawParams(helper.GetConfigPath(cmd))
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := params.initCatalog(); err != nil {
		outputter.SetError(err)

		return
	}

	if err := params.resolve(); err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(params.getResult())
}
