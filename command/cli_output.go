package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type cliOutput struct {
	commonOutputFormatter

	out    io.Writer
	errOut io.Writer
}

func newCLIOutput(cmd *cobra.Command) *cliOutput {
	return &cliOutput{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

func (cli *cliOutput) WriteOutput() {
	if cli.errorOutput != nil {
		_, _ = fmt.Fprintln(cli.errOut, cli.errorOutput.Error())

		return
	}

	if cli.commandOutput != nil {
		_, _ = fmt.Fprintln(cli.out, cli.commandOutput.GetOutput())
	}
}
