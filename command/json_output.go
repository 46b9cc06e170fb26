package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type jsonOutput struct {
	commonOutputFormatter

	out    io.Writer
	errOut io.Writer
}

type jsonError struct {
	Err string `json:"err"`
}

func newJSONOutput(cmd *cobra.Command) *jsonOutput {
	return &jsonOutput{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

func (jo *jsonOutput) WriteOutput() {
	if jo.errorOutput != nil {
		_, _ = fmt.Fprintln(jo.errOut, jo.marshal(&jsonError{Err: jo.errorOutput.Error()}))

		return
	}

	if jo.commandOutput != nil {
		_, _ = fmt.Fprintln(jo.out, jo.marshal(jo.commandOutput))
	}
}

func (jo *jsonOutput) marshal(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"err": %q}`, err.Error())
	}

	return string(bytes)
}
