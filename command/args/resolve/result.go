package resolve

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/objectchain/command/helper"
)

type ResolveResult struct {
	Function  string   `json:"function"`
	ObjectIDs []string `json:"object_ids"`
	PureArgs  []string `json:"pure_args"`
}

func (r *ResolveResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[RESOLVED ARGUMENTS]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Function|%s", r.Function),
		fmt.Sprintf("Object arguments|%d", len(r.ObjectIDs)),
		fmt.Sprintf("Pure arguments|%d", len(r.PureArgs)),
	}))

	if len(r.ObjectIDs) > 0 {
		buffer.WriteString("\n\n[OBJECT IDS]\n")
		buffer.WriteString(helper.FormatList(r.ObjectIDs))
	}

	if len(r.PureArgs) > 0 {
		buffer.WriteString("\n\n[PURE ARGUMENTS]\n")
		buffer.WriteString(helper.FormatList(r.PureArgs))
	}

	buffer.WriteString("\n")

	return buffer.String()
}
