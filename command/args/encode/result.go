package encode

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/objectchain/command/helper"
)

type EncodeResult struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Encoded string `json:"encoded"`
	Length  int    `json:"length"`
}

func (r *EncodeResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[ENCODED ARGUMENT]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Type|%s", r.Type),
		fmt.Sprintf("Value|%s", r.Value),
		fmt.Sprintf("Encoded|%s", r.Encoded),
		fmt.Sprintf("Length|%d", r.Length),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
