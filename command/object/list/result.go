package list

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/objectchain/command/helper"
	"github.com/dogechain-lab/objectchain/command/object/record"
)

type ListResult struct {
	Objects []*record.Result `json:"objects"`
}

func (r *ListResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[OBJECTS]\n")

	if len(r.Objects) == 0 {
		buffer.WriteString("No objects found\n")

		return buffer.String()
	}

	rows := make([]string, 0, len(r.Objects)+1)
	rows = append(rows, "ID|VERSION|OWNER|TYPE")

	for _, obj := range r.Objects {
		rows = append(rows, fmt.Sprintf("%s|%d|%s|%s", obj.ID, obj.Version, obj.Owner, obj.Type))
	}

	buffer.WriteString(helper.FormatList(rows))
	buffer.WriteString("\n")

	return buffer.String()
}
