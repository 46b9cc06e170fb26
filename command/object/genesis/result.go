package genesis

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/objectchain/command/helper"
)

type Counter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type GenesisResult struct {
	Digest   string    `json:"digest"`
	Objects  []string  `json:"objects"`
	Counters []Counter `json:"counters,omitempty"`
}

func (r *GenesisResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[GENESIS IMPORT]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Digest|%s", r.Digest),
		fmt.Sprintf("Objects imported|%d", len(r.Objects)),
	}))

	if len(r.Objects) > 0 {
		buffer.WriteString("\n\n[OBJECTS]\n")
		buffer.WriteString(helper.FormatList(r.Objects))
	}

	if len(r.Counters) > 0 {
		counters := make([]string, 0, len(r.Counters))
		for _, c := range r.Counters {
			counters = append(counters, fmt.Sprintf("%s|%g", c.Name, c.Value))
		}

		buffer.WriteString("\n\n[METRICS]\n")
		buffer.WriteString(helper.FormatKV(counters))
	}

	buffer.WriteString("\n")

	return buffer.String()
}
