package version

import (
	"fmt"
	"strings"

	"github.com/dogechain-lab/objectchain/command/helper"
)

type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

func (r *VersionResult) GetOutput() string {
	var s strings.Builder

	s.WriteString("Objectchain\n")
	s.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Version|%s", r.Version),
		fmt.Sprintf("Commit|%s", orUnknown(r.Commit)),
		fmt.Sprintf("Build Time|%s", orUnknown(r.BuildTime)),
		fmt.Sprintf("Go|%s", r.GoVersion),
	}))

	return s.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}
