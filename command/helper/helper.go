package helper

import (
	"github.com/dogechain-lab/objectchain/command"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
)

// FormatKV formats "key|value" rows into aligned "key = value" lines
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// FormatList formats "a|b|c" rows into aligned columns
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterConfigFlag registers the --config flag for all child commands
func RegisterConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		command.ConfigFlag,
		"",
		"the path to the CLI config. Supports .json and .hcl",
	)
}

// GetConfigPath returns the --config value, empty if unset
func GetConfigPath(cmd *cobra.Command) string {
	flag := cmd.Flag(command.ConfigFlag)
	if flag == nil {
		return ""
	}

	return flag.Value.String()
}

// SetRequiredFlags marks the given flags as required
func SetRequiredFlags(cmd *cobra.Command, requiredFlags []string) {
	for _, requiredFlag := range requiredFlags {
		_ = cmd.MarkFlagRequired(requiredFlag)
	}
}
